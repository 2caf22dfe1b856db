package service

import (
	"context"
	"testing"
	"time"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/domain/enum"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testMenu() []entity.MenuItem {
	return []entity.MenuItem{
		{Name: "Panipuri", Category: "Chaat", Price: 6, Options: entity.OptionList{
			{Name: "Mild"}, {Name: "Spicy"},
		}, Available: true},
		{Name: "Samosa", Category: "Chaat", Price: 2, Available: true},
		{Name: "Masala Dosa", Category: "Dosa", Price: 9, Options: entity.OptionList{
			{Name: "Extra Chutney (+$1.00)", Extra: 1.00},
		}, Available: true},
		{Name: "Mango Lassi", Category: "Drinks", Price: 4.5, Available: true},
	}
}

func day(t *testing.T, iso string) time.Time {
	tm, err := time.ParseInLocation("2006-01-02", iso, time.Local)
	require.NoError(t, err)
	return tm.Add(12 * time.Hour)
}

func TestResolveTimeWindow(t *testing.T) {
	now := time.Date(2026, 8, 21, 15, 30, 0, 0, time.Local)

	t.Run("all is unbounded", func(t *testing.T) {
		start, end, err := ResolveTimeWindow("all", nil, nil, now)
		require.NoError(t, err)
		assert.Nil(t, start)
		assert.Nil(t, end)
	})

	t.Run("today starts at midnight", func(t *testing.T) {
		start, _, err := ResolveTimeWindow("today", nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 21, 0, 0, 0, 0, time.Local), *start)
	})

	t.Run("month is the calendar month", func(t *testing.T) {
		start, _, err := ResolveTimeWindow("month", nil, nil, now)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local), *start)
	})

	t.Run("custom needs both bounds", func(t *testing.T) {
		s := now.AddDate(0, 0, -3)
		_, _, err := ResolveTimeWindow("custom", &s, nil, now)
		require.Error(t, err)
	})

	t.Run("unknown selector fails", func(t *testing.T) {
		_, _, err := ResolveTimeWindow("fortnight", nil, nil, now)
		require.Error(t, err)
	})
}

func TestComputeStats(t *testing.T) {
	index := newPriceIndex(testMenu())
	payment := "pi_1"

	orders := []entity.Order{
		// Counter order, completed and paid at the window
		{
			CustomerName: "Sam",
			Items:        entity.ItemList{"Samosa"},
			Total:        10, Tip: 2,
			Paid:      true,
			Status:    enum.OrderStatusCompleted,
			CreatedAt: day(t, "2026-08-20"),
			UpdatedAt: day(t, "2026-08-20").Add(8 * time.Minute),
		},
		// Online order, stripe total includes tax and fee
		{
			CustomerName: "Asha",
			Items:        entity.ItemList{"Masala Dosa (Extra Chutney)"},
			Total:        10, Tip: 2,
			TaxAmount: 0.825, ConvenienceFee: 0.60, StripeTotal: 13.425,
			PaymentID: &payment, Paid: true,
			Status:    enum.OrderStatusCompleted,
			CreatedAt: day(t, "2026-08-21"),
			UpdatedAt: day(t, "2026-08-21").Add(4 * time.Minute),
		},
		// Cancelled order with money fields populated
		{
			CustomerName: "Ravi",
			Items:        entity.ItemList{"Panipuri (Mild)"},
			Total:        50,
			Status:       enum.OrderStatusCancelled,
			CreatedAt:    day(t, "2026-08-21"),
		},
		// Still pending, unpaid
		{
			CustomerName: "Dev",
			Items:        entity.ItemList{"Mango Lassi"},
			Total:        4.5,
			Status:       enum.OrderStatusPending,
			CreatedAt:    day(t, "2026-08-21"),
		},
	}

	stats := computeStats(orders, index)

	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
	assert.Equal(t, 1, stats.CancelledOrders)

	// 12 collected at the counter plus 13.425 captured online; the cancelled
	// 50 never shows up.
	assert.InDelta(t, 29.93, stats.TotalRevenue, 0.001)
	assert.InDelta(t, 4.0, stats.TotalTips, 0.001)
	assert.InDelta(t, 0.5, stats.CompletionRate, 0.0001)
	assert.InDelta(t, 6.0, stats.AverageWaitMinutes, 0.001)

	assert.Equal(t, 1, stats.PaymentBreakdown.OnlineCount)
	assert.InDelta(t, 13.43, stats.PaymentBreakdown.OnlineRevenue, 0.001)
	assert.Equal(t, 1, stats.PaymentBreakdown.CounterCount)
	assert.InDelta(t, 12.0, stats.PaymentBreakdown.CounterRevenue, 0.001)
	assert.Equal(t, 0, stats.PaymentBreakdown.UnpaidCount)

	require.Len(t, stats.RevenueTrend, 2)
	assert.Equal(t, "2026-08-20", stats.RevenueTrend[0].Date)
	assert.InDelta(t, 12.0, stats.RevenueTrend[0].Revenue, 0.001)
	assert.Equal(t, "2026-08-21", stats.RevenueTrend[1].Date)
	assert.InDelta(t, 17.93, stats.RevenueTrend[1].Revenue, 0.001)

	// The cancelled Panipuri contributes no sales; the dosa picks up its
	// chutney surcharge.
	var dosa *ItemSales
	for i := range stats.TopItems {
		if stats.TopItems[i].Name == "Masala Dosa" {
			dosa = &stats.TopItems[i]
		}
		assert.NotEqual(t, "Panipuri", stats.TopItems[i].Name)
	}
	require.NotNil(t, dosa)
	assert.Equal(t, 1, dosa.Quantity)
	assert.InDelta(t, 10.0, dosa.Revenue, 0.001)
}

func TestComputeStatsTrendSpansMonths(t *testing.T) {
	index := newPriceIndex(testMenu())

	orders := []entity.Order{
		{Items: entity.ItemList{"Samosa"}, Total: 2, Status: enum.OrderStatusCompleted, CreatedAt: day(t, "2026-02-01")},
		{Items: entity.ItemList{"Samosa"}, Total: 2, Status: enum.OrderStatusCompleted, CreatedAt: day(t, "2026-01-31")},
		{Items: entity.ItemList{"Samosa"}, Total: 2, Status: enum.OrderStatusCompleted, CreatedAt: day(t, "2025-12-31")},
	}

	stats := computeStats(orders, index)

	require.Len(t, stats.RevenueTrend, 3)
	assert.Equal(t, "2025-12-31", stats.RevenueTrend[0].Date)
	assert.Equal(t, "2026-01-31", stats.RevenueTrend[1].Date)
	assert.Equal(t, "2026-02-01", stats.RevenueTrend[2].Date)
}

func TestComputeTaxReport(t *testing.T) {
	payment := "pi_2"

	t.Run("cash only month collects no tax", func(t *testing.T) {
		orders := []entity.Order{
			{Total: 10, Tip: 1, Paid: true, Status: enum.OrderStatusCompleted, CreatedAt: day(t, "2026-08-03")},
			{Total: 8, Paid: true, Status: enum.OrderStatusCompleted, CreatedAt: day(t, "2026-08-04")},
		}

		report := computeTaxReport(orders, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local))

		assert.Equal(t, "2026-08", report.Month)
		assert.Equal(t, 2, report.OrderCount)
		assert.InDelta(t, 18.0, report.GrossSales, 0.001)
		assert.InDelta(t, 0.0, report.TaxCollected, 0.001)
		assert.InDelta(t, 19.0, report.TotalCollected, 0.001)
		assert.InDelta(t, 19.0, report.NetTotal, 0.001)
	})

	t.Run("online orders carry captured tax and fees", func(t *testing.T) {
		orders := []entity.Order{
			{
				Total: 10, Tip: 2, TaxAmount: 0.825, ConvenienceFee: 0.60, StripeTotal: 13.425,
				PaymentID: &payment, Paid: true,
				Status: enum.OrderStatusCompleted, CreatedAt: day(t, "2026-08-05"),
			},
			// Pending and cancelled orders never reach the report
			{Total: 100, Status: enum.OrderStatusPending, CreatedAt: day(t, "2026-08-06")},
			{Total: 100, Status: enum.OrderStatusCancelled, CreatedAt: day(t, "2026-08-06")},
		}

		report := computeTaxReport(orders, time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local))

		assert.Equal(t, 1, report.OrderCount)
		assert.InDelta(t, 10.0, report.GrossSales, 0.001)
		assert.InDelta(t, 0.83, report.TaxCollected, 0.001)
		assert.InDelta(t, 0.60, report.Fees, 0.001)
		assert.InDelta(t, 13.43, report.TotalCollected, 0.001)
		assert.InDelta(t, 12.83, report.NetTotal, 0.001)
	})
}

func TestGetMonthlyTaxReportWindow(t *testing.T) {
	ctx := context.Background()
	orderRepo := newFakeOrderRepo()
	menuRepo := newFakeMenuRepo(testMenu()...)
	svc := NewAnalyticsService(orderRepo, menuRepo)

	require.NoError(t, orderRepo.Create(ctx, &entity.Order{
		CustomerName: "In",
		Items:        entity.ItemList{"Samosa"},
		Total:        2, Paid: true,
		Status:    enum.OrderStatusCompleted,
		CreatedAt: day(t, "2026-07-15"),
	}))
	require.NoError(t, orderRepo.Create(ctx, &entity.Order{
		CustomerName: "Out",
		Items:        entity.ItemList{"Samosa"},
		Total:        2, Paid: true,
		Status:    enum.OrderStatusCompleted,
		CreatedAt: day(t, "2026-08-01"),
	}))

	report, err := svc.GetMonthlyTaxReport(ctx, 2026, time.July)
	require.NoError(t, err)
	assert.Equal(t, "2026-07", report.Month)
	assert.Equal(t, 1, report.OrderCount)
}

func TestParseItem(t *testing.T) {
	name, opts := ParseItem("Panipuri (Mild, No Onion)")
	assert.Equal(t, "Panipuri", name)
	assert.Equal(t, []string{"Mild", "No Onion"}, opts)

	name, opts = ParseItem("Samosa")
	assert.Equal(t, "Samosa", name)
	assert.Nil(t, opts)

	// A parenthesis without the closing suffix is part of the name
	name, opts = ParseItem("Samosa (broken")
	assert.Equal(t, "Samosa (broken", name)
	assert.Nil(t, opts)
}

func TestPriceIndex(t *testing.T) {
	index := newPriceIndex(testMenu())

	t.Run("base price", func(t *testing.T) {
		name, price, category := index.priceFor("Samosa")
		assert.Equal(t, "Samosa", name)
		assert.InDelta(t, 2.0, price, 0.001)
		assert.Equal(t, "Chaat", category)
	})

	t.Run("free option adds nothing", func(t *testing.T) {
		_, price, _ := index.priceFor("Panipuri (Mild)")
		assert.InDelta(t, 6.0, price, 0.001)
	})

	t.Run("premium option by stripped name", func(t *testing.T) {
		_, price, _ := index.priceFor("Masala Dosa (Extra Chutney)")
		assert.InDelta(t, 10.0, price, 0.001)
	})

	t.Run("premium option by tagged name", func(t *testing.T) {
		_, price, _ := index.priceFor("Masala Dosa (Extra Chutney (+$1.00))")
		assert.InDelta(t, 10.0, price, 0.001)
	})

	t.Run("unknown dish prices at zero", func(t *testing.T) {
		name, price, category := index.priceFor("Vada Pav")
		assert.Equal(t, "Vada Pav", name)
		assert.InDelta(t, 0.0, price, 0.001)
		assert.Equal(t, "Uncategorized", category)
	})
}

func TestQuantityHelpers(t *testing.T) {
	items := []string{"Samosa", "Panipuri (Mild)", "Samosa"}

	grouped := GroupQuantities(items)
	assert.Equal(t, 2, grouped["Samosa"])
	assert.Equal(t, 1, grouped["Panipuri (Mild)"])

	expanded := ExpandQuantities(grouped, []string{"Samosa", "Panipuri (Mild)"})
	assert.Equal(t, []string{"Samosa", "Samosa", "Panipuri (Mild)"}, expanded)

	assert.Equal(t, "Panipuri (Mild, Extra Puri)", FormatItemEntry("Panipuri", []string{"Mild", "Extra Puri"}))
	assert.Equal(t, "Samosa", FormatItemEntry("Samosa", nil))
}
