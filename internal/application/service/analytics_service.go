package service

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/domain/enum"
	"github.com/chaatcart/kiosk-api/internal/domain/repository"
	"github.com/chaatcart/kiosk-api/pkg/apperror"
)

// AnalyticsService derives revenue, tip, fee and sales figures from the order
// store. All money aggregates flow through Order.CollectedAmount and exclude
// cancelled orders; count-based breakdowns include them. Analytics always
// reads full history, bypassing the operational orders-view reset.
type AnalyticsService struct {
	orderRepo repository.OrderRepository
	menuRepo  repository.MenuRepository
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(orderRepo repository.OrderRepository, menuRepo repository.MenuRepository) *AnalyticsService {
	return &AnalyticsService{
		orderRepo: orderRepo,
		menuRepo:  menuRepo,
	}
}

// ResolveTimeWindow translates a window selector into an inclusive start/end
// pair. "month" means the current calendar month, not the last 30 days, so
// the dashboard and the monthly tax report agree on boundaries.
func ResolveTimeWindow(window string, start, end *time.Time, now time.Time) (*time.Time, *time.Time, error) {
	switch window {
	case "", "all":
		return nil, nil, nil
	case "today":
		s := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return &s, nil, nil
	case "week":
		s := now.AddDate(0, 0, -7)
		return &s, nil, nil
	case "month":
		s := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return &s, nil, nil
	case "custom":
		if start == nil || end == nil {
			return nil, nil, apperror.NewBadRequestError("Custom window requires start and end dates")
		}
		return start, end, nil
	default:
		return nil, nil, apperror.NewBadRequestError("Unknown time window: " + window)
	}
}

// DashboardStats represents the admin dashboard figures for one time window
type DashboardStats struct {
	TotalOrders        int     `json:"total_orders"`
	PendingOrders      int     `json:"pending_orders"`
	CompletedOrders    int     `json:"completed_orders"`
	CancelledOrders    int     `json:"cancelled_orders"`
	TotalRevenue       float64 `json:"total_revenue"`
	TotalTips          float64 `json:"total_tips"`
	AverageOrderValue  float64 `json:"average_order_value"`
	CompletionRate     float64 `json:"completion_rate"`
	AverageWaitMinutes float64 `json:"average_wait_minutes"`

	PaymentBreakdown PaymentBreakdown `json:"payment_breakdown"`
	RevenueTrend     []TrendPoint     `json:"revenue_trend"`
	TopItems         []ItemSales      `json:"top_items"`
	CategorySales    []CategorySales  `json:"category_sales"`
}

// PaymentBreakdown splits Completed orders by payment path. An order counts
// as online only when it is paid and carries a provider payment id; paid
// without a payment id means paid at the counter. Unpaid orders get zero
// revenue attributed.
type PaymentBreakdown struct {
	OnlineCount    int     `json:"online_count"`
	OnlineRevenue  float64 `json:"online_revenue"`
	CounterCount   int     `json:"counter_count"`
	CounterRevenue float64 `json:"counter_revenue"`
	UnpaidCount    int     `json:"unpaid_count"`
}

// TrendPoint is one calendar date in the revenue time series. Date is the
// full ISO date, not a day-of-month label, so series spanning month or year
// boundaries group and sort correctly.
type TrendPoint struct {
	Date    string  `json:"date"`
	Revenue float64 `json:"revenue"`
}

// ItemSales aggregates units sold and revenue per dish name
type ItemSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// CategorySales aggregates units sold and revenue per menu category
type CategorySales struct {
	Category string  `json:"category"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// GetDashboardStats computes the dashboard figures over the selected window
func (s *AnalyticsService) GetDashboardStats(ctx context.Context, window string, start, end *time.Time) (*DashboardStats, error) {
	wStart, wEnd, err := ResolveTimeWindow(window, start, end, time.Now())
	if err != nil {
		return nil, err
	}

	orders, err := s.orderRepo.ListAll(ctx, wStart, wEnd)
	if err != nil {
		return nil, err
	}

	index, err := s.buildPriceIndex(ctx)
	if err != nil {
		return nil, err
	}

	return computeStats(orders, index), nil
}

// computeStats aggregates a fetched order set. Intermediate sums stay
// unrounded; rounding happens once when the response struct is built.
func computeStats(orders []entity.Order, index *priceIndex) *DashboardStats {
	stats := &DashboardStats{}

	var revenue, tips float64
	var waitMinutes float64
	var waited int

	trend := make(map[string]float64)
	itemAgg := make(map[string]*ItemSales)
	catAgg := make(map[string]*CategorySales)

	for i := range orders {
		order := &orders[i]
		stats.TotalOrders++

		switch order.Status {
		case enum.OrderStatusPending:
			stats.PendingOrders++
		case enum.OrderStatusCompleted:
			stats.CompletedOrders++
		case enum.OrderStatusCancelled:
			stats.CancelledOrders++
		}

		if order.Status == enum.OrderStatusCancelled {
			// Cancelled orders stay in the denominator of the completion rate
			// but never contribute money or sales figures.
			continue
		}

		collected := order.CollectedAmount()
		revenue += collected
		tips += order.Tip

		dateKey := order.CreatedAt.Format("2006-01-02")
		trend[dateKey] += collected

		for _, itemEntry := range order.Items {
			name, unitPrice, category := index.priceFor(itemEntry)
			agg := itemAgg[name]
			if agg == nil {
				agg = &ItemSales{Name: name}
				itemAgg[name] = agg
			}
			agg.Quantity++
			agg.Revenue += unitPrice

			cat := catAgg[category]
			if cat == nil {
				cat = &CategorySales{Category: category}
				catAgg[category] = cat
			}
			cat.Quantity++
			cat.Revenue += unitPrice
		}

		if order.Status == enum.OrderStatusCompleted {
			switch {
			case order.PaidOnline():
				stats.PaymentBreakdown.OnlineCount++
				stats.PaymentBreakdown.OnlineRevenue += collected
			case order.Paid:
				stats.PaymentBreakdown.CounterCount++
				stats.PaymentBreakdown.CounterRevenue += collected
			default:
				stats.PaymentBreakdown.UnpaidCount++
			}

			// Orders without a usable completion timestamp are excluded from
			// the wait average, not treated as zero.
			if !order.UpdatedAt.IsZero() && order.UpdatedAt.After(order.CreatedAt) {
				waitMinutes += order.UpdatedAt.Sub(order.CreatedAt).Minutes()
				waited++
			}
		}
	}

	nonCancelled := stats.TotalOrders - stats.CancelledOrders

	stats.TotalRevenue = entity.RoundMoney(revenue)
	stats.TotalTips = entity.RoundMoney(tips)
	if nonCancelled > 0 {
		stats.AverageOrderValue = entity.RoundMoney(revenue / float64(nonCancelled))
	}
	if stats.TotalOrders > 0 {
		stats.CompletionRate = float64(stats.CompletedOrders) / float64(stats.TotalOrders)
	}
	if waited > 0 {
		stats.AverageWaitMinutes = waitMinutes / float64(waited)
	}
	stats.PaymentBreakdown.OnlineRevenue = entity.RoundMoney(stats.PaymentBreakdown.OnlineRevenue)
	stats.PaymentBreakdown.CounterRevenue = entity.RoundMoney(stats.PaymentBreakdown.CounterRevenue)

	// Chronological order falls out of sorting the ISO date keys.
	dateKeys := make([]string, 0, len(trend))
	for k := range trend {
		dateKeys = append(dateKeys, k)
	}
	sort.Strings(dateKeys)
	stats.RevenueTrend = make([]TrendPoint, 0, len(dateKeys))
	for _, k := range dateKeys {
		stats.RevenueTrend = append(stats.RevenueTrend, TrendPoint{Date: k, Revenue: entity.RoundMoney(trend[k])})
	}

	stats.TopItems = make([]ItemSales, 0, len(itemAgg))
	for _, agg := range itemAgg {
		agg.Revenue = entity.RoundMoney(agg.Revenue)
		stats.TopItems = append(stats.TopItems, *agg)
	}
	sort.Slice(stats.TopItems, func(i, j int) bool {
		if stats.TopItems[i].Quantity != stats.TopItems[j].Quantity {
			return stats.TopItems[i].Quantity > stats.TopItems[j].Quantity
		}
		return stats.TopItems[i].Name < stats.TopItems[j].Name
	})

	stats.CategorySales = make([]CategorySales, 0, len(catAgg))
	for _, cat := range catAgg {
		cat.Revenue = entity.RoundMoney(cat.Revenue)
		stats.CategorySales = append(stats.CategorySales, *cat)
	}
	sort.Slice(stats.CategorySales, func(i, j int) bool {
		if stats.CategorySales[i].Revenue != stats.CategorySales[j].Revenue {
			return stats.CategorySales[i].Revenue > stats.CategorySales[j].Revenue
		}
		return stats.CategorySales[i].Category < stats.CategorySales[j].Category
	})

	return stats
}

// TaxReport is the exportable monthly tax summary. It is computed with the
// same CollectedAmount definition as the dashboard, so the two can never
// disagree. Tax is only ever the amounts actually captured at checkout;
// nothing is synthesized for cash orders.
type TaxReport struct {
	Month          string  `json:"month"`
	OrderCount     int     `json:"order_count"`
	GrossSales     float64 `json:"gross_sales"`
	TaxCollected   float64 `json:"tax_collected"`
	Tips           float64 `json:"tips"`
	Fees           float64 `json:"fees"`
	TotalCollected float64 `json:"total_collected"`
	NetTotal       float64 `json:"net_total"`
}

// GetMonthlyTaxReport summarizes Completed orders within one calendar month
func (s *AnalyticsService) GetMonthlyTaxReport(ctx context.Context, year int, month time.Month) (*TaxReport, error) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

	orders, err := s.orderRepo.ListAll(ctx, &start, &end)
	if err != nil {
		return nil, err
	}

	return computeTaxReport(orders, start), nil
}

func computeTaxReport(orders []entity.Order, monthStart time.Time) *TaxReport {
	report := &TaxReport{Month: monthStart.Format("2006-01")}

	var gross, tax, tips, fees, collected float64
	for i := range orders {
		order := &orders[i]
		if order.Status != enum.OrderStatusCompleted {
			continue
		}
		report.OrderCount++
		gross += order.Total
		tax += order.TaxAmount
		tips += order.Tip
		fees += order.ConvenienceFee
		collected += order.CollectedAmount()
	}

	report.GrossSales = entity.RoundMoney(gross)
	report.TaxCollected = entity.RoundMoney(tax)
	report.Tips = entity.RoundMoney(tips)
	report.Fees = entity.RoundMoney(fees)
	report.TotalCollected = entity.RoundMoney(collected)
	report.NetTotal = entity.RoundMoney(collected - fees)
	return report
}

// ParseItem splits an item display string into its dish name and option list
// at the first " (". A bare name has no options.
func ParseItem(entry string) (string, []string) {
	i := strings.Index(entry, " (")
	if i < 0 || !strings.HasSuffix(entry, ")") {
		return entry, nil
	}
	name := entry[:i]
	opts := entry[i+2 : len(entry)-1]
	if opts == "" {
		return name, nil
	}
	return name, strings.Split(opts, ", ")
}

// premiumSuffix matches a trailing "(+$N)" price tag on an option name
var premiumSuffix = regexp.MustCompile(`\s*\(\+\$\d+(\.\d+)?\)$`)

// priceIndex resolves the unit price actually charged for an item display
// string: the dish base price plus any premium option surcharges
type priceIndex struct {
	base     map[string]float64
	category map[string]string
	extras   map[string]map[string]float64
}

func (s *AnalyticsService) buildPriceIndex(ctx context.Context) (*priceIndex, error) {
	items, err := s.menuRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	return newPriceIndex(items), nil
}

func newPriceIndex(items []entity.MenuItem) *priceIndex {
	index := &priceIndex{
		base:     make(map[string]float64, len(items)),
		category: make(map[string]string, len(items)),
		extras:   make(map[string]map[string]float64, len(items)),
	}
	for i := range items {
		item := &items[i]
		index.base[item.Name] = item.Price
		index.category[item.Name] = item.Category

		extras := make(map[string]float64, len(item.Options))
		for _, opt := range item.Options {
			extras[opt.Name] = opt.Extra
			// Index the stripped form too, so "Extra Chutney" resolves
			// against a stored "Extra Chutney (+$1.00)".
			if stripped := premiumSuffix.ReplaceAllString(opt.Name, ""); stripped != opt.Name {
				if _, exists := extras[stripped]; !exists {
					extras[stripped] = opt.Extra
				}
			}
		}
		index.extras[item.Name] = extras
	}
	return index
}

// priceFor returns the dish name, the unit price charged and the menu
// category for one item entry. Items no longer on the menu price at zero but
// still count toward quantities.
func (x *priceIndex) priceFor(entry string) (string, float64, string) {
	name, opts := ParseItem(entry)

	price, known := x.base[name]
	if !known {
		return name, 0, "Uncategorized"
	}

	extras := x.extras[name]
	for _, opt := range opts {
		if v, ok := extras[opt]; ok {
			price += v
			continue
		}
		if v, ok := extras[premiumSuffix.ReplaceAllString(opt, "")]; ok {
			price += v
		}
	}

	category := x.category[name]
	if category == "" {
		category = "Uncategorized"
	}
	return name, price, category
}

// ExpandQuantities flattens per-dish quantities into the repeated-entry item
// list used on orders: one entry per unit.
func ExpandQuantities(items map[string]int, order []string) []string {
	out := make([]string, 0)
	for _, key := range order {
		for i := 0; i < items[key]; i++ {
			out = append(out, key)
		}
	}
	return out
}

// GroupQuantities re-groups a repeated-entry item list into per-dish counts
func GroupQuantities(items []string) map[string]int {
	out := make(map[string]int, len(items))
	for _, item := range items {
		out[item]++
	}
	return out
}

// FormatItemEntry builds the canonical display string for a dish with
// selected options: `"<name> (<opt1>, <opt2>)"`, or the bare name
func FormatItemEntry(name string, options []string) string {
	if len(options) == 0 {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, strings.Join(options, ", "))
}
