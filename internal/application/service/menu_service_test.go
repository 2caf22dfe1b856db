package service

import (
	"context"
	"testing"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListMenuOrdering(t *testing.T) {
	ctx := context.Background()
	menuRepo := newFakeMenuRepo(
		entity.MenuItem{Name: "Mango Lassi", Category: "Drinks", Price: 4.5, Available: true},
		entity.MenuItem{Name: "Masala Dosa", Category: "Dosa", Price: 9, Available: true},
		entity.MenuItem{Name: "Samosa", Category: "Chaat", Price: 2, SortOrder: 2, Available: true},
		entity.MenuItem{Name: "Panipuri", Category: "Chaat", Price: 6, SortOrder: 1, Available: true},
		entity.MenuItem{Name: "Filter Coffee", Category: "Drinks", Price: 3, Available: false},
	)
	settingsRepo := newFakeSettingsRepo()
	require.NoError(t, settingsRepo.Create(ctx, &entity.KioskSettings{
		OnlinePaymentsEnabled: true,
		PayAtCounterEnabled:   true,
		Categories:            entity.CategoryList{"Chaat", "Dosa", "Drinks"},
	}))

	svc := NewMenuService(menuRepo, settingsRepo)

	items, err := svc.ListMenu(ctx, true)
	require.NoError(t, err)
	require.Len(t, items, 4)
	assert.Equal(t, "Panipuri", items[0].Name)
	assert.Equal(t, "Samosa", items[1].Name)
	assert.Equal(t, "Masala Dosa", items[2].Name)
	assert.Equal(t, "Mango Lassi", items[3].Name)

	// The admin view keeps unavailable items
	items, err = svc.ListMenu(ctx, false)
	require.NoError(t, err)
	assert.Len(t, items, 5)
}

func TestCreateItem(t *testing.T) {
	ctx := context.Background()
	menuRepo := newFakeMenuRepo()
	svc := NewMenuService(menuRepo, newFakeSettingsRepo())

	item, err := svc.CreateItem(ctx, &CreateItemInput{
		Name:     "Vada Pav",
		Category: "Chaat",
		Price:    5,
		Options: []entity.MenuOption{
			{Name: "Extra Chutney (+$1.00)", Extra: 1},
		},
		Available: true,
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, item.ID)

	_, err = svc.CreateItem(ctx, &CreateItemInput{Name: "Vada Pav", Price: 5})
	require.Error(t, err)

	_, err = svc.CreateItem(ctx, &CreateItemInput{Name: "", Price: 5})
	require.Error(t, err)

	_, err = svc.CreateItem(ctx, &CreateItemInput{Name: "Bhel", Price: -1})
	require.Error(t, err)
}

func TestUpdateItemPartialPatch(t *testing.T) {
	ctx := context.Background()
	menuRepo := newFakeMenuRepo(
		entity.MenuItem{Name: "Samosa", Category: "Chaat", Price: 2, Available: true},
	)
	svc := NewMenuService(menuRepo, newFakeSettingsRepo())

	existing, err := menuRepo.GetByName(ctx, "Samosa")
	require.NoError(t, err)

	price := 2.5
	item, err := svc.UpdateItem(ctx, existing.ID, &UpdateItemInput{Price: &price})
	require.NoError(t, err)
	assert.InDelta(t, 2.5, item.Price, 0.001)
	assert.Equal(t, "Samosa", item.Name)
	assert.True(t, item.Available)

	off := false
	item, err = svc.UpdateItem(ctx, existing.ID, &UpdateItemInput{Available: &off})
	require.NoError(t, err)
	assert.False(t, item.Available)
	assert.InDelta(t, 2.5, item.Price, 0.001)
}

func TestDeleteItem(t *testing.T) {
	ctx := context.Background()
	menuRepo := newFakeMenuRepo(
		entity.MenuItem{Name: "Samosa", Category: "Chaat", Price: 2, Available: true},
	)
	svc := NewMenuService(menuRepo, newFakeSettingsRepo())

	existing, err := menuRepo.GetByName(ctx, "Samosa")
	require.NoError(t, err)

	require.NoError(t, svc.DeleteItem(ctx, existing.ID))

	gone, err := menuRepo.GetByName(ctx, "Samosa")
	require.NoError(t, err)
	assert.Nil(t, gone)
}
