package service

import (
	"context"
	"sort"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/domain/repository"
	"github.com/chaatcart/kiosk-api/pkg/apperror"
	"github.com/google/uuid"
)

// MenuService manages menu items and the storefront listing
type MenuService struct {
	menuRepo     repository.MenuRepository
	settingsRepo repository.SettingsRepository
}

// NewMenuService creates a new menu service
func NewMenuService(menuRepo repository.MenuRepository, settingsRepo repository.SettingsRepository) *MenuService {
	return &MenuService{
		menuRepo:     menuRepo,
		settingsRepo: settingsRepo,
	}
}

// ListMenu returns menu items ordered by the settings category order, then
// per-item sort order. Categories missing from the settings list sort last,
// alphabetically. availableOnly is set for the customer storefront.
func (s *MenuService) ListMenu(ctx context.Context, availableOnly bool) ([]entity.MenuItem, error) {
	items, err := s.menuRepo.List(ctx, availableOnly)
	if err != nil {
		return nil, err
	}

	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	rank := make(map[string]int)
	if settings != nil {
		for i, cat := range settings.Categories {
			rank[cat] = i
		}
	}
	catRank := func(cat string) int {
		if r, ok := rank[cat]; ok {
			return r
		}
		return len(rank)
	}

	sort.SliceStable(items, func(i, j int) bool {
		ri, rj := catRank(items[i].Category), catRank(items[j].Category)
		if ri != rj {
			return ri < rj
		}
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		if items[i].SortOrder != items[j].SortOrder {
			return items[i].SortOrder < items[j].SortOrder
		}
		return items[i].Name < items[j].Name
	})

	return items, nil
}

// CreateItemInput represents a new menu item
type CreateItemInput struct {
	Name      string
	Category  string
	Price     float64
	Options   []entity.MenuOption
	Available bool
	SortOrder int
}

// CreateItem adds a menu item
func (s *MenuService) CreateItem(ctx context.Context, input *CreateItemInput) (*entity.MenuItem, error) {
	if input.Name == "" {
		return nil, apperror.NewBadRequestError("Item name is required")
	}
	if input.Price < 0 {
		return nil, apperror.NewBadRequestError("Price must not be negative")
	}

	existing, err := s.menuRepo.GetByName(ctx, input.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A menu item with this name already exists")
	}

	item := &entity.MenuItem{
		Name:      input.Name,
		Category:  input.Category,
		Price:     input.Price,
		Options:   entity.OptionList(input.Options),
		Available: input.Available,
		SortOrder: input.SortOrder,
	}

	if err := s.menuRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// UpdateItemInput is a partial patch for a menu item
type UpdateItemInput struct {
	Name      *string
	Category  *string
	Price     *float64
	Options   *[]entity.MenuOption
	Available *bool
	SortOrder *int
}

// UpdateItem applies a partial patch to a menu item
func (s *MenuService) UpdateItem(ctx context.Context, id uuid.UUID, input *UpdateItemInput) (*entity.MenuItem, error) {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Menu item")
	}

	if input.Name != nil && *input.Name != "" {
		item.Name = *input.Name
	}
	if input.Category != nil {
		item.Category = *input.Category
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, apperror.NewBadRequestError("Price must not be negative")
		}
		item.Price = *input.Price
	}
	if input.Options != nil {
		item.Options = entity.OptionList(*input.Options)
	}
	if input.Available != nil {
		item.Available = *input.Available
	}
	if input.SortOrder != nil {
		item.SortOrder = *input.SortOrder
	}

	if err := s.menuRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteItem removes a menu item. Past orders keep their flattened item
// strings; analytics prices missing items at zero.
func (s *MenuService) DeleteItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.menuRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Menu item")
	}

	return s.menuRepo.Delete(ctx, id)
}
