package repository

import (
	"context"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/google/uuid"
)

// MenuRepository defines the interface for menu item data operations
type MenuRepository interface {
	Create(ctx context.Context, item *entity.MenuItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.MenuItem, error)
	GetByName(ctx context.Context, name string) (*entity.MenuItem, error)
	List(ctx context.Context, availableOnly bool) ([]entity.MenuItem, error)
	Update(ctx context.Context, item *entity.MenuItem) error
	Delete(ctx context.Context, id uuid.UUID) error
}
