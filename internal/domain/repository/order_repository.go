package repository

import (
	"context"
	"time"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/domain/enum"
	"github.com/chaatcart/kiosk-api/pkg/pagination"
	"github.com/google/uuid"
)

// OrderRepository defines the interface for order data operations.
// Orders are never hard-deleted; cancellation is a status transition.
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, params *OrderFilterParams) ([]entity.Order, int64, error)
	ListAll(ctx context.Context, start, end *time.Time) ([]entity.Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (int64, error)
	UpdatePaid(ctx context.Context, id uuid.UUID, paid bool) (int64, error)
	UpdateGivenItems(ctx context.Context, id uuid.UUID, given entity.GivenMap) (int64, error)
	UpdateItems(ctx context.Context, id uuid.UUID, items entity.ItemList, total float64) (int64, error)
}

// OrderFilterParams contains filtering parameters for order list queries
type OrderFilterParams struct {
	Pagination   *pagination.PaginationParams
	Status       *enum.OrderStatus
	Search       string
	StartDate    *time.Time
	EndDate      *time.Time
	HiddenBefore *time.Time // operational reset watermark; nil when ignored
	SortOrder    string
}
