package repository

import (
	"context"
	"errors"
	"time"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/domain/enum"
	domainRepo "github.com/chaatcart/kiosk-api/internal/domain/repository"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *gorm.DB) domainRepo.OrderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var order entity.Order
	err := r.db.WithContext(ctx).First(&order, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &order, err
}

func (r *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	return r.db.WithContext(ctx).Save(order).Error
}

func (r *orderRepository) List(ctx context.Context, params *domainRepo.OrderFilterParams) ([]entity.Order, int64, error) {
	var orders []entity.Order
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Order{})

	if params.Search != "" {
		query = query.Where("customer_name ILIKE ?", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	// Operational reset watermark. Analytics callers leave this nil to see
	// full history.
	if params.HiddenBefore != nil {
		query = query.Where("created_at >= ?", *params.HiddenBefore)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order("created_at " + sortOrder).
		Find(&orders).Error

	return orders, total, err
}

// ListAll returns every order in the optional time window, oldest first.
// Used by revenue accounting, which aggregates in memory and never respects
// the operational reset watermark.
func (r *orderRepository) ListAll(ctx context.Context, start, end *time.Time) ([]entity.Order, error) {
	var orders []entity.Order

	query := r.db.WithContext(ctx).Model(&entity.Order{})
	if start != nil {
		query = query.Where("created_at >= ?", *start)
	}
	if end != nil {
		query = query.Where("created_at <= ?", *end)
	}

	err := query.Order("created_at ASC").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.OrderStatus) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) UpdatePaid(ctx context.Context, id uuid.UUID, paid bool) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("paid", paid)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) UpdateGivenItems(ctx context.Context, id uuid.UUID, given entity.GivenMap) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Update("given_items", given)
	return result.RowsAffected, result.Error
}

func (r *orderRepository) UpdateItems(ctx context.Context, id uuid.UUID, items entity.ItemList, total float64) (int64, error) {
	result := r.db.WithContext(ctx).Model(&entity.Order{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"items": items,
			"total": total,
		})
	return result.RowsAffected, result.Error
}
