package repository

import (
	"context"

	domainRepo "github.com/chaatcart/kiosk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type counterRepository struct {
	db *gorm.DB
}

// NewCounterRepository creates a new order counter repository
func NewCounterRepository(db *gorm.DB) domainRepo.CounterRepository {
	return &counterRepository{db: db}
}

// Next issues the next order number for the date with a single upsert, so
// concurrent checkouts cannot read-modify-write the same counter value. A new
// date inserts its own row starting at 1; stale rows from previous days are
// left behind for audit.
func (r *counterRepository) Next(ctx context.Context, date string) (int, error) {
	var counter int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO order_counters (date, counter)
		VALUES (?, 1)
		ON CONFLICT (date)
		DO UPDATE SET counter = order_counters.counter + 1
		RETURNING counter
	`, date).Scan(&counter).Error

	return counter, err
}
