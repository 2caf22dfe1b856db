package repository

import (
	"context"
	"errors"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	domainRepo "github.com/chaatcart/kiosk-api/internal/domain/repository"
	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository
func NewSettingsRepository(db *gorm.DB) domainRepo.SettingsRepository {
	return &settingsRepository{db: db}
}

// Get retrieves the single settings row, nil if it does not exist yet
func (r *settingsRepository) Get(ctx context.Context) (*entity.KioskSettings, error) {
	var settings entity.KioskSettings
	err := r.db.WithContext(ctx).First(&settings).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &settings, nil
}

// Create creates the settings row
func (r *settingsRepository) Create(ctx context.Context, settings *entity.KioskSettings) error {
	return r.db.WithContext(ctx).Create(settings).Error
}

// Update updates the settings row. Last writer wins; there is no versioning.
func (r *settingsRepository) Update(ctx context.Context, settings *entity.KioskSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
