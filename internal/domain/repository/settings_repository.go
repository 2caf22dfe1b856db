package repository

import (
	"context"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
)

// SettingsRepository defines the interface for the single kiosk settings row
type SettingsRepository interface {
	Get(ctx context.Context) (*entity.KioskSettings, error)
	Create(ctx context.Context, settings *entity.KioskSettings) error
	Update(ctx context.Context, settings *entity.KioskSettings) error
}
