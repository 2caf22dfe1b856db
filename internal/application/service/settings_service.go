package service

import (
	"context"
	"time"

	"github.com/chaatcart/kiosk-api/internal/domain/entity"
	"github.com/chaatcart/kiosk-api/internal/domain/repository"
)

// SettingsService manages the single kiosk settings record
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves the settings, creating defaults on first read
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.KioskSettings, error) {
	settings, err := s.settingsRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &entity.KioskSettings{
			OnlinePaymentsEnabled: true,
			PayAtCounterEnabled:   true,
			Categories:            entity.CategoryList{},
		}
		if err := s.settingsRepo.Create(ctx, settings); err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// UpdateSettingsInput is a partial patch: only non-nil fields change.
// Last writer wins; there is no versioning or conflict detection.
type UpdateSettingsInput struct {
	OnlinePaymentsEnabled *bool
	PayAtCounterEnabled   *bool
	Categories            *[]string
}

// UpdateSettings applies a partial patch with merge semantics
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.KioskSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	if input.OnlinePaymentsEnabled != nil {
		settings.OnlinePaymentsEnabled = *input.OnlinePaymentsEnabled
	}
	if input.PayAtCounterEnabled != nil {
		settings.PayAtCounterEnabled = *input.PayAtCounterEnabled
	}
	if input.Categories != nil {
		settings.Categories = entity.CategoryList(*input.Categories)
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}

// ResetOrdersView stamps the operational watermark so the admin order list
// starts empty. Orders stay in storage and analytics still sees them.
func (s *SettingsService) ResetOrdersView(ctx context.Context) (*entity.KioskSettings, error) {
	settings, err := s.GetSettings(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	settings.OrdersHiddenBefore = &now

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}

	return settings, nil
}
