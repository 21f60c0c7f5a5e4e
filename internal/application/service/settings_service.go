package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/udyogbooks/backoffice-api/internal/domain/entity"
	"github.com/udyogbooks/backoffice-api/internal/domain/ledger"
	"github.com/udyogbooks/backoffice-api/internal/domain/repository"
	"github.com/udyogbooks/backoffice-api/pkg/apperror"
)

// SettingsService handles user settings operations
type SettingsService struct {
	settingsRepo repository.SettingsRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingsRepo repository.SettingsRepository) *SettingsService {
	return &SettingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the user's settings, creating defaults on first
// access.
func (s *SettingsService) GetSettings(ctx context.Context, userID uuid.UUID) (*entity.UserSettings, error) {
	settings, err := s.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if settings != nil {
		return settings, nil
	}

	settings = &entity.UserSettings{
		UserID:             userID,
		Language:           "en",
		Timezone:           "Asia/Kolkata",
		Currency:           "INR",
		DateFormat:         "DD/MM/YYYY",
		DefaultTaxRate:     ledger.DefaultTaxRate,
		ItemsPerPage:       15,
		EmailNotifications: true,
		LowStockAlerts:     true,
		Theme:              "light",
	}
	if err := s.settingsRepo.Create(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UpdateSettingsInput represents the input for updating settings
type UpdateSettingsInput struct {
	UserID                uuid.UUID
	Language              *string
	Timezone              *string
	Currency              *string
	DateFormat            *string
	DefaultTaxRate        *float64
	DefaultPackingCharges *float64
	ItemsPerPage          *int
	EmailNotifications    *bool
	LowStockAlerts        *bool
	Theme                 *string
	CompactMode           *bool
}

// UpdateSettings applies a partial update to the user's settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.UserSettings, error) {
	settings, err := s.GetSettings(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.DefaultTaxRate != nil && (*input.DefaultTaxRate < 0 || *input.DefaultTaxRate > 1) {
		return nil, apperror.NewBadRequestError("default_tax_rate must be between 0 and 1")
	}
	if input.ItemsPerPage != nil && (*input.ItemsPerPage < 1 || *input.ItemsPerPage > 100) {
		return nil, apperror.NewBadRequestError("items_per_page must be between 1 and 100")
	}

	if input.Language != nil {
		settings.Language = *input.Language
	}
	if input.Timezone != nil {
		settings.Timezone = *input.Timezone
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.DateFormat != nil {
		settings.DateFormat = *input.DateFormat
	}
	if input.DefaultTaxRate != nil {
		settings.DefaultTaxRate = *input.DefaultTaxRate
	}
	if input.DefaultPackingCharges != nil {
		settings.DefaultPackingCharges = *input.DefaultPackingCharges
	}
	if input.ItemsPerPage != nil {
		settings.ItemsPerPage = *input.ItemsPerPage
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.LowStockAlerts != nil {
		settings.LowStockAlerts = *input.LowStockAlerts
	}
	if input.Theme != nil {
		settings.Theme = *input.Theme
	}
	if input.CompactMode != nil {
		settings.CompactMode = *input.CompactMode
	}

	if err := s.settingsRepo.Update(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
