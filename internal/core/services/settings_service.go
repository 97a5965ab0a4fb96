package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/shopspring/decimal"
)

// settingsService implements the SettingsSvcFacade.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new instance of settingsService.
func NewSettingsService(settingsRepo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: settingsRepo}
}

// GetSettings returns the account's settings. An account that has never
// saved settings gets the defaults instead of an error, so the ledger
// endpoints work from day one.
func (s *settingsService) GetSettings(ctx context.Context, accountID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettingsByAccountID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return defaultSettings(accountID), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, accountID string, req dto.UpdateSettingsRequest) (*domain.Settings, error) {
	if req.DefaultVatPercent.IsNegative() || req.DeliveryFeePercent.IsNegative() {
		return nil, fmt.Errorf("percentages must not be negative: %w", apperrors.ErrValidation)
	}

	existing, err := s.GetSettings(ctx, accountID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	currency := req.Currency
	if currency == "" {
		currency = existing.Currency
	}

	settings := domain.Settings{
		AccountID:          accountID,
		StartingBalance:    req.StartingBalance,
		DefaultVatPercent:  req.DefaultVatPercent,
		DeliveryFeePercent: req.DeliveryFeePercent,
		Currency:           currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     existing.CreatedAt,
			CreatedBy:     existing.CreatedBy,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
		settings.CreatedBy = accountID
	}

	if err := s.settingsRepo.SaveSettings(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to update settings: %w", err)
	}

	s.LogInfo(ctx, "Settings updated", "account_id", accountID)
	return &settings, nil
}

func defaultSettings(accountID string) *domain.Settings {
	return &domain.Settings{
		AccountID:          accountID,
		StartingBalance:    decimal.Zero,
		DefaultVatPercent:  decimal.NewFromInt(10),
		DeliveryFeePercent: decimal.NewFromInt(20),
		Currency:           domain.DefaultCurrency,
	}
}
