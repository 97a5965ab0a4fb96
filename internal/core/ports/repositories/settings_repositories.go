package repositories

import (
	"context"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// SettingsReader defines read operations for account settings
type SettingsReader interface {
	// FindSettingsByAccountID retrieves the settings row for an account.
	// Returns apperrors.ErrNotFound when none has been saved yet.
	FindSettingsByAccountID(ctx context.Context, accountID string) (*domain.Settings, error)
}

// SettingsWriter defines write operations for account settings
type SettingsWriter interface {
	// SaveSettings inserts or replaces the settings row for an account.
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// SettingsRepositoryFacade combines all settings-related repository interfaces
type SettingsRepositoryFacade interface {
	SettingsReader
	SettingsWriter
}
