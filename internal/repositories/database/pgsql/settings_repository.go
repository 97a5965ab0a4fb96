package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	"github.com/kasa-app/kasa_backend/internal/models"
	"github.com/kasa-app/kasa_backend/internal/utils/mapping"
)

type PgxSettingsRepository struct {
	db *pgxpool.Pool
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{db: db}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func (r *PgxSettingsRepository) FindSettingsByAccountID(ctx context.Context, accountID string) (*domain.Settings, error) {
	query := `
		SELECT account_id, starting_balance, default_vat_percent, delivery_fee_percent, currency,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE account_id = $1;
	`
	var m models.Settings
	err := r.db.QueryRow(ctx, query, accountID).Scan(
		&m.AccountID,
		&m.StartingBalance,
		&m.DefaultVatPercent,
		&m.DeliveryFeePercent,
		&m.Currency,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for account %s: %w", accountID, err)
	}
	settings := mapping.ToDomainSettings(m)
	return &settings, nil
}

// SaveSettings upserts the single settings row an account owns.
func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	m := mapping.ToModelSettings(settings)
	query := `
		INSERT INTO settings (account_id, starting_balance, default_vat_percent, delivery_fee_percent, currency, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (account_id) DO UPDATE SET
			starting_balance = EXCLUDED.starting_balance,
			default_vat_percent = EXCLUDED.default_vat_percent,
			delivery_fee_percent = EXCLUDED.delivery_fee_percent,
			currency = EXCLUDED.currency,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.StartingBalance,
		m.DefaultVatPercent,
		m.DeliveryFeePercent,
		m.Currency,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}
