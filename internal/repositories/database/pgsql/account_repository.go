package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	"github.com/kasa-app/kasa_backend/internal/models"
	"github.com/kasa-app/kasa_backend/internal/utils/mapping"
)

type PgxAccountRepository struct {
	db *pgxpool.Pool
}

func newPgxAccountRepository(db *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{db: db}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryFacade
var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

const selectAccountFields = `
	account_id, name, username, password_hash,
	refresh_token_hash, refresh_token_expiry_time,
	created_at, created_by, last_updated_at, last_updated_by, deleted_at
`

func scanAccount(row pgx.Row) (*models.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Username,
		&m.PasswordHash,
		&m.RefreshTokenHash,
		&m.RefreshTokenExpiryTime,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
		&m.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		INSERT INTO accounts (account_id, name, username, password_hash, refresh_token_hash, refresh_token_expiry_time, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.db.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Username,
		m.PasswordHash,
		m.RefreshTokenHash,
		m.RefreshTokenExpiryTime,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("username %s already taken: %w", account.Username, apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save account: %w", err)
	}
	return nil
}

func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	query := `
		SELECT ` + selectAccountFields + `
		FROM accounts
		WHERE account_id = $1 AND deleted_at IS NULL;
	`
	m, err := scanAccount(r.db.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by ID %s: %w", accountID, err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

func (r *PgxAccountRepository) FindAccountByUsername(ctx context.Context, username string) (*domain.Account, error) {
	query := `
		SELECT ` + selectAccountFields + `
		FROM accounts
		WHERE username = $1 AND deleted_at IS NULL;
	`
	m, err := scanAccount(r.db.QueryRow(ctx, query, username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account by username: %w", err)
	}
	account := mapping.ToDomainAccount(*m)
	return &account, nil
}

func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $1, password_hash = $2, last_updated_at = $3, last_updated_by = $4
		WHERE account_id = $5 AND deleted_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Name,
		m.PasswordHash,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxAccountRepository) UpdateRefreshToken(ctx context.Context, accountID string, refreshTokenHash *string, expiryTime *time.Time) error {
	hash := ""
	if refreshTokenHash != nil {
		hash = *refreshTokenHash
	}
	query := `
		UPDATE accounts
		SET refresh_token_hash = $1, refresh_token_expiry_time = $2, last_updated_at = $3
		WHERE account_id = $4 AND deleted_at IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, hash, expiryTime, time.Now(), accountID)
	if err != nil {
		return fmt.Errorf("failed to update refresh token: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("account not found or already deleted: %w", apperrors.ErrNotFound)
	}
	return nil
}
