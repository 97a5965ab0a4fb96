package pgsql

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	"github.com/kasa-app/kasa_backend/internal/models"
	"github.com/kasa-app/kasa_backend/internal/utils/mapping"
)

type PgxAPITokenRepository struct {
	BaseRepository
}

// newPgxAPITokenRepository creates a new instance of PgxAPITokenRepository
func newPgxAPITokenRepository(db *pgxpool.Pool) portsrepo.APITokenRepository {
	return &PgxAPITokenRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

const (
	apiTokensTable = "api_tokens"

	selectAPITokenFields = `
		api_token_id, account_id, name, token_hash,
		last_used_at, expires_at, created_at, updated_at
	`

	insertAPITokenQuery = `
		INSERT INTO ` + apiTokensTable + ` (
			account_id, name, token_hash, expires_at
		) VALUES ($1, $2, $3, $4)
		RETURNING ` + selectAPITokenFields

	findAPITokenByIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE api_token_id = $1 AND deleted_at IS NULL
	`

	findAPITokensByAccountIDQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE account_id = $1 AND deleted_at IS NULL
		ORDER BY created_at DESC
	`

	findAPITokenByHashQuery = `
		SELECT ` + selectAPITokenFields + `
		FROM ` + apiTokensTable + `
		WHERE token_hash = $1 AND deleted_at IS NULL
	`

	updateAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET
			last_used_at = COALESCE($2, last_used_at),
			updated_at = NOW()
		WHERE api_token_id = $1
	`

	deleteAPITokenQuery = `
		UPDATE ` + apiTokensTable + `
		SET deleted_at = NOW()
		WHERE api_token_id = $1
	`

	deleteAPITokensByAccountIDQuery = `
		UPDATE ` + apiTokensTable + `
		SET deleted_at = NOW()
		WHERE account_id = $1
	`

	deleteExpiredAPITokensQuery = `
		UPDATE ` + apiTokensTable + `
		SET deleted_at = NOW()
		WHERE expires_at < $1 AND deleted_at IS NULL
	`
)

// scanAPIToken scans an API token from a row
func scanAPIToken(row pgx.Row) (*models.APIToken, error) {
	var token models.APIToken
	err := row.Scan(
		&token.ID,
		&token.AccountID,
		&token.Name,
		&token.TokenHash,
		&token.LastUsedAt,
		&token.ExpiresAt,
		&token.CreatedAt,
		&token.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

// Create persists a new API token. The token hash must already be
// computed; the database assigns the ID and timestamps.
func (r *PgxAPITokenRepository) Create(ctx context.Context, token *domain.APIToken) error {
	if token == nil {
		return errors.New("token cannot be nil")
	}

	modelToken := mapping.ToModelAPIToken(*token)

	row := r.Pool.QueryRow(
		ctx,
		insertAPITokenQuery,
		modelToken.AccountID,
		modelToken.Name,
		modelToken.TokenHash,
		modelToken.ExpiresAt,
	)

	created, err := scanAPIToken(row)
	if err != nil {
		return err
	}

	token.ID = created.ID
	token.CreatedAt = created.CreatedAt
	token.UpdatedAt = created.UpdatedAt
	return nil
}

// FindByID retrieves an API token by its ID
func (r *PgxAPITokenRepository) FindByID(ctx context.Context, id string) (*domain.APIToken, error) {
	if id == "" {
		return nil, errors.New("id cannot be empty")
	}

	token, err := scanAPIToken(r.Pool.QueryRow(ctx, findAPITokenByIDQuery, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	domainToken := mapping.ToDomainAPIToken(*token)
	return &domainToken, nil
}

// FindByAccountID retrieves all API tokens for a specific account
func (r *PgxAPITokenRepository) FindByAccountID(ctx context.Context, accountID string) ([]domain.APIToken, error) {
	if accountID == "" {
		return nil, errors.New("account ID cannot be empty")
	}

	rows, err := r.Pool.Query(ctx, findAPITokensByAccountIDQuery, accountID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tokens []domain.APIToken
	for rows.Next() {
		token, err := scanAPIToken(rows)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, mapping.ToDomainAPIToken(*token))
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}
	return tokens, nil
}

// FindByToken finds a token by its hash
func (r *PgxAPITokenRepository) FindByToken(ctx context.Context, tokenString string) (*domain.APIToken, error) {
	if tokenString == "" {
		return nil, errors.New("token string cannot be empty")
	}

	token, err := scanAPIToken(r.Pool.QueryRow(ctx, findAPITokenByHashQuery, tokenString))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	domainToken := mapping.ToDomainAPIToken(*token)
	return &domainToken, nil
}

// Update updates an existing API token (last_used_at only)
func (r *PgxAPITokenRepository) Update(ctx context.Context, token *domain.APIToken) error {
	if token == nil {
		return errors.New("token cannot be nil")
	}

	result, err := r.Pool.Exec(ctx, updateAPITokenQuery, token.ID, token.LastUsedAt)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// Delete removes an API token by ID (soft delete)
func (r *PgxAPITokenRepository) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("id cannot be empty")
	}

	result, err := r.Pool.Exec(ctx, deleteAPITokenQuery, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteByAccountID removes all API tokens for a specific account (soft delete)
func (r *PgxAPITokenRepository) DeleteByAccountID(ctx context.Context, accountID string) error {
	if accountID == "" {
		return errors.New("account ID cannot be empty")
	}

	_, err := r.Pool.Exec(ctx, deleteAPITokensByAccountIDQuery, accountID)
	return err
}

// DeleteExpired removes all expired API tokens (soft delete)
func (r *PgxAPITokenRepository) DeleteExpired(ctx context.Context, before time.Time) (int64, error) {
	if before.IsZero() {
		return 0, errors.New("invalid time provided")
	}

	result, err := r.Pool.Exec(ctx, deleteExpiredAPITokensQuery, before)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}
