package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	"github.com/kasa-app/kasa_backend/internal/models"
	"github.com/kasa-app/kasa_backend/internal/utils/mapping"
)

type PgxRevenueRepository struct {
	db *pgxpool.Pool
}

func newPgxRevenueRepository(db *pgxpool.Pool) portsrepo.RevenueRepositoryFacade {
	return &PgxRevenueRepository{db: db}
}

// Ensure PgxRevenueRepository implements portsrepo.RevenueRepositoryFacade
var _ portsrepo.RevenueRepositoryFacade = (*PgxRevenueRepository)(nil)

const selectRevenueFields = `
	revenue_id, account_id, date, amount, channel,
	fee_percent_applied, fee_amount, net_amount, note,
	created_at, created_by, last_updated_at, last_updated_by
`

func scanRevenue(row pgx.Row) (*models.Revenue, error) {
	var m models.Revenue
	err := row.Scan(
		&m.RevenueID,
		&m.AccountID,
		&m.Date,
		&m.Amount,
		&m.Channel,
		&m.FeePercentApplied,
		&m.FeeAmount,
		&m.NetAmount,
		&m.Note,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *PgxRevenueRepository) collectRevenues(rows pgx.Rows) ([]domain.Revenue, error) {
	defer rows.Close()
	ms := []models.Revenue{}
	for rows.Next() {
		m, err := scanRevenue(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan revenue row: %w", err)
		}
		ms = append(ms, *m)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating revenue rows: %w", rows.Err())
	}
	return mapping.ToDomainRevenueSlice(ms), nil
}

func (r *PgxRevenueRepository) SaveRevenue(ctx context.Context, revenue domain.Revenue) error {
	m := mapping.ToModelRevenue(revenue)
	query := `
		INSERT INTO revenues (revenue_id, account_id, date, amount, channel, fee_percent_applied, fee_amount, net_amount, note, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.db.Exec(ctx, query,
		m.RevenueID,
		m.AccountID,
		m.Date,
		m.Amount,
		m.Channel,
		m.FeePercentApplied,
		m.FeeAmount,
		m.NetAmount,
		m.Note,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save revenue: %w", err)
	}
	return nil
}

func (r *PgxRevenueRepository) FindRevenueByID(ctx context.Context, accountID, revenueID string) (*domain.Revenue, error) {
	query := `
		SELECT ` + selectRevenueFields + `
		FROM revenues
		WHERE revenue_id = $1 AND account_id = $2;
	`
	m, err := scanRevenue(r.db.QueryRow(ctx, query, revenueID, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find revenue by ID %s: %w", revenueID, err)
	}
	revenue := mapping.ToDomainRevenue(*m)
	return &revenue, nil
}

func (r *PgxRevenueRepository) FindRevenuesByDateRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Revenue, error) {
	query := `
		SELECT ` + selectRevenueFields + `
		FROM revenues
		WHERE account_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenues: %w", err)
	}
	return r.collectRevenues(rows)
}

func (r *PgxRevenueRepository) FindRevenuesBefore(ctx context.Context, accountID string, before time.Time) ([]domain.Revenue, error) {
	query := `
		SELECT ` + selectRevenueFields + `
		FROM revenues
		WHERE account_id = $1 AND date < $2
		ORDER BY date ASC, created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, accountID, before)
	if err != nil {
		return nil, fmt.Errorf("failed to query revenues before %s: %w", before.Format("2006-01-02"), err)
	}
	return r.collectRevenues(rows)
}

func (r *PgxRevenueRepository) UpdateRevenue(ctx context.Context, revenue domain.Revenue) error {
	m := mapping.ToModelRevenue(revenue)
	query := `
		UPDATE revenues
		SET date = $1, amount = $2, channel = $3, fee_percent_applied = $4, fee_amount = $5, net_amount = $6, note = $7, last_updated_at = $8, last_updated_by = $9
		WHERE revenue_id = $10 AND account_id = $11;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		m.Date,
		m.Amount,
		m.Channel,
		m.FeePercentApplied,
		m.FeeAmount,
		m.NetAmount,
		m.Note,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
		m.RevenueID,
		m.AccountID,
	)
	if err != nil {
		return fmt.Errorf("failed to update revenue: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("revenue not found: %w", apperrors.ErrNotFound)
	}
	return nil
}

func (r *PgxRevenueRepository) DeleteRevenue(ctx context.Context, accountID, revenueID string) error {
	query := `DELETE FROM revenues WHERE revenue_id = $1 AND account_id = $2;`
	cmdTag, err := r.db.Exec(ctx, query, revenueID, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete revenue: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("revenue not found: %w", apperrors.ErrNotFound)
	}
	return nil
}
