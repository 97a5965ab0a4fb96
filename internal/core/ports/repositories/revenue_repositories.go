package repositories

import (
	"context"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
)

// RevenueReader defines read operations for revenue data
type RevenueReader interface {
	// FindRevenueByID retrieves a specific revenue entry scoped to an account.
	FindRevenueByID(ctx context.Context, accountID, revenueID string) (*domain.Revenue, error)

	// FindRevenuesByDateRange retrieves revenues with a date in [from, to],
	// ordered by date ascending.
	FindRevenuesByDateRange(ctx context.Context, accountID string, from, to time.Time) ([]domain.Revenue, error)

	// FindRevenuesBefore retrieves revenues dated strictly before the given
	// day. Used for opening-balance reconstruction.
	FindRevenuesBefore(ctx context.Context, accountID string, before time.Time) ([]domain.Revenue, error)
}

// RevenueWriter defines write operations for revenue data
type RevenueWriter interface {
	// SaveRevenue persists a new revenue entry.
	SaveRevenue(ctx context.Context, revenue domain.Revenue) error

	// UpdateRevenue updates an existing revenue entry.
	UpdateRevenue(ctx context.Context, revenue domain.Revenue) error

	// DeleteRevenue removes a revenue entry scoped to an account.
	DeleteRevenue(ctx context.Context, accountID, revenueID string) error
}

// RevenueRepositoryFacade combines all revenue-related repository interfaces
type RevenueRepositoryFacade interface {
	RevenueReader
	RevenueWriter
}
