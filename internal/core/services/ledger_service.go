package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/utils/accounting"
)

// ledgerService implements the LedgerSvcFacade. It assembles the
// day-by-day cash ledger from stored revenues and expenses.
type ledgerService struct {
	BaseService
	revenueRepo portsrepo.RevenueRepositoryFacade
	expenseRepo portsrepo.ExpenseRepositoryFacade
	settingsSvc portssvc.SettingsSvcFacade
}

// NewLedgerService creates a new instance of ledgerService.
func NewLedgerService(revenueRepo portsrepo.RevenueRepositoryFacade, expenseRepo portsrepo.ExpenseRepositoryFacade, settingsSvc portssvc.SettingsSvcFacade) portssvc.LedgerSvcFacade {
	return &ledgerService{
		revenueRepo: revenueRepo,
		expenseRepo: expenseRepo,
		settingsSvc: settingsSvc,
	}
}

// GetDailyLedger returns one row per calendar day in [from, to].
//
// The opening balance for the range is reconstructed by replaying every
// entry dated before it on top of the account's absolute starting
// balance. The replay routes through the same cash-impact rule as the
// ledger builder, so a sub-range always starts exactly where the full
// ledger's previous day ended.
func (s *ledgerService) GetDailyLedger(ctx context.Context, accountID string, from, to time.Time) ([]domain.DailyLedgerRow, error) {
	settings, err := s.settingsSvc.GetSettings(ctx, accountID)
	if err != nil {
		return nil, err
	}

	priorRevenues, err := s.revenueRepo.FindRevenuesBefore(ctx, accountID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to load revenues before range: %w", err)
	}
	priorExpenses, err := s.expenseRepo.FindExpensesBefore(ctx, accountID, from)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses before range: %w", err)
	}
	openingBalance := accounting.ReplayCashBalance(settings.StartingBalance, priorRevenues, priorExpenses)

	revenues, err := s.revenueRepo.FindRevenuesByDateRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load revenues: %w", err)
	}
	expenses, err := s.expenseRepo.FindExpensesByDateRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}

	rows := accounting.BuildDailyLedger(openingBalance, revenues, expenses, from, to)
	s.LogDebug(ctx, "Daily ledger built", "days", len(rows))
	return rows, nil
}
