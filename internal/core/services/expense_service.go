package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/kasa-app/kasa_backend/internal/apperrors"
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/dto"
	"github.com/kasa-app/kasa_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// expenseService implements the ExpenseSvcFacade. Net and VAT amounts are
// derived from the gross amount here; they are never client input.
type expenseService struct {
	BaseService
	expenseRepo  portsrepo.ExpenseRepositoryFacade
	supplierRepo portsrepo.SupplierRepositoryFacade
	settingsSvc  portssvc.SettingsSvcFacade
	legacyVat    decimal.Decimal
}

// NewExpenseService creates a new instance of expenseService.
func NewExpenseService(expenseRepo portsrepo.ExpenseRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade, settingsSvc portssvc.SettingsSvcFacade, legacyVat decimal.Decimal) portssvc.ExpenseSvcFacade {
	return &expenseService{
		expenseRepo:  expenseRepo,
		supplierRepo: supplierRepo,
		settingsSvc:  settingsSvc,
		legacyVat:    legacyVat,
	}
}

func (s *expenseService) CreateExpense(ctx context.Context, accountID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if req.GrossAmount.IsNegative() || req.ContributionsAmount.IsNegative() {
		return nil, fmt.Errorf("amounts must not be negative: %w", apperrors.ErrValidation)
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", apperrors.ErrValidation)
	}

	if req.Type == domain.ExpenseSupplier && req.SupplierID == nil {
		return nil, fmt.Errorf("supplier expenses require a supplierID: %w", apperrors.ErrValidation)
	}
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindSupplierByID(ctx, accountID, *req.SupplierID); err != nil {
			return nil, fmt.Errorf("supplier lookup failed: %w", err)
		}
	}

	vatPercent, err := s.resolveVatPercent(ctx, accountID, req.Type, req.SupplierID, req.VatPercent)
	if err != nil {
		return nil, err
	}
	netAmount, vatAmount := accounting.VatBreakdown(req.GrossAmount, vatPercent)

	// Only SUPPLIER invoices can sit on credit. Every other type is a cash
	// event and gets paidNow forced true.
	paidNow := true
	if req.Type == domain.ExpenseSupplier && req.PaidNow != nil {
		paidNow = *req.PaidNow
	}

	contributions := decimal.Zero
	if req.Type == domain.ExpenseSalary {
		contributions = req.ContributionsAmount
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:           uuid.NewString(),
		AccountID:           accountID,
		Date:                date,
		GrossAmount:         req.GrossAmount,
		ContributionsAmount: contributions,
		NetAmount:           netAmount,
		VatPercent:          vatPercent,
		VatAmount:           vatAmount,
		Type:                req.Type,
		SupplierID:          req.SupplierID,
		PaidNow:             paidNow,
		Note:                req.Note,
		ReceiptURL:          req.ReceiptURL,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	s.LogInfo(ctx, "Expense recorded", "expense_id", expense.ExpenseID, "type", string(expense.Type))
	return &expense, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, accountID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, accountID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Date != nil {
		date, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid date: %w", apperrors.ErrValidation)
		}
		expense.Date = date
	}
	if req.GrossAmount != nil {
		if req.GrossAmount.IsNegative() {
			return nil, fmt.Errorf("amounts must not be negative: %w", apperrors.ErrValidation)
		}
		expense.GrossAmount = *req.GrossAmount
	}
	if req.ContributionsAmount != nil && expense.Type == domain.ExpenseSalary {
		if req.ContributionsAmount.IsNegative() {
			return nil, fmt.Errorf("amounts must not be negative: %w", apperrors.ErrValidation)
		}
		expense.ContributionsAmount = *req.ContributionsAmount
	}
	if req.SupplierID != nil {
		if _, err := s.supplierRepo.FindSupplierByID(ctx, accountID, *req.SupplierID); err != nil {
			return nil, fmt.Errorf("supplier lookup failed: %w", err)
		}
		expense.SupplierID = req.SupplierID
	}
	if req.PaidNow != nil && expense.Type == domain.ExpenseSupplier {
		expense.PaidNow = *req.PaidNow
	}
	if req.Note != nil {
		expense.Note = *req.Note
	}
	if req.ReceiptURL != nil {
		expense.ReceiptURL = *req.ReceiptURL
	}

	vatPercent, err := s.resolveVatPercent(ctx, accountID, expense.Type, expense.SupplierID, req.VatPercent)
	if err != nil {
		return nil, err
	}
	if req.VatPercent == nil {
		// Keep the rate the entry already carries unless the client sent
		// a new one; recompute the split either way for a changed gross.
		vatPercent = expense.VatPercent
	}
	expense.VatPercent = vatPercent
	expense.NetAmount, expense.VatAmount = accounting.VatBreakdown(expense.GrossAmount, vatPercent)

	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = accountID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense, nil
}

// SetExpensePaid flips the credit/cash flag of a SUPPLIER expense. The
// flag moves the entry in and out of the daily cash ledger without
// touching its tax amounts.
func (s *expenseService) SetExpensePaid(ctx context.Context, accountID, expenseID string, paidNow bool) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, accountID, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.Type != domain.ExpenseSupplier {
		return nil, fmt.Errorf("only supplier expenses can change paid state: %w", apperrors.ErrValidation)
	}

	expense.PaidNow = paidNow
	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = accountID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		return nil, fmt.Errorf("failed to set expense paid state: %w", err)
	}

	s.LogInfo(ctx, "Expense paid state changed", "expense_id", expenseID, "paid_now", paidNow)
	return expense, nil
}

func (s *expenseService) ListExpenses(ctx context.Context, accountID string, from, to time.Time) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.FindExpensesByDateRange(ctx, accountID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, accountID, expenseID string) error {
	if err := s.expenseRepo.DeleteExpense(ctx, accountID, expenseID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Expense deleted", "expense_id", expenseID)
	return nil
}

// resolveVatPercent applies the rate priority: explicit request value,
// supplier default, account default, legacy fallback. SUPPLIER_PAYMENT
// entries are debt settlements, not tax events, and always get zero.
func (s *expenseService) resolveVatPercent(ctx context.Context, accountID string, expenseType domain.ExpenseType, supplierID *string, requested *decimal.Decimal) (decimal.Decimal, error) {
	if expenseType == domain.ExpenseSupplierPayment {
		return decimal.Zero, nil
	}
	if requested != nil {
		if requested.IsNegative() {
			return decimal.Zero, fmt.Errorf("vat percent must not be negative: %w", apperrors.ErrValidation)
		}
		return *requested, nil
	}
	if supplierID != nil {
		supplier, err := s.supplierRepo.FindSupplierByID(ctx, accountID, *supplierID)
		if err != nil {
			return decimal.Zero, fmt.Errorf("supplier lookup failed: %w", err)
		}
		if supplier.VatPercent != nil {
			return *supplier.VatPercent, nil
		}
	}
	settings, err := s.settingsSvc.GetSettings(ctx, accountID)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to resolve vat percent: %w", err)
	}
	if !settings.DefaultVatPercent.IsZero() {
		return settings.DefaultVatPercent, nil
	}
	return s.legacyVat, nil
}
