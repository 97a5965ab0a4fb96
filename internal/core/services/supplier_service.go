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

// supplierService implements the SupplierSvcFacade: supplier CRUD plus
// the running-balance ledger built over a supplier's full history.
type supplierService struct {
	BaseService
	supplierRepo    portsrepo.SupplierRepositoryFacade
	transactionRepo portsrepo.SupplierTransactionRepositoryFacade
	settingsSvc     portssvc.SettingsSvcFacade
	legacyVat       decimal.Decimal
}

// NewSupplierService creates a new instance of supplierService.
func NewSupplierService(supplierRepo portsrepo.SupplierRepositoryFacade, transactionRepo portsrepo.SupplierTransactionRepositoryFacade, settingsSvc portssvc.SettingsSvcFacade, legacyVat decimal.Decimal) portssvc.SupplierSvcFacade {
	return &supplierService{
		supplierRepo:    supplierRepo,
		transactionRepo: transactionRepo,
		settingsSvc:     settingsSvc,
		legacyVat:       legacyVat,
	}
}

func (s *supplierService) CreateSupplier(ctx context.Context, accountID string, req dto.CreateSupplierRequest) (*domain.Supplier, error) {
	if req.VatPercent != nil && req.VatPercent.IsNegative() {
		return nil, fmt.Errorf("vat percent must not be negative: %w", apperrors.ErrValidation)
	}

	now := time.Now()
	supplier := domain.Supplier{
		SupplierID:     uuid.NewString(),
		AccountID:      accountID,
		Number:         req.Number,
		Name:           req.Name,
		Category:       req.Category,
		VatPercent:     req.VatPercent,
		OpeningBalance: req.OpeningBalance,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     accountID,
			LastUpdatedAt: now,
			LastUpdatedBy: accountID,
		},
	}

	if err := s.supplierRepo.SaveSupplier(ctx, supplier); err != nil {
		return nil, fmt.Errorf("failed to create supplier: %w", err)
	}

	s.LogInfo(ctx, "Supplier created", "supplier_id", supplier.SupplierID)
	return &supplier, nil
}

func (s *supplierService) UpdateSupplier(ctx context.Context, accountID, supplierID string, req dto.UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, accountID, supplierID)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		supplier.Number = *req.Number
	}
	if req.Name != nil {
		supplier.Name = *req.Name
	}
	if req.Category != nil {
		supplier.Category = *req.Category
	}
	if req.VatPercent != nil {
		if req.VatPercent.IsNegative() {
			return nil, fmt.Errorf("vat percent must not be negative: %w", apperrors.ErrValidation)
		}
		supplier.VatPercent = req.VatPercent
	}
	if req.OpeningBalance != nil {
		supplier.OpeningBalance = *req.OpeningBalance
	}

	supplier.LastUpdatedAt = time.Now()
	supplier.LastUpdatedBy = accountID

	if err := s.supplierRepo.UpdateSupplier(ctx, *supplier); err != nil {
		return nil, fmt.Errorf("failed to update supplier: %w", err)
	}
	return supplier, nil
}

func (s *supplierService) ListSuppliers(ctx context.Context, accountID string) ([]domain.Supplier, error) {
	suppliers, err := s.supplierRepo.FindSuppliersByAccount(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return suppliers, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, accountID, supplierID string) (*domain.Supplier, error) {
	return s.supplierRepo.FindSupplierByID(ctx, accountID, supplierID)
}

func (s *supplierService) DeleteSupplier(ctx context.Context, accountID, supplierID string) error {
	if err := s.supplierRepo.MarkSupplierDeleted(ctx, accountID, supplierID, time.Now(), accountID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Supplier deleted", "supplier_id", supplierID)
	return nil
}

// AddTransaction records a new ledger entry. The stored VAT rate is the
// request value when present; otherwise it stays nil and the ledger
// builder resolves it at read time, so later changes to the supplier or
// account defaults flow through history the same way they always did.
func (s *supplierService) AddTransaction(ctx context.Context, accountID, supplierID string, req dto.CreateSupplierTransactionRequest) (*domain.SupplierTransaction, error) {
	if req.Amount.IsNegative() {
		return nil, fmt.Errorf("amount must not be negative: %w", apperrors.ErrValidation)
	}
	if req.VatRate != nil && req.VatRate.IsNegative() {
		return nil, fmt.Errorf("vat rate must not be negative: %w", apperrors.ErrValidation)
	}

	if _, err := s.supplierRepo.FindSupplierByID(ctx, accountID, supplierID); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", apperrors.ErrValidation)
	}

	vatRate := req.VatRate
	if req.Type == domain.SupplierPayment {
		// Payments settle debt; they never carry a tax rate.
		vatRate = nil
	}

	transaction := domain.SupplierTransaction{
		TransactionID: uuid.NewString(),
		AccountID:     accountID,
		SupplierID:    supplierID,
		Date:          date,
		Type:          req.Type,
		Amount:        req.Amount,
		VatRate:       vatRate,
		Description:   req.Description,
		InvoiceNumber: req.InvoiceNumber,
		CreatedAt:     time.Now(),
	}

	if err := s.transactionRepo.SaveTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to save supplier transaction: %w", err)
	}

	s.LogInfo(ctx, "Supplier transaction recorded", "transaction_id", transaction.TransactionID, "type", string(transaction.Type))
	return &transaction, nil
}

func (s *supplierService) DeleteTransaction(ctx context.Context, accountID, transactionID string) error {
	if err := s.transactionRepo.DeleteTransaction(ctx, accountID, transactionID); err != nil {
		return err
	}
	s.LogInfo(ctx, "Supplier transaction deleted", "transaction_id", transactionID)
	return nil
}

func (s *supplierService) ListTransactions(ctx context.Context, accountID, supplierID string, limit int, nextToken *string) ([]domain.SupplierTransaction, *string, error) {
	if _, err := s.supplierRepo.FindSupplierByID(ctx, accountID, supplierID); err != nil {
		return nil, nil, err
	}
	return s.transactionRepo.FindTransactionsBySupplierPaginated(ctx, accountID, supplierID, limit, nextToken)
}

// GetSupplierLedger builds the running-balance ledger over the supplier's
// complete history and only then applies the display filter. Balances and
// the summary always reflect the full history; filtering is cosmetic.
func (s *supplierService) GetSupplierLedger(ctx context.Context, accountID, supplierID string, filter accounting.SupplierLedgerFilter) (*domain.SupplierLedger, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, accountID, supplierID)
	if err != nil {
		return nil, err
	}

	transactions, err := s.transactionRepo.FindTransactionsBySupplier(ctx, accountID, supplierID)
	if err != nil {
		return nil, fmt.Errorf("failed to load supplier transactions: %w", err)
	}

	settings, err := s.settingsSvc.GetSettings(ctx, accountID)
	if err != nil {
		return nil, err
	}

	resolvedVat := s.resolveSupplierVat(supplier, settings)
	rows, summary := accounting.BuildSupplierLedger(transactions, resolvedVat, supplier.OpeningBalance, supplier.CreatedAt)
	rows = accounting.FilterSupplierLedgerRows(rows, filter)

	return &domain.SupplierLedger{
		Supplier:           *supplier,
		Rows:               rows,
		Summary:            summary,
		ResolvedVatPercent: resolvedVat,
		Currency:           settings.Currency,
	}, nil
}

// resolveSupplierVat applies the rate priority for entries that carry no
// rate of their own: supplier default, account default, legacy fallback.
func (s *supplierService) resolveSupplierVat(supplier *domain.Supplier, settings *domain.Settings) decimal.Decimal {
	if supplier.VatPercent != nil {
		return *supplier.VatPercent
	}
	if !settings.DefaultVatPercent.IsZero() {
		return settings.DefaultVatPercent
	}
	return s.legacyVat
}
