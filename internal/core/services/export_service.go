package services

import (
	"context"
	"fmt"
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	portsrepo "github.com/kasa-app/kasa_backend/internal/core/ports/repositories"
	portssvc "github.com/kasa-app/kasa_backend/internal/core/ports/services"
	"github.com/kasa-app/kasa_backend/internal/utils"
	"github.com/xuri/excelize/v2"
)

const exportDateFormat = "2006-01-02"

// exportService implements the ExportSvcFacade. It renders an account's
// books for a date range into an xlsx workbook with one sheet per entry
// kind.
type exportService struct {
	BaseService
	revenueRepo     portsrepo.RevenueRepositoryFacade
	expenseRepo     portsrepo.ExpenseRepositoryFacade
	supplierRepo    portsrepo.SupplierRepositoryFacade
	transactionRepo portsrepo.SupplierTransactionRepositoryFacade
}

// NewExportService creates a new instance of exportService.
func NewExportService(revenueRepo portsrepo.RevenueRepositoryFacade, expenseRepo portsrepo.ExpenseRepositoryFacade, supplierRepo portsrepo.SupplierRepositoryFacade, transactionRepo portsrepo.SupplierTransactionRepositoryFacade) portssvc.ExportSvcFacade {
	return &exportService{
		revenueRepo:     revenueRepo,
		expenseRepo:     expenseRepo,
		supplierRepo:    supplierRepo,
		transactionRepo: transactionRepo,
	}
}

// ExportTransactions builds the workbook and returns its bytes along with
// a suggested filename.
func (s *exportService) ExportTransactions(ctx context.Context, accountID string, from, to time.Time) ([]byte, string, error) {
	revenues, err := s.revenueRepo.FindRevenuesByDateRange(ctx, accountID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load revenues for export: %w", err)
	}
	expenses, err := s.expenseRepo.FindExpensesByDateRange(ctx, accountID, from, to)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load expenses for export: %w", err)
	}
	suppliers, err := s.supplierRepo.FindSuppliersByAccount(ctx, accountID)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load suppliers for export: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := s.writeRevenueSheet(f, revenues); err != nil {
		return nil, "", err
	}
	if err := s.writeExpenseSheet(f, expenses); err != nil {
		return nil, "", err
	}
	if err := s.writeSupplierSheet(ctx, f, accountID, suppliers, from, to); err != nil {
		return nil, "", err
	}

	// The default sheet excelize creates is replaced by the first real one.
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", fmt.Errorf("failed to drop default sheet: %w", err)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to serialize workbook: %w", err)
	}

	filename := fmt.Sprintf("kasa-export-%s-%s.xlsx", from.Format(exportDateFormat), to.Format(exportDateFormat))
	s.LogInfo(ctx, "Export generated", "filename", filename, "revenues", len(revenues), "expenses", len(expenses))
	return buf.Bytes(), filename, nil
}

func (s *exportService) writeRevenueSheet(f *excelize.File, revenues []domain.Revenue) error {
	const sheet = "Revenues"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []string{"Date", "Channel", "Gross", "Fee %", "Fee", "Net", "Note"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, r := range revenues {
		row := []interface{}{
			r.Date.Format(exportDateFormat),
			string(r.Channel),
			utils.FormatMoney(r.Amount),
			r.FeePercentApplied.String(),
			utils.FormatMoney(r.FeeAmount),
			utils.FormatMoney(r.NetAmount),
			r.Note,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write revenue row: %w", err)
		}
	}
	return nil
}

func (s *exportService) writeExpenseSheet(f *excelize.File, expenses []domain.Expense) error {
	const sheet = "Expenses"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []string{"Date", "Type", "Gross", "Contributions", "Net", "VAT %", "VAT", "Paid", "Note"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for i, e := range expenses {
		paid := "yes"
		if !e.PaidNow {
			paid = "no"
		}
		row := []interface{}{
			e.Date.Format(exportDateFormat),
			string(e.Type),
			utils.FormatMoney(e.GrossAmount),
			utils.FormatMoney(e.ContributionsAmount),
			utils.FormatMoney(e.NetAmount),
			e.VatPercent.String(),
			utils.FormatMoney(e.VatAmount),
			paid,
			e.Note,
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("failed to write expense row: %w", err)
		}
	}
	return nil
}

func (s *exportService) writeSupplierSheet(ctx context.Context, f *excelize.File, accountID string, suppliers []domain.Supplier, from, to time.Time) error {
	const sheet = "Supplier transactions"
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	headers := []string{"Date", "Supplier", "Type", "Amount", "Invoice no", "Description"}
	if err := f.SetSheetRow(sheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	rowIdx := 2
	for _, supplier := range suppliers {
		transactions, err := s.transactionRepo.FindTransactionsBySupplier(ctx, accountID, supplier.SupplierID)
		if err != nil {
			return fmt.Errorf("failed to load transactions for supplier %s: %w", supplier.SupplierID, err)
		}
		for _, t := range transactions {
			if t.Date.Before(from) || t.Date.After(to) {
				continue
			}
			row := []interface{}{
				t.Date.Format(exportDateFormat),
				supplier.Name,
				string(t.Type),
				utils.FormatMoney(t.Amount),
				t.InvoiceNumber,
				t.Description,
			}
			cell := fmt.Sprintf("A%d", rowIdx)
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return fmt.Errorf("failed to write supplier transaction row: %w", err)
			}
			rowIdx++
		}
	}
	return nil
}
