package mapping

import (
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/kasa-app/kasa_backend/internal/models"
)

// ToModelExpense converts a domain Expense to a model Expense
func ToModelExpense(d domain.Expense) models.Expense {
	return models.Expense{
		ExpenseID:           d.ExpenseID,
		AccountID:           d.AccountID,
		Date:                d.Date,
		GrossAmount:         d.GrossAmount,
		ContributionsAmount: d.ContributionsAmount,
		NetAmount:           d.NetAmount,
		VatPercent:          d.VatPercent,
		VatAmount:           d.VatAmount,
		Type:                string(d.Type),
		SupplierID:          d.SupplierID,
		PaidNow:             d.PaidNow,
		Note:                d.Note,
		ReceiptURL:          d.ReceiptURL,
		AuditFields:         ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainExpense converts a model Expense to a domain Expense
func ToDomainExpense(m models.Expense) domain.Expense {
	return domain.Expense{
		ExpenseID:           m.ExpenseID,
		AccountID:           m.AccountID,
		Date:                m.Date,
		GrossAmount:         m.GrossAmount,
		ContributionsAmount: m.ContributionsAmount,
		NetAmount:           m.NetAmount,
		VatPercent:          m.VatPercent,
		VatAmount:           m.VatAmount,
		Type:                domain.ExpenseType(m.Type),
		SupplierID:          m.SupplierID,
		PaidNow:             m.PaidNow,
		Note:                m.Note,
		ReceiptURL:          m.ReceiptURL,
		AuditFields:         ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExpenseSlice converts a slice of model Expenses to a slice of domain Expenses
func ToDomainExpenseSlice(ms []models.Expense) []domain.Expense {
	ds := make([]domain.Expense, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExpense(m)
	}
	return ds
}
