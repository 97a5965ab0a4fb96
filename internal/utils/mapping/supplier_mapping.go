package mapping

import (
	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/kasa-app/kasa_backend/internal/models"
)

// ToModelSupplier converts a domain Supplier to a model Supplier
func ToModelSupplier(d domain.Supplier) models.Supplier {
	return models.Supplier{
		SupplierID:     d.SupplierID,
		AccountID:      d.AccountID,
		Number:         d.Number,
		Name:           d.Name,
		Category:       d.Category,
		VatPercent:     d.VatPercent,
		OpeningBalance: d.OpeningBalance,
		AuditFields:    ToModelAuditFields(d.AuditFields),
		DeletedAt:      d.DeletedAt,
	}
}

// ToDomainSupplier converts a model Supplier to a domain Supplier
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	return domain.Supplier{
		SupplierID:     m.SupplierID,
		AccountID:      m.AccountID,
		Number:         m.Number,
		Name:           m.Name,
		Category:       m.Category,
		VatPercent:     m.VatPercent,
		OpeningBalance: m.OpeningBalance,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
		DeletedAt:      m.DeletedAt,
	}
}

// ToDomainSupplierSlice converts a slice of model Suppliers to a slice of domain Suppliers
func ToDomainSupplierSlice(ms []models.Supplier) []domain.Supplier {
	ds := make([]domain.Supplier, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplier(m)
	}
	return ds
}

// ToModelSupplierTransaction converts a domain SupplierTransaction to a model SupplierTransaction
func ToModelSupplierTransaction(d domain.SupplierTransaction) models.SupplierTransaction {
	return models.SupplierTransaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		SupplierID:    d.SupplierID,
		Date:          d.Date,
		Type:          string(d.Type),
		Amount:        d.Amount,
		VatRate:       d.VatRate,
		Description:   d.Description,
		InvoiceNumber: d.InvoiceNumber,
		CreatedAt:     d.CreatedAt,
	}
}

// ToDomainSupplierTransaction converts a model SupplierTransaction to a domain SupplierTransaction
func ToDomainSupplierTransaction(m models.SupplierTransaction) domain.SupplierTransaction {
	return domain.SupplierTransaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		SupplierID:    m.SupplierID,
		Date:          m.Date,
		Type:          domain.SupplierTransactionType(m.Type),
		Amount:        m.Amount,
		VatRate:       m.VatRate,
		Description:   m.Description,
		InvoiceNumber: m.InvoiceNumber,
		CreatedAt:     m.CreatedAt,
	}
}

// ToDomainSupplierTransactionSlice converts a slice of model SupplierTransactions to a slice of domain SupplierTransactions
func ToDomainSupplierTransactionSlice(ms []models.SupplierTransaction) []domain.SupplierTransaction {
	ds := make([]domain.SupplierTransaction, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainSupplierTransaction(m)
	}
	return ds
}
