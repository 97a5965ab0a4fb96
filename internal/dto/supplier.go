package dto

import (
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateSupplierRequest defines the data needed to register a supplier.
type CreateSupplierRequest struct {
	Number         string           `json:"number" binding:"required"`
	Name           string           `json:"name" binding:"required"`
	Category       string           `json:"category"`
	VatPercent     *decimal.Decimal `json:"vatPercent"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
}

// UpdateSupplierRequest defines the data allowed for editing a supplier.
type UpdateSupplierRequest struct {
	Number         *string          `json:"number"`
	Name           *string          `json:"name"`
	Category       *string          `json:"category"`
	VatPercent     *decimal.Decimal `json:"vatPercent"`
	OpeningBalance *decimal.Decimal `json:"openingBalance"`
}

// SupplierResponse defines the data returned for a supplier.
type SupplierResponse struct {
	SupplierID     string           `json:"supplierID"`
	Number         string           `json:"number"`
	Name           string           `json:"name"`
	Category       string           `json:"category"`
	VatPercent     *decimal.Decimal `json:"vatPercent,omitempty"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	CreatedAt      time.Time        `json:"createdAt"`
}

// ToSupplierResponse converts a domain.Supplier to SupplierResponse DTO
func ToSupplierResponse(s *domain.Supplier) SupplierResponse {
	return SupplierResponse{
		SupplierID:     s.SupplierID,
		Number:         s.Number,
		Name:           s.Name,
		Category:       s.Category,
		VatPercent:     s.VatPercent,
		OpeningBalance: s.OpeningBalance,
		CreatedAt:      s.CreatedAt,
	}
}

// ToSupplierListResponse converts a slice of domain.Supplier to DTOs
func ToSupplierListResponse(suppliers []domain.Supplier) []SupplierResponse {
	out := make([]SupplierResponse, len(suppliers))
	for i := range suppliers {
		out[i] = ToSupplierResponse(&suppliers[i])
	}
	return out
}

// CreateSupplierTransactionRequest defines the data needed to record a
// supplier ledger entry. The VAT rate is optional: when omitted it is
// resolved from the supplier default, then the account default, then the
// legacy fallback. PAYMENT entries always get rate zero.
type CreateSupplierTransactionRequest struct {
	Date          string                         `json:"date" binding:"required,datetime=2006-01-02"`
	Type          domain.SupplierTransactionType `json:"type" binding:"required,oneof=INVOICE PAYMENT CORRECTION"`
	Amount        decimal.Decimal                `json:"amount" binding:"required"`
	VatRate       *decimal.Decimal               `json:"vatRate"`
	Description   string                         `json:"description" binding:"required"`
	InvoiceNumber string                         `json:"invoiceNumber"`
}

// SupplierLedgerQuery captures the display filter for the ledger endpoint.
type SupplierLedgerQuery struct {
	From  string `form:"from" binding:"omitempty,datetime=2006-01-02"`
	To    string `form:"to" binding:"omitempty,datetime=2006-01-02"`
	Type  string `form:"type" binding:"omitempty,oneof=ALL INVOICE PAYMENT CORRECTION"`
	Query string `form:"q"`
}

// SupplierLedgerResponse is the payload of the supplier ledger endpoint.
type SupplierLedgerResponse struct {
	Supplier           SupplierResponse             `json:"supplier"`
	ResolvedVatPercent decimal.Decimal              `json:"resolvedVatPercent"`
	Currency           string                       `json:"currency"`
	Summary            domain.SupplierLedgerSummary `json:"summary"`
	Rows               []domain.SupplierLedgerRow   `json:"rows"`
}

// ToSupplierLedgerResponse converts a domain.SupplierLedger to its DTO
func ToSupplierLedgerResponse(l *domain.SupplierLedger) SupplierLedgerResponse {
	return SupplierLedgerResponse{
		Supplier:           ToSupplierResponse(&l.Supplier),
		ResolvedVatPercent: l.ResolvedVatPercent,
		Currency:           l.Currency,
		Summary:            l.Summary,
		Rows:               l.Rows,
	}
}
