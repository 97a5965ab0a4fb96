package dto

import (
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record a cost entry.
// Net and VAT amounts are derived server-side; paidNow is only honored
// for SUPPLIER entries and forced true otherwise.
type CreateExpenseRequest struct {
	Date                string             `json:"date" binding:"required,datetime=2006-01-02"`
	GrossAmount         decimal.Decimal    `json:"grossAmount" binding:"required,gt=0"`
	ContributionsAmount decimal.Decimal    `json:"contributionsAmount"`
	VatPercent          *decimal.Decimal   `json:"vatPercent"`
	Type                domain.ExpenseType `json:"type" binding:"required,oneof=SUPPLIER SUPPLIER_PAYMENT SALARY OTHER"`
	SupplierID          *string            `json:"supplierID"`
	PaidNow             *bool              `json:"paidNow"`
	Note                string             `json:"note"`
	ReceiptURL          string             `json:"receiptURL"`
}

// UpdateExpenseRequest defines the data allowed for editing a cost entry.
type UpdateExpenseRequest struct {
	Date                *string          `json:"date" binding:"omitempty,datetime=2006-01-02"`
	GrossAmount         *decimal.Decimal `json:"grossAmount"`
	ContributionsAmount *decimal.Decimal `json:"contributionsAmount"`
	VatPercent          *decimal.Decimal `json:"vatPercent"`
	SupplierID          *string          `json:"supplierID"`
	PaidNow             *bool            `json:"paidNow"`
	Note                *string          `json:"note"`
	ReceiptURL          *string          `json:"receiptURL"`
}

// SetExpensePaidRequest flips the credit/cash flag of a SUPPLIER expense.
type SetExpensePaidRequest struct {
	PaidNow bool `json:"paidNow"`
}

// ExpenseResponse defines the data returned for a cost entry.
type ExpenseResponse struct {
	ExpenseID           string             `json:"expenseID"`
	Date                string             `json:"date"`
	GrossAmount         decimal.Decimal    `json:"grossAmount"`
	ContributionsAmount decimal.Decimal    `json:"contributionsAmount"`
	NetAmount           decimal.Decimal    `json:"netAmount"`
	VatPercent          decimal.Decimal    `json:"vatPercent"`
	VatAmount           decimal.Decimal    `json:"vatAmount"`
	Type                domain.ExpenseType `json:"type"`
	SupplierID          *string            `json:"supplierID,omitempty"`
	PaidNow             bool               `json:"paidNow"`
	Note                string             `json:"note"`
	ReceiptURL          string             `json:"receiptURL,omitempty"`
	CreatedAt           time.Time          `json:"createdAt"`
}

// ToExpenseResponse converts a domain.Expense to ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ExpenseID:           e.ExpenseID,
		Date:                e.Date.Format("2006-01-02"),
		GrossAmount:         e.GrossAmount,
		ContributionsAmount: e.ContributionsAmount,
		NetAmount:           e.NetAmount,
		VatPercent:          e.VatPercent,
		VatAmount:           e.VatAmount,
		Type:                e.Type,
		SupplierID:          e.SupplierID,
		PaidNow:             e.PaidNow,
		Note:                e.Note,
		ReceiptURL:          e.ReceiptURL,
		CreatedAt:           e.CreatedAt,
	}
}

// ToExpenseListResponse converts a slice of domain.Expense to DTOs
func ToExpenseListResponse(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
