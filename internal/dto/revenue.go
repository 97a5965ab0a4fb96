package dto

import (
	"time"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRevenueRequest defines the data needed to record takings.
// Fee and net amounts are computed server-side from the gross amount and
// the account's delivery fee percent; they are never accepted from the
// client.
type CreateRevenueRequest struct {
	Date    string                `json:"date" binding:"required,datetime=2006-01-02"`
	Amount  decimal.Decimal       `json:"amount" binding:"required,gt=0"`
	Channel domain.RevenueChannel `json:"channel" binding:"required,oneof=LOCAL DELIVERY"`
	Note    string                `json:"note"`
}

// UpdateRevenueRequest defines the data allowed for editing a takings entry.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateRevenueRequest struct {
	Date    *string                `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Amount  *decimal.Decimal       `json:"amount"`
	Channel *domain.RevenueChannel `json:"channel" binding:"omitempty,oneof=LOCAL DELIVERY"`
	Note    *string                `json:"note"`
}

// RevenueResponse defines the data returned for a takings entry.
type RevenueResponse struct {
	RevenueID         string                `json:"revenueID"`
	Date              string                `json:"date"`
	Amount            decimal.Decimal       `json:"amount"`
	Channel           domain.RevenueChannel `json:"channel"`
	FeePercentApplied decimal.Decimal       `json:"feePercentApplied"`
	FeeAmount         decimal.Decimal       `json:"feeAmount"`
	NetAmount         decimal.Decimal       `json:"netAmount"`
	Note              string                `json:"note"`
	CreatedAt         time.Time             `json:"createdAt"`
}

// ToRevenueResponse converts a domain.Revenue to RevenueResponse DTO
func ToRevenueResponse(r *domain.Revenue) RevenueResponse {
	return RevenueResponse{
		RevenueID:         r.RevenueID,
		Date:              r.Date.Format("2006-01-02"),
		Amount:            r.Amount,
		Channel:           r.Channel,
		FeePercentApplied: r.FeePercentApplied,
		FeeAmount:         r.FeeAmount,
		NetAmount:         r.NetAmount,
		Note:              r.Note,
		CreatedAt:         r.CreatedAt,
	}
}

// ToRevenueListResponse converts a slice of domain.Revenue to DTOs
func ToRevenueListResponse(revenues []domain.Revenue) []RevenueResponse {
	out := make([]RevenueResponse, len(revenues))
	for i := range revenues {
		out[i] = ToRevenueResponse(&revenues[i])
	}
	return out
}
