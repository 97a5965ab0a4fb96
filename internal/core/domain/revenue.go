package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RevenueChannel indicates where a day's takings came from.
type RevenueChannel string

const (
	ChannelLocal    RevenueChannel = "LOCAL"
	ChannelDelivery RevenueChannel = "DELIVERY"
)

// Revenue represents one recorded takings entry.
// Invariants: NetAmount == Amount - FeeAmount and
// FeeAmount == Amount * FeePercentApplied / 100 (rounded to 2 dp).
// For the LOCAL channel FeePercentApplied is zero. The fee fields are
// computed together when the entry is created or edited, never
// independently.
type Revenue struct {
	RevenueID         string          `json:"revenueID"` // Primary Key (UUID)
	AccountID         string          `json:"accountID"`
	Date              time.Time       `json:"date"`
	Amount            decimal.Decimal `json:"amount"` // Gross amount
	Channel           RevenueChannel  `json:"channel"`
	FeePercentApplied decimal.Decimal `json:"feePercentApplied"`
	FeeAmount         decimal.Decimal `json:"feeAmount"`
	NetAmount         decimal.Decimal `json:"netAmount"`
	Note              string          `json:"note"`
	AuditFields
}
