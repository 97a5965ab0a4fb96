package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Revenue is the storage representation of a takings entry.
type Revenue struct {
	RevenueID         string          `db:"revenue_id"`
	AccountID         string          `db:"account_id"`
	Date              time.Time       `db:"date"`
	Amount            decimal.Decimal `db:"amount"`
	Channel           string          `db:"channel"`
	FeePercentApplied decimal.Decimal `db:"fee_percent_applied"`
	FeeAmount         decimal.Decimal `db:"fee_amount"`
	NetAmount         decimal.Decimal `db:"net_amount"`
	Note              string          `db:"note"`
	AuditFields
}
