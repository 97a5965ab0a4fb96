package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Supplier is the storage representation of a vendor.
type Supplier struct {
	SupplierID     string           `db:"supplier_id"`
	AccountID      string           `db:"account_id"`
	Number         string           `db:"number"`
	Name           string           `db:"name"`
	Category       string           `db:"category"`
	VatPercent     *decimal.Decimal `db:"vat_percent"`
	OpeningBalance decimal.Decimal  `db:"opening_balance"`
	AuditFields
	DeletedAt *time.Time `db:"deleted_at"`
}
