package utils

import (
	"github.com/shopspring/decimal"
)

// MoneyPrecision is the number of decimal places money amounts carry.
const MoneyPrecision = 2

// FormatMoney formats an amount with the standard money precision.
// Example: amount 12.3456 returns "12.35"
func FormatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(MoneyPrecision)
}
