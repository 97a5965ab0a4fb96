// Package accounting holds the pure bookkeeping arithmetic shared by the
// services: VAT/fee decomposition and the two ledger builders. Everything
// here is a total function over its inputs, performs no I/O, and is safe
// for concurrent use.
package accounting

import "github.com/shopspring/decimal"

// moneyPrecision is the number of fractional digits kept for currency
// amounts. Rounding is half-up, applied once at the division point; the
// second component of every split is computed as the remainder so the
// parts always sum back to the input exactly.
const moneyPrecision = 2

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// VatBreakdown splits a gross amount into its net and VAT components for
// the given VAT percentage (percent, not fraction):
//
//	net = gross / (1 + vatPercent/100)
//	vat = gross - net
//
// Guarantee: netAmount + vatAmount == grossAmount for every input.
func VatBreakdown(grossAmount, vatPercent decimal.Decimal) (netAmount, vatAmount decimal.Decimal) {
	if vatPercent.IsZero() {
		return grossAmount, decimal.Zero
	}
	divisor := vatPercent.Div(hundred).Add(one)
	netAmount = grossAmount.Div(divisor).Round(moneyPrecision)
	vatAmount = grossAmount.Sub(netAmount)
	return netAmount, vatAmount
}

// DeliveryFee splits a gross takings amount into the platform fee and the
// net amount the restaurant keeps:
//
//	fee = amount * feePercent / 100
//	net = amount - fee
//
// Guarantee: feeAmount + netAmount == amount for every input.
func DeliveryFee(amount, feePercent decimal.Decimal) (feeAmount, netAmount decimal.Decimal) {
	feeAmount = amount.Mul(feePercent).Div(hundred).Round(moneyPrecision)
	netAmount = amount.Sub(feeAmount)
	return feeAmount, netAmount
}
