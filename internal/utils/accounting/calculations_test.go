package accounting_test

import (
	"testing"

	"github.com/kasa-app/kasa_backend/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestVatBreakdown(t *testing.T) {
	tests := []struct {
		name       string
		gross      string
		vatPercent string
		wantNet    string
		wantVat    string
	}{
		{"splits gross into net plus vat", "1200", "20", "1000", "200"},
		{"ten percent", "110", "10", "100", "10"},
		{"zero rate yields gross net and zero vat", "543.21", "0", "543.21", "0"},
		{"zero gross", "0", "20", "0", "0"},
		{"rounds net half-up", "100", "7", "93.46", "6.54"},
		{"uneven split keeps remainder in vat", "99.99", "20", "83.33", "16.66"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			net, vat := accounting.VatBreakdown(dec(tt.gross), dec(tt.vatPercent))
			assert.True(t, dec(tt.wantNet).Equal(net), "net: want %s, got %s", tt.wantNet, net)
			assert.True(t, dec(tt.wantVat).Equal(vat), "vat: want %s, got %s", tt.wantVat, vat)
		})
	}
}

// The VAT amount is defined as the remainder, never independently rounded,
// so net + vat must reconstruct the gross exactly for every input.
func TestVatBreakdown_Exactness(t *testing.T) {
	grosses := []string{"0", "0.01", "1", "99.99", "1200", "12345.67", "0.03"}
	rates := []string{"0", "7", "10", "18", "20", "25", "12.5"}

	for _, g := range grosses {
		for _, r := range rates {
			net, vat := accounting.VatBreakdown(dec(g), dec(r))
			assert.True(t, net.Add(vat).Equal(dec(g)),
				"gross=%s rate=%s: net %s + vat %s != gross", g, r, net, vat)
		}
	}
}

func TestDeliveryFee(t *testing.T) {
	tests := []struct {
		name       string
		amount     string
		feePercent string
		wantFee    string
		wantNet    string
	}{
		{"computes fee and net", "1000", "20", "200", "800"},
		{"zero fee percent", "1000", "0", "0", "1000"},
		{"rounds fee half-up", "99.99", "15", "15", "84.99"},
		{"sub-cent fee rounds", "0.10", "25", "0.03", "0.07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fee, net := accounting.DeliveryFee(dec(tt.amount), dec(tt.feePercent))
			assert.True(t, dec(tt.wantFee).Equal(fee), "fee: want %s, got %s", tt.wantFee, fee)
			assert.True(t, dec(tt.wantNet).Equal(net), "net: want %s, got %s", tt.wantNet, net)
		})
	}
}

func TestDeliveryFee_Exactness(t *testing.T) {
	amounts := []string{"0", "0.01", "100", "999.99", "1000"}
	rates := []string{"0", "10", "15", "20", "33.33"}

	for _, a := range amounts {
		for _, r := range rates {
			fee, net := accounting.DeliveryFee(dec(a), dec(r))
			assert.True(t, fee.Add(net).Equal(dec(a)),
				"amount=%s rate=%s: fee %s + net %s != amount", a, r, fee, net)
		}
	}
}
