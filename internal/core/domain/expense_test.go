package domain_test

import (
	"testing"

	"github.com/kasa-app/kasa_backend/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestExpense_CashImpact(t *testing.T) {
	tests := []struct {
		name    string
		expense domain.Expense
		want    bool
	}{
		{
			name:    "supplier invoice on credit does not touch cash",
			expense: domain.Expense{Type: domain.ExpenseSupplier, PaidNow: false},
			want:    false,
		},
		{
			name:    "supplier invoice paid immediately is a cash event",
			expense: domain.Expense{Type: domain.ExpenseSupplier, PaidNow: true},
			want:    true,
		},
		{
			name:    "supplier payment is always a cash event",
			expense: domain.Expense{Type: domain.ExpenseSupplierPayment, PaidNow: true},
			want:    true,
		},
		{
			name:    "salary is always a cash event",
			expense: domain.Expense{Type: domain.ExpenseSalary, PaidNow: true},
			want:    true,
		},
		{
			name:    "other is always a cash event",
			expense: domain.Expense{Type: domain.ExpenseOther, PaidNow: true},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expense.CashImpact())
		})
	}
}

func TestExpense_CashOutflow(t *testing.T) {
	tests := []struct {
		name    string
		expense domain.Expense
		want    decimal.Decimal
	}{
		{
			name: "credit supplier invoice has zero outflow",
			expense: domain.Expense{
				Type:        domain.ExpenseSupplier,
				PaidNow:     false,
				GrossAmount: decimal.NewFromInt(500),
			},
			want: decimal.Zero,
		},
		{
			name: "paid supplier invoice flows out at gross",
			expense: domain.Expense{
				Type:        domain.ExpenseSupplier,
				PaidNow:     true,
				GrossAmount: decimal.NewFromInt(500),
			},
			want: decimal.NewFromInt(500),
		},
		{
			name: "salary adds employer contributions",
			expense: domain.Expense{
				Type:                domain.ExpenseSalary,
				PaidNow:             true,
				GrossAmount:         decimal.NewFromInt(1000),
				ContributionsAmount: decimal.NewFromInt(300),
			},
			want: decimal.NewFromInt(1300),
		},
		{
			name: "contributions are ignored outside salary",
			expense: domain.Expense{
				Type:                domain.ExpenseOther,
				PaidNow:             true,
				GrossAmount:         decimal.NewFromInt(200),
				ContributionsAmount: decimal.NewFromInt(999),
			},
			want: decimal.NewFromInt(200),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, tt.want.Equal(tt.expense.CashOutflow()),
				"want %s, got %s", tt.want, tt.expense.CashOutflow())
		})
	}
}
