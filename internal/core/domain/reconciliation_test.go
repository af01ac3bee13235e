package domain_test

import (
	"testing"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestItemDifference(t *testing.T) {
	bank := domain.BankStatementLine{Amount: decimal.NewFromInt(250)}

	// Unmatched lines carry their full bank amount.
	assert.True(t, domain.ItemDifference(bank, nil).Equal(decimal.NewFromInt(250)))

	book := &domain.BookTransaction{Amount: decimal.NewFromInt(240)}
	assert.True(t, domain.ItemDifference(bank, book).Equal(decimal.NewFromInt(10)))

	overBook := &domain.BookTransaction{Amount: decimal.NewFromInt(260)}
	assert.True(t, domain.ItemDifference(bank, overBook).Equal(decimal.NewFromInt(-10)))
}

func TestOutstandingDifference(t *testing.T) {
	items := []domain.ReconciliationItem{
		{Status: domain.ItemUnmatched, Difference: decimal.NewFromInt(99)},
		{Status: domain.ItemMatched, Difference: decimal.RequireFromString("12.50")},
		{Status: domain.ItemReconciled, Difference: decimal.NewFromInt(500)},
	}

	// Reconciled items are settled and drop out of the sum.
	assert.True(t, domain.OutstandingDifference(items).Equal(decimal.RequireFromString("111.50")))
	assert.True(t, domain.OutstandingDifference(nil).IsZero())
}

func TestCanComplete(t *testing.T) {
	tolerance := decimal.New(1, -2)

	tests := []struct {
		name  string
		items []domain.ReconciliationItem
		want  bool
	}{
		{
			name: "all reconciled",
			items: []domain.ReconciliationItem{
				{Status: domain.ItemReconciled, Difference: decimal.NewFromInt(10)},
			},
			want: true,
		},
		{
			name: "unmatched item blocks completion",
			items: []domain.ReconciliationItem{
				{Status: domain.ItemReconciled},
				{Status: domain.ItemUnmatched, Difference: decimal.Zero},
			},
			want: false,
		},
		{
			name: "matched item with zero difference completes",
			items: []domain.ReconciliationItem{
				{Status: domain.ItemMatched, Difference: decimal.Zero},
			},
			want: true,
		},
		{
			name: "matched item with open difference blocks completion",
			items: []domain.ReconciliationItem{
				{Status: domain.ItemMatched, Difference: decimal.RequireFromString("12.50")},
			},
			want: false,
		},
		{
			name:  "empty run can complete",
			items: nil,
			want:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.CanComplete(tt.items, tolerance))
		})
	}
}
