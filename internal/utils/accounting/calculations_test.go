package accounting_test

import (
	"testing"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/Triostacksoftware/robobooks-ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(debit, credit string) domain.LineItem {
	return domain.LineItem{
		Debit:  decimal.RequireFromString(debit),
		Credit: decimal.RequireFromString(credit),
	}
}

func TestValidateLineItems(t *testing.T) {
	tolerance := decimal.New(1, -2)

	tests := []struct {
		name          string
		lines         []domain.LineItem
		wantValid     bool
		violatedRules []accounting.Rule
	}{
		{
			name:      "balanced two-line entry",
			lines:     []domain.LineItem{line("100", "0"), line("0", "100")},
			wantValid: true,
		},
		{
			name:      "imbalance under tolerance passes",
			lines:     []domain.LineItem{line("100.005", "0"), line("0", "100")},
			wantValid: true,
		},
		{
			name:          "single line fails min count and both sides",
			lines:         []domain.LineItem{line("100", "0")},
			wantValid:     false,
			violatedRules: []accounting.Rule{accounting.RuleMinLineItems, accounting.RuleBothSides},
		},
		{
			name:          "unbalanced entry",
			lines:         []domain.LineItem{line("100", "0"), line("0", "75")},
			wantValid:     false,
			violatedRules: []accounting.Rule{accounting.RuleBalanced},
		},
		{
			name:          "imbalance exactly at tolerance fails",
			lines:         []domain.LineItem{line("100.01", "0"), line("0", "100")},
			wantValid:     false,
			violatedRules: []accounting.Rule{accounting.RuleBalanced},
		},
		{
			name:          "negative amount",
			lines:         []domain.LineItem{line("-100", "0"), line("0", "-100")},
			wantValid:     false,
			violatedRules: []accounting.Rule{accounting.RuleNonNegative},
		},
		{
			name:          "line with both debit and credit",
			lines:         []domain.LineItem{line("100", "50"), line("0", "50")},
			wantValid:     false,
			violatedRules: []accounting.Rule{accounting.RuleSingleSided},
		},
		{
			name:          "all debits and no credits",
			lines:         []domain.LineItem{line("50", "0"), line("50", "0")},
			wantValid:     false,
			violatedRules: []accounting.Rule{accounting.RuleBalanced, accounting.RuleBothSides},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := accounting.ValidateLineItems(tt.lines, tolerance)

			assert.Equal(t, tt.wantValid, result.IsValid)
			rules := make([]accounting.Rule, 0, len(result.Errors))
			for _, v := range result.Errors {
				rules = append(rules, v.Rule)
			}
			for _, want := range tt.violatedRules {
				assert.Contains(t, rules, want)
			}
			if tt.wantValid {
				assert.Empty(t, result.Errors)
			}
		})
	}
}

func TestValidateLineItems_CollectsAllViolations(t *testing.T) {
	// Nothing short-circuits: a single bad line reports every broken rule.
	result := accounting.ValidateLineItems([]domain.LineItem{line("-10", "0")}, decimal.New(1, -2))

	require.False(t, result.IsValid)
	assert.Len(t, result.Errors, 4)
}

func TestComputeTotals(t *testing.T) {
	totals := accounting.ComputeTotals([]domain.LineItem{
		line("100.50", "0"),
		line("49.50", "0"),
		line("0", "150"),
	})

	assert.True(t, totals.TotalDebit.Equal(decimal.RequireFromString("150")))
	assert.True(t, totals.TotalCredit.Equal(decimal.RequireFromString("150")))
}

func TestComputeTotals_Empty(t *testing.T) {
	totals := accounting.ComputeTotals(nil)

	assert.True(t, totals.TotalDebit.IsZero())
	assert.True(t, totals.TotalCredit.IsZero())
}

func TestConvert(t *testing.T) {
	converted, err := accounting.Convert(decimal.NewFromInt(1000), decimal.RequireFromString("0.95"))
	require.NoError(t, err)
	assert.True(t, converted.Equal(decimal.NewFromInt(950)))

	_, err = accounting.Convert(decimal.NewFromInt(1000), decimal.Zero)
	assert.Error(t, err)

	_, err = accounting.Convert(decimal.NewFromInt(1000), decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestClassify(t *testing.T) {
	tolerance := decimal.New(1, -2)

	tests := []struct {
		name      string
		expected  string
		converted string
		want      domain.AdjustmentType
	}{
		{"converted above expected is a gain", "900", "950", domain.AdjustmentGain},
		{"converted below expected is a loss", "900", "850", domain.AdjustmentLoss},
		{"equal values are neutral", "900", "900", domain.AdjustmentNeutral},
		{"delta under tolerance is neutral", "900", "900.005", domain.AdjustmentNeutral},
		{"delta at tolerance is a gain", "900", "900.01", domain.AdjustmentGain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.Classify(decimal.RequireFromString(tt.expected), decimal.RequireFromString(tt.converted), tolerance)
			assert.Equal(t, tt.want, got)
		})
	}
}
