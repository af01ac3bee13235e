// Package accounting holds the pure double-entry arithmetic shared by
// services and repositories. Nothing here touches storage.
package accounting

import (
	"fmt"

	"github.com/Triostacksoftware/robobooks-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DefaultBalanceTolerance is one minor currency unit, the default epsilon
// for the debit/credit balance check. Configurable via BALANCE_TOLERANCE.
var DefaultBalanceTolerance = decimal.New(1, -2) // 0.01

// Rule identifies a violated double-entry rule.
type Rule string

const (
	RuleMinLineItems Rule = "min_line_items"
	RuleBalanced     Rule = "balanced"
	RuleBothSides    Rule = "both_sides"
	RuleNonNegative  Rule = "non_negative_amounts"
	RuleSingleSided  Rule = "single_sided_line"
)

// RuleViolation is one failed rule with enough detail to render a message.
type RuleViolation struct {
	Rule    Rule   `json:"rule"`
	Message string `json:"message"`
}

// ValidationResult is the complete report of a line-item validation pass.
// All rules are checked; nothing short-circuits.
type ValidationResult struct {
	IsValid bool            `json:"isValid"`
	Errors  []RuleViolation `json:"errors,omitempty"`
}

func (r *ValidationResult) add(rule Rule, format string, args ...any) {
	r.Errors = append(r.Errors, RuleViolation{Rule: rule, Message: fmt.Sprintf(format, args...)})
}

// Totals holds the two sides of a journal entry.
type Totals struct {
	TotalDebit  decimal.Decimal `json:"totalDebit"`
	TotalCredit decimal.Decimal `json:"totalCredit"`
}

// ComputeTotals reduces line items to their debit and credit sums.
func ComputeTotals(lines []domain.LineItem) Totals {
	t := Totals{TotalDebit: decimal.Zero, TotalCredit: decimal.Zero}
	for _, l := range lines {
		t.TotalDebit = t.TotalDebit.Add(l.Debit)
		t.TotalCredit = t.TotalCredit.Add(l.Credit)
	}
	return t
}

// ValidateLineItems checks that a set of line items forms a legal
// double-entry journal entry, collecting every violation:
//
//  1. at least two line items;
//  2. total debits equal total credits within tolerance;
//  3. at least one line with a positive debit and one with a positive credit.
//
// Per-line, amounts must be non-negative and a line must not carry both a
// debit and a credit.
func ValidateLineItems(lines []domain.LineItem, tolerance decimal.Decimal) ValidationResult {
	result := ValidationResult{}

	if len(lines) < 2 {
		result.add(RuleMinLineItems, "journal entry requires at least 2 line items, got %d", len(lines))
	}

	for i, l := range lines {
		if l.Debit.IsNegative() || l.Credit.IsNegative() {
			result.add(RuleNonNegative, "line %d: debit and credit amounts must not be negative", i+1)
		}
		if l.Debit.IsPositive() && l.Credit.IsPositive() {
			result.add(RuleSingleSided, "line %d: a line item cannot carry both a debit and a credit", i+1)
		}
	}

	totals := ComputeTotals(lines)
	if totals.TotalDebit.Sub(totals.TotalCredit).Abs().GreaterThanOrEqual(tolerance) {
		result.add(RuleBalanced, "total debit %s does not equal total credit %s",
			totals.TotalDebit.String(), totals.TotalCredit.String())
	}

	hasDebit, hasCredit := false, false
	for _, l := range lines {
		if l.Debit.IsPositive() {
			hasDebit = true
		}
		if l.Credit.IsPositive() {
			hasCredit = true
		}
	}
	if !hasDebit || !hasCredit {
		result.add(RuleBothSides, "journal entry requires at least one debit line and one credit line")
	}

	result.IsValid = len(result.Errors) == 0
	return result
}

// Convert converts an amount between currencies at the given rate.
// The rate must be positive; a zero rate means not-yet-available.
func Convert(amount decimal.Decimal, rate decimal.Decimal) (decimal.Decimal, error) {
	if !rate.IsPositive() {
		return decimal.Zero, fmt.Errorf("exchange rate must be positive, got %s", rate.String())
	}
	return amount.Mul(rate), nil
}

// Classify compares a converted amount against the expected baseline (the
// value at the previously recorded rate) and labels the delta. Differences
// within tolerance are neutral.
func Classify(expected, converted, tolerance decimal.Decimal) domain.AdjustmentType {
	delta := converted.Sub(expected)
	if delta.Abs().LessThan(tolerance) {
		return domain.AdjustmentNeutral
	}
	if delta.IsPositive() {
		return domain.AdjustmentGain
	}
	return domain.AdjustmentLoss
}
