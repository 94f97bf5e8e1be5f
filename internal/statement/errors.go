package statement

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/nokataxx/cashflow-app/internal/models"
)

// UnmappedAccountError reports a label that is not in the known taxonomy.
type UnmappedAccountError struct {
	Label string
}

func (e *UnmappedAccountError) Error() string {
	return fmt.Sprintf("unmapped account label %q", e.Label)
}

// DuplicateAccountError reports two labels resolving to the same category
// within one period.
type DuplicateAccountError struct {
	Label    string
	Category models.AccountCategory
}

func (e *DuplicateAccountError) Error() string {
	return fmt.Sprintf("duplicate account: label %q resolves to category %q already supplied", e.Label, e.Category)
}

// InvalidAmountError reports a non-numeric or non-finite amount.
type InvalidAmountError struct {
	Label string
	Raw   string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %q for account %q", e.Raw, e.Label)
}

// UnclassifiableCategoryError reports a category with no registered
// classification rule. The normalizer only emits taxonomy categories, so
// this is an internal invariant violation, not a user input error.
type UnclassifiableCategoryError struct {
	Category models.AccountCategory
}

func (e *UnclassifiableCategoryError) Error() string {
	return fmt.Sprintf("no classification rule registered for category %q", e.Category)
}

// ReconciliationMismatchError reports that the derived net change in cash
// does not tie out against the actual cash balance movement.
// Discrepancy = (beginningCash + netChangeInCash) - endingCash.
type ReconciliationMismatchError struct {
	BeginningCash   decimal.Decimal
	EndingCash      decimal.Decimal
	NetChangeInCash decimal.Decimal
	Discrepancy     decimal.Decimal
}

func (e *ReconciliationMismatchError) Error() string {
	return fmt.Sprintf("statement does not reconcile: beginning cash %s + net change %s != ending cash %s (discrepancy %s)",
		e.BeginningCash, e.NetChangeInCash, e.EndingCash, e.Discrepancy)
}
