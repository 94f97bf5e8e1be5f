package statement

import (
	"github.com/shopspring/decimal"

	"github.com/nokataxx/cashflow-app/internal/models"
)

// Classify maps each account delta to a cash flow line using the rule
// table. Zero-effect lines are dropped. Input order is preserved, so
// deltas sorted by presentation order yield lines in presentation order.
//
// UnclassifiableCategoryError signals a taxonomy gap; the normalizer only
// emits known categories, so hitting it means the rule table is missing
// an entry for a category the taxonomy accepts.
func Classify(deltas []models.AccountDelta) ([]models.CashFlowLine, error) {
	lines := make([]models.CashFlowLine, 0, len(deltas))

	for _, delta := range deltas {
		rule, ok := classificationRules[delta.Category]
		if !ok {
			return nil, &UnclassifiableCategoryError{Category: delta.Category}
		}
		if rule.Behavior == signExcluded {
			continue
		}

		amount := cashEffect(rule.Behavior, delta)
		if amount.IsZero() {
			continue
		}

		lines = append(lines, models.CashFlowLine{
			Label:   rule.Label,
			Amount:  amount,
			Section: rule.Section,
		})
	}

	return lines, nil
}

// cashEffect applies a sign behavior to one delta. Balance-sheet rules
// work off the period delta; income-statement rules work off the full
// current-period amount, because a flow account's cash relevance is its
// period figure, not its movement between statements.
func cashEffect(behavior signBehavior, delta models.AccountDelta) decimal.Decimal {
	switch behavior {
	case signDelta:
		return delta.Delta
	case signDeltaNegated:
		return delta.Delta.Neg()
	case signCurrent:
		return delta.Current
	case signCurrentNegated:
		return delta.Current.Neg()
	default:
		return decimal.Zero
	}
}
