package statement

import (
	"sort"

	"github.com/nokataxx/cashflow-app/internal/models"
)

// ComputeDeltas returns the prior-to-current change for the union of
// categories appearing in either period. A category present in only one
// period is a normal case (an account opened or closed out) and the
// missing side counts as zero. Subtraction is exact decimal arithmetic.
//
// The result is sorted by taxonomy presentation order so repeated runs
// over the same inputs produce identical output.
func ComputeDeltas(prior, current models.StatementPeriod) []models.AccountDelta {
	categories := make(map[models.AccountCategory]struct{}, len(prior.Items)+len(current.Items))
	for category := range prior.Items {
		categories[category] = struct{}{}
	}
	for category := range current.Items {
		categories[category] = struct{}{}
	}

	deltas := make([]models.AccountDelta, 0, len(categories))
	for category := range categories {
		priorAmount := prior.Amount(category)
		currentAmount := current.Amount(category)
		deltas = append(deltas, models.AccountDelta{
			Category: category,
			Prior:    priorAmount,
			Current:  currentAmount,
			Delta:    currentAmount.Sub(priorAmount),
		})
	}

	sort.Slice(deltas, func(i, j int) bool {
		left, right := deltas[i], deltas[j]
		leftRule, leftOK := classificationRules[left.Category]
		rightRule, rightOK := classificationRules[right.Category]
		if leftOK && rightOK && leftRule.Order != rightRule.Order {
			return leftRule.Order < rightRule.Order
		}
		return left.Category < right.Category
	})

	return deltas
}
