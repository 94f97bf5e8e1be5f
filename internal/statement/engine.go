// Package statement derives an indirect-method cash flow statement from
// two consecutive periods of balance sheet and income statement line items.
package statement

import "github.com/nokataxx/cashflow-app/internal/models"

// Derive runs the full pipeline: normalize both periods, compute the
// account deltas, classify each delta into a cash flow line, assemble the
// statement, and reconcile it against the actual cash movement.
//
// Derive is a pure function of its inputs. It holds no state across
// calls, never mutates its arguments, and is safe to call from any number
// of goroutines concurrently.
func Derive(prior, current models.RawPeriod) (models.CashFlowStatement, error) {
	priorPeriod, err := NormalizePeriod(prior)
	if err != nil {
		return models.CashFlowStatement{}, err
	}
	currentPeriod, err := NormalizePeriod(current)
	if err != nil {
		return models.CashFlowStatement{}, err
	}

	deltas := ComputeDeltas(priorPeriod, currentPeriod)

	lines, err := Classify(deltas)
	if err != nil {
		return models.CashFlowStatement{}, err
	}

	beginningCash := priorPeriod.Amount(models.CashAndEquivalents)
	endingCash := currentPeriod.Amount(models.CashAndEquivalents)

	stmt := Assemble(lines, beginningCash, endingCash)

	if err := Reconcile(stmt); err != nil {
		return models.CashFlowStatement{}, err
	}
	return stmt, nil
}
