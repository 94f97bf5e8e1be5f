package statement

import "github.com/nokataxx/cashflow-app/internal/models"

// Reconcile verifies that the assembled statement ties out against the
// actual cash balance movement: beginningCash + netChangeInCash must
// equal endingCash exactly, with zero tolerance. On mismatch the figures
// are never adjusted; the caller gets the discrepancy so the user can be
// told their input is internally inconsistent.
func Reconcile(stmt models.CashFlowStatement) error {
	derived := stmt.BeginningCash.Add(stmt.NetChangeInCash)
	if derived.Equal(stmt.EndingCash) {
		return nil
	}
	return &ReconciliationMismatchError{
		BeginningCash:   stmt.BeginningCash,
		EndingCash:      stmt.EndingCash,
		NetChangeInCash: stmt.NetChangeInCash,
		Discrepancy:     derived.Sub(stmt.EndingCash),
	}
}
