package statement

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokataxx/cashflow-app/internal/models"
)

func TestReconcileExactDecimalEquality(t *testing.T) {
	stmt := models.CashFlowStatement{
		BeginningCash:   decimal.RequireFromString("100.10"),
		NetChangeInCash: decimal.RequireFromString("0.20"),
		EndingCash:      decimal.RequireFromString("100.30"),
	}
	assert.NoError(t, Reconcile(stmt))
}

func TestReconcileZeroTolerance(t *testing.T) {
	stmt := models.CashFlowStatement{
		BeginningCash:   decimal.NewFromInt(100),
		NetChangeInCash: decimal.NewFromInt(45),
		EndingCash:      decimal.RequireFromString("144.99"),
	}

	err := Reconcile(stmt)
	var mismatch *ReconciliationMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "0.01", mismatch.Discrepancy.String())
}
