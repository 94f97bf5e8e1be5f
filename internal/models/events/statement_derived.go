package events

import (
	"time"

	"github.com/shopspring/decimal"
)

type StatementDerived struct {
	StatementID     string          `json:"statement_id"`
	Owner           string          `json:"owner"`
	PriorLabel      string          `json:"prior_label"`
	CurrentLabel    string          `json:"current_label"`
	NetChangeInCash decimal.Decimal `json:"net_change_in_cash"`
	OccurredAt      time.Time       `json:"occurred_at"`
}
