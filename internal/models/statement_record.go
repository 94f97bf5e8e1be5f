package models

import "time"

// StatementRecord is the persisted envelope around a derived statement.
// Guest derivations are returned with an empty ID and never stored.
type StatementRecord struct {
	ID           string            `json:"id"`
	Owner        string            `json:"owner"`
	PriorLabel   string            `json:"prior_label"`
	CurrentLabel string            `json:"current_label"`
	Statement    CashFlowStatement `json:"statement"`
	CreatedAt    time.Time         `json:"created_at"`
}
