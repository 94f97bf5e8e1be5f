// Package statements orchestrates the derivation engine with the storage
// and event collaborators of the surrounding application.
package statements

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nokataxx/cashflow-app/internal/interfaces"
	"github.com/nokataxx/cashflow-app/internal/models"
	"github.com/nokataxx/cashflow-app/internal/models/events"
	"github.com/nokataxx/cashflow-app/internal/statement"
)

const topicStatementDerived = "statement_derived"

// Service runs derivations and, for signed-in owners, persists the result
// and publishes a derivation event. The engine itself is pure; all state
// lives behind the store interface.
type Service struct {
	store     interfaces.StatementStore
	publisher interfaces.EventPublisher
}

func NewService(store interfaces.StatementStore, publisher interfaces.EventPublisher) *Service {
	return &Service{
		store:     store,
		publisher: publisher,
	}
}

// Derive converts two periods of raw line items into a cash flow
// statement. An empty owner means a guest session: the statement is
// derived and returned but never stored, and the record ID stays empty.
func (s *Service) Derive(ctx context.Context, owner string, prior, current models.RawPeriod) (models.StatementRecord, error) {
	stmt, err := statement.Derive(prior, current)
	if err != nil {
		return models.StatementRecord{}, err
	}

	record := models.StatementRecord{
		Owner:        owner,
		PriorLabel:   prior.Label,
		CurrentLabel: current.Label,
		Statement:    stmt,
	}
	if owner == "" {
		return record, nil
	}

	record.ID = uuid.New().String()
	record.CreatedAt = time.Now().UTC()

	if err := s.store.SaveStatement(ctx, record); err != nil {
		return models.StatementRecord{}, fmt.Errorf("save statement: %w", err)
	}

	event := events.StatementDerived{
		StatementID:     record.ID,
		Owner:           record.Owner,
		PriorLabel:      record.PriorLabel,
		CurrentLabel:    record.CurrentLabel,
		NetChangeInCash: stmt.NetChangeInCash,
		OccurredAt:      record.CreatedAt,
	}
	if err := s.publisher.Publish(topicStatementDerived, event); err != nil {
		return models.StatementRecord{}, fmt.Errorf("publish %s: %w", topicStatementDerived, err)
	}

	return record, nil
}

// GetStatement fetches a stored statement by id.
func (s *Service) GetStatement(ctx context.Context, id string) (models.StatementRecord, error) {
	return s.store.GetStatement(ctx, id)
}

// GetStatementsByOwner lists an owner's stored statements.
func (s *Service) GetStatementsByOwner(ctx context.Context, owner string) ([]models.StatementRecord, error) {
	return s.store.GetStatementsByOwner(ctx, owner)
}
