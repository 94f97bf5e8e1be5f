package memory

import (
	"context"
	"errors"
	"sync"

	"github.com/nokataxx/cashflow-app/internal/interfaces"
	"github.com/nokataxx/cashflow-app/internal/models"
)

// ErrNotFound is returned when no statement exists for the requested id.
var ErrNotFound = errors.New("statement not found")

// MemoryStatementStore is an in-memory implementation of
// interfaces.StatementStore, safe for concurrent use. It backs the server
// when no database is configured, and the tests.
type MemoryStatementStore struct {
	mu         sync.Mutex
	statements map[string]models.StatementRecord
	order      []string // insertion order, for stable listing
}

func NewMemoryStatementStore() *MemoryStatementStore {
	return &MemoryStatementStore{
		statements: make(map[string]models.StatementRecord),
	}
}

func (m *MemoryStatementStore) SaveStatement(ctx context.Context, record models.StatementRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.statements[record.ID]; !exists {
		m.order = append(m.order, record.ID)
	}
	m.statements[record.ID] = record
	return nil
}

func (m *MemoryStatementStore) GetStatement(ctx context.Context, id string) (models.StatementRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	record, ok := m.statements[id]
	if !ok {
		return models.StatementRecord{}, ErrNotFound
	}
	return record, nil
}

func (m *MemoryStatementStore) GetStatementsByOwner(ctx context.Context, owner string) ([]models.StatementRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var result []models.StatementRecord
	for _, id := range m.order {
		if record := m.statements[id]; record.Owner == owner {
			result = append(result, record)
		}
	}
	return result, nil
}

// Compile-time check: MemoryStatementStore implements StatementStore.
var _ interfaces.StatementStore = (*MemoryStatementStore)(nil)
