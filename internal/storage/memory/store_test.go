package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nokataxx/cashflow-app/internal/models"
)

func record(id, owner string) models.StatementRecord {
	return models.StatementRecord{
		ID:           id,
		Owner:        owner,
		PriorLabel:   "FY2023",
		CurrentLabel: "FY2024",
		CreatedAt:    time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := NewMemoryStatementStore()
	ctx := context.Background()

	saved := record("stmt-1", "user-1")
	require.NoError(t, store.SaveStatement(ctx, saved))

	got, err := store.GetStatement(ctx, "stmt-1")
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestMemoryStoreNotFound(t *testing.T) {
	store := NewMemoryStatementStore()

	_, err := store.GetStatement(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryStoreListsByOwnerInInsertionOrder(t *testing.T) {
	store := NewMemoryStatementStore()
	ctx := context.Background()

	require.NoError(t, store.SaveStatement(ctx, record("stmt-1", "user-1")))
	require.NoError(t, store.SaveStatement(ctx, record("stmt-2", "user-2")))
	require.NoError(t, store.SaveStatement(ctx, record("stmt-3", "user-1")))

	records, err := store.GetStatementsByOwner(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "stmt-1", records[0].ID)
	assert.Equal(t, "stmt-3", records[1].ID)
}
