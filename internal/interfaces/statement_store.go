package interfaces

import (
	"context"

	"github.com/nokataxx/cashflow-app/internal/models"
)

type StatementStore interface {
	SaveStatement(ctx context.Context, record models.StatementRecord) error
	GetStatement(ctx context.Context, id string) (models.StatementRecord, error)
	GetStatementsByOwner(ctx context.Context, owner string) ([]models.StatementRecord, error)
}
