package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/nokataxx/cashflow-app/internal/interfaces"
	"github.com/nokataxx/cashflow-app/internal/models"
)

// PostgresStatementStore persists derived statements in a single table,
// with the statement body stored as a jsonb payload. Decimal amounts are
// marshaled as strings, so nothing passes through binary floating point.
type PostgresStatementStore struct {
	db *sql.DB
}

func NewPostgresStatementStore(db *sql.DB) *PostgresStatementStore {
	return &PostgresStatementStore{
		db: db,
	}
}

func (p *PostgresStatementStore) SaveStatement(ctx context.Context, record models.StatementRecord) error {
	const query = `INSERT INTO statements (id, owner, prior_label, current_label, payload, created_at)
	VALUES ($1, $2, $3, $4, $5, $6)`

	payload, err := json.Marshal(record.Statement)
	if err != nil {
		return fmt.Errorf("marshal statement %s: %w", record.ID, err)
	}

	_, err = p.db.ExecContext(ctx, query,
		record.ID, record.Owner, record.PriorLabel, record.CurrentLabel, payload, record.CreatedAt)
	return err
}

func (p *PostgresStatementStore) GetStatement(ctx context.Context, id string) (models.StatementRecord, error) {
	const query = `SELECT id, owner, prior_label, current_label, payload, created_at
	FROM statements WHERE id = $1`

	var record models.StatementRecord
	var payload []byte
	err := p.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.Owner,
		&record.PriorLabel,
		&record.CurrentLabel,
		&payload,
		&record.CreatedAt,
	)
	if err != nil {
		return models.StatementRecord{}, err
	}

	if err := json.Unmarshal(payload, &record.Statement); err != nil {
		return models.StatementRecord{}, fmt.Errorf("unmarshal statement %s: %w", id, err)
	}
	return record, nil
}

func (p *PostgresStatementStore) GetStatementsByOwner(ctx context.Context, owner string) ([]models.StatementRecord, error) {
	const query = `SELECT id, owner, prior_label, current_label, payload, created_at
	FROM statements WHERE owner = $1 ORDER BY created_at`

	rows, err := p.db.QueryContext(ctx, query, owner)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.StatementRecord
	for rows.Next() {
		var record models.StatementRecord
		var payload []byte
		if err := rows.Scan(
			&record.ID,
			&record.Owner,
			&record.PriorLabel,
			&record.CurrentLabel,
			&payload,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(payload, &record.Statement); err != nil {
			return nil, fmt.Errorf("unmarshal statement %s: %w", record.ID, err)
		}
		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

var _ interfaces.StatementStore = (*PostgresStatementStore)(nil)
