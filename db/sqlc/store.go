// db/store.go

package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

////////////////////////////////////////////////////////////////////////
// Store Definition
////////////////////////////////////////////////////////////////////////

// Store provides all functions to execute answer history queries.
type Store struct {
	*Queries
	dbpool *pgxpool.Pool
}

// NewStore creates a new Store.
func NewStore(dbpool *pgxpool.Pool) *Store {
	return &Store{
		dbpool:  dbpool,
		Queries: New(dbpool),
	}
}

// Connect opens a pool for dbSource and verifies it with a ping.
func Connect(ctx context.Context, dbSource string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dbSource)
	if err != nil {
		return nil, fmt.Errorf("failed to create db pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to reach database: %w", err)
	}
	return NewStore(pool), nil
}

// Close releases every pooled connection.
func (s *Store) Close() {
	s.dbpool.Close()
}

////////////////////////////////////////////////////////////////////////
// Schema
////////////////////////////////////////////////////////////////////////

// schema mirrors db/migration/000001_create_answer_history.up.sql.
const schema = `
CREATE TABLE IF NOT EXISTS answer_history (
    seq        BIGSERIAL UNIQUE,
    id         UUID PRIMARY KEY,
    question   TEXT NOT NULL,
    answer     TEXT NOT NULL,
    score      DOUBLE PRECISION NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
ALTER TABLE answer_history ADD COLUMN IF NOT EXISTS seq BIGSERIAL UNIQUE;
`

// EnsureSchema creates the answer_history table when it does not exist yet.
func (s *Store) EnsureSchema(ctx context.Context) error {
	if _, err := s.dbpool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

////////////////////////////////////////////////////////////////////////
// AppendAnswer
////////////////////////////////////////////////////////////////////////

// AppendAnswerParams is one evaluated answer to persist.
type AppendAnswerParams struct {
	Question string
	Answer   string
	Score    float64
}

// AppendAnswer stores a new history row under a fresh id.
func (s *Store) AppendAnswer(ctx context.Context, arg AppendAnswerParams) (AnswerHistory, error) {
	row, err := s.CreateAnswerRecord(ctx, CreateAnswerRecordParams{
		ID:       uuid.New(),
		Question: arg.Question,
		Answer:   arg.Answer,
		Score:    arg.Score,
	})
	if err != nil {
		return AnswerHistory{}, fmt.Errorf("failed to create answer record: %w", err)
	}
	return row, nil
}
