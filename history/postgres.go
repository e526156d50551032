package history

import (
	"context"
	"fmt"

	db "github.com/pranav244872/resumecoach/db/sqlc"
)

// PostgresStore keeps records in the answer_history table.
type PostgresStore struct {
	store *db.Store
}

// OpenPostgres connects to dbSource and makes sure the schema exists.
func OpenPostgres(ctx context.Context, dbSource string) (*PostgresStore, error) {
	store, err := db.Connect(ctx, dbSource)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return &PostgresStore{store: store}, nil
}

func (p *PostgresStore) Append(ctx context.Context, record Record) error {
	_, err := p.store.AppendAnswer(ctx, db.AppendAnswerParams{
		Question: record.Question,
		Answer:   record.Answer,
		Score:    record.Score,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return nil
}

func (p *PostgresStore) All(ctx context.Context) ([]Record, error) {
	rows, err := p.store.ListAnswerRecords(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list answers: %w", ErrStorage, err)
	}

	records := make([]Record, len(rows))
	for i, row := range rows {
		records[i] = Record{Question: row.Question, Answer: row.Answer, Score: row.Score}
	}
	return records, nil
}

func (p *PostgresStore) Close() error {
	p.store.Close()
	return nil
}
