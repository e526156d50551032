// Package history persists evaluated interview answers.
package history

import (
	"context"
	"errors"
)

// ErrStorage wraps every failure of the underlying persistence.
var ErrStorage = errors.New("history storage failure")

// Record is one evaluated answer. Records are never updated or deleted.
type Record struct {
	Question string  `json:"question"`
	Answer   string  `json:"answer"`
	Score    float64 `json:"score"`
}

// Store is an append-only sink of Records. Implementations must be safe for concurrent use.
type Store interface {
	Append(ctx context.Context, record Record) error
	// All returns every record in store-native order: append order for memory and sqlite,
	// sequence order for postgres. An empty history is an empty, non-nil slice.
	All(ctx context.Context) ([]Record, error)
	Close() error
}
