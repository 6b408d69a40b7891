package storage

import (
	"context"

	"github.com/DjordjeVuckovic/news-verifier/internal/storage/in_mem"
	"github.com/DjordjeVuckovic/news-verifier/internal/storage/pg"
)

// NewStorer picks the persistence backend. An empty connection string
// selects the in-memory storer.
func NewStorer(ctx context.Context, connStr string) (Storer, error) {
	if connStr == "" {
		return in_mem.NewInMemStorer(), nil
	}

	pool, err := pg.NewConnectionPool(ctx, pg.PoolConfig{ConnStr: connStr})
	if err != nil {
		return nil, err
	}
	return pg.NewStorer(pool)
}
