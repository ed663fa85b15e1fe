package adapters

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PGXAdapter implements DBAdapter for pgxpool.Pool.
type PGXAdapter struct {
	pool *pgxpool.Pool
}

// NewPGXAdapter creates a new PGX adapter.
func NewPGXAdapter(pool *pgxpool.Pool) *PGXAdapter {
	return &PGXAdapter{pool: pool}
}

// Begin starts a transaction on the pool.
func (p *PGXAdapter) Begin(ctx context.Context) (TxAdapter, error) {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return nil, err
	}

	return &pgxTx{tx: tx}, nil
}

type pgxTx struct {
	tx pgx.Tx
}

func (t *pgxTx) Exec(ctx context.Context, query string) error {
	_, err := t.tx.Exec(ctx, query)
	return err
}

func (t *pgxTx) QueryValue(ctx context.Context, query string) (string, bool, error) {
	var value string

	err := t.tx.QueryRow(ctx, query).Scan(&value)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// CopyFrom uses the native COPY protocol; pgx encodes the Go-native cell
// values (uuid, time.Time, []string, bool) directly.
func (t *pgxTx) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	return t.tx.CopyFrom(ctx, pgx.Identifier{table}, columns, pgx.CopyFromRows(rows))
}

func (t *pgxTx) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *pgxTx) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}
