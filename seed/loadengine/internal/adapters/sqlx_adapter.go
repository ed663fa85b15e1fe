package adapters

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// SQLXAdapter implements DBAdapter for sqlx.DB backed by the lib/pq driver.
// COPY support comes from pq.CopyIn, which only works under that driver.
type SQLXAdapter struct {
	db *sqlx.DB
}

// NewSQLXAdapter creates a new SQLX adapter.
func NewSQLXAdapter(db *sqlx.DB) *SQLXAdapter {
	return &SQLXAdapter{db: db}
}

// Begin starts a transaction.
func (s *SQLXAdapter) Begin(ctx context.Context) (TxAdapter, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}

	return &sqlxTx{tx: tx}, nil
}

type sqlxTx struct {
	tx *sqlx.Tx
}

func (t *sqlxTx) Exec(ctx context.Context, query string) error {
	_, err := t.tx.ExecContext(ctx, query)
	return err
}

func (t *sqlxTx) QueryValue(ctx context.Context, query string) (string, bool, error) {
	var value string

	err := t.tx.QueryRowxContext(ctx, query).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}

	return value, true, nil
}

// CopyFrom streams rows through a pq.CopyIn prepared statement. The final
// zero-argument Exec flushes the COPY buffer.
func (t *sqlxTx) CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error) {
	stmt, err := t.tx.PreparexContext(ctx, pq.CopyIn(table, columns...))
	if err != nil {
		return 0, err
	}

	for _, row := range rows {
		args := make([]any, len(row))
		for i, cell := range row {
			args[i] = driverValue(cell)
		}
		if _, err = stmt.ExecContext(ctx, args...); err != nil {
			_ = stmt.Close()
			return 0, err
		}
	}

	if _, err = stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		return 0, err
	}

	if err = stmt.Close(); err != nil {
		return 0, err
	}

	return int64(len(rows)), nil
}

func (t *sqlxTx) Commit(_ context.Context) error {
	return t.tx.Commit()
}

func (t *sqlxTx) Rollback(_ context.Context) error {
	return t.tx.Rollback()
}

// driverValue maps cell values the lib/pq driver cannot take natively.
func driverValue(cell any) any {
	switch v := cell.(type) {
	case uuid.UUID:
		return v.String()
	case []string:
		return pq.Array(v)
	case time.Time:
		return v.UTC()
	default:
		return cell
	}
}
