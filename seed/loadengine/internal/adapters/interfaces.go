package adapters

import "context"

// DBAdapter opens the single transaction a load runs in.
type DBAdapter interface {
	Begin(ctx context.Context) (TxAdapter, error)
}

// TxAdapter defines the operations the loader needs inside its transaction.
// Query strings arrive fully rendered; there are no bind parameters.
type TxAdapter interface {
	// Exec runs a statement and discards any result rows.
	Exec(ctx context.Context, query string) error

	// QueryValue runs a single-column, single-row query. The second return
	// is false when the query matched no row.
	QueryValue(ctx context.Context, query string) (string, bool, error)

	// CopyFrom bulk-inserts rows into the table and reports how many were
	// written. Cell values are Go-native; nil means SQL NULL.
	CopyFrom(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
