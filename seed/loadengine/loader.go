// Package loadengine replaces and reloads one tenant's dataset directly
// over a Postgres connection, inside a single transaction, using per-table
// bulk COPY. It produces the same end state as running the exported
// load.sql through psql.
package loadengine

import (
	"context"
	"errors"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres" // dialect import
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/export"
	"github.com/Justin21523/school-library-lms/seed/loadengine/internal/adapters"
)

var (
	// ErrEmptyScopeSetting occurs when WithScopeSetting gets an empty name.
	ErrEmptyScopeSetting = errors.New("scope setting name must not be empty")

	// ErrNilDatabaseHandle occurs when a loader factory gets a nil handle.
	ErrNilDatabaseHandle = errors.New("database handle must not be nil")
)

const (
	organizationsTable = "organizations"
	colID              = "id"
	colCode            = "code"
	dialectPostgres    = "postgres"

	logMsgPriorTenantResolved = "prior tenant resolved for replacement"
	logMsgTenantDeleted       = "prior tenant deleted"
	logMsgTableLoaded         = "table loaded"
	logMsgLoadCommitted       = "load committed"
	logAttrTenant             = "tenant"
	logAttrTable              = "table"
	logAttrRows               = "rows"
)

// Logger interface for load progress reporting and error diagnostics.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// Loader bulk-loads datasets. It is safe for sequential reuse; each Load
// call runs in its own transaction.
type Loader struct {
	db           adapters.DBAdapter
	logger       Logger
	scopeSetting string
}

// Option defines a functional option for configuring Loader.
type Option func(*Loader) error

// WithLogger sets the logger for the Loader.
func WithLogger(logger Logger) Option {
	return func(l *Loader) error {
		l.logger = logger
		return nil
	}
}

// WithScopeSetting overrides the session setting carrying the current
// tenant id for row-access policies.
func WithScopeSetting(name string) Option {
	return func(l *Loader) error {
		if name == "" {
			return ErrEmptyScopeSetting
		}

		l.scopeSetting = name

		return nil
	}
}

// NewLoaderFromPGXPool creates a Loader using a pgxpool.Pool with optional
// configuration.
func NewLoaderFromPGXPool(pool *pgxpool.Pool, options ...Option) (*Loader, error) {
	if pool == nil {
		return nil, ErrNilDatabaseHandle
	}

	return newLoader(adapters.NewPGXAdapter(pool), options...)
}

// NewLoaderFromSQLX creates a Loader using a sqlx.DB with optional
// configuration. The database must use the lib/pq driver; COPY support
// comes from it.
func NewLoaderFromSQLX(db *sqlx.DB, options ...Option) (*Loader, error) {
	if db == nil {
		return nil, ErrNilDatabaseHandle
	}

	return newLoader(adapters.NewSQLXAdapter(db), options...)
}

func newLoader(db adapters.DBAdapter, options ...Option) (*Loader, error) {
	l := &Loader{
		db:           db,
		scopeSetting: export.ScopeSetting,
	}

	for _, option := range options {
		if err := option(l); err != nil {
			return nil, err
		}
	}

	return l, nil
}

// Load replaces the dataset's tenant in one transaction: it resolves and
// deletes any prior tenant with the same slug (children cascade), switches
// the scope setting to the new tenant id, and bulk-copies every table in
// dependency order. Any failure rolls the whole transaction back and is
// returned verbatim; rerunning after a fix is always safe.
func (l *Loader) Load(ctx context.Context, ds *seed.Dataset) error {
	tables, err := export.Tables(ds)
	if err != nil {
		return fmt.Errorf("flatten dataset: %w", err)
	}

	tx, err := l.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin load transaction: %w", err)
	}

	if err = l.replaceTenant(ctx, tx, ds, tables); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return errors.Join(err, rbErr)
		}
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit load transaction: %w", err)
	}

	l.logInfo(logMsgLoadCommitted, logAttrTenant, ds.Tenant.Code)

	return nil
}

func (l *Loader) replaceTenant(ctx context.Context, tx adapters.TxAdapter, ds *seed.Dataset, tables []export.Table) error {
	priorID, found, err := l.resolvePriorTenant(ctx, tx, ds.Tenant.Code)
	if err != nil {
		return fmt.Errorf("resolve prior tenant: %w", err)
	}

	if found {
		l.logDebug(logMsgPriorTenantResolved, logAttrTenant, ds.Tenant.Code)

		if err = l.setScope(ctx, tx, priorID); err != nil {
			return err
		}
		if err = l.deleteTenant(ctx, tx, ds.Tenant.Code); err != nil {
			return fmt.Errorf("delete prior tenant: %w", err)
		}

		l.logDebug(logMsgTenantDeleted, logAttrTenant, ds.Tenant.Code)
	}

	if err = l.setScope(ctx, tx, ds.Tenant.ID.String()); err != nil {
		return err
	}

	for _, table := range tables {
		rows, err := tx.CopyFrom(ctx, table.Name, table.Columns, table.Rows)
		if err != nil {
			return fmt.Errorf("copy into %s: %w", table.Name, err)
		}

		l.logDebug(logMsgTableLoaded, logAttrTable, table.Name, logAttrRows, rows)
	}

	return nil
}

func (l *Loader) resolvePriorTenant(ctx context.Context, tx adapters.TxAdapter, slug string) (string, bool, error) {
	query, _, err := goqu.Dialect(dialectPostgres).
		From(organizationsTable).
		Select(colID).
		Where(goqu.C(colCode).Eq(slug)).
		ToSQL()
	if err != nil {
		return "", false, err
	}

	return tx.QueryValue(ctx, query)
}

func (l *Loader) deleteTenant(ctx context.Context, tx adapters.TxAdapter, slug string) error {
	query, _, err := goqu.Dialect(dialectPostgres).
		Delete(organizationsTable).
		Where(goqu.C(colCode).Eq(slug)).
		ToSQL()
	if err != nil {
		return err
	}

	return tx.Exec(ctx, query)
}

// setScope is transaction-local: set_config with is_local=true resets at
// commit or rollback.
func (l *Loader) setScope(ctx context.Context, tx adapters.TxAdapter, tenantID string) error {
	query, _, err := goqu.Dialect(dialectPostgres).
		Select(goqu.Func("set_config", l.scopeSetting, tenantID, true)).
		ToSQL()
	if err != nil {
		return err
	}

	if err = tx.Exec(ctx, query); err != nil {
		return fmt.Errorf("set scope setting: %w", err)
	}

	return nil
}

func (l *Loader) logDebug(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, args...)
	}
}

func (l *Loader) logInfo(msg string, args ...any) {
	if l.logger != nil {
		l.logger.Info(msg, args...)
	}
}
