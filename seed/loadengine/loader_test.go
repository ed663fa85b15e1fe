package loadengine

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Justin21523/school-library-lms/seed"
	"github.com/Justin21523/school-library-lms/seed/loadengine/internal/adapters"
	"github.com/Justin21523/school-library-lms/seed/populate"
)

type fakeTx struct {
	statements  []string
	copiedInto  []string
	copiedRows  map[string]int
	priorTenant string
	failOnTable string
	committed   bool
	rolledBack  bool
}

type fakeDB struct {
	tx *fakeTx
}

func (f *fakeDB) Begin(_ context.Context) (adapters.TxAdapter, error) {
	return f.tx, nil
}

func (t *fakeTx) Exec(_ context.Context, query string) error {
	t.statements = append(t.statements, query)
	return nil
}

func (t *fakeTx) QueryValue(_ context.Context, query string) (string, bool, error) {
	t.statements = append(t.statements, query)

	if t.priorTenant == "" {
		return "", false, nil
	}

	return t.priorTenant, true, nil
}

func (t *fakeTx) CopyFrom(_ context.Context, table string, _ []string, rows [][]any) (int64, error) {
	if table == t.failOnTable {
		return 0, errors.New("copy rejected")
	}

	t.copiedInto = append(t.copiedInto, table)
	if t.copiedRows == nil {
		t.copiedRows = make(map[string]int)
	}
	t.copiedRows[table] = len(rows)

	return int64(len(rows)), nil
}

func (t *fakeTx) Commit(_ context.Context) error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback(_ context.Context) error {
	t.rolledBack = true
	return nil
}

func loaderDataset(t *testing.T) *seed.Dataset {
	t.Helper()

	engine, err := populate.NewEngine(seed.Config{
		TenantSlug:         "demo-lms-scale",
		TenantName:         "示範國小（大型資料集）",
		Seed:               42,
		TextProvider:       seed.TextProviderRules,
		Password:           "demo1234",
		ReferenceTime:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		Students:           40,
		Teachers:           4,
		CatalogRecords:     8,
		MaxCopiesPerRecord: 2,
		OpenLoans:          2,
		ClosedLoans:        5,
		ReadyHolds:         1,
		QueuedHolds:        3,
		InventorySessions:  1,
		ScansPerSession:    4,
		AuditEvents:        5,
	})
	require.NoError(t, err)

	ds, err := engine.Build()
	require.NoError(t, err)

	return ds
}

func Test_Load_ReplacesPriorTenantInOrder(t *testing.T) {
	ds := loaderDataset(t)
	tx := &fakeTx{priorTenant: "11111111-2222-3333-4444-555555555555"}

	loader, err := newLoader(&fakeDB{tx: tx})
	require.NoError(t, err)

	require.NoError(t, loader.Load(context.Background(), ds))

	require.Len(t, tx.statements, 4)
	assert.Contains(t, tx.statements[0], `SELECT "id" FROM "organizations"`)
	assert.Contains(t, tx.statements[0], "demo-lms-scale")
	assert.Contains(t, tx.statements[1], "set_config")
	assert.Contains(t, tx.statements[1], tx.priorTenant)
	assert.Contains(t, tx.statements[2], `DELETE FROM "organizations"`)
	assert.Contains(t, tx.statements[3], "set_config")
	assert.Contains(t, tx.statements[3], ds.Tenant.ID.String())

	assert.Equal(t, []string{
		"organizations", "locations", "users", "user_credentials",
		"authority_terms", "authority_relations", "bibliographic_records",
		"bibliographic_term_links", "item_copies", "circulation_policies",
		"loans", "holds", "inventory_sessions", "inventory_scans",
		"audit_events",
	}, tx.copiedInto)

	assert.Equal(t, 1, tx.copiedRows["organizations"])
	assert.Equal(t, len(ds.Users), tx.copiedRows["users"])
	assert.Equal(t, len(ds.Loans), tx.copiedRows["loans"])

	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func Test_Load_FreshTenantSkipsDelete(t *testing.T) {
	ds := loaderDataset(t)
	tx := &fakeTx{}

	loader, err := newLoader(&fakeDB{tx: tx})
	require.NoError(t, err)

	require.NoError(t, loader.Load(context.Background(), ds))

	require.Len(t, tx.statements, 2)
	assert.Contains(t, tx.statements[0], `SELECT "id" FROM "organizations"`)
	assert.Contains(t, tx.statements[1], "set_config")
	assert.Contains(t, tx.statements[1], ds.Tenant.ID.String())

	for _, stmt := range tx.statements {
		assert.False(t, strings.Contains(stmt, "DELETE"), stmt)
	}

	assert.True(t, tx.committed)
}

func Test_Load_RollsBackOnCopyFailure(t *testing.T) {
	ds := loaderDataset(t)
	tx := &fakeTx{failOnTable: "loans"}

	loader, err := newLoader(&fakeDB{tx: tx})
	require.NoError(t, err)

	err = loader.Load(context.Background(), ds)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "copy into loans")
	assert.Contains(t, err.Error(), "copy rejected")
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)

	// Tables before the failing one went through; everything after was
	// never attempted.
	assert.Contains(t, tx.copiedInto, "circulation_policies")
	assert.NotContains(t, tx.copiedInto, "holds")
}

func Test_Options(t *testing.T) {
	t.Run("empty_scope_setting_rejected", func(t *testing.T) {
		loader, err := newLoader(&fakeDB{tx: &fakeTx{}}, WithScopeSetting(""))

		assert.ErrorIs(t, err, ErrEmptyScopeSetting)
		assert.Nil(t, loader)
	})

	t.Run("custom_scope_setting_used_in_statements", func(t *testing.T) {
		ds := loaderDataset(t)
		tx := &fakeTx{}

		loader, err := newLoader(&fakeDB{tx: tx}, WithScopeSetting("app.tenant"))
		require.NoError(t, err)

		require.NoError(t, loader.Load(context.Background(), ds))
		assert.Contains(t, tx.statements[1], "app.tenant")
	})

	t.Run("nil_pool_rejected", func(t *testing.T) {
		loader, err := NewLoaderFromPGXPool(nil)

		assert.ErrorIs(t, err, ErrNilDatabaseHandle)
		assert.Nil(t, loader)
	})

	t.Run("nil_sqlx_handle_rejected", func(t *testing.T) {
		loader, err := NewLoaderFromSQLX(nil)

		assert.ErrorIs(t, err, ErrNilDatabaseHandle)
		assert.Nil(t, loader)
	})
}
