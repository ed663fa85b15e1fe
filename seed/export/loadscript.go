package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Justin21523/school-library-lms/seed"
)

// ScopeSetting is the session setting row-access policies read the current
// tenant from. The load script pins it before deleting and again before
// copying, so scoped policies see the rows they operate on.
const ScopeSetting = "app.current_org"

// LoadScriptName is the file WriteLoadScript produces inside the workdir.
const LoadScriptName = "load.sql"

// WriteLoadScript writes the psql script that replaces the tenant and bulk
// loads every CSV. Reloading the same slug is safe: the prior tenant row is
// deleted first and children cascade. The \copy paths are client-side
// absolute paths inside dir.
func WriteLoadScript(dir string, ds *seed.Dataset, tables []Table) error {
	var b strings.Builder

	b.WriteString("BEGIN;\n\n")

	fmt.Fprintf(&b,
		"SELECT set_config('%s', coalesce((SELECT id::text FROM organizations WHERE code = '%s'), ''), true);\n",
		ScopeSetting, ds.Tenant.Code)
	fmt.Fprintf(&b, "DELETE FROM organizations WHERE code = '%s';\n\n", ds.Tenant.Code)

	fmt.Fprintf(&b, "SELECT set_config('%s', '%s', true);\n\n", ScopeSetting, ds.Tenant.ID)

	for _, table := range tables {
		fmt.Fprintf(&b, "\\copy %s (%s) FROM '%s' WITH (FORMAT csv, NULL '%s')\n",
			table.Name,
			strings.Join(table.Columns, ", "),
			filepath.Join(dir, table.Name+".csv"),
			NullToken)
	}

	b.WriteString("\nCOMMIT;\n")

	return os.WriteFile(filepath.Join(dir, LoadScriptName), []byte(b.String()), 0o644)
}
