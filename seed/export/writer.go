package export

import (
	"encoding/csv"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NullToken is the NULL marker written into CSV cells and declared in the
// generated load script. Postgres COPY treats it as SQL NULL, and it is
// visually distinct from an empty string when eyeballing the files.
const NullToken = `\N`

var errUnsupportedCell = errors.New("unsupported cell value type")

// WriteCSV writes one <table>.csv per table into dir, creating it if
// needed. For a fixed dataset the output is byte-identical across runs.
func WriteCSV(dir string, tables []Table) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	for _, table := range tables {
		if err := writeTableCSV(dir, table); err != nil {
			return fmt.Errorf("export %s: %w", table.Name, err)
		}
	}

	return nil
}

func writeTableCSV(dir string, table Table) error {
	f, err := os.Create(filepath.Join(dir, table.Name+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	record := make([]string, len(table.Columns))

	for _, row := range table.Rows {
		if len(row) != len(table.Columns) {
			return fmt.Errorf("row has %d cells, table has %d columns", len(row), len(table.Columns))
		}
		for i, cell := range row {
			text, err := FormatCell(cell)
			if err != nil {
				return err
			}
			record[i] = text
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}

	return f.Close()
}

// FormatCell renders one cell the way Postgres COPY csv expects it. Nil is
// the NULL token, string slices become array literals, timestamps are
// RFC 3339 UTC.
func FormatCell(cell any) (string, error) {
	switch v := cell.(type) {
	case nil:
		return NullToken, nil
	case string:
		return v, nil
	case int:
		return strconv.Itoa(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case bool:
		return strconv.FormatBool(v), nil
	case uuid.UUID:
		return v.String(), nil
	case time.Time:
		return v.UTC().Format(time.RFC3339), nil
	case []string:
		return arrayLiteral(v), nil
	default:
		return "", fmt.Errorf("%w: %T", errUnsupportedCell, cell)
	}
}

// arrayLiteral renders a text[] value. Every element is double-quoted with
// backslashes and quotes escaped, which covers commas, braces and spaces in
// the element text. A nil slice is an empty array, not NULL; list columns
// in this dataset are never NULL.
func arrayLiteral(values []string) string {
	if len(values) == 0 {
		return "{}"
	}

	escaped := make([]string, len(values))
	for i, v := range values {
		v = strings.ReplaceAll(v, `\`, `\\`)
		v = strings.ReplaceAll(v, `"`, `\"`)
		escaped[i] = `"` + v + `"`
	}

	return "{" + strings.Join(escaped, ",") + "}"
}
