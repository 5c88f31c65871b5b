package table

import (
	"errors"
	"strings"
)

// ErrNoContent is returned when a spreadsheet parses successfully but
// contains no cells at all, not even a header row.
var ErrNoContent = errors.New("sheet contains no cells")

// Table is an in-memory tabular dataset: one header row plus zero or more
// data rows, all cells as strings. Rows may be ragged (shorter than the
// header) because xlsx readers drop trailing empty cells.
type Table struct {
	// Name identifies the table in logs and error messages,
	// typically the upload role ("stock", "barcode", ...).
	Name string

	// Columns is the header row with original cell text.
	Columns []string

	// Rows holds the data rows.
	Rows [][]string
}

// New creates an empty table with the given name and header.
func New(name string, columns []string) *Table {
	return &Table{Name: name, Columns: columns}
}

// Append adds a data row.
func (t *Table) Append(row ...string) {
	t.Rows = append(t.Rows, row)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex finds a column by name, matching case-insensitively after
// trimming whitespace. Returns -1 when the column is absent.
func (t *Table) ColumnIndex(name string) int {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, col := range t.Columns {
		if strings.ToLower(strings.TrimSpace(col)) == want {
			return i
		}
	}
	return -1
}

// Cell returns the cell at idx from a possibly ragged row.
// Out-of-range access yields an empty string.
func Cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// blankRow reports whether every cell of a row is empty or whitespace.
func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
