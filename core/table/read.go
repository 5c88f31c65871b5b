package table

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ReadXLSX parses the first sheet of an .xlsx document into a Table.
// The first non-blank row becomes the header; fully blank data rows are
// skipped (exports frequently carry ghost rows below the data).
// A workbook without any cells returns ErrNoContent.
func ReadXLSX(r io.Reader, name string) (*Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrNoContent)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	t := &Table{Name: name}
	for _, row := range rows {
		if blankRow(row) {
			continue
		}
		if t.Columns == nil {
			t.Columns = row
			continue
		}
		t.Rows = append(t.Rows, row)
	}

	if t.Columns == nil {
		return nil, fmt.Errorf("%s: %w", name, ErrNoContent)
	}
	return t, nil
}
