package audit_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildXLSX produces an in-memory single-sheet workbook, row 1 first.
func buildXLSX(t *testing.T, rows [][]any) []byte {
	t.Helper()
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for r, row := range rows {
		for c, val := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, val))
		}
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

// stockXLSX builds a stock export in the default column layout.
func stockXLSX(t *testing.T, items ...[]any) []byte {
	t.Helper()
	rows := [][]any{{"Label No", "Item Name", "Pcs"}}
	rows = append(rows, items...)
	return buildXLSX(t, rows)
}

// scanXLSX builds a scan report in the default column layout.
func scanXLSX(t *testing.T, scans ...[]any) []byte {
	t.Helper()
	rows := [][]any{{"Stock Menu", "Label No"}}
	rows = append(rows, scans...)
	return buildXLSX(t, rows)
}
