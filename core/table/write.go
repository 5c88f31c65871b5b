package table

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// WriteCSV encodes the table as comma-delimited text, header first.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Columns); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteXLSX encodes the table as a single-sheet .xlsx workbook.
func (t *Table) WriteXLSX(w io.Writer) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	if err := writeRow(f, sheet, 1, t.Columns); err != nil {
		return err
	}
	for i, row := range t.Rows {
		if err := writeRow(f, sheet, i+2, row); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func writeRow(f *excelize.File, sheet string, rowNo int, cells []string) error {
	for i, val := range cells {
		cell, err := excelize.CoordinatesToCellName(i+1, rowNo)
		if err != nil {
			return fmt.Errorf("cell coordinate (%d,%d): %w", i+1, rowNo, err)
		}
		if err := f.SetCellValue(sheet, cell, val); err != nil {
			return err
		}
	}
	return nil
}
