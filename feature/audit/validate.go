package audit

import (
	"strings"

	"audit-manager/core/table"
)

// Validator checks uploaded tables against the column layout before any
// reconciliation runs. A failure halts the pipeline with no partial output.
type Validator struct {
	cfg Config
}

// NewValidator creates a validator for the configured column layout.
func NewValidator(cfg Config) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateStock checks the ERP stock export: identifier and quantity
// columns present, at least one data row, no blank identifiers.
func (v *Validator) ValidateStock(t *table.Table) error {
	if t.Len() == 0 {
		return &EmptyFileError{File: t.Name}
	}

	idIdx := t.ColumnIndex(v.cfg.IdentifierColumn)
	if idIdx < 0 {
		return &MissingColumnError{File: t.Name, Column: v.cfg.IdentifierColumn}
	}
	if t.ColumnIndex(v.cfg.QuantityColumn) < 0 {
		return &MissingColumnError{File: t.Name, Column: v.cfg.QuantityColumn}
	}

	for _, row := range t.Rows {
		if strings.TrimSpace(table.Cell(row, idIdx)) == "" {
			return &InvalidColumnError{
				File:   t.Name,
				Column: v.cfg.IdentifierColumn,
				Reason: "contains blank identifiers",
			}
		}
	}
	return nil
}

// ValidateScan checks an audit scan report: identifier column present and
// non-blank on every counted row. Zero data rows is a valid "nothing
// scanned yet" state, so emptiness is not an error here.
//
// When the report carries the status column, only rows marked as found are
// counted; blank identifiers on rows the status filter drops are ignored,
// matching how the scanner emits placeholder rows for unscanned slots.
func (v *Validator) ValidateScan(t *table.Table) error {
	idIdx := t.ColumnIndex(v.cfg.IdentifierColumn)
	if idIdx < 0 {
		return &MissingColumnError{File: t.Name, Column: v.cfg.IdentifierColumn}
	}

	statusIdx := t.ColumnIndex(v.cfg.StatusColumn)
	for _, row := range t.Rows {
		if !v.statusCounts(row, statusIdx) {
			continue
		}
		if strings.TrimSpace(table.Cell(row, idIdx)) == "" {
			return &InvalidColumnError{
				File:   t.Name,
				Column: v.cfg.IdentifierColumn,
				Reason: "contains blank identifiers",
			}
		}
	}
	return nil
}

// statusCounts reports whether a scan row passes the status filter.
// statusIdx < 0 means the sheet has no status column and every row counts.
func (v *Validator) statusCounts(row []string, statusIdx int) bool {
	if statusIdx < 0 {
		return true
	}
	status := strings.TrimSpace(table.Cell(row, statusIdx))
	return strings.EqualFold(status, v.cfg.StatusFoundValue)
}
