package models

import (
	"fmt"

	"audit-manager/core/table"
)

// ScanSource identifies which audit report a scan came from. The two
// reports key the same physical items by competing barcode schemes.
type ScanSource string

const (
	// SourceOldBarcode is the audit report mapped with old barcode numbers.
	SourceOldBarcode ScanSource = "old-barcode"
	// SourceLabelNumber is the audit report mapped with label numbers.
	SourceLabelNumber ScanSource = "label-number"
)

// StockItem is one row of the ERP stock export. Loaded once per audit
// session and read-only thereafter.
type StockItem struct {
	// Identifier is the barcode/label number as it appears in the export.
	Identifier string `json:"identifier"`
	// Normalized is the identifier after trim + uppercase, the form all
	// matching runs on.
	Normalized string `json:"-"`
	// Description is the item's display name, when the export carries one.
	Description string `json:"description"`
	// ExpectedQty is the quantity the ERP believes exists.
	ExpectedQty int `json:"expected_qty"`
}

// ScanRecord is one physical scan from an audit report. Multiple records
// may reference the same identifier (duplicate scans).
type ScanRecord struct {
	Identifier string     `json:"identifier"`
	Normalized string     `json:"-"`
	Source     ScanSource `json:"source"`
}

// FoundItem is a stock item matched by at least one scan.
type FoundItem struct {
	Identifier  string       `json:"identifier"`
	Description string       `json:"description"`
	ExpectedQty int          `json:"expected_qty"`
	ScanCount   int          `json:"scan_count"`
	Sources     []ScanSource `json:"sources"`
}

// MissingItem is a stock item with no matching scan in either report.
type MissingItem struct {
	Identifier  string `json:"identifier"`
	Description string `json:"description"`
	ExpectedQty int    `json:"expected_qty"`
}

// DuplicateScan flags an identifier scanned more than once across
// either or both reports. It is an overlay over the found/missing
// partition, not part of it.
type DuplicateScan struct {
	Identifier string       `json:"identifier"`
	Count      int          `json:"count"`
	Sources    []ScanSource `json:"sources"`
}

// Summary carries the aggregate counts shown after processing.
type Summary struct {
	TotalStock      int     `json:"total_stock"`
	TotalScanned    int     `json:"total_scanned"`
	Found           int     `json:"found"`
	Missing         int     `json:"missing"`
	Duplicates      int     `json:"duplicates"`
	FoundPercentage float64 `json:"found_percentage"`
}

// ResultSet is the complete output of one reconciliation run. Every stock
// identifier appears in exactly one of Found/Missing.
type ResultSet struct {
	Found      []FoundItem     `json:"found"`
	Missing    []MissingItem   `json:"missing"`
	Duplicates []DuplicateScan `json:"duplicates"`
	Summary    Summary         `json:"summary"`
}

// Report names accepted by the download endpoints.
const (
	ReportFound      = "found"
	ReportMissing    = "missing"
	ReportDuplicates = "duplicates"
)

// Report renders the named report as a table, or false for an unknown name.
func (r *ResultSet) Report(name string) (*table.Table, bool) {
	switch name {
	case ReportFound:
		return r.foundTable(), true
	case ReportMissing:
		return r.missingTable(), true
	case ReportDuplicates:
		return r.duplicatesTable(), true
	default:
		return nil, false
	}
}

func (r *ResultSet) foundTable() *table.Table {
	t := table.New(ReportFound, []string{"Identifier", "Description", "Expected Qty", "Scan Count", "Sources"})
	for _, item := range r.Found {
		t.Append(item.Identifier, item.Description,
			fmt.Sprint(item.ExpectedQty), fmt.Sprint(item.ScanCount), joinSources(item.Sources))
	}
	return t
}

func (r *ResultSet) missingTable() *table.Table {
	t := table.New(ReportMissing, []string{"Identifier", "Description", "Expected Qty"})
	for _, item := range r.Missing {
		t.Append(item.Identifier, item.Description, fmt.Sprint(item.ExpectedQty))
	}
	return t
}

func (r *ResultSet) duplicatesTable() *table.Table {
	t := table.New(ReportDuplicates, []string{"Identifier", "Count", "Sources"})
	for _, dup := range r.Duplicates {
		t.Append(dup.Identifier, fmt.Sprint(dup.Count), joinSources(dup.Sources))
	}
	return t
}

func joinSources(sources []ScanSource) string {
	out := ""
	for i, s := range sources {
		if i > 0 {
			out += ","
		}
		out += string(s)
	}
	return out
}
