package audit

// Config maps the uploaded spreadsheets' column layout. Defaults match the
// ERP export and scanner reports this tool was built around; deployments
// with different exports override them via AUDIT_* environment variables.
// All column matching is case-insensitive.
type Config struct {
	// IdentifierColumn is the shared barcode/label column all three
	// files are joined on.
	IdentifierColumn string `mapstructure:"identifier_column" default:"Label No"`
	// QuantityColumn is the expected-quantity column of the stock file.
	QuantityColumn string `mapstructure:"quantity_column" default:"Pcs"`
	// DescriptionColumn names items in reports. Optional; when the
	// column is absent descriptions are left blank.
	DescriptionColumn string `mapstructure:"description_column" default:"Item Name"`
	// StatusColumn is the scanner's per-row status column. When a scan
	// report carries it, only rows marked with StatusFoundValue count as
	// scans. When absent from the sheet, every row counts.
	StatusColumn string `mapstructure:"status_column" default:"Stock Menu"`
	// StatusFoundValue marks a row as an actual scan.
	StatusFoundValue string `mapstructure:"status_found_value" default:"Found"`
}
