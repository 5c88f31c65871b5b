// Package table provides the in-memory tabular model all audit processing
// runs over.
//
// Uploaded spreadsheets are parsed once into a Table (header plus string
// rows). Everything downstream, from validation through report export,
// works against that structure rather than the source file.
//
// # Reading
//
// ReadXLSX parses the first sheet of an .xlsx workbook. Only the first
// sheet is consulted; the ERP and scanner exports this tool consumes are
// single-sheet documents.
//
// # Writing
//
// Tables can be exported as comma-delimited text (WriteCSV) or as an .xlsx
// workbook (WriteXLSX) for the report download endpoints.
package table
