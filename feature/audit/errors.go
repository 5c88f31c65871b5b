package audit

import "fmt"

// Validation errors carry the upload role ("stock", "barcode", "label")
// so the user knows which file to fix. None of them are retried; the user
// re-uploads a corrected file.

// MissingColumnError reports a required column absent from an upload.
type MissingColumnError struct {
	File   string
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s: missing required column %q", e.File, e.Column)
}

// InvalidColumnError reports a present column with unusable content,
// e.g. blank identifiers.
type InvalidColumnError struct {
	File   string
	Column string
	Reason string
}

func (e *InvalidColumnError) Error() string {
	return fmt.Sprintf("%s: column %q %s", e.File, e.Column, e.Reason)
}

// EmptyFileError reports an upload with no usable data rows.
type EmptyFileError struct {
	File string
}

func (e *EmptyFileError) Error() string {
	return fmt.Sprintf("%s: file contains no data", e.File)
}

// UnreadableFileError reports an upload that could not be parsed as a
// spreadsheet at all.
type UnreadableFileError struct {
	File string
	Err  error
}

func (e *UnreadableFileError) Error() string {
	return fmt.Sprintf("%s: unreadable spreadsheet: %v", e.File, e.Err)
}

func (e *UnreadableFileError) Unwrap() error {
	return e.Err
}
