package importer

import (
	"fmt"
	"strings"
)

// Format identifies the physical spreadsheet layout an upload matched.
type Format string

const (
	// FormatStandard is a first-row-header sheet whose column names match
	// the canonical field names directly.
	FormatStandard Format = "standard"
	// FormatIconCMO is the fixed-position export layout of the IconCMO
	// church-management product, recognized by header text at known cell
	// positions.
	FormatIconCMO Format = "iconcmo"
)

// BatchError is a whole-upload precondition failure: nothing is persisted
// and the request fails with a client error.
type BatchError struct {
	Code    string
	Message string
}

func (e *BatchError) Error() string {
	return e.Message
}

var (
	ErrEmptyWorkbook = &BatchError{Code: "IMPORT_EMPTY_FILE", Message: "workbook contains no sheets or rows"}
	ErrNoDataRows    = &BatchError{Code: "IMPORT_NO_DATA", Message: "no data rows found"}
)

func TooManyRows(n, max int) *BatchError {
	return &BatchError{
		Code:    "IMPORT_TOO_MANY_ROWS",
		Message: fmt.Sprintf("file contains %d rows, maximum is %d", n, max),
	}
}

func MissingColumns(cols ...string) *BatchError {
	return &BatchError{
		Code:    "IMPORT_MISSING_COLUMNS",
		Message: "missing required columns: " + strings.Join(cols, ", "),
	}
}

func unreadableWorkbook(err error) *BatchError {
	return &BatchError{
		Code:    "IMPORT_UNREADABLE_FILE",
		Message: "could not read workbook: " + err.Error(),
	}
}

func layoutDrift(detail string) *BatchError {
	return &BatchError{
		Code:    "IMPORT_LAYOUT_DRIFT",
		Message: "unexpected layout: " + detail,
	}
}

// RowError is a per-row validation failure: the row is skipped or counted
// as an error and the batch continues.
type RowError struct {
	Field string
}

func (e *RowError) Error() string {
	return "missing required field: " + e.Field
}

func errMissingField(field string) error {
	return &RowError{Field: field}
}
