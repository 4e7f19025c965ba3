package serotab

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrUnsupportedFormat indicates the input extension is not a known
// delimited text or workbook format.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// ErrIndexFault indicates a cell was addressed outside its sheet while
// processing a file.
var ErrIndexFault = errors.New("index fault")

// ErrInternal indicates any other failure recovered while processing a sheet.
var ErrInternal = errors.New("internal error")

// ExtractionError records which stage failed, and on which sheet.
// SheetName is empty for delimited text input.
type ExtractionError struct {
	SheetName string
	Component string // "read" or "extract"
	Err       error
}

func (e *ExtractionError) Error() string {
	if e.SheetName == "" {
		return fmt.Sprintf("%s: %v", e.Component, e.Err)
	}
	return fmt.Sprintf("%s sheet %q: %v", e.Component, e.SheetName, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(sheetName, component string, err error) *ExtractionError {
	return &ExtractionError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
