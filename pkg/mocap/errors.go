package mocap

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidWorkbook indicates the input bytes are not a readable
// workbook.
var ErrInvalidWorkbook = errors.New("invalid workbook format")

// SheetError reports a failure while processing one sheet. The generic
// extraction path logs these and skips the sheet rather than failing
// the whole workbook.
type SheetError struct {
	SheetName string
	Stage     string // "grid", "header", "rows"
	Err       error
}

func (e *SheetError) Error() string {
	return fmt.Sprintf("sheet %q (%s): %v", e.SheetName, e.Stage, e.Err)
}

func (e *SheetError) Unwrap() error {
	return e.Err
}
