package ingestion

import (
	"errors"
	"fmt"
	"strings"
)

var (
	errEmptyValue    = errors.New("empty value")
	errNegativeValue = errors.New("negative value")
	errOutOfRange    = errors.New("value out of float64 range")
	errUnknownDate   = errors.New("unrecognized date format")
)

// SchemaError reports required columns absent from the source header.
// Nothing can be rendered without them, so it is fatal at startup.
type SchemaError struct {
	Missing []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Missing, ", "))
}

// MalformedRecordError reports a row whose value in Column could not be
// normalized. Line is 1-based and counts the header.
type MalformedRecordError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: invalid %s %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }
