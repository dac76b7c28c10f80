package wordlist

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors matched by the typed loader errors via errors.Is.
var (
	// ErrDataAccess is returned when the input file is missing or unreadable.
	ErrDataAccess = errors.New("word list unreadable")

	// ErrSchema is returned when the requested column is not in the header.
	ErrSchema = errors.New("word list column missing")
)

// DataAccessError reports a missing or unreadable input file.
type DataAccessError struct {
	Path string
	Err  error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("failed to read word list %s: %v", e.Path, e.Err)
}

func (e *DataAccessError) Unwrap() error {
	return e.Err
}

// Is matches ErrDataAccess.
func (e *DataAccessError) Is(target error) bool {
	return target == ErrDataAccess
}

// SchemaError reports that the requested column is absent from the header.
type SchemaError struct {
	Path   string
	Column string
	Header []string
}

func (e *SchemaError) Error() string {
	if len(e.Header) == 0 {
		return fmt.Sprintf("column %q not found in %s: file has no header row", e.Column, e.Path)
	}
	return fmt.Sprintf("column %q not found in %s (available: %s)", e.Column, e.Path, strings.Join(e.Header, ", "))
}

// Is matches ErrSchema.
func (e *SchemaError) Is(target error) bool {
	return target == ErrSchema
}
