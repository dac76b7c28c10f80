// Package wordlist loads word lists from delimited files.
package wordlist

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"strings"
)

const utf8BOM = "\ufeff"

type options struct {
	delimiter rune
}

// Option customizes how LoadColumn parses its input.
type Option func(*options)

// WithDelimiter sets the field delimiter. Zero keeps the default comma.
func WithDelimiter(r rune) Option {
	return func(o *options) {
		if r != 0 {
			o.delimiter = r
		}
	}
}

// LoadColumn reads the named column from a delimited file with a header row.
// Values are returned in row order; duplicates and empty cells are kept.
func LoadColumn(path, column string, opts ...Option) ([]string, error) {
	o := options{delimiter: ','}
	for _, opt := range opts {
		opt(&o)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, &DataAccessError{Path: path, Err: err}
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only input.
			_ = cerr
		}
	}()

	reader := csv.NewReader(file)
	reader.Comma = o.delimiter
	reader.ReuseRecord = true
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &SchemaError{Path: path, Column: column}
		}
		return nil, &DataAccessError{Path: path, Err: err}
	}
	idx := columnIndex(header, column)
	if idx < 0 {
		return nil, &SchemaError{Path: path, Column: column, Header: append([]string(nil), header...)}
	}

	words := []string{}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &DataAccessError{Path: path, Err: err}
		}
		words = append(words, record[idx])
	}
	return words, nil
}

func columnIndex(header []string, column string) int {
	for i, name := range header {
		if i == 0 {
			name = strings.TrimPrefix(name, utf8BOM)
		}
		if name == column {
			return i
		}
	}
	return -1
}
