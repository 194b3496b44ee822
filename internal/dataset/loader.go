// Package dataset loads the raw plant table from a delimited text file.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"plantdash/internal/table"
)

// DefaultPath is the well-known location of the input file, relative to
// the running application.
const DefaultPath = "plants_processed.csv"

// ErrEmptyInput is returned when the input file has no header row.
var ErrEmptyInput = errors.New("input file contains no header row")

// MissingInputError reports that the input file does not exist at the
// expected location. It is the only fatal error the pipeline produces.
type MissingInputError struct {
	Path string
}

// Error implements the error interface.
func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s not found. Please place the file next to the application", e.Path)
}

// Load reads a comma-separated file into a raw table. Header names are
// taken as-is; the pipeline standardizes them later. Empty cells become
// missing values.
func Load(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &MissingInputError{Path: path}
		}

		return nil, fmt.Errorf("failed to open input file: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses comma-separated content into a raw table.
func Read(r io.Reader) (*table.Table, error) {
	cr := csv.NewReader(r)
	// Ragged rows happen in hand-edited exports; pad instead of failing.
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse input file: %w", err)
	}

	if len(records) == 0 {
		return nil, ErrEmptyInput
	}

	header := records[0]
	rows := records[1:]

	t := table.New()

	for col, name := range header {
		values := make([]table.Value, len(rows))

		for i, row := range rows {
			if col < len(row) {
				values[i] = table.Text(row[col])
			} else {
				values[i] = table.Missing()
			}
		}

		// Duplicate header names keep only the first occurrence.
		if err := t.AddColumn(name, values); err != nil && !errors.Is(err, table.ErrDuplicateName) {
			return nil, err
		}
	}

	return t, nil
}

// Fingerprint identifies a file's content cheaply by size and
// modification time. The memoizing loader uses it as its cache key.
type Fingerprint struct {
	Path    string
	Size    int64
	ModTime int64
}

// Stat returns the fingerprint of the file at path, or a
// MissingInputError when it does not exist.
func Stat(path string) (Fingerprint, error) {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Fingerprint{}, &MissingInputError{Path: path}
		}

		return Fingerprint{}, fmt.Errorf("failed to stat input file: %w", err)
	}

	return Fingerprint{Path: path, Size: info.Size(), ModTime: info.ModTime().UnixNano()}, nil
}
