// Package table provides a generic in-memory table of named columns. It is
// the interchange format between file parsers, the cleaner, and CSV export:
// all cells are strings, typing is the cleaner's concern.
package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Table holds a header row and data rows. Rows may be shorter than the
// header; missing cells read as empty strings.
type Table struct {
	Headers []string
	Rows    [][]string
}

// New constructs a table with the given headers.
func New(headers []string) *Table {
	return &Table{Headers: headers}
}

// ColumnIndex returns the index of the named column, or -1 if absent.
// Matching is exact and case-sensitive.
func (t *Table) ColumnIndex(name string) int {
	for i, h := range t.Headers {
		if h == name {
			return i
		}
	}
	return -1
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(name string) bool { return t.ColumnIndex(name) >= 0 }

// Cell returns the cell at (row, col), or "" when the row is short.
func (t *Table) Cell(row, col int) string {
	if col < 0 || row < 0 || row >= len(t.Rows) {
		return ""
	}
	r := t.Rows[row]
	if col >= len(r) {
		return ""
	}
	return r[col]
}

// AppendRow adds a data row, padding it to the header width.
func (t *Table) AppendRow(row []string) {
	if len(row) < len(t.Headers) {
		tmp := make([]string, len(t.Headers))
		copy(tmp, row)
		row = tmp
	}
	t.Rows = append(t.Rows, row)
}

// ReadCSV reads a CSV/TSV file into a Table. If delim is 0 the delimiter is
// sniffed from the extension (.tsv means tab, everything else comma).
func ReadCSV(path string, delim rune) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open csv: %w", err)
	}
	defer f.Close()
	if delim == 0 {
		delim = sniffDelimiter(path)
	}
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	r.Comma = delim

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Table{}, nil
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	t := New(header)
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", len(t.Rows)+1, err)
		}
		row := make([]string, len(rec))
		copy(row, rec)
		t.AppendRow(row)
	}
	return t, nil
}

// WriteCSV writes the table as UTF-8 CSV: header first, comma-separated rows,
// fields quoted only when they contain the delimiter, quotes, or newlines.
func (t *Table) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, row := range t.Rows {
		out := row
		if len(out) < len(t.Headers) {
			tmp := make([]string, len(t.Headers))
			copy(tmp, out)
			out = tmp
		}
		if err := cw.Write(out[:len(t.Headers)]); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile writes the table to path, creating or truncating it.
func (t *Table) WriteCSVFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()
	return t.WriteCSV(f)
}

func sniffDelimiter(path string) rune {
	name := strings.ToLower(path)
	if strings.HasSuffix(name, ".tsv") {
		return '\t'
	}
	// Default to comma; filename heuristic only, to avoid reading twice.
	return ','
}
