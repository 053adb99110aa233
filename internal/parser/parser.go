// Package parser turns raw inventory files into generic tables. Format
// detection is by filename; the cleaner downstream is format-agnostic.
package parser

import (
	"errors"
	"strings"

	"github.com/KaramelBytes/stockloom-cli/internal/table"
)

// Parser defines a tabular file parser implementation.
type Parser interface {
	CanParse(filename string) bool
	Parse(path string) (*table.Table, error)
}

var registry []Parser

// Register adds a parser implementation to the registry.
func Register(p Parser) {
	registry = append(registry, p)
}

// ParseFile selects a parser based on filename and returns the raw table.
func ParseFile(path string) (*table.Table, error) {
	for _, p := range registry {
		if p.CanParse(path) {
			return p.Parse(path)
		}
	}
	return nil, ErrUnsupported
}

// Supported reports whether any registered parser handles the filename.
func Supported(filename string) bool {
	for _, p := range registry {
		if p.CanParse(filename) {
			return true
		}
	}
	return false
}

func init() {
	Register(csvParser{})
	Register(xlsxParser{})
}

func hasSuffix(filename string, suffixes ...string) bool {
	name := strings.ToLower(filename)
	for _, s := range suffixes {
		if strings.HasSuffix(name, s) {
			return true
		}
	}
	return false
}

// ErrUnsupported indicates a file format is not supported.
var ErrUnsupported = errors.New("unsupported file format (use .csv, .tsv or .xlsx)")
