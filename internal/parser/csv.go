package parser

import (
	"github.com/KaramelBytes/stockloom-cli/internal/table"
)

type csvParser struct{}

func (csvParser) CanParse(filename string) bool {
	return hasSuffix(filename, ".csv", ".tsv")
}

func (csvParser) Parse(path string) (*table.Table, error) {
	return table.ReadCSV(path, 0)
}

// ParseCSVFile reads a CSV/TSV file with an explicit delimiter (0 = sniff).
func ParseCSVFile(path string, delim rune) (*table.Table, error) {
	return table.ReadCSV(path, delim)
}
