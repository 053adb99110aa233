package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/KaramelBytes/stockloom-cli/internal/clean"
	cfgpkg "github.com/KaramelBytes/stockloom-cli/internal/config"
	"github.com/KaramelBytes/stockloom-cli/internal/engine"
	"github.com/KaramelBytes/stockloom-cli/internal/parser"
	"github.com/KaramelBytes/stockloom-cli/internal/table"
	"github.com/spf13/cobra"
)

// readRawTable loads a raw inventory file, honoring the delimiter and sheet
// flags where they apply.
func readRawTable(path, delimiter, sheetName string, sheetIndex int) (*table.Table, error) {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return parser.ParseXLSXFile(path, sheetName, sheetIndex)
	}
	if delimiter != "" {
		var d rune
		switch delimiter {
		case ",":
			d = ','
		case ";":
			d = ';'
		case "\t", "tab":
			d = '\t'
		default:
			return nil, fmt.Errorf("unsupported --delimiter: %s", delimiter)
		}
		return parser.ParseCSVFile(path, d)
	}
	return parser.ParseFile(path)
}

// printNotices renders cleaning notices: warnings and errors to stderr,
// informational messages to stdout unless quiet.
func printNotices(notices []clean.Notice, quiet bool) {
	for _, n := range notices {
		switch n.Level {
		case clean.LevelWarning:
			fmt.Fprintf(os.Stderr, "⚠ %s\n", n.Message)
		case clean.LevelError:
			fmt.Fprintf(os.Stderr, "✗ %s\n", n.Message)
		default:
			if !quiet {
				fmt.Printf("✓ %s\n", n.Message)
			}
		}
	}
}

// thresholdsFrom merges configured thresholds with per-command flag
// overrides and validates the pair before any analysis runs.
func thresholdsFrom(cmd *cobra.Command, c *cfgpkg.Global, slow, fast float64) (engine.Thresholds, error) {
	th := engine.Thresholds{Slow: c.SlowThreshold, Fast: c.FastThreshold}
	if cmd.Flags().Changed("slow") {
		th.Slow = slow
	}
	if cmd.Flags().Changed("fast") {
		th.Fast = fast
	}
	if err := th.Validate(); err != nil {
		return th, err
	}
	return th, nil
}

// sampleRowsOrDefault prefers an explicit --sample-rows flag over the
// configured default.
func sampleRowsOrDefault(c *cfgpkg.Global, cmd *cobra.Command, flag int) int {
	if cmd.Flags().Changed("sample-rows") {
		return flag
	}
	return c.SampleRows
}

func cleanOptions(c *cfgpkg.Global, rep clean.Reporter) clean.Options {
	opt := clean.DefaultOptions()
	opt.LeadTimeDefault = c.DefaultLeadTimeDays
	opt.Reporter = rep
	return opt
}
