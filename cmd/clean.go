package cmd

import (
	"fmt"
	"os"

	"github.com/KaramelBytes/stockloom-cli/internal/clean"
	"github.com/spf13/cobra"
)

var (
	clnDelimiter  string
	clnSheetName  string
	clnSheetIndex int
	clnOutputPath string
	clnQuiet      bool
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file>",
	Short: "Validate and normalize an inventory file without analyzing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		raw, err := readRawTable(path, clnDelimiter, clnSheetName, clnSheetIndex)
		if err != nil {
			return err
		}
		var notices clean.Collector
		res, err := clean.Clean(raw, cleanOptions(c, &notices))
		printNotices(notices.Notices, clnQuiet)
		if err != nil {
			return err
		}
		t := res.Table()
		if clnOutputPath != "" {
			if err := t.WriteCSVFile(clnOutputPath); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote canonical table to %s\n", clnOutputPath)
			return nil
		}
		return t.WriteCSV(os.Stdout)
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
	cleanCmd.Flags().StringVar(&clnDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	cleanCmd.Flags().StringVar(&clnSheetName, "sheet-name", "", "XLSX: sheet name to clean")
	cleanCmd.Flags().IntVar(&clnSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	cleanCmd.Flags().StringVarP(&clnOutputPath, "output", "o", "", "optional path to write the canonical table (CSV); stdout if omitted")
	cleanCmd.Flags().BoolVar(&clnQuiet, "quiet", false, "suppress informational notices")
}
