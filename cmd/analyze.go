package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/stockloom-cli/internal/clean"
	"github.com/KaramelBytes/stockloom-cli/internal/engine"
	"github.com/KaramelBytes/stockloom-cli/internal/report"
	"github.com/spf13/cobra"
)

var (
	anaSlow       float64
	anaFast       float64
	anaDelimiter  string
	anaSheetName  string
	anaSheetIndex int
	anaOutputPath string
	anaSaveReport bool
	anaSampleRows int
	anaQuiet      bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Clean and analyze an inventory file, printing the full report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		th, err := thresholdsFrom(cmd, c, anaSlow, anaFast)
		if err != nil {
			return err
		}

		raw, err := readRawTable(path, anaDelimiter, anaSheetName, anaSheetIndex)
		if err != nil {
			return err
		}
		var notices clean.Collector
		res, err := clean.Clean(raw, cleanOptions(c, &notices))
		printNotices(notices.Notices, anaQuiet)
		if err != nil {
			return err
		}

		records := engine.Analyze(res.Products, th)
		stats := engine.Summarize(records)

		written := false
		if anaOutputPath != "" {
			t := engine.TableOf(records, res.ExtraHeaders)
			if err := t.WriteCSVFile(anaOutputPath); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote annotated table to %s\n", anaOutputPath)
			written = true
		}
		if anaSaveReport {
			run := report.NewRun(filepath.Base(path), th)
			run.Products = len(records)
			run.Notices = notices.Notices
			run.Stats = stats
			saved, err := run.Save(c.ReportsDir)
			if err != nil {
				return err
			}
			fmt.Printf("✓ Saved report %s\n", saved)
			written = true
		}
		if !written || !anaQuiet {
			rep := engine.Report{
				Name:       filepath.Base(path),
				Thresholds: th,
				Records:    records,
				Stats:      stats,
				Currency:   c.Currency,
				SampleRows: sampleRowsOrDefault(c, cmd, anaSampleRows),
			}
			fmt.Println(rep.Markdown())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().Float64Var(&anaSlow, "slow", 1.0, "slow-moving threshold in units/day (overrides config)")
	analyzeCmd.Flags().Float64Var(&anaFast, "fast", 5.0, "fast-moving threshold in units/day (overrides config)")
	analyzeCmd.Flags().StringVar(&anaDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	analyzeCmd.Flags().StringVar(&anaSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	analyzeCmd.Flags().IntVar(&anaSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
	analyzeCmd.Flags().StringVarP(&anaOutputPath, "output", "o", "", "optional path to write the annotated table (CSV)")
	analyzeCmd.Flags().BoolVar(&anaSaveReport, "report", false, "save a JSON run report under the reports dir")
	analyzeCmd.Flags().IntVar(&anaSampleRows, "sample-rows", 5, "number of sample rows to include in the report")
	analyzeCmd.Flags().BoolVar(&anaQuiet, "quiet", false, "suppress the markdown report when writing files")
}
