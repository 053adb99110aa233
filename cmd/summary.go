package cmd

import (
	"fmt"
	"sort"

	"github.com/KaramelBytes/stockloom-cli/internal/clean"
	"github.com/KaramelBytes/stockloom-cli/internal/engine"
	"github.com/KaramelBytes/stockloom-cli/internal/utils"
	"github.com/spf13/cobra"
)

var (
	sumSlow       float64
	sumFast       float64
	sumDelimiter  string
	sumSheetName  string
	sumSheetIndex int
)

var summaryCmd = &cobra.Command{
	Use:   "summary <file>",
	Short: "Print aggregate inventory statistics only",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		th, err := thresholdsFrom(cmd, c, sumSlow, sumFast)
		if err != nil {
			return err
		}
		raw, err := readRawTable(path, sumDelimiter, sumSheetName, sumSheetIndex)
		if err != nil {
			return err
		}
		var notices clean.Collector
		res, err := clean.Clean(raw, cleanOptions(c, &notices))
		printNotices(notices.Notices, true)
		if err != nil {
			return err
		}
		stats := engine.Summarize(engine.Analyze(res.Products, th))

		fmt.Printf("Products: %d\n", stats.TotalProducts)
		fmt.Printf("Inventory value: %s\n", utils.FormatCurrency(c.Currency, stats.TotalInventoryValue))
		fmt.Printf("Reorder value: %s\n", utils.FormatCurrency(c.Currency, stats.TotalReorderValue))
		fmt.Printf("Average turnover ratio: %.2f\n", stats.AverageTurnoverRatio)
		fmt.Printf("Needing reorder: %d (now: %d, soon: %d)\n",
			stats.ProductsNeedingReorder,
			stats.ReorderStatusCounts[engine.ReorderNow],
			stats.ReorderStatusCounts[engine.ReorderSoon])
		fmt.Printf("Stock alerts: %d critical, %d low\n", stats.CriticalStockCount, stats.LowStockCount)

		cats := make([]string, 0, len(stats.Categories))
		for cat := range stats.Categories {
			cats = append(cats, string(cat))
		}
		sort.Strings(cats)
		for _, cat := range cats {
			cs := stats.Categories[engine.Category(cat)]
			fmt.Printf("- %s: %d products, avg stock %.1f, value %s\n",
				cat, cs.Count, cs.AvgStock, utils.FormatCurrency(c.Currency, cs.TotalValue))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
	summaryCmd.Flags().Float64Var(&sumSlow, "slow", 1.0, "slow-moving threshold in units/day (overrides config)")
	summaryCmd.Flags().Float64Var(&sumFast, "fast", 5.0, "fast-moving threshold in units/day (overrides config)")
	summaryCmd.Flags().StringVar(&sumDelimiter, "delimiter", "", "CSV delimiter: ',' | ';' | 'tab'")
	summaryCmd.Flags().StringVar(&sumSheetName, "sheet-name", "", "XLSX: sheet name to analyze")
	summaryCmd.Flags().IntVar(&sumSheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}
