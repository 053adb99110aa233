package cmd

import (
	"fmt"

	"github.com/KaramelBytes/stockloom-cli/internal/report"
	"github.com/spf13/cobra"
)

var reportsCmd = &cobra.Command{
	Use:   "reports",
	Short: "List saved analysis reports",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		runs, err := report.List(c.ReportsDir)
		if err != nil {
			return err
		}
		if len(runs) == 0 {
			fmt.Println("(no reports)")
			return nil
		}
		for _, r := range runs {
			fmt.Printf("- %s  %s  %s  (%d products, %d need reorder)\n",
				r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Source,
				r.Products, r.Stats.ProductsNeedingReorder)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportsCmd)
}
