package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/KaramelBytes/stockloom-cli/internal/config"
	"github.com/KaramelBytes/stockloom-cli/internal/engine"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set StockLoom configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		fmt.Printf("slow_threshold: %g\n", c.SlowThreshold)
		fmt.Printf("fast_threshold: %g\n", c.FastThreshold)
		fmt.Printf("default_lead_time_days: %g\n", c.DefaultLeadTimeDays)
		fmt.Printf("currency: %s\n", c.Currency)
		fmt.Printf("sample_rows: %d\n", c.SampleRows)
		fmt.Printf("reports_dir: %s\n", c.ReportsDir)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		c, err := ensureConfig()
		if err != nil {
			return err
		}
		switch key {
		case "slow_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for slow_threshold: %w", err)
			}
			th := engine.Thresholds{Slow: f, Fast: c.FastThreshold}
			if err := th.Validate(); err != nil {
				return err
			}
			c.SlowThreshold = f
		case "fast_threshold":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil {
				return fmt.Errorf("invalid float for fast_threshold: %w", err)
			}
			th := engine.Thresholds{Slow: c.SlowThreshold, Fast: f}
			if err := th.Validate(); err != nil {
				return err
			}
			c.FastThreshold = f
		case "default_lead_time_days":
			f, err := strconv.ParseFloat(val, 64)
			if err != nil || f < 1 {
				return fmt.Errorf("invalid value for default_lead_time_days: %v (must be >= 1)", val)
			}
			c.DefaultLeadTimeDays = f
		case "currency":
			c.Currency = val
		case "sample_rows":
			i, err := strconv.Atoi(val)
			if err != nil || i < 0 {
				return fmt.Errorf("invalid int for sample_rows: %v", val)
			}
			c.SampleRows = i
		case "reports_dir":
			c.ReportsDir = val
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
		if err := cfgpkg.Save(c, cfgFile); err != nil {
			return err
		}
		fmt.Println("Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
