package cmd

import (
	"fmt"

	"github.com/KaramelBytes/stockloom-cli/internal/table"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template [path]",
	Short: "Write a sample inventory CSV showing the expected columns",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "inventory_template.csv"
		if len(args) == 1 {
			path = args[0]
		}
		t := table.New([]string{
			"Product_ID", "Product_Name", "Current_Stock",
			"Sales_Last_30_Days", "Unit_Cost", "Lead_Time_Days",
		})
		t.AppendRow([]string{"SKU001", "Widget A", "150", "120", "12.50", "14"})
		t.AppendRow([]string{"SKU002", "Gadget B", "75", "45", "25.00", "21"})
		t.AppendRow([]string{"SKU003", "Tool C", "200", "180", "8.75", "10"})
		t.AppendRow([]string{"SKU004", "Device D", "25", "60", "45.00", "30"})
		t.AppendRow([]string{"SKU005", "Component E", "300", "90", "15.25", "7"})
		if err := t.WriteCSVFile(path); err != nil {
			return err
		}
		fmt.Printf("✓ Wrote sample template to %s\n", path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
}
