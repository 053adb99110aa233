package engine

import (
	"strconv"

	"github.com/KaramelBytes/stockloom-cli/internal/table"
)

// derivedColumns lists the engine's columns in derivation order.
var derivedColumns = []string{
	"Sales_Velocity", "Category", "Days_Stock_Remaining", "Stock_Status",
	"Reorder_Point", "Reorder_Quantity", "Reorder_Status",
	"Inventory_Value", "Reorder_Value", "Monthly_Sales_Value", "Turnover_Ratio",
}

// TableOf renders analyzed records into a generic table for export:
// canonical columns, then derived columns, then pass-through columns.
func TableOf(records []Record, extraHeaders []string) *table.Table {
	headers := []string{
		"Product_ID", "Product_Name", "Current_Stock",
		"Sales_Last_30_Days", "Unit_Cost", "Lead_Time_Days",
	}
	headers = append(headers, derivedColumns...)
	headers = append(headers, extraHeaders...)
	t := table.New(headers)
	for _, r := range records {
		row := []string{
			r.ID,
			r.Name,
			fmtFloat(r.CurrentStock),
			fmtFloat(r.SalesLast30Days),
			fmtFloat(r.UnitCost),
			fmtFloat(r.LeadTimeDays),
			fmtFloat(r.SalesVelocity),
			string(r.Category),
			fmtFloat(r.DaysStockRemaining),
			string(r.StockStatus),
			fmtFloat(r.ReorderPoint),
			fmtFloat(r.ReorderQuantity),
			string(r.ReorderStatus),
			fmtFloat(r.InventoryValue),
			fmtFloat(r.ReorderValue),
			fmtFloat(r.MonthlySalesValue),
			fmtFloat(r.TurnoverRatio),
		}
		for _, h := range extraHeaders {
			row = append(row, r.Extra[h])
		}
		t.AppendRow(row)
	}
	return t
}

func fmtFloat(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }
