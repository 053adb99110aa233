package clean

import (
	"math"
	"strconv"

	"github.com/KaramelBytes/stockloom-cli/internal/table"
)

// Table renders the cleaned records back into a generic table: canonical
// columns first, pass-through columns after, one row per product.
func (res *Result) Table() *table.Table {
	headers := []string{
		ColProductID, ColProductName, ColCurrentStock,
		ColSalesLast30Days, ColUnitCost, ColLeadTimeDays,
	}
	headers = append(headers, res.ExtraHeaders...)
	t := table.New(headers)
	for _, p := range res.Products {
		row := []string{
			p.ID,
			p.Name,
			formatFloat(p.CurrentStock),
			formatFloat(p.SalesLast30Days),
			formatFloat(p.UnitCost),
			formatFloat(p.LeadTimeDays),
		}
		for _, h := range res.ExtraHeaders {
			row = append(row, p.Extra[h])
		}
		t.AppendRow(row)
	}
	return t
}

// formatFloat renders a float with minimal digits; NaN becomes an empty cell.
func formatFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
