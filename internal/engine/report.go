package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/KaramelBytes/stockloom-cli/internal/utils"
)

// Report is a markdown-friendly rendering of an analysis run.
type Report struct {
	Name       string
	Thresholds Thresholds
	Records    []Record
	Stats      Stats
	Currency   string
	// SampleRows limits how many annotated rows the report includes.
	SampleRows int
}

// Markdown renders a compact inventory report suitable for terminals or
// standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[INVENTORY SUMMARY]\n")
	if r.Name != "" {
		fmt.Fprintf(&b, "File: %s\n", r.Name)
	}
	fmt.Fprintf(&b, "Products: %d\n", r.Stats.TotalProducts)
	fmt.Fprintf(&b, "Inventory value: %s\n", utils.FormatCurrency(r.Currency, r.Stats.TotalInventoryValue))
	fmt.Fprintf(&b, "Monthly turnover (annualized avg): %.2f\n", r.Stats.AverageTurnoverRatio)
	fmt.Fprintf(&b, "Velocity thresholds: slow %g, fast %g units/day\n", r.Thresholds.Slow, r.Thresholds.Fast)

	b.WriteString("\n[CATEGORIES]\n")
	for _, cat := range []Category{CategoryBestSelling, CategoryFastMoving, CategorySlowMoving} {
		cs, ok := r.Stats.Categories[cat]
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "- %s: %d products, stock %.0f (avg %.1f), value %s\n",
			cat, cs.Count, cs.TotalStock, cs.AvgStock, utils.FormatCurrency(r.Currency, cs.TotalValue))
	}

	b.WriteString("\n[REORDER RECOMMENDATIONS]\n")
	fmt.Fprintf(&b, "- Reorder Now: %d products (%s)\n",
		r.Stats.ReorderStatusCounts[ReorderNow], utils.FormatCurrency(r.Currency, r.Stats.ReorderNowValue))
	fmt.Fprintf(&b, "- Reorder Soon: %d products (%s)\n",
		r.Stats.ReorderStatusCounts[ReorderSoon], utils.FormatCurrency(r.Currency, r.Stats.ReorderSoonValue))
	fmt.Fprintf(&b, "- No Action Needed: %d products\n", r.Stats.ReorderStatusCounts[ReorderNoAction])
	fmt.Fprintf(&b, "- Total reorder value: %s\n", utils.FormatCurrency(r.Currency, r.Stats.TotalReorderValue))

	if r.Stats.CriticalStockCount > 0 || r.Stats.LowStockCount > 0 {
		b.WriteString("\n[STOCK ALERTS]\n")
		fmt.Fprintf(&b, "Critical (≤7 days): %d, Low (≤14 days): %d\n",
			r.Stats.CriticalStockCount, r.Stats.LowStockCount)
		critical := make([]Record, 0, r.Stats.CriticalStockCount)
		for _, rec := range r.Records {
			if rec.StockStatus == StockCritical {
				critical = append(critical, rec)
			}
		}
		sort.Slice(critical, func(i, j int) bool {
			if critical[i].DaysStockRemaining == critical[j].DaysStockRemaining {
				return critical[i].ID < critical[j].ID
			}
			return critical[i].DaysStockRemaining < critical[j].DaysStockRemaining
		})
		limit := 10
		if len(critical) < limit {
			limit = len(critical)
		}
		for i := 0; i < limit; i++ {
			c := critical[i]
			fmt.Fprintf(&b, "- %s (%s): %.0f in stock, %.1f days remaining, reorder %.0f\n",
				c.Name, c.ID, c.CurrentStock, c.DaysStockRemaining, c.ReorderQuantity)
		}
	}

	n := r.SampleRows
	if n <= 0 {
		n = 5
	}
	if n > len(r.Records) {
		n = len(r.Records)
	}
	if n > 0 {
		b.WriteString("\n[SAMPLE ROWS]\n")
		b.WriteString("| Product | Velocity | Category | Days Left | Reorder | Status |\n")
		b.WriteString("| --- | --- | --- | --- | --- | --- |\n")
		for i := 0; i < n; i++ {
			rec := r.Records[i]
			fmt.Fprintf(&b, "| %s | %.2f | %s | %.1f | %.0f | %s |\n",
				safeVal(rec.Name), rec.SalesVelocity, rec.Category,
				rec.DaysStockRemaining, rec.ReorderQuantity, rec.ReorderStatus)
		}
	}
	return b.String()
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}
