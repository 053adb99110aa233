package engine

// CategoryStats aggregates stock and value per movement category.
type CategoryStats struct {
	Count      int     `json:"count"`
	TotalStock float64 `json:"total_stock"`
	AvgStock   float64 `json:"avg_stock"`
	TotalValue float64 `json:"total_value"`
	AvgValue   float64 `json:"avg_value"`
}

// Stats summarizes an analyzed table. It is derived on demand and never
// persisted alongside the records.
type Stats struct {
	TotalProducts          int                        `json:"total_products"`
	TotalInventoryValue    float64                    `json:"total_inventory_value"`
	TotalReorderValue      float64                    `json:"total_reorder_value"`
	Categories             map[Category]CategoryStats `json:"categories"`
	ReorderStatusCounts    map[ReorderStatus]int      `json:"reorder_status_counts"`
	AverageTurnoverRatio   float64                    `json:"average_turnover_ratio"`
	ProductsNeedingReorder int                        `json:"products_needing_reorder"`
	ReorderNowValue        float64                    `json:"reorder_now_value"`
	ReorderSoonValue       float64                    `json:"reorder_soon_value"`
	CriticalStockCount     int                        `json:"critical_stock_count"`
	LowStockCount          int                        `json:"low_stock_count"`
}

// Summarize aggregates an analyzed table.
func Summarize(records []Record) Stats {
	s := Stats{
		TotalProducts:       len(records),
		Categories:          map[Category]CategoryStats{},
		ReorderStatusCounts: map[ReorderStatus]int{},
	}
	if len(records) == 0 {
		return s
	}
	var turnoverSum float64
	for _, r := range records {
		s.TotalInventoryValue += r.InventoryValue
		s.TotalReorderValue += r.ReorderValue
		turnoverSum += r.TurnoverRatio

		cs := s.Categories[r.Category]
		cs.Count++
		cs.TotalStock += r.CurrentStock
		cs.TotalValue += r.InventoryValue
		s.Categories[r.Category] = cs

		s.ReorderStatusCounts[r.ReorderStatus]++
		switch r.ReorderStatus {
		case ReorderNow:
			s.ReorderNowValue += r.ReorderValue
			s.ProductsNeedingReorder++
		case ReorderSoon:
			s.ReorderSoonValue += r.ReorderValue
			s.ProductsNeedingReorder++
		}
		switch r.StockStatus {
		case StockCritical:
			s.CriticalStockCount++
		case StockLow:
			s.LowStockCount++
		}
	}
	for cat, cs := range s.Categories {
		cs.AvgStock = cs.TotalStock / float64(cs.Count)
		cs.AvgValue = cs.TotalValue / float64(cs.Count)
		s.Categories[cat] = cs
	}
	s.AverageTurnoverRatio = turnoverSum / float64(len(records))
	return s
}
