// Package engine derives operational signals from cleaned inventory records:
// sales velocity, movement category, stock depletion metrics, reorder
// recommendations and financial value metrics. Analyze is a pure function of
// its inputs; rerunning it with identical records and thresholds yields
// identical output, and the input slice is never modified.
package engine

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/stockloom-cli/internal/clean"
)

// Category classifies a product by sales velocity. "Fast Moving" sits
// strictly below "Best Selling"; the naming is historical and must not be
// reordered.
type Category string

const (
	CategoryBestSelling Category = "Best Selling"
	CategoryFastMoving  Category = "Fast Moving"
	CategorySlowMoving  Category = "Slow Moving"
)

// StockStatus grades how soon current stock runs out.
type StockStatus string

const (
	StockCritical StockStatus = "Critical"
	StockLow      StockStatus = "Low"
	StockNormal   StockStatus = "Normal"
	StockHigh     StockStatus = "High"
)

// ReorderStatus is the replenishment recommendation for a product.
type ReorderStatus string

const (
	ReorderNow      ReorderStatus = "Reorder Now"
	ReorderSoon     ReorderStatus = "Reorder Soon"
	ReorderNoAction ReorderStatus = "No Action Needed"
)

const (
	// daysInWindow is the aggregation window of the sales input.
	daysInWindow = 30
	// safetyStockDays is the fixed safety buffer added to lead time demand.
	safetyStockDays = 7
	// NoDepletionDays marks products that never deplete at current velocity
	// (zero sales). It is a sentinel, not an error.
	NoDepletionDays = 999

	defaultLeadTimeDays = 14
)

// Thresholds are the velocity boundaries (units/day) between movement
// categories.
type Thresholds struct {
	Slow float64
	Fast float64
}

// DefaultThresholds mirrors the standard dashboard defaults.
func DefaultThresholds() Thresholds { return Thresholds{Slow: 1.0, Fast: 5.0} }

// Validate rejects threshold pairs the classification chain was not designed
// for. The engine itself accepts any pair; callers are expected to validate
// at the boundary.
func (t Thresholds) Validate() error {
	if t.Slow <= 0 {
		return fmt.Errorf("slow threshold must be > 0, got %g", t.Slow)
	}
	if t.Fast <= t.Slow {
		return fmt.Errorf("fast threshold (%g) must be greater than slow threshold (%g)", t.Fast, t.Slow)
	}
	return nil
}

// Record is a canonical product annotated with every derived column.
type Record struct {
	clean.Product

	SalesVelocity      float64
	Category           Category
	DaysStockRemaining float64
	StockStatus        StockStatus
	ReorderPoint       float64
	ReorderQuantity    float64
	ReorderStatus      ReorderStatus
	InventoryValue     float64
	ReorderValue       float64
	MonthlySalesValue  float64
	TurnoverRatio      float64
}

// Analyze produces one annotated Record per product. Derivations run in a
// fixed dependency order on unrounded intermediates; the final values of all
// derived floats are rounded to 2 decimals for display stability.
func Analyze(products []clean.Product, th Thresholds) []Record {
	out := make([]Record, 0, len(products))
	for _, p := range products {
		rec := Record{Product: p}

		velocity := math.Max(p.SalesLast30Days/daysInWindow, 0)
		rec.SalesVelocity = velocity
		rec.Category = Categorize(velocity, th)

		if velocity > 0 {
			rec.DaysStockRemaining = p.CurrentStock / velocity
		} else {
			rec.DaysStockRemaining = NoDepletionDays
		}
		rec.StockStatus = StockStatusFor(rec.DaysStockRemaining)

		lead := p.LeadTimeDays
		if math.IsNaN(lead) {
			lead = defaultLeadTimeDays
		}
		rec.LeadTimeDays = lead

		rec.ReorderPoint = velocity * (lead + safetyStockDays)
		var base float64
		if velocity > 0 {
			base = math.Ceil(velocity * daysInWindow)
		}
		rec.ReorderQuantity = math.Max(0, rec.ReorderPoint-p.CurrentStock+base)
		rec.ReorderStatus = ReorderStatusFor(p.CurrentStock, rec.ReorderPoint, rec.DaysStockRemaining)

		rec.InventoryValue = p.CurrentStock * p.UnitCost
		rec.ReorderValue = rec.ReorderQuantity * p.UnitCost
		rec.MonthlySalesValue = p.SalesLast30Days * p.UnitCost
		if rec.InventoryValue > 0 {
			rec.TurnoverRatio = (rec.MonthlySalesValue * 12) / rec.InventoryValue
		}

		rec.round()
		out = append(out, rec)
	}
	return out
}

// Categorize classifies a velocity against the thresholds, highest boundary
// first.
func Categorize(velocity float64, th Thresholds) Category {
	switch {
	case velocity >= th.Fast:
		return CategoryBestSelling
	case velocity >= th.Slow:
		return CategoryFastMoving
	default:
		return CategorySlowMoving
	}
}

// StockStatusFor grades days of stock remaining.
func StockStatusFor(days float64) StockStatus {
	switch {
	case days <= 7:
		return StockCritical
	case days <= 14:
		return StockLow
	case days <= 30:
		return StockNormal
	default:
		return StockHigh
	}
}

// ReorderStatusFor evaluates the replenishment recommendation from a row's
// own reorder point and days remaining.
func ReorderStatusFor(currentStock, reorderPoint, daysRemaining float64) ReorderStatus {
	switch {
	case currentStock <= reorderPoint:
		return ReorderNow
	case daysRemaining <= 14:
		return ReorderSoon
	default:
		return ReorderNoAction
	}
}

func (r *Record) round() {
	r.SalesVelocity = round2(r.SalesVelocity)
	r.DaysStockRemaining = round2(r.DaysStockRemaining)
	r.ReorderPoint = round2(r.ReorderPoint)
	r.ReorderQuantity = round2(r.ReorderQuantity)
	r.InventoryValue = round2(r.InventoryValue)
	r.ReorderValue = round2(r.ReorderValue)
	r.MonthlySalesValue = round2(r.MonthlySalesValue)
	r.TurnoverRatio = round2(r.TurnoverRatio)
}

func round2(v float64) float64 { return math.Round(v*100) / 100 }
