// Package clean validates and normalizes raw inventory tables into canonical
// product records. It owns the column alias mapping, type coercion and the
// drop rules; everything downstream can rely on its output invariants: every
// record has a positive unit cost, a non-empty name and non-negative stock
// and sales figures.
package clean

import (
	"math"
	"strings"

	"github.com/KaramelBytes/stockloom-cli/internal/table"
)

// Canonical column names.
const (
	ColProductID       = "Product_ID"
	ColProductName     = "Product_Name"
	ColCurrentStock    = "Current_Stock"
	ColSalesLast30Days = "Sales_Last_30_Days"
	ColUnitCost        = "Unit_Cost"
	ColLeadTimeDays    = "Lead_Time_Days"
)

// DefaultLeadTimeDays is injected when the source has no lead time column.
const DefaultLeadTimeDays = 14

// requiredColumns are the canonical fields the cleaner cannot proceed without.
var requiredColumns = []string{
	ColProductID, ColProductName, ColCurrentStock, ColSalesLast30Days, ColUnitCost,
}

// DefaultAliases maps known source headers to canonical column names.
// Matching is exact and case-sensitive; canonical names are always accepted
// as-is.
func DefaultAliases() map[string]string {
	return map[string]string{
		"Item no":      ColProductID,
		"Description":  ColProductName,
		"Inventory":    ColCurrentStock,
		"Sales (Qty.)": ColSalesLast30Days,
		"Average Cost": ColUnitCost,
		"LDC":          ColLeadTimeDays,
		"Sales (LCY)":  "Sales_LCY",
		"Purch. (LCY)": "Purchase_LCY",
		"Value":        "Total_Value",
	}
}

// columnSynonyms feed the fuzzy suggestions in MissingColumnsError.
var columnSynonyms = map[string][]string{
	ColProductID:       {"item no", "product_id", "sku", "item_id", "product_code"},
	ColProductName:     {"description", "product_name", "item_name", "product"},
	ColCurrentStock:    {"inventory", "stock", "quantity", "qty", "on_hand", "current_qty"},
	ColSalesLast30Days: {"sales (qty.)", "sales", "sold", "units_sold", "monthly_sales", "last_30_days"},
	ColUnitCost:        {"average cost", "cost", "price", "unit_price", "unit_cost", "cost_per_unit"},
}

// Product is one canonical inventory record.
type Product struct {
	ID              string
	Name            string
	CurrentStock    float64
	SalesLast30Days float64
	UnitCost        float64
	// LeadTimeDays is >= 1 when parsed, or NaN when the source value failed
	// to parse (the engine substitutes its default at use).
	LeadTimeDays float64
	// Extra holds pass-through columns that are not part of the canonical
	// schema, keyed by their (alias-mapped) header.
	Extra map[string]string
}

// Result is a cleaned table: canonical records plus the ordered headers of
// any pass-through columns.
type Result struct {
	Products     []Product
	ExtraHeaders []string
}

// Options controls cleaning behavior.
type Options struct {
	// Aliases maps source headers to canonical names. Nil means
	// DefaultAliases.
	Aliases map[string]string
	// LeadTimeDefault is used when the source has no lead time column at
	// all. Zero means DefaultLeadTimeDays.
	LeadTimeDefault float64
	// Reporter receives cleaning notices. Nil discards them.
	Reporter Reporter
}

// DefaultOptions returns the standard cleaning configuration.
func DefaultOptions() Options {
	return Options{Aliases: DefaultAliases(), LeadTimeDefault: DefaultLeadTimeDays}
}

// Clean validates the raw table, maps columns to the canonical schema,
// coerces types, removes invalid and duplicate rows and fills defaults.
// Structural failures (missing columns, nothing left) return an error; data
// quality issues are repaired and surfaced through the Reporter.
func Clean(t *table.Table, opt Options) (*Result, error) {
	if t == nil || len(t.Headers) == 0 || len(t.Rows) == 0 {
		return nil, ErrEmptyInput
	}
	aliases := opt.Aliases
	if aliases == nil {
		aliases = DefaultAliases()
	}
	leadDefault := opt.LeadTimeDefault
	if leadDefault <= 0 {
		leadDefault = DefaultLeadTimeDays
	}
	r := opt.Reporter

	// Resolve each canonical field to a source column index. A header is
	// accepted either through the alias map or verbatim under its canonical
	// name.
	canonical := map[string]int{}
	extraIdx := []int{}
	extraNames := []string{}
	for i, h := range t.Headers {
		name := h
		if mapped, ok := aliases[h]; ok {
			name = mapped
		}
		if isCanonical(name) {
			if _, dup := canonical[name]; !dup {
				canonical[name] = i
			}
			continue
		}
		extraIdx = append(extraIdx, i)
		extraNames = append(extraNames, name)
	}

	if err := checkRequired(canonical, t.Headers); err != nil {
		return nil, err
	}

	_, hasLead := canonical[ColLeadTimeDays]
	if !hasLead {
		infof(r, len(t.Rows), "Lead_Time_Days not present; defaulting to %g days", leadDefault)
	}

	var (
		products     []Product
		seen         = map[string]struct{}{}
		dupCount     int
		coerceCount  int
		noNameCount  int
		noCostCount  int
	)
	for ri := range t.Rows {
		id := strings.TrimSpace(t.Cell(ri, canonical[ColProductID]))
		if _, dup := seen[id]; dup {
			dupCount++
			continue
		}
		seen[id] = struct{}{}

		name := strings.TrimSpace(t.Cell(ri, canonical[ColProductName]))

		stock, ok := parseNumber(t.Cell(ri, canonical[ColCurrentStock]))
		if !ok {
			if strings.TrimSpace(t.Cell(ri, canonical[ColCurrentStock])) != "" {
				coerceCount++
			}
			stock = 0
		}
		sales, ok := parseNumber(t.Cell(ri, canonical[ColSalesLast30Days]))
		if !ok {
			if strings.TrimSpace(t.Cell(ri, canonical[ColSalesLast30Days])) != "" {
				coerceCount++
			}
			sales = 0
		}
		stock = math.Max(stock, 0)
		sales = math.Max(sales, 0)

		cost, costOK := parseNumber(t.Cell(ri, canonical[ColUnitCost]))
		cost = math.Max(cost, 0)

		lead := leadDefault
		if hasLead {
			if v, ok := parseNumber(t.Cell(ri, canonical[ColLeadTimeDays])); ok {
				lead = math.Max(v, 1)
			} else {
				// Parse failure keeps the row; the engine fills the
				// default later.
				lead = math.NaN()
			}
		}

		// Critical-column filtering: name first, then cost, matching the
		// reported per-reason counts.
		if name == "" {
			noNameCount++
			continue
		}
		if !costOK || cost == 0 {
			noCostCount++
			continue
		}

		p := Product{
			ID:              id,
			Name:            name,
			CurrentStock:    stock,
			SalesLast30Days: sales,
			UnitCost:        cost,
			LeadTimeDays:    lead,
		}
		if len(extraIdx) > 0 {
			p.Extra = make(map[string]string, len(extraIdx))
			for k, ci := range extraIdx {
				p.Extra[extraNames[k]] = t.Cell(ri, ci)
			}
		}
		products = append(products, p)
	}

	if dupCount > 0 {
		warnf(r, dupCount, "Removed %d duplicate products", dupCount)
	}
	if coerceCount > 0 {
		warnf(r, coerceCount, "Coerced %d non-numeric stock/sales values to 0", coerceCount)
	}
	if noNameCount > 0 {
		warnf(r, noNameCount, "Removed %d products with missing Product_Name", noNameCount)
	}
	if noCostCount > 0 {
		warnf(r, noCostCount, "Removed %d products with missing Unit_Cost", noCostCount)
	}
	if len(products) == 0 {
		return nil, ErrEmptyAfterCleaning
	}
	infof(r, len(products), "Data cleaned successfully. %d products ready for analysis", len(products))

	return &Result{Products: products, ExtraHeaders: extraNames}, nil
}

func isCanonical(name string) bool {
	switch name {
	case ColProductID, ColProductName, ColCurrentStock, ColSalesLast30Days,
		ColUnitCost, ColLeadTimeDays:
		return true
	}
	return false
}

// checkRequired builds a MissingColumnsError with fuzzy suggestions when any
// required canonical field has no source column.
func checkRequired(canonical map[string]int, rawHeaders []string) error {
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := canonical[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	suggestions := map[string][]string{}
	for _, col := range missing {
		for _, h := range rawHeaders {
			for _, syn := range columnSynonyms[col] {
				if strings.Contains(strings.ToLower(h), syn) {
					suggestions[col] = append(suggestions[col], h)
					break
				}
			}
		}
	}
	return &MissingColumnsError{Missing: missing, Suggestions: suggestions}
}
