package clean

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/stockloom-cli/internal/table"
)

func rawTable(headers []string, rows ...[]string) *table.Table {
	t := table.New(headers)
	for _, r := range rows {
		t.AppendRow(r)
	}
	return t
}

var sourceHeaders = []string{"Item no", "Description", "Inventory", "Sales (Qty.)", "Average Cost"}

func TestCleanMapsColumnsAndDefaultsLeadTime(t *testing.T) {
	in := rawTable(sourceHeaders,
		[]string{"1001", "Blue Widget", "120", "300", "2.5"},
	)
	res, err := Clean(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if len(res.Products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(res.Products))
	}
	p := res.Products[0]
	if p.ID != "1001" || p.Name != "Blue Widget" {
		t.Fatalf("unexpected identity: %+v", p)
	}
	if p.CurrentStock != 120 || p.SalesLast30Days != 300 || p.UnitCost != 2.5 {
		t.Fatalf("unexpected numerics: %+v", p)
	}
	if p.LeadTimeDays != DefaultLeadTimeDays {
		t.Fatalf("expected default lead time %d, got %g", DefaultLeadTimeDays, p.LeadTimeDays)
	}
}

func TestCleanAcceptsCanonicalHeaders(t *testing.T) {
	in := rawTable(
		[]string{"Product_ID", "Product_Name", "Current_Stock", "Sales_Last_30_Days", "Unit_Cost", "Lead_Time_Days"},
		[]string{"SKU001", "Widget A", "150", "120", "12.50", "21"},
	)
	res, err := Clean(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if res.Products[0].LeadTimeDays != 21 {
		t.Fatalf("expected lead time 21, got %g", res.Products[0].LeadTimeDays)
	}
}

func TestCleanMissingColumnsWithSuggestions(t *testing.T) {
	in := rawTable(
		[]string{"Item no", "Description", "Stock On Hand", "Sales (Qty.)", "Cost per unit"},
		[]string{"1", "A", "10", "5", "1"},
	)
	_, err := Clean(in, DefaultOptions())
	var mce *MissingColumnsError
	if !errors.As(err, &mce) {
		t.Fatalf("expected MissingColumnsError, got %v", err)
	}
	if len(mce.Missing) != 2 {
		t.Fatalf("expected 2 missing columns, got %v", mce.Missing)
	}
	if got := mce.Suggestions[ColCurrentStock]; len(got) != 1 || got[0] != "Stock On Hand" {
		t.Fatalf("expected Current_Stock suggestion, got %v", got)
	}
	if got := mce.Suggestions[ColUnitCost]; len(got) != 1 || got[0] != "Cost per unit" {
		t.Fatalf("expected Unit_Cost suggestion, got %v", got)
	}
	if !strings.Contains(err.Error(), "Current_Stock") {
		t.Fatalf("error message should list missing fields: %v", err)
	}
}

func TestCleanDeduplicatesFirstWins(t *testing.T) {
	in := rawTable(sourceHeaders,
		[]string{"1001", "First", "10", "30", "1"},
		[]string{"1001", "Second", "99", "99", "9"},
		[]string{"1002", "Other", "5", "15", "2"},
	)
	var rep Collector
	opt := DefaultOptions()
	opt.Reporter = &rep
	res, err := Clean(in, opt)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if len(res.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(res.Products))
	}
	if res.Products[0].Name != "First" {
		t.Fatalf("dedup should keep the first occurrence, got %q", res.Products[0].Name)
	}
	found := false
	for _, n := range rep.Notices {
		if n.Level == LevelWarning && n.Rows == 1 && strings.Contains(n.Message, "duplicate") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a duplicate warning, got %+v", rep.Notices)
	}
}

func TestCleanCoercionRules(t *testing.T) {
	in := rawTable(sourceHeaders,
		[]string{"1", "A", "abc", "-5", "12,50"},
	)
	var rep Collector
	opt := DefaultOptions()
	opt.Reporter = &rep
	res, err := Clean(in, opt)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	p := res.Products[0]
	if p.CurrentStock != 0 {
		t.Fatalf("non-numeric stock should coerce to 0, got %g", p.CurrentStock)
	}
	if p.SalesLast30Days != 0 {
		t.Fatalf("negative sales should floor at 0, got %g", p.SalesLast30Days)
	}
	if p.UnitCost != 12.5 {
		t.Fatalf("locale decimal comma should parse, got %g", p.UnitCost)
	}
	coerced := false
	for _, n := range rep.Notices {
		if strings.Contains(n.Message, "Coerced") && n.Rows == 1 {
			coerced = true
		}
	}
	if !coerced {
		t.Fatalf("expected a coercion warning, got %+v", rep.Notices)
	}
}

func TestCleanDropRules(t *testing.T) {
	in := rawTable(sourceHeaders,
		[]string{"1", "Keep Me", "10", "30", "2"},
		[]string{"2", "   ", "10", "30", "2"},       // blank name
		[]string{"3", "No Cost", "10", "30", "n/a"}, // unparseable cost
		[]string{"4", "Free", "10", "30", "0"},      // zero cost
		[]string{"5", "Negative", "10", "30", "-4"}, // clips to 0, then dropped
	)
	var rep Collector
	opt := DefaultOptions()
	opt.Reporter = &rep
	res, err := Clean(in, opt)
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if len(res.Products) != 1 || res.Products[0].Name != "Keep Me" {
		t.Fatalf("expected only the valid row to survive, got %+v", res.Products)
	}
	var nameDrops, costDrops int
	for _, n := range rep.Notices {
		if strings.Contains(n.Message, "Product_Name") {
			nameDrops = n.Rows
		}
		if strings.Contains(n.Message, "Unit_Cost") {
			costDrops = n.Rows
		}
	}
	if nameDrops != 1 || costDrops != 3 {
		t.Fatalf("expected 1 name drop and 3 cost drops, got %d and %d", nameDrops, costDrops)
	}
}

func TestCleanLeadTimeParsing(t *testing.T) {
	headers := append(append([]string{}, sourceHeaders...), "LDC")
	in := rawTable(headers,
		[]string{"1", "A", "10", "30", "2", "0.5"},  // below floor, clipped
		[]string{"2", "B", "10", "30", "2", "soon"}, // parse failure, row kept
		[]string{"3", "C", "10", "30", "2", "21"},
	)
	res, err := Clean(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if len(res.Products) != 3 {
		t.Fatalf("lead time parse failure must not drop rows, got %d products", len(res.Products))
	}
	if res.Products[0].LeadTimeDays != 1 {
		t.Fatalf("lead time below 1 should clip to 1, got %g", res.Products[0].LeadTimeDays)
	}
	if !math.IsNaN(res.Products[1].LeadTimeDays) {
		t.Fatalf("unparseable lead time should stay unset, got %g", res.Products[1].LeadTimeDays)
	}
	if res.Products[2].LeadTimeDays != 21 {
		t.Fatalf("expected lead time 21, got %g", res.Products[2].LeadTimeDays)
	}
}

func TestCleanPassThroughColumns(t *testing.T) {
	headers := append(append([]string{}, sourceHeaders...), "Sales (LCY)", "Warehouse")
	in := rawTable(headers,
		[]string{"1", "A", "10", "30", "2", "450.00", "Main"},
	)
	res, err := Clean(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if len(res.ExtraHeaders) != 2 || res.ExtraHeaders[0] != "Sales_LCY" || res.ExtraHeaders[1] != "Warehouse" {
		t.Fatalf("unexpected extra headers: %v", res.ExtraHeaders)
	}
	p := res.Products[0]
	if p.Extra["Sales_LCY"] != "450.00" || p.Extra["Warehouse"] != "Main" {
		t.Fatalf("pass-through values lost: %+v", p.Extra)
	}
}

func TestCleanEmptyInput(t *testing.T) {
	if _, err := Clean(table.New(sourceHeaders), DefaultOptions()); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput, got %v", err)
	}
	if _, err := Clean(nil, DefaultOptions()); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("expected ErrEmptyInput for nil table, got %v", err)
	}
}

func TestCleanEmptyAfterCleaning(t *testing.T) {
	in := rawTable(sourceHeaders,
		[]string{"1", "", "10", "30", "2"},
		[]string{"2", "B", "10", "30", "0"},
	)
	if _, err := Clean(in, DefaultOptions()); !errors.Is(err, ErrEmptyAfterCleaning) {
		t.Fatalf("expected ErrEmptyAfterCleaning, got %v", err)
	}
}

func TestResultTableRoundTripsValues(t *testing.T) {
	in := rawTable(sourceHeaders,
		[]string{"1001", "Blue Widget", "120", "300", "2.5"},
	)
	res, err := Clean(in, DefaultOptions())
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	out := res.Table()
	if got := out.Cell(0, out.ColumnIndex(ColUnitCost)); got != "2.5" {
		t.Fatalf("expected unit cost cell 2.5, got %q", got)
	}
	if got := out.Cell(0, out.ColumnIndex(ColLeadTimeDays)); got != "14" {
		t.Fatalf("expected lead time cell 14, got %q", got)
	}
}
