package engine

import (
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/stockloom-cli/internal/clean"
	"github.com/KaramelBytes/stockloom-cli/internal/table"
)

func TestTableOfColumnOrder(t *testing.T) {
	p := product("A", 10, 300, 2, 14)
	p.Extra = map[string]string{"Warehouse": "Main"}
	recs := Analyze([]clean.Product{p}, DefaultThresholds())

	out := TableOf(recs, []string{"Warehouse"})
	if got := len(out.Headers); got != 18 {
		t.Fatalf("expected 18 columns, got %d: %v", got, out.Headers)
	}
	if out.Headers[0] != "Product_ID" || out.Headers[5] != "Lead_Time_Days" {
		t.Fatalf("canonical columns out of order: %v", out.Headers)
	}
	if out.Headers[6] != "Sales_Velocity" || out.Headers[16] != "Turnover_Ratio" {
		t.Fatalf("derived columns out of order: %v", out.Headers)
	}
	if out.Headers[17] != "Warehouse" {
		t.Fatalf("pass-through column should come last: %v", out.Headers)
	}
	if got := out.Cell(0, out.ColumnIndex("Category")); got != string(CategoryBestSelling) {
		t.Fatalf("Category cell = %q", got)
	}
	if got := out.Cell(0, out.ColumnIndex("Warehouse")); got != "Main" {
		t.Fatalf("Warehouse cell = %q", got)
	}
}

func TestTableOfCSVRoundTrip(t *testing.T) {
	recs := Analyze([]clean.Product{
		product("A-1", 10, 300, 2.5, 14),
		product("B, 2", 40, 0, 12, 21), // id with a delimiter character
	}, DefaultThresholds())

	out := TableOf(recs, nil)
	path := filepath.Join(t.TempDir(), "analyzed.csv")
	if err := out.WriteCSVFile(path); err != nil {
		t.Fatalf("WriteCSVFile: %v", err)
	}
	back, err := table.ReadCSV(path, ',')
	if err != nil {
		t.Fatalf("ReadCSV: %v", err)
	}
	if len(back.Rows) != len(out.Rows) || len(back.Headers) != len(out.Headers) {
		t.Fatalf("round trip changed shape: %dx%d vs %dx%d",
			len(back.Rows), len(back.Headers), len(out.Rows), len(out.Headers))
	}
	for ri := range out.Rows {
		for ci := range out.Headers {
			if back.Cell(ri, ci) != out.Cell(ri, ci) {
				t.Fatalf("cell (%d,%d) changed: %q vs %q",
					ri, ci, back.Cell(ri, ci), out.Cell(ri, ci))
			}
		}
	}
}
