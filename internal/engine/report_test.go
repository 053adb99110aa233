package engine

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/stockloom-cli/internal/clean"
)

func TestReportMarkdownSections(t *testing.T) {
	recs := Analyze([]clean.Product{
		product("A", 10, 300, 2, 14), // critical stock
		product("B", 50, 0, 3, 7),
	}, DefaultThresholds())
	rep := Report{
		Name:       "inventory.csv",
		Thresholds: DefaultThresholds(),
		Records:    recs,
		Stats:      Summarize(recs),
		Currency:   "BHD",
		SampleRows: 5,
	}
	out := rep.Markdown()

	for _, want := range []string{
		"[INVENTORY SUMMARY]",
		"File: inventory.csv",
		"Products: 2",
		"[CATEGORIES]",
		"[REORDER RECOMMENDATIONS]",
		"[STOCK ALERTS]",
		"[SAMPLE ROWS]",
		"BHD ",
		"Product A",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q:\n%s", want, out)
		}
	}
}

func TestReportMarkdownNoAlertsSection(t *testing.T) {
	// A single healthy product produces no stock alerts section.
	recs := Analyze([]clean.Product{product("A", 500, 60, 2, 7)}, DefaultThresholds())
	rep := Report{Records: recs, Stats: Summarize(recs), Currency: "BHD"}
	out := rep.Markdown()
	if strings.Contains(out, "[STOCK ALERTS]") {
		t.Fatalf("unexpected alerts section:\n%s", out)
	}
}

func TestReportMarkdownEscapesTableCells(t *testing.T) {
	p := product("A", 10, 300, 2, 14)
	p.Name = "Widget | special"
	recs := Analyze([]clean.Product{p}, DefaultThresholds())
	rep := Report{Records: recs, Stats: Summarize(recs), SampleRows: 1}
	out := rep.Markdown()
	if strings.Contains(out, "Widget | special") {
		t.Fatalf("pipe should be escaped in sample rows:\n%s", out)
	}
	if !strings.Contains(out, "Widget / special") {
		t.Fatalf("escaped name missing:\n%s", out)
	}
}
