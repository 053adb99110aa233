package clean

import "testing"

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"120", 120, true},
		{" 2.5 ", 2.5, true},
		{"-4", -4, true},
		{"1,234.56", 1234.56, true},
		{"1.234,56", 1234.56, true},
		{"12,50", 12.5, true}, // lone comma reads as a decimal separator
		{"1 234,5", 1234.5, true},
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"n/a", 0, false},
	}
	for _, c := range cases {
		got, ok := parseNumber(c.in)
		if ok != c.ok || got != c.want {
			t.Errorf("parseNumber(%q) = %g, %v; want %g, %v", c.in, got, ok, c.want, c.ok)
		}
	}
}
