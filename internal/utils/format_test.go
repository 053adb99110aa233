package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		currency string
		value    float64
		want     string
	}{
		{"BHD", 0, "BHD 0.00"},
		{"BHD", 12345.678, "BHD 12,345.68"},
		{"BHD", 999.9, "BHD 999.90"},
		{"BHD", 1000000, "BHD 1,000,000.00"},
		{"BHD", -4521.5, "BHD -4,521.50"},
		{"", 1234.5, "1,234.50"},
	}
	for _, c := range cases {
		if got := FormatCurrency(c.currency, c.value); got != c.want {
			t.Errorf("FormatCurrency(%q, %g) = %q, want %q", c.currency, c.value, got, c.want)
		}
	}
}

func TestFormatPercentage(t *testing.T) {
	if got := FormatPercentage(0.125); got != "12.5%" {
		t.Errorf("FormatPercentage(0.125) = %q, want 12.5%%", got)
	}
	if got := FormatPercentage(1); got != "100.0%" {
		t.Errorf("FormatPercentage(1) = %q, want 100.0%%", got)
	}
}
