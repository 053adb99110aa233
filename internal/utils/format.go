package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency renders a value as a currency amount with thousands
// separators, e.g. "BHD 12,345.67".
func FormatCurrency(currency string, value float64) string {
	s := fmt.Sprintf("%.2f", value)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]
	var b strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	out := b.String() + frac
	if neg {
		out = "-" + out
	}
	if currency == "" {
		return out
	}
	return currency + " " + out
}

// FormatPercentage renders a 0-1 fraction as a percentage, e.g. "12.5%".
func FormatPercentage(value float64) string {
	return fmt.Sprintf("%.1f%%", value*100)
}
