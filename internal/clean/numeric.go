package clean

import (
	"strconv"
	"strings"
)

// parseNumber parses a cell as a float, tolerating common locale formats:
// "1,234.56", "1.234,56" and non-breaking spaces as thousands separators.
// The decimal separator is auto-detected per value.
func parseNumber(s string) (float64, bool) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, false
	}
	raw = strings.ReplaceAll(raw, " ", " ")
	raw = strings.TrimSpace(raw)

	dec := '.'
	thou := rune(0)
	cpos := strings.LastIndex(raw, ",")
	dpos := strings.LastIndex(raw, ".")
	switch {
	case cpos >= 0 && dpos >= 0:
		if cpos > dpos {
			dec, thou = ',', '.'
		} else {
			dec, thou = '.', ','
		}
	case cpos >= 0:
		dec = ','
	}
	if thou == 0 {
		for _, sep := range []rune{',', '.', ' '} {
			if sep != dec {
				raw = strings.ReplaceAll(raw, string(sep), "")
			}
		}
	} else {
		raw = strings.ReplaceAll(raw, string(thou), "")
		raw = strings.ReplaceAll(raw, " ", "")
	}
	if dec != '.' {
		raw = strings.ReplaceAll(raw, string(dec), ".")
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}
