package clean

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrEmptyInput indicates the raw table had no header or no data rows.
var ErrEmptyInput = errors.New("the input table is empty")

// ErrEmptyAfterCleaning indicates every row was removed by cleaning.
var ErrEmptyAfterCleaning = errors.New("no valid rows remaining after cleaning")

// MissingColumnsError reports every required source column absent from the
// raw table, with fuzzy header suggestions when similar columns exist.
// Suggestions are hints for the user only; they are never auto-applied.
type MissingColumnsError struct {
	Missing     []string            // required source headers not found
	Suggestions map[string][]string // canonical field -> candidate raw headers
}

func (e *MissingColumnsError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "missing required columns: %s", strings.Join(e.Missing, ", "))
	if len(e.Suggestions) > 0 {
		fields := make([]string, 0, len(e.Suggestions))
		for f := range e.Suggestions {
			fields = append(fields, f)
		}
		sort.Strings(fields)
		b.WriteString(" (did you mean:")
		for i, f := range fields {
			if i > 0 {
				b.WriteString(";")
			}
			fmt.Fprintf(&b, " %s -> %s", f, strings.Join(e.Suggestions[f], " | "))
		}
		b.WriteString(")")
	}
	return b.String()
}
