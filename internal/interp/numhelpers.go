package interp

import "github.com/nanotcl/nanotcl/internal/numconv"

func parseInt(s string) (int64, error) { return numconv.ParseInt(s) }
func formatInt(v int64) string         { return numconv.FormatBaseN(v, 10) }

// truthy implements spec.md §6's "truthiness is result parses as non-zero
// integer" rule.
func truthy(s string) (bool, error) {
	v, err := numconv.ParseInt(s)
	if err != nil {
		return false, err
	}
	return v != 0, nil
}
