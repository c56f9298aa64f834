package builtins

import (
	"strings"

	"github.com/nanotcl/nanotcl/internal/numconv"
)

func parseInt(s string) (int64, error) { return numconv.ParseInt(s) }
func formatInt(v int64) string         { return numconv.FormatBaseN(v, 10) }

// joinSpace concatenates parts with single spaces, grounded on
// picolCommandConcat/picolCommandEval's "concatenated with single spaces"
// rule (spec.md §4.5).
func joinSpace(parts []string) string {
	return strings.Join(parts, " ")
}

// splitList tokenises a list string on runs of whitespace, grounded on
// spec.md §4.5's "non-separator tokens" wording for llength/join/lindex:
// nanotcl's lists have no bracket syntax of their own, they are just
// whitespace-separated words, exactly as pickle.c's list commands treat a
// Tcl "list" as a plain string of space-separated elements.
func splitList(s string) []string {
	return strings.Fields(s)
}
