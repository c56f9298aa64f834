package builtins

import "fmt"

// globMatchMaxDepth bounds globMatch's recursion, grounded on
// original_source/pickle.c's match() depth guard; spec.md §4.5 calls this
// out explicitly ("bounded recursion") for `string match`.
const globMatchMaxDepth = 512

// globMatch implements glob matching with `*`, `?`, and `%` as an escape
// character, grounded directly on original_source/pickle.c's recursive
// match(): `*` consumes zero or more characters (tried shortest first,
// then one more character at a time), `?` consumes exactly one, `%` escapes the following
// character to match it literally.
func globMatch(pattern, s string, depth int) (bool, error) {
	if depth > globMatchMaxDepth {
		return false, fmt.Errorf("string match: recursion limit exceeded")
	}
	for len(pattern) > 0 {
		switch pattern[0] {
		case '*':
			for len(pattern) > 1 && pattern[1] == '*' {
				pattern = pattern[1:]
			}
			if len(pattern) == 1 {
				return true, nil
			}
			for i := 0; i <= len(s); i++ {
				ok, err := globMatch(pattern[1:], s[i:], depth+1)
				if err != nil {
					return false, err
				}
				if ok {
					return true, nil
				}
			}
			return false, nil
		case '?':
			if len(s) == 0 {
				return false, nil
			}
			pattern = pattern[1:]
			s = s[1:]
		case '%':
			if len(pattern) < 2 {
				return false, fmt.Errorf("string match: dangling %% escape")
			}
			if len(s) == 0 || s[0] != pattern[1] {
				return false, nil
			}
			pattern = pattern[2:]
			s = s[1:]
		default:
			if len(s) == 0 || s[0] != pattern[0] {
				return false, nil
			}
			pattern = pattern[1:]
			s = s[1:]
		}
	}
	return len(s) == 0, nil
}
