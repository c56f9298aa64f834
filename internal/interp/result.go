package interp

import "github.com/nanotcl/nanotcl/internal/numconv"

// oomText is the static out-of-memory sink, grounded on pickle.c's
// string_oom ("Out Of Memory"): it replaces the result without itself
// allocating, so a host can always recover a coherent message even when
// the allocator is exhausted.
const oomText = "Out Of Memory"

// Result is the interpreter's current result string (spec.md §3/§4.6). The
// allocated/oom bookkeeping is kept even though Go's GC makes the
// inline-vs-heap split moot: allocated is the charge released back to the
// allocator when the result is replaced, and IsOOM is part of the embedding
// contract.
type Result struct {
	text      string
	allocated int // bytes currently charged to the allocator for text
	oom       bool
}

func (r *Result) String() string { return r.text }

// IsOOM reports whether the current result is the static OOM sink.
func (r *Result) IsOOM() bool { return r.oom }

// setString installs s as the result, charging the allocator for any
// non-small string and releasing the previous charge, per spec.md §4.6.
func (i *Interpreter) setString(s string) error {
	if i.result.allocated > 0 {
		i.alloc.Free(i.result.allocated)
		i.result.allocated = 0
	}
	i.result.oom = false
	if numconv.IsSmallString(s) {
		i.result.text = s
		return nil
	}
	n := len(s) + 1
	if err := i.alloc.Alloc(n); err != nil {
		i.result.text = oomText
		i.result.oom = true
		return err
	}
	i.result.allocated = n
	i.result.text = s
	return nil
}

// SetResultString sets the result to s, returning OK, or Error (with the
// result set to the static OOM sink) if the allocator refuses the charge.
func (i *Interpreter) SetResultString(s string) Code {
	if err := i.setString(s); err != nil {
		return Error
	}
	return OK
}

// SetResultEmpty clears the result, grounded on picolSetResultEmpty.
func (i *Interpreter) SetResultEmpty() Code {
	return i.SetResultString("")
}

// SetResultInteger sets the result to the base-10 rendering of v, grounded
// on pickle_set_result_integer.
func (i *Interpreter) SetResultInteger(v int64) Code {
	return i.SetResultString(numconv.FormatBaseN(v, 10))
}

// GetResultString returns the current result text.
func (i *Interpreter) GetResultString() string { return i.result.text }

// GetResultInteger parses the current result as a strict base-10 integer,
// grounded on pickle_get_result_integer.
func (i *Interpreter) GetResultInteger() (int64, error) {
	return numconv.ParseInt(i.result.text)
}
