package interp

import "github.com/nanotcl/nanotcl/internal/ifaceerr"

// varKind distinguishes an ordinary string variable from a link variable
// (spec.md §3's Variable payload variants (a)/(b) collapse into one Go
// string field since the small-string/heap-string split is an allocator
// bookkeeping concern, not a representational one; see numconv.IsSmallString).
type varKind int

const (
	varString varKind = iota
	varLink
)

// Variable is a node in a Frame's singly linked variable list (spec.md
// §3). A link variable's value is resolved transparently on every access
// by following link to its referent, which may itself be another link.
type Variable struct {
	name  string
	kind  varKind
	value string
	link  *Variable
	next  *Variable
}

// Frame is a call-frame node (spec.md §3): a parent pointer (nil at the
// top level) and the head of its variable list.
type Frame struct {
	parent *Frame
	vars   *Variable
}

// pushFrame creates a new frame as a child of the current one and makes it
// current, grounded on picolCommandCallProc's callframe push.
func (i *Interpreter) pushFrame() {
	i.frame = &Frame{parent: i.frame}
	i.depth++
}

// popFrame drops the current frame's variables and restores its parent,
// grounded on picolDropCallFrame. Every proc invocation pops on every exit
// path (spec.md §8's call-frame-balance invariant).
func (i *Interpreter) popFrame() {
	i.frame = i.frame.parent
	i.depth--
}

// findVar does a linear scan of frame's own variable list (spec.md §4.3's
// Get), not following link variables. It never traverses to an ancestor
// frame directly: link resolution handles that case.
func (f *Frame) findVar(name string) *Variable {
	for v := f.vars; v != nil; v = v.next {
		if v.name == name {
			return v
		}
	}
	return nil
}

// resolveVar returns the variable that ultimately backs name in the
// current frame, following link variables, grounded on picolGetVar(..., 1).
func (i *Interpreter) resolveVar(name string) *Variable {
	v := i.frame.findVar(name)
	if v == nil {
		return nil
	}
	for v.kind == varLink {
		v = v.link
	}
	return v
}

// GetVar returns the value of name in the current frame (spec.md §4.3).
func (i *Interpreter) GetVar(name string) (string, bool) {
	v := i.resolveVar(name)
	if v == nil {
		return "", false
	}
	return v.value, true
}

// SetVarString assigns value to name in the current frame, creating it at
// the head of the frame's variable list if absent (spec.md §4.3's Set).
// Writing through a link variable updates its referent, not the link
// itself.
func (i *Interpreter) SetVarString(name, value string) {
	if v := i.frame.findVar(name); v != nil {
		target := v
		for target.kind == varLink {
			target = target.link
		}
		target.value = value
		return
	}
	i.frame.vars = &Variable{name: name, kind: varString, value: value, next: i.frame.vars}
}

// SetVarInt is the integer convenience form of SetVarString, used by `incr`.
func (i *Interpreter) SetVarInt(name string, value int64) {
	i.SetVarString(name, formatInt(value))
}

// GetVarInt parses a variable's value as a strict base-10 integer.
func (i *Interpreter) GetVarInt(name string) (int64, bool, error) {
	s, ok := i.GetVar(name)
	if !ok {
		return 0, false, nil
	}
	v, err := parseInt(s)
	return v, true, err
}

// UnsetVar removes name from the current frame, grounded on
// picolUnsetVar. It errors if the name is absent (spec.md §4.5's `unset`).
func (i *Interpreter) UnsetVar(name string) error {
	var prev *Variable
	for v := i.frame.vars; v != nil; v = v.next {
		if v.name == name {
			if prev == nil {
				i.frame.vars = v.next
			} else {
				prev.next = v.next
			}
			return nil
		}
		prev = v
	}
	return ifaceerr.New(ifaceerr.KindName, i.line, i.source, "Cannot unset '%s', no such variable", name)
}

// ExistsVar reports whether name is bound in the current frame (used by
// `info exists`, a supplemented feature; see SPEC_FULL.md §9).
func (i *Interpreter) ExistsVar(name string) bool {
	return i.frame.findVar(name) != nil
}

// ancestorFrame walks up level parent links from the current frame,
// stopping at the top level, grounded on picolSetLevel's frame walk
// (cf. upvar/uplevel's "relative count of ancestors above the current
// frame" form).
func (i *Interpreter) ancestorFrame(level int) *Frame {
	f := i.frame
	for j := 0; j < level && f.parent != nil; j++ {
		f = f.parent
	}
	return f
}

// resolveLevel parses an upvar/uplevel level argument (spec.md §4.3's
// Link): either a relative count of ancestors, or an absolute depth
// prefixed by '#', grounded on picolSetLevel.
func (i *Interpreter) resolveLevel(levelStr string) (int, error) {
	top := len(levelStr) > 0 && levelStr[0] == '#'
	body := levelStr
	if top {
		body = levelStr[1:]
	}
	level, err := parseInt(body)
	if err != nil {
		return 0, err
	}
	if top {
		level = int64(i.depth) - level
	}
	if level < 0 {
		return 0, ifaceerr.New(ifaceerr.KindRange, i.line, i.source, "Invalid level passed to 'uplevel/upvar': %d", level)
	}
	return int(level), nil
}

// ResolveLevel is the exported form of resolveLevel, used by
// internal/builtins' upvar/uplevel commands to parse their level argument.
func (i *Interpreter) ResolveLevel(levelStr string) (int, error) {
	return i.resolveLevel(levelStr)
}

// EvalAtLevel evaluates script with the active frame temporarily switched
// to the ancestor `level` frames up, restoring the original active frame on
// every exit path including error, grounded on picolCommandUpLevel.
func (i *Interpreter) EvalAtLevel(level int, script string) Code {
	saved := i.frame
	i.frame = i.ancestorFrame(level)
	defer func() { i.frame = saved }()
	return i.Eval(script)
}

// LinkVar creates localName in the current frame as a link to targetName
// resolved in the frame `level` ancestors up (spec.md §4.3's Link, used by
// `upvar`). It refuses to create a variable that would link to itself.
func (i *Interpreter) LinkVar(localName string, level int, targetName string) error {
	cur := i.frame
	if cur.findVar(localName) != nil {
		return ifaceerr.New(ifaceerr.KindRedefinition, i.line, i.source, "Variable '%s' already exists", localName)
	}
	local := &Variable{name: localName, kind: varString, value: "", next: cur.vars}
	cur.vars = local

	target := i.ancestorFrame(level)
	other := target.findVar(targetName)
	if other == nil {
		other = &Variable{name: targetName, kind: varString, value: "", next: target.vars}
		target.vars = other
	}
	if local == other {
		return ifaceerr.New(ifaceerr.KindRedefinition, i.line, i.source, "Cannot create circular reference variable '%s'", localName)
	}
	local.kind = varLink
	local.link = other
	return nil
}
