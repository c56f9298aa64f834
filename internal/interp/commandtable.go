package interp

import (
	"github.com/nanotcl/nanotcl/internal/ifaceerr"
	"github.com/nanotcl/nanotcl/internal/numconv"
)

// CommandFunc is the embedding callback signature (spec.md §6):
// (interp, argv, user_data) -> code. argv[0] is the invoked name. The
// callback must set the result before returning.
type CommandFunc func(i *Interpreter, argv []string, data any) Code

// Command is a named triple of (display name, callable, private data),
// spec.md §3. A user-defined procedure additionally carries its formal
// argument list and body as owned strings.
type Command struct {
	name     string
	fn       CommandFunc
	data     any
	isProc   bool
	procArgs string
	procBody string
	next     *Command
}

// IsProc reports whether this command is a user-defined procedure
// (`proc`), as opposed to a built-in.
func (c *Command) IsProc() bool { return c.isProc }

// commandTable is a fixed-bucket chained hash keyed by DJB2 (spec.md
// §4.4), grounded on picolGetCommand/pickle_register_command. The bucket
// count is fixed at construction, matching the "bucketed hash" wording and
// the `info limits` / bucket-count configurability of spec.md §6.
type commandTable struct {
	buckets []*Command
	count   int
}

func newCommandTable(buckets int) *commandTable {
	if buckets < 1 {
		buckets = 512
	}
	return &commandTable{buckets: make([]*Command, buckets)}
}

func (t *commandTable) bucketOf(name string) int {
	return int(numconv.DJB2(name) % uint64(len(t.buckets)))
}

func (t *commandTable) get(name string) *Command {
	for c := t.buckets[t.bucketOf(name)]; c != nil; c = c.next {
		if c.name == name {
			return c
		}
	}
	return nil
}

func (t *commandTable) insert(c *Command) {
	b := t.bucketOf(c.name)
	c.next = t.buckets[b]
	t.buckets[b] = c
	t.count++
}

func (t *commandTable) remove(name string) bool {
	b := t.bucketOf(name)
	var prev *Command
	for c := t.buckets[b]; c != nil; c = c.next {
		if c.name == name {
			if prev == nil {
				t.buckets[b] = c.next
			} else {
				prev.next = c.next
			}
			t.count--
			return true
		}
		prev = c
	}
	return false
}

// forEach visits every command in an unspecified but stable order (bucket
// order, then chain order), used by `info commands` and by `info command
// name`'s index lookup.
func (t *commandTable) forEach(fn func(*Command)) {
	for _, head := range t.buckets {
		for c := head; c != nil; c = c.next {
			fn(c)
		}
	}
}

// RegisterCommand registers a built-in command (spec.md §6). It fails if a
// command with the same name already exists, grounded on
// pickle_register_command.
func (i *Interpreter) RegisterCommand(name string, fn CommandFunc, data any) error {
	if i.commands.get(name) != nil {
		return ifaceerr.New(ifaceerr.KindRedefinition, i.line, i.source, "'%s' already defined", name)
	}
	i.commands.insert(&Command{name: name, fn: fn, data: data})
	return nil
}

// RegisterProc registers a user-defined procedure, grounded on
// picolCommandAddProc. It is exported so internal/builtins' `proc` command
// can install it; re-registering an existing proc replaces neither. The
// caller must rename/unset first, matching the command table's
// reject-duplicates contract (spec.md §4.4).
func (i *Interpreter) RegisterProc(name, args, body string) error {
	if i.commands.get(name) != nil {
		return ifaceerr.New(ifaceerr.KindRedefinition, i.line, i.source, "'%s' already defined", name)
	}
	i.commands.insert(&Command{name: name, isProc: true, procArgs: args, procBody: body, fn: callProc})
	return nil
}

// RenameCommand renames a command, or deletes it if new is empty, grounded
// on pickle_rename_command.
func (i *Interpreter) RenameCommand(oldName, newName string) error {
	if newName == "" {
		if !i.commands.remove(oldName) {
			return ifaceerr.New(ifaceerr.KindName, i.line, i.source, "cannot remove '%s'", oldName)
		}
		return nil
	}
	if i.commands.get(newName) != nil {
		return ifaceerr.New(ifaceerr.KindRedefinition, i.line, i.source, "'%s' already defined", newName)
	}
	c := i.commands.get(oldName)
	if c == nil {
		return ifaceerr.New(ifaceerr.KindName, i.line, i.source, "Not a proc: %s", oldName)
	}
	renamed := &Command{name: newName, fn: c.fn, data: c.data, isProc: c.isProc, procArgs: c.procArgs, procBody: c.procBody}
	i.commands.insert(renamed)
	i.commands.remove(oldName)
	return nil
}

// CommandCount returns the number of registered commands, for `info
// command` with no further arguments.
func (i *Interpreter) CommandCount() int { return i.commands.count }

// Commands returns every registered command name, for `info commands`
// (spec.md §9's supplemented introspection).
func (i *Interpreter) Commands() []string {
	names := make([]string, 0, i.commands.count)
	i.commands.forEach(func(c *Command) { names = append(names, c.name) })
	return names
}

// CommandAt returns the command at the given registration-order-agnostic
// index (bucket order), grounded on picolCommandCommand's `info command
// <field> <index>` form.
func (i *Interpreter) CommandAt(index int) (*Command, bool) {
	if index < 0 {
		return nil, false
	}
	var found *Command
	j := 0
	i.commands.forEach(func(c *Command) {
		if j == index {
			found = c
		}
		j++
	})
	return found, found != nil
}

// CommandIndex returns the bucket-order index of name, or -1 if absent.
func (i *Interpreter) CommandIndex(name string) int {
	idx := -1
	j := 0
	i.commands.forEach(func(c *Command) {
		if c.name == name && idx == -1 {
			idx = j
		}
		j++
	})
	return idx
}
