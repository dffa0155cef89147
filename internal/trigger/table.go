// Package trigger binds check names to the surfaces that fire them: a keyboard watcher
// and a one-shot button menu. Both dispatch through a command table built once at startup.
package trigger

import (
	"context"
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownCommand is returned when invoking a name that was never registered.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrDuplicateCommand is returned when a name is registered twice.
	ErrDuplicateCommand = errors.New("duplicate command")
)

// RunAllCommand is the reserved command name for the whole battery.
const RunAllCommand = "all"

// Command runs one check, or the battery for RunAllCommand.
type Command func(ctx context.Context) error

// Table maps command names to commands.
type Table struct {
	commands map[string]Command
	order    []string
}

// NewTable creates an empty command table.
func NewTable() *Table {
	return &Table{commands: make(map[string]Command)}
}

// Register adds a command. Names are unique.
func (t *Table) Register(name string, cmd Command) error {
	if _, ok := t.commands[name]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateCommand, name)
	}

	t.commands[name] = cmd
	t.order = append(t.order, name)

	return nil
}

// Invoke runs the named command.
func (t *Table) Invoke(ctx context.Context, name string) error {
	cmd, ok := t.commands[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, name)
	}

	return cmd(ctx)
}

// Has reports whether name is registered.
func (t *Table) Has(name string) bool {
	_, ok := t.commands[name]
	return ok
}

// Names returns command names in registration order.
func (t *Table) Names() []string {
	return append([]string(nil), t.order...)
}

// sortedNames returns command names sorted, for stable error messages.
func (t *Table) sortedNames() []string {
	names := t.Names()
	sort.Strings(names)

	return names
}
