// Package command implements the registry of named shell commands and the
// dispatcher that resolves a tokenized input line against it.
package command

import (
	"errors"
	"fmt"
	"sort"
)

// ErrCommandNotFound is the failure reported for a name with no registration.
var ErrCommandNotFound = errors.New("command not found")

type (
	// Handler is the behavior bound to a command. It takes no arguments.
	Handler func() Result

	// Executable is anything that can be invoked to produce a Result.
	Executable interface {
		Execute() Result
	}

	// Command is a registered, invocable action. It is not modified after
	// registration.
	Command struct {
		Name    string
		ID      uint32
		Handler Handler
	}

	// Registry maps command names to commands. It is filled once at startup
	// and only read afterwards, so it carries no lock.
	Registry struct {
		commands map[string]*Command
		nextID   uint32
	}
)

var _ Executable = (*Command)(nil)

func (c *Command) Execute() Result {
	return c.Handler()
}

func (c *Command) String() string {
	return fmt.Sprintf("command %s (id %d)", c.Name, c.ID)
}

func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

// Register binds name to h. Registering a name again replaces the earlier
// command. IDs follow registration order. An empty name or nil handler
// panics.
func (r *Registry) Register(name string, h Handler) {
	if name == "" {
		panic("command: empty command name")
	}
	if h == nil {
		panic(fmt.Sprintf("command: nil handler for %s", name))
	}

	r.commands[name] = &Command{Name: name, ID: r.nextID, Handler: h}
	r.nextID++
}

// Lookup is an exact, case-sensitive match on name.
func (r *Registry) Lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

func (r *Registry) Len() int {
	return len(r.commands)
}

// Names returns the registered names sorted, for logging.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
