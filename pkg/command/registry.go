package command

import (
	"errors"
	"fmt"
	"sync"
)

// ErrDuplicateCommand is returned when registering a name/kind pair twice.
var ErrDuplicateCommand = errors.New("command already registered")

// ErrCommandNotFound is returned when a lookup misses.
var ErrCommandNotFound = errors.New("command not found")

type registryKey struct {
	name string
	kind Kind
}

// Registry holds the commands of one application.
// Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	commands map[registryKey]*Command
	order    []registryKey
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[registryKey]*Command),
	}
}

// Register validates and adds a command. The (name, kind) pair must be
// unique.
func (r *Registry) Register(cmd *Command) error {
	if cmd == nil {
		return fmt.Errorf("%w: nil command", ErrInvalidCommand)
	}
	if err := cmd.Validate(); err != nil {
		return err
	}

	key := registryKey{name: cmd.Name, kind: cmd.Kind}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.commands[key]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, cmd.Name)
	}
	r.commands[key] = cmd
	r.order = append(r.order, key)
	return nil
}

// Lookup resolves a command by name and kind.
func (r *Registry) Lookup(name string, kind Kind) (*Command, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cmd, ok := r.commands[registryKey{name: name, kind: kind}]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrCommandNotFound, name)
	}
	return cmd, nil
}

// Len returns the number of registered commands.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.commands)
}

// Payloads returns the bulk registration payloads in registration order.
func (r *Registry) Payloads() []Payload {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payloads := make([]Payload, 0, len(r.order))
	for _, key := range r.order {
		payloads = append(payloads, r.commands[key].ToPayload())
	}
	return payloads
}
