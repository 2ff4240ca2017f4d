package tool

import (
	"errors"
	"fmt"
	"sync"
)

var (
	ErrToolNotFound   = errors.New("tool not found")
	ErrDuplicateTool  = errors.New("tool already registered")
	ErrRegistrySealed = errors.New("registry is sealed")
)

// Registry is an in-memory catalog of tools. Registration happens during an
// initialization phase; the dispatcher seals the registry before its first
// run, after which registration fails fast. Lookups are safe for concurrent
// use.
type Registry struct {
	mu     sync.RWMutex
	tools  map[string]*Tool
	order  []string
	sealed bool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]*Tool)}
}

// Register adds a tool to the catalog. Registering a name that already
// exists fails with ErrDuplicateTool; silent shadowing is never allowed.
func (r *Registry) Register(t *Tool) error {
	if t == nil {
		return errors.New("nil tool")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("register %q: %w", t.Name(), ErrRegistrySealed)
	}
	if _, exists := r.tools[t.Name()]; exists {
		return fmt.Errorf("register %q: %w", t.Name(), ErrDuplicateTool)
	}
	r.tools[t.Name()] = t
	r.order = append(r.order, t.Name())
	return nil
}

// Lookup returns the tool registered under name.
func (r *Registry) Lookup(name string) (*Tool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", name, ErrToolNotFound)
	}
	return t, nil
}

// Names returns tool names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Descriptions maps each tool name to its description, for help surfaces.
func (r *Registry) Descriptions() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.order))
	for name, t := range r.tools {
		out[name] = t.Description()
	}
	return out
}

// Descriptors returns full tool metadata in registration order; this is the
// contract surface handed to selection processes.
func (r *Registry) Descriptors() []Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Descriptor, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name].Descriptor())
	}
	return out
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Seal ends the registration phase. Sealing twice is a no-op.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}
