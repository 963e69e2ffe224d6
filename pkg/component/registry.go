package component

import "sync"

// Registry collects the definitions generated init functions publish. The
// lifecycle runtime reads it to perform actual subscription and activation;
// this package only does the bookkeeping.
type Registry struct {
	mu    sync.RWMutex
	defs  []Definition
	index map[string]int
}

func NewRegistry() *Registry {
	return &Registry{index: make(map[string]int)}
}

// Register records a definition, replacing an earlier one with the same name.
func (r *Registry) Register(d Definition) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if i, ok := r.index[d.Name]; ok {
		r.defs[i] = d
		return
	}
	r.index[d.Name] = len(r.defs)
	r.defs = append(r.defs, d)
}

// Lookup returns the definition registered under name.
func (r *Registry) Lookup(name string) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i, ok := r.index[name]
	if !ok {
		return Definition{}, false
	}
	return r.defs[i], true
}

// Definitions returns all registered definitions in registration order.
func (r *Registry) Definitions() []Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Definition, len(r.defs))
	copy(out, r.defs)
	return out
}

var defaultRegistry = NewRegistry()

// Register records a definition in the process-wide registry. Generated
// files call this from init.
func Register(d Definition) {
	defaultRegistry.Register(d)
}

// Lookup reads the process-wide registry.
func Lookup(name string) (Definition, bool) {
	return defaultRegistry.Lookup(name)
}

// Definitions lists the process-wide registry in registration order.
func Definitions() []Definition {
	return defaultRegistry.Definitions()
}
