package core

import (
	"maps"
	"sync"
)

// Attributes is a side table of named values attached to a composer after
// construction. It never affects steps or invocation.
type Attributes struct {
	mu     sync.RWMutex
	values map[string]any
}

// SetAttr stores v under name, replacing any previous value.
func (a *Attributes) SetAttr(name string, v any) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.values == nil {
		a.values = make(map[string]any)
	}
	a.values[name] = v
}

// Attr returns the value stored under name.
func (a *Attributes) Attr(name string) (any, bool) {
	a.mu.RLock()
	defer a.mu.RUnlock()
	v, ok := a.values[name]
	return v, ok
}

// DelAttr removes name.
func (a *Attributes) DelAttr(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.values, name)
}

// Attrs returns a snapshot of every attribute.
func (a *Attributes) Attrs() map[string]any {
	a.mu.RLock()
	defer a.mu.RUnlock()
	out := maps.Clone(a.values)
	if out == nil {
		out = map[string]any{}
	}
	return out
}
