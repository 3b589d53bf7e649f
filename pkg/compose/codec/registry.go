package codec

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/ib-77/compose/pkg/compose"
)

// ErrUnknownStep is returned when a document names a step that was never
// registered.
var ErrUnknownStep = errors.New("unknown step")

// Registry maps step names to named steps.
type Registry struct {
	mu    sync.RWMutex
	steps map[string]*compose.NamedStep
}

func NewRegistry() *Registry {
	return &Registry{steps: make(map[string]*compose.NamedStep)}
}

// Register names fn and stores it, replacing any step of the same name.
func (r *Registry) Register(name string, fn any) (*compose.NamedStep, error) {
	step, err := compose.Named(name, fn)
	if err != nil {
		return nil, fmt.Errorf("register %q: %w", name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.steps == nil {
		r.steps = make(map[string]*compose.NamedStep)
	}
	r.steps[name] = step
	return step, nil
}

// MustRegister is Register but panics on error.
func (r *Registry) MustRegister(name string, fn any) *compose.NamedStep {
	step, err := r.Register(name, fn)
	if err != nil {
		panic(err)
	}
	return step
}

func (r *Registry) Lookup(name string) (*compose.NamedStep, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	step, ok := r.steps[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStep, name)
	}
	return step, nil
}

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.steps))
	for name := range r.steps {
		names = append(names, name)
	}
	r.mu.RUnlock()

	slices.Sort(names)
	return names
}
