package codec

import (
	"errors"
	"fmt"

	"github.com/ib-77/compose/pkg/compose"
	"github.com/ib-77/compose/pkg/compose/lite"
	"github.com/ib-77/compose/pkg/compose/mass"
	"github.com/ib-77/compose/pkg/compose/solo"
)

// ErrNotSerializable is returned for steps that are neither named nor composers.
var ErrNotSerializable = errors.New("step is not serializable")

// Document is the serialized form of a composer.
type Document struct {
	Kind  string         `json:"kind" yaml:"kind" mapstructure:"kind"`
	Steps []StepDocument `json:"steps" yaml:"steps" mapstructure:"steps"`
	Attrs map[string]any `json:"attrs,omitempty" yaml:"attrs,omitempty" mapstructure:"attrs"`
}

// StepDocument holds either the name of a registered step or a nested composer.
type StepDocument struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty" mapstructure:"name"`
	Composer *Document `json:"composer,omitempty" yaml:"composer,omitempty" mapstructure:"composer"`
}

type attributed interface {
	Attrs() map[string]any
}

type attributable interface {
	SetAttr(key string, value any)
}

// Encode describes c as a Document.
func Encode(c compose.Composer) (*Document, error) {
	if compose.IsNil(c) {
		return nil, fmt.Errorf("%w: nil composer", ErrNotSerializable)
	}

	doc := &Document{Kind: c.Kind().String()}
	for i, step := range c.Steps() {
		switch s := step.(type) {
		case *compose.NamedStep:
			doc.Steps = append(doc.Steps, StepDocument{Name: s.Name()})
		case compose.Composer:
			nested, err := Encode(s)
			if err != nil {
				return nil, err
			}
			doc.Steps = append(doc.Steps, StepDocument{Composer: nested})
		default:
			return nil, fmt.Errorf("%w: step %d (%s)", ErrNotSerializable, i, compose.Describe(step))
		}
	}

	if a, ok := c.(attributed); ok {
		if attrs := a.Attrs(); len(attrs) > 0 {
			doc.Attrs = attrs
		}
	}
	return doc, nil
}

// New builds a composer of the given kind.
func New(kind compose.Kind, steps ...any) (compose.Composer, error) {
	switch kind {
	case compose.KindSync:
		c, err := solo.New(steps...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case compose.KindAsync:
		c, err := mass.New(steps...)
		if err != nil {
			return nil, err
		}
		return c, nil
	case compose.KindSoftAsync:
		c, err := lite.New(steps...)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %s", compose.ErrUnknownKind, kind)
}

// Build rebuilds the composer described by doc.
func (r *Registry) Build(doc *Document) (compose.Composer, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: empty document", compose.ErrInvalidArgument)
	}
	kind, err := compose.ParseKind(doc.Kind)
	if err != nil {
		return nil, err
	}

	steps := make([]any, 0, len(doc.Steps))
	for i, sd := range doc.Steps {
		switch {
		case sd.Composer != nil && sd.Name != "":
			return nil, fmt.Errorf("step %d: %w: both name and composer set", i, compose.ErrInvalidArgument)
		case sd.Composer != nil:
			nested, err := r.Build(sd.Composer)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			steps = append(steps, nested)
		case sd.Name != "":
			step, err := r.Lookup(sd.Name)
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", i, err)
			}
			steps = append(steps, step)
		default:
			return nil, fmt.Errorf("step %d: %w: neither name nor composer", i, compose.ErrInvalidArgument)
		}
	}

	c, err := New(kind, steps...)
	if err != nil {
		return nil, err
	}
	if a, ok := c.(attributable); ok {
		for k, v := range doc.Attrs {
			a.SetAttr(k, v)
		}
	}
	return c, nil
}
