package core

import (
	"slices"
	"strings"

	"github.com/google/uuid"
	"github.com/ib-77/compose/pkg/compose"
)

// Base carries everything composer variants share: the flattened steps, the
// signature of the first step, an identity and an attribute side table.
// Variants embed Base and supply Call.
type Base struct {
	Attributes

	id    uuid.UUID
	kind  compose.Kind
	steps []compose.Callable
	sig   compose.Signature
}

// Init validates and flattens fns for a composer of the given kind.
func (b *Base) Init(kind compose.Kind, fns ...any) error {
	steps, err := Flatten(kind, fns...)
	if err != nil {
		return err
	}
	b.id = uuid.New()
	b.kind = kind
	b.steps = steps
	b.sig = compose.SignatureOf(steps[0]).Clone()
	return nil
}

// Flatten converts fns into steps. Composers of the same kind are replaced by
// their own steps; composers of other kinds stay single opaque steps.
func Flatten(kind compose.Kind, fns ...any) ([]compose.Callable, error) {
	op := kind.Package() + ".New"
	if len(fns) == 0 {
		return nil, &compose.ArgumentError{Op: op, Reason: "needs at least one argument"}
	}

	steps := make([]compose.Callable, 0, len(fns))
	for _, fn := range fns {
		if nested, ok := fn.(compose.Composer); ok && !compose.IsNil(nested) && nested.Kind() == kind {
			steps = append(steps, nested.Steps()...)
			continue
		}
		step, err := compose.AsCallable(fn)
		if err != nil {
			return nil, &compose.ArgumentError{Op: op, Reason: "arguments must be callable"}
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// ID identifies this composer instance. It plays no part in equality.
func (b *Base) ID() uuid.UUID {
	return b.id
}

// Kind implements compose.Composer.
func (b *Base) Kind() compose.Kind {
	return b.kind
}

// Steps implements compose.Composer.
func (b *Base) Steps() []compose.Callable {
	return slices.Clone(b.steps)
}

// Len returns the number of steps.
func (b *Base) Len() int {
	return len(b.steps)
}

// Signature returns the signature of the first step, captured at construction.
func (b *Base) Signature() compose.Signature {
	return b.sig.Clone()
}

// String renders the composer as the expression that builds it,
// e.g. "solo.New(double, inc)".
func (b *Base) String() string {
	parts := make([]string, len(b.steps))
	for i, step := range b.steps {
		parts[i] = compose.Describe(step)
	}
	return b.kind.Package() + ".New(" + strings.Join(parts, ", ") + ")"
}

// Equal reports whether other is a composer of the same kind with the same steps.
func (b *Base) Equal(other any) bool {
	o, ok := other.(compose.Composer)
	if !ok || compose.IsNil(o) {
		return false
	}
	if ob, ok := o.(interface{ base() *Base }); ok && ob.base() == b {
		return true
	}
	return o.Kind() == b.kind && compose.SameSteps(b.steps, o.Steps())
}

func (b *Base) base() *Base {
	return b
}
