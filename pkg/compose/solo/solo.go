package solo

import (
	"context"

	"github.com/ib-77/compose/pkg/compose"
	"github.com/ib-77/compose/pkg/compose/core"
)

// Composer runs its steps synchronously.
type Composer struct {
	core.Base
}

var _ compose.Composer = (*Composer)(nil)

// New composes fns. The first listed step runs first.
func New(fns ...any) (*Composer, error) {
	c := &Composer{}
	if err := c.Init(compose.KindSync, fns...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNew is New but panics on invalid arguments.
func MustNew(fns ...any) *Composer {
	c, err := New(fns...)
	if err != nil {
		panic(err)
	}
	return c
}

// Call implements compose.Callable. Errors returned by a step stop the chain
// and are returned unchanged.
func (c *Composer) Call(ctx context.Context, args compose.Args) (any, error) {
	return c.Pipe(ctx, args)
}

// Apply calls the composer with positional arguments.
func (c *Composer) Apply(ctx context.Context, in ...any) (any, error) {
	return c.Call(ctx, compose.Pos(in...))
}

// Async is always false: a solo composer never awaits.
func (c *Composer) Async() bool {
	return false
}
