package lite

import (
	"context"
	"slices"

	"github.com/ib-77/compose/pkg/compose"
	"github.com/ib-77/compose/pkg/compose/core"
)

// Composer is synchronous until a step returns an awaitable.
type Composer struct {
	core.Base
}

var _ compose.Composer = (*Composer)(nil)

// New composes fns. The first listed step runs first.
func New(fns ...any) (*Composer, error) {
	c := &Composer{}
	if err := c.Init(compose.KindSoftAsync, fns...); err != nil {
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

// Call implements compose.Callable.
func (c *Composer) Call(ctx context.Context, args compose.Args) (any, error) {
	return c.Soft(ctx, args)
}

// Apply calls the composer with positional arguments and awaits the result
// when it is awaitable.
func (c *Composer) Apply(ctx context.Context, in ...any) (any, error) {
	out, err := c.Call(ctx, compose.Pos(in...))
	if err != nil {
		return nil, err
	}
	return compose.AwaitValue(ctx, out)
}

// Async reports whether any step is declared asynchronous.
func (c *Composer) Async() bool {
	return slices.ContainsFunc(c.Steps(), func(step compose.Callable) bool {
		return compose.IsAsync(step)
	})
}
