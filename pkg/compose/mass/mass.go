package mass

import (
	"context"

	"github.com/ib-77/compose/pkg/compose"
	"github.com/ib-77/compose/pkg/compose/core"
)

// Composer always produces an awaitable.
type Composer struct {
	core.Base
}

var _ compose.Composer = (*Composer)(nil)

// New composes fns. The first listed step runs first.
func New(fns ...any) (*Composer, error) {
	c := &Composer{}
	if err := c.Init(compose.KindAsync, fns...); err != nil {
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

// Call implements compose.Callable. The result is always a *compose.Future
// and the error is always nil; step errors surface from Await.
func (c *Composer) Call(ctx context.Context, args compose.Args) (any, error) {
	return c.Invoke(ctx, args), nil
}

// Invoke returns a deferred future for the chain. The steps start when the
// future is first awaited and run under ctx, whatever context the awaiter
// uses.
func (c *Composer) Invoke(ctx context.Context, args compose.Args) *compose.Future {
	return compose.Defer(func(context.Context) (any, error) {
		return c.run(ctx, args)
	})
}

// Go starts the chain in a new goroutine under ctx.
func (c *Composer) Go(ctx context.Context, args compose.Args) *compose.Future {
	return compose.Go(ctx, func(ctx context.Context) (any, error) {
		return c.run(ctx, args)
	})
}

// Apply calls the composer with positional arguments and awaits the result.
func (c *Composer) Apply(ctx context.Context, in ...any) (any, error) {
	return c.Invoke(ctx, compose.Pos(in...)).Await(ctx)
}

// Async is always true.
func (c *Composer) Async() bool {
	return true
}

func (c *Composer) run(ctx context.Context, args compose.Args) (any, error) {
	first, err := c.CallStep(ctx, 0, args)
	if err != nil {
		return nil, err
	}
	return c.Settle(ctx, first, 1)
}
