package core

import (
	"context"
	"log/slog"

	"github.com/ib-77/compose/pkg/compose"
)

// CallStep invokes the step at index i.
func (b *Base) CallStep(ctx context.Context, i int, args compose.Args) (any, error) {
	b.trace(ctx, i)
	return b.steps[i].Call(ctx, args)
}

// Pipe runs every step in order, feeding each result to the next step as it
// is. Awaitable results are not awaited.
func (b *Base) Pipe(ctx context.Context, args compose.Args) (any, error) {
	result, err := b.CallStep(ctx, 0, args)
	for i := 1; err == nil && i < len(b.steps); i++ {
		result, err = b.CallStep(ctx, i, compose.Pos(result))
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Settle awaits result when it is awaitable and then runs the steps from
// index start on, awaiting every awaitable they return before the next one.
// It stops before the next step once ctx is done.
func (b *Base) Settle(ctx context.Context, result any, start int) (any, error) {
	result, err := compose.AwaitValue(ctx, result)
	for i := start; err == nil && i < len(b.steps); i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		result, err = b.CallStep(ctx, i, compose.Pos(result))
		if err == nil {
			result, err = compose.AwaitValue(ctx, result)
		}
	}
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Soft runs the steps synchronously until one returns an awaitable. The rest
// of the chain is then deferred into a single Future that awaits it first
// and runs under ctx.
// When no step returns an awaitable the plain result is returned.
func (b *Base) Soft(ctx context.Context, args compose.Args) (any, error) {
	result, err := b.CallStep(ctx, 0, args)
	for i := 1; ; i++ {
		if err != nil {
			return nil, err
		}
		if pending, ok := compose.AsAwaitable(result); ok {
			b.debug(ctx, "deferring remaining steps", slog.Int("index", i))
			return compose.Defer(func(context.Context) (any, error) {
				return b.Settle(ctx, pending, i)
			}), nil
		}
		if i == len(b.steps) {
			return result, nil
		}
		result, err = b.CallStep(ctx, i, compose.Pos(result))
	}
}

func (b *Base) trace(ctx context.Context, i int) {
	logger := LoggerFrom(ctx)
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	logger.DebugContext(ctx, "invoking step",
		slog.String("composer", b.id.String()),
		slog.String("kind", b.kind.String()),
		slog.Int("index", i),
		slog.String("step", compose.Describe(b.steps[i])))
}

func (b *Base) debug(ctx context.Context, msg string, attrs ...slog.Attr) {
	logger := LoggerFrom(ctx)
	if !logger.Enabled(ctx, slog.LevelDebug) {
		return
	}
	attrs = append(attrs,
		slog.String("composer", b.id.String()),
		slog.String("kind", b.kind.String()))
	logger.LogAttrs(ctx, slog.LevelDebug, msg, attrs...)
}
