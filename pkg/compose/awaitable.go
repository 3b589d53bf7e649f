package compose

import (
	"context"
	"sync"
)

// Awaitable is a result that is not available yet.
type Awaitable interface {
	// Await blocks until the result is available or ctx is done.
	Await(ctx context.Context) (any, error)
}

// AsAwaitable reports whether v is a non-nil Awaitable.
func AsAwaitable(v any) (Awaitable, bool) {
	a, ok := v.(Awaitable)
	if !ok || IsNil(a) {
		return nil, false
	}
	return a, true
}

// AwaitValue awaits v when it is awaitable and returns it unchanged otherwise.
// An awaitable is awaited once; if it resolves to another awaitable that
// value is returned as is.
func AwaitValue(ctx context.Context, v any) (any, error) {
	if a, ok := AsAwaitable(v); ok {
		return a.Await(ctx)
	}
	return v, nil
}

// Future is the Awaitable returned by composers and by the Go, Defer,
// Resolve and Reject helpers. It settles once and every Await observes the
// same outcome. A panic raised while computing the value is raised again in
// each awaiter.
type Future struct {
	once  sync.Once
	lazy  func(ctx context.Context) (any, error)
	done  chan struct{}
	value any
	err   error

	panicked  bool
	recovered any
}

// Go runs fn in a new goroutine and returns its future.
func Go(ctx context.Context, fn func(ctx context.Context) (any, error)) *Future {
	f := &Future{done: make(chan struct{})}
	go f.run(ctx, fn)
	return f
}

// Defer returns a future that starts fn in a new goroutine when it is first
// awaited. fn gets the first awaiter's context values but not its
// cancellation, so an awaiter that gives up does not settle the future.
func Defer(fn func(ctx context.Context) (any, error)) *Future {
	return &Future{done: make(chan struct{}), lazy: fn}
}

// Resolve returns a settled future holding v.
func Resolve(v any) *Future {
	f := &Future{done: make(chan struct{}), value: v}
	close(f.done)
	return f
}

// Reject returns a settled future holding err.
func Reject(err error) *Future {
	f := &Future{done: make(chan struct{}), err: err}
	close(f.done)
	return f
}

func (f *Future) run(ctx context.Context, fn func(ctx context.Context) (any, error)) {
	defer close(f.done)
	defer func() {
		if r := recover(); r != nil {
			f.panicked, f.recovered = true, r
		}
	}()
	f.value, f.err = fn(ctx)
}

// Await implements Awaitable. When ctx ends before the future settles, Await
// returns ctx.Err() and the future keeps running.
func (f *Future) Await(ctx context.Context) (any, error) {
	if f.lazy != nil {
		f.once.Do(func() {
			go f.run(context.WithoutCancel(ctx), f.lazy)
		})
	}

	select {
	case <-f.done:
		return f.result()
	default:
	}

	select {
	case <-f.done:
		return f.result()
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Done is closed once the future settles. A deferred future does not start
// before it is awaited.
func (f *Future) Done() <-chan struct{} {
	return f.done
}

func (f *Future) result() (any, error) {
	if f.panicked {
		panic(f.recovered)
	}
	return f.value, f.err
}
