// Package compose holds the vocabulary shared by the composer variants:
// steps (Callable), call arguments (Args), awaitable results (Awaitable and
// Future), variant tags (Kind), signatures and step equality.
//
// A composer turns an ordered list of steps into a single Callable. The first
// step receives the call arguments and each following step receives the
// result of the previous one:
//
//	c, err := solo.New(parse, double, format)
//	out, err := c.Call(ctx, compose.Pos("21")) // format(double(parse("21")))
//
// The variants live in sub-packages:
//
//   - solo: synchronous; awaitable results are passed on untouched.
//   - mass: always asynchronous; every call returns a Future and every
//     awaitable step result is awaited before the next step runs.
//   - lite: synchronous until a step returns an awaitable, asynchronous from
//     then on.
//
// Plain Go funcs are accepted as steps through reflection (see AsCallable),
// so func(int) int or func(context.Context, string) (int, error) can be
// composed directly.
package compose
