// Package mass contains the asynchronous composer. A call always returns a
// compose.Future; awaiting it runs the steps in order and awaits every
// awaitable step result before the next step is invoked, whether or not the
// step itself is asynchronous.
//
// Call defers the chain until the future is first awaited. Go starts it right
// away in its own goroutine, bound to the caller's context.
package mass
