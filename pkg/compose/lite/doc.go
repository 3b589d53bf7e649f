// Package lite contains the soft-async composer. Steps run synchronously
// until one of them returns an awaitable; from that point the rest of the
// chain becomes one compose.Future that awaits the pending value, feeds it to
// the next step and keeps awaiting whatever awaitable the following steps
// return.
//
// A call therefore returns a plain value when no step produced an awaitable
// during that call, and a *compose.Future otherwise.
package lite
