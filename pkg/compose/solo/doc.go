// Package solo contains the synchronous composer. Every step runs in the
// caller's goroutine and its result is handed to the next step unchanged,
// even when it is awaitable.
//
// Highlights:
// - New/MustNew: build a Composer from steps (same-kind composers are flattened)
// - Call/Apply: run the steps, first listed first
// - Steps/Signature/String/Equal: introspection
// - SetAttr/Attr: attach metadata without touching the steps
package solo
