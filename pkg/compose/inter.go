package compose

// Composer is the behaviour shared by every composer variant.
type Composer interface {
	Callable
	Signed
	// Kind returns the variant tag.
	Kind() Kind
	// Steps returns a fresh copy of the steps in order of execution.
	Steps() []Callable
}

// KindOf returns the variant of v, or KindUnknown when v is not a composer.
func KindOf(v any) Kind {
	c, ok := v.(Composer)
	if !ok || IsNil(c) {
		return KindUnknown
	}
	return c.Kind()
}
