package compose

import (
	"fmt"
	"maps"
	"slices"
)

// Args are the arguments of a single call. The first step of a composition
// receives the caller's Args; every later step receives Pos(previous result).
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// Pos builds positional-only arguments.
func Pos(vals ...any) Args {
	return Args{Positional: vals}
}

// With returns a copy of a with the keyword argument name set to v.
func (a Args) With(name string, v any) Args {
	kw := maps.Clone(a.Keyword)
	if kw == nil {
		kw = make(map[string]any, 1)
	}
	kw[name] = v
	return Args{Positional: a.Positional, Keyword: kw}
}

// Single returns the only positional argument. It fails when a holds
// keyword arguments or does not hold exactly one positional argument.
func (a Args) Single() (any, error) {
	if name, ok := a.firstKeyword(); ok {
		return nil, fmt.Errorf("unexpected keyword argument %q", name)
	}
	if len(a.Positional) != 1 {
		return nil, fmt.Errorf("takes 1 positional argument but %d were given", len(a.Positional))
	}
	return a.Positional[0], nil
}

func (a Args) firstKeyword() (string, bool) {
	if len(a.Keyword) == 0 {
		return "", false
	}
	return slices.Sorted(maps.Keys(a.Keyword))[0], true
}
