package compose

import "fmt"

// Kind tags a composer variant. Variants are mutually exclusive and only
// composers of the same Kind are flattened into each other.
type Kind uint8

const (
	KindUnknown Kind = iota
	// KindSync never awaits; results flow straight from step to step.
	KindSync
	// KindAsync always returns an awaitable and awaits every step result.
	KindAsync
	// KindSoftAsync is synchronous until a step returns an awaitable.
	KindSoftAsync
)

var kindNames = map[Kind]string{
	KindSync:      "sync",
	KindAsync:     "async",
	KindSoftAsync: "soft-async",
}

var kindPackages = map[Kind]string{
	KindSync:      "solo",
	KindAsync:     "mass",
	KindSoftAsync: "lite",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Package is the name of the package implementing the variant.
func (k Kind) Package() string {
	if pkg, ok := kindPackages[k]; ok {
		return pkg
	}
	return "compose"
}

// ParseKind accepts both kind names ("sync") and package names ("solo").
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if s == name || s == kindPackages[k] {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}
