package compose

import "reflect"

type equaler interface {
	Equal(other any) bool
}

// Unwrap strips step adapters and returns the innermost wrapped value.
func Unwrap(step any) any {
	for {
		u, ok := step.(interface{ Unwrap() any })
		if !ok || IsNil(u) {
			return step
		}
		step = u.Unwrap()
	}
}

// SameStep reports whether a and b denote the same step. Values with an
// Equal method decide for themselves, funcs compare by code pointer and
// other values compare with == when their dynamic types allow it.
//
// Closures created by the same function literal share a code pointer and
// therefore compare equal.
func SameStep(a, b any) bool {
	if e, ok := a.(equaler); ok && !IsNil(e) {
		return e.Equal(b)
	}
	if e, ok := b.(equaler); ok && !IsNil(e) {
		return e.Equal(a)
	}

	va, vb := reflect.ValueOf(Unwrap(a)), reflect.ValueOf(Unwrap(b))
	if !va.IsValid() || !vb.IsValid() {
		return !va.IsValid() && !vb.IsValid()
	}
	if va.Kind() == reflect.Func && vb.Kind() == reflect.Func {
		if va.IsNil() || vb.IsNil() {
			return va.IsNil() && vb.IsNil()
		}
		return va.Pointer() == vb.Pointer()
	}
	if va.Type() != vb.Type() {
		return false
	}
	return va.Comparable() && vb.Comparable() && va.Equal(vb)
}

// SameSteps reports whether two step sequences are pairwise SameStep.
func SameSteps(a, b []Callable) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !SameStep(a[i], b[i]) {
			return false
		}
	}
	return true
}
