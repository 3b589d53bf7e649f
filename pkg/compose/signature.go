package compose

import (
	"fmt"
	"slices"
	"strings"
)

// ParamKind tells how a parameter binds call arguments.
type ParamKind uint8

const (
	// Positional binds exactly one positional argument.
	Positional ParamKind = iota
	// VarPositional collects the remaining positional arguments.
	VarPositional
	// VarKeyword collects keyword arguments.
	VarKeyword
)

// Param describes one parameter of a step.
type Param struct {
	Name       string
	Type       string
	Kind       ParamKind
	Default    any
	HasDefault bool
}

func (p Param) String() string {
	var sb strings.Builder
	switch p.Kind {
	case VarPositional:
		sb.WriteString("*")
	case VarKeyword:
		sb.WriteString("**")
	}
	sb.WriteString(p.Name)
	if p.Type != "" {
		sb.WriteString(" " + p.Type)
	}
	if p.HasDefault {
		fmt.Fprintf(&sb, " = %v", p.Default)
	}
	return sb.String()
}

// Signature lists the parameters a step accepts. A composer exposes the
// signature of its first step since that step receives the call arguments.
type Signature struct {
	Params []Param
}

func (s Signature) String() string {
	parts := make([]string, len(s.Params))
	for i, p := range s.Params {
		parts[i] = p.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}

// Clone returns a copy that does not share the parameter slice.
func (s Signature) Clone() Signature {
	return Signature{Params: slices.Clone(s.Params)}
}

// Variadic reports whether the signature collects extra positional arguments.
func (s Signature) Variadic() bool {
	return slices.ContainsFunc(s.Params, func(p Param) bool { return p.Kind == VarPositional })
}

// Signed is implemented by steps that describe their own parameters.
type Signed interface {
	Signature() Signature
}

// opaqueSignature is reported for steps that do not describe themselves.
var opaqueSignature = Signature{Params: []Param{
	{Name: "args", Kind: VarPositional},
	{Name: "kwargs", Kind: VarKeyword},
}}

// SignatureOf returns the signature of step.
func SignatureOf(step any) Signature {
	switch s := step.(type) {
	case Signed:
		if !IsNil(s) {
			return s.Signature()
		}
	default:
		if rf, ok := newReflectFunc(step); ok {
			return rf.Signature()
		}
	}
	return opaqueSignature.Clone()
}
