package compose

import (
	"context"
	"fmt"
	"reflect"
	"strconv"
)

// Callable is a single step of a composition.
type Callable interface {
	Call(ctx context.Context, args Args) (any, error)
}

// Func adapts a unary function. It is called with the single positional
// argument of the call.
type Func func(ctx context.Context, in any) (any, error)

// Call implements Callable.
func (f Func) Call(ctx context.Context, args Args) (any, error) {
	in, err := args.Single()
	if err != nil {
		return nil, &CallError{Step: f.String(), Reason: err.Error()}
	}
	return f(ctx, in)
}

func (f Func) String() string {
	return funcName(f)
}

// Signature implements Signed.
func (f Func) Signature() Signature {
	return Signature{Params: []Param{{Name: "in", Type: "any"}}}
}

// VarFunc adapts a function that receives the call arguments unchanged.
type VarFunc func(ctx context.Context, args Args) (any, error)

// Call implements Callable.
func (f VarFunc) Call(ctx context.Context, args Args) (any, error) {
	return f(ctx, args)
}

func (f VarFunc) String() string {
	return funcName(f)
}

// Signature implements Signed.
func (f VarFunc) Signature() Signature {
	return opaqueSignature.Clone()
}

// AsCallable converts fn into a Callable. Callable values are returned as
// they are; plain funcs are wrapped when their inputs are an optional leading
// context.Context followed by positional parameters and their results are
// (), (T), (error) or (T, error). Anything else is not callable.
func AsCallable(fn any) (Callable, error) {
	if IsNil(fn) {
		return nil, fmt.Errorf("%w: nil is not callable", ErrInvalidArgument)
	}
	switch f := fn.(type) {
	case Callable:
		return f, nil
	case func(context.Context, Args) (any, error):
		return VarFunc(f), nil
	case func(context.Context, any) (any, error):
		return Func(f), nil
	}
	if rf, ok := newReflectFunc(fn); ok {
		return rf, nil
	}
	return nil, fmt.Errorf("%w: %T is not callable", ErrInvalidArgument, fn)
}

// IsCallable reports whether AsCallable accepts fn.
func IsCallable(fn any) bool {
	_, err := AsCallable(fn)
	return err == nil
}

var (
	contextType   = reflect.TypeFor[context.Context]()
	errorType     = reflect.TypeFor[error]()
	awaitableType = reflect.TypeFor[Awaitable]()
)

// reflectFunc calls an arbitrary Go func through reflection.
type reflectFunc struct {
	raw     any
	fn      reflect.Value
	typ     reflect.Type
	withCtx bool
	withErr bool
}

func newReflectFunc(fn any) (*reflectFunc, bool) {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func || v.IsNil() {
		return nil, false
	}
	t := v.Type()
	rf := &reflectFunc{raw: fn, fn: v, typ: t}
	rf.withCtx = t.NumIn() > 0 && t.In(0) == contextType
	switch t.NumOut() {
	case 0:
	case 1:
		rf.withErr = t.Out(0) == errorType
	case 2:
		if t.Out(1) != errorType {
			return nil, false
		}
		rf.withErr = true
	default:
		return nil, false
	}
	return rf, true
}

func (f *reflectFunc) offset() int {
	if f.withCtx {
		return 1
	}
	return 0
}

// Call implements Callable.
func (f *reflectFunc) Call(ctx context.Context, args Args) (any, error) {
	if name, ok := args.firstKeyword(); ok {
		return nil, &CallError{Step: f.String(), Reason: fmt.Sprintf("unexpected keyword argument %q", name)}
	}

	t := f.typ
	params := t.NumIn() - f.offset()
	n := len(args.Positional)
	switch {
	case t.IsVariadic() && n < params-1:
		return nil, &CallError{Step: f.String(),
			Reason: fmt.Sprintf("takes at least %d positional arguments but %d were given", params-1, n)}
	case !t.IsVariadic() && n != params:
		return nil, &CallError{Step: f.String(),
			Reason: fmt.Sprintf("takes %d positional arguments but %d were given", params, n)}
	}

	in := make([]reflect.Value, 0, f.offset()+n)
	if f.withCtx {
		if ctx == nil {
			ctx = context.Background()
		}
		in = append(in, reflect.ValueOf(ctx))
	}
	for i, arg := range args.Positional {
		var pt reflect.Type
		if t.IsVariadic() && i >= params-1 {
			pt = t.In(t.NumIn() - 1).Elem()
		} else {
			pt = t.In(f.offset() + i)
		}
		v, err := f.argValue(arg, pt, i)
		if err != nil {
			return nil, err
		}
		in = append(in, v)
	}

	out := f.fn.Call(in)
	switch len(out) {
	case 0:
		return nil, nil
	case 1:
		if f.withErr {
			return nil, errorValue(out[0])
		}
		return out[0].Interface(), nil
	default:
		return out[0].Interface(), errorValue(out[1])
	}
}

func (f *reflectFunc) argValue(arg any, pt reflect.Type, pos int) (reflect.Value, error) {
	if arg == nil {
		switch pt.Kind() {
		case reflect.Interface, reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
			return reflect.Zero(pt), nil
		}
		return reflect.Value{}, &CallError{Step: f.String(),
			Reason: fmt.Sprintf("argument %d: cannot use nil as %s", pos, pt)}
	}
	v := reflect.ValueOf(arg)
	if !v.Type().AssignableTo(pt) {
		return reflect.Value{}, &CallError{Step: f.String(),
			Reason: fmt.Sprintf("argument %d: cannot use %s as %s", pos, v.Type(), pt)}
	}
	return v, nil
}

func errorValue(v reflect.Value) error {
	if v.IsNil() {
		return nil
	}
	return v.Interface().(error)
}

func (f *reflectFunc) String() string {
	return funcName(f.raw)
}

// Unwrap returns the wrapped func.
func (f *reflectFunc) Unwrap() any {
	return f.raw
}

// Async reports whether the func returns an awaitable.
func (f *reflectFunc) Async() bool {
	return f.typ.NumOut() > 0 && f.typ.Out(0).Implements(awaitableType)
}

// Signature implements Signed.
func (f *reflectFunc) Signature() Signature {
	t := f.typ
	params := make([]Param, 0, t.NumIn())
	for i := f.offset(); i < t.NumIn(); i++ {
		if t.IsVariadic() && i == t.NumIn()-1 {
			params = append(params, Param{Name: "args", Type: t.In(i).Elem().String(), Kind: VarPositional})
			continue
		}
		params = append(params, Param{Name: "arg" + strconv.Itoa(i-f.offset()), Type: t.In(i).String()})
	}
	return Signature{Params: params}
}

// NamedStep is a step with a stable name. Named steps can be serialized.
type NamedStep struct {
	name string
	step Callable
}

// Named gives fn a stable name.
func Named(name string, fn any) (*NamedStep, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: step name is empty", ErrInvalidArgument)
	}
	step, err := AsCallable(fn)
	if err != nil {
		return nil, err
	}
	return &NamedStep{name: name, step: step}, nil
}

// Name returns the step name.
func (n *NamedStep) Name() string {
	return n.name
}

// Call implements Callable.
func (n *NamedStep) Call(ctx context.Context, args Args) (any, error) {
	return n.step.Call(ctx, args)
}

func (n *NamedStep) String() string {
	return n.name
}

// Signature implements Signed.
func (n *NamedStep) Signature() Signature {
	return SignatureOf(n.step)
}

// Async reports whether the named step is declared asynchronous.
func (n *NamedStep) Async() bool {
	return IsAsync(n.step)
}

// Equal reports whether other is a NamedStep with the same name and step.
func (n *NamedStep) Equal(other any) bool {
	o, ok := other.(*NamedStep)
	if !ok || IsNil(o) {
		return false
	}
	return n == o || (n.name == o.name && SameStep(n.step, o.step))
}

// IsAsync reports whether step declares itself asynchronous.
func IsAsync(step any) bool {
	if a, ok := step.(interface{ Async() bool }); ok && !IsNil(a) {
		return a.Async()
	}
	return false
}

// Describe returns the textual representation of a step.
func Describe(step any) string {
	switch s := step.(type) {
	case nil:
		return "<nil>"
	case fmt.Stringer:
		return s.String()
	}
	if reflect.ValueOf(step).Kind() == reflect.Func {
		return funcName(step)
	}
	return fmt.Sprintf("%#v", step)
}
