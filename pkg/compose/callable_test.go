package compose

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func double(x int) int { return x * 2 }

func parse(ctx context.Context, s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty")
	}
	return len(s), nil
}

type callableStruct struct{ factor int }

func (c callableStruct) Call(_ context.Context, args Args) (any, error) {
	in, err := args.Single()
	if err != nil {
		return nil, err
	}
	return in.(int) * c.factor, nil
}

func TestAsCallable_AcceptedShapes(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cases := []struct {
		name string
		fn   any
		args Args
		want any
	}{
		{"plain", double, Pos(3), 6},
		{"ctx and error", parse, Pos("abc"), 3},
		{"unary adapter", func(_ context.Context, in any) (any, error) { return in, nil }, Pos("x"), "x"},
		{"var adapter", func(_ context.Context, a Args) (any, error) { return len(a.Positional), nil }, Pos(1, 2), 2},
		{"variadic", func(xs ...int) int { return len(xs) }, Pos(1, 2, 3), 3},
		{"no result", func(int) {}, Pos(1), nil},
		{"error only", func(int) error { return nil }, Pos(1), nil},
		{"callable value", callableStruct{factor: 3}, Pos(2), 6},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			step, err := AsCallable(tc.fn)
			require.NoError(t, err)
			out, err := step.Call(ctx, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestAsCallable_RejectsNonCallables(t *testing.T) {
	t.Parallel()

	var nilFunc func(int) int
	var nilStep *NamedStep
	for _, fn := range []any{nil, "not callable", 42, nilFunc, nilStep, func() (int, int) { return 0, 0 }} {
		_, err := AsCallable(fn)
		require.ErrorIs(t, err, ErrInvalidArgument, "%T", fn)
		assert.False(t, IsCallable(fn))
	}
}

func TestReflectFunc_CallErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	step, err := AsCallable(double)
	require.NoError(t, err)

	_, err = step.Call(ctx, Pos(1, 2))
	require.ErrorIs(t, err, ErrBadCall)

	_, err = step.Call(ctx, Pos("two"))
	require.ErrorIs(t, err, ErrBadCall)
	var callErr *CallError
	require.ErrorAs(t, err, &callErr)
	assert.Contains(t, callErr.Reason, "cannot use string as int")

	_, err = step.Call(ctx, Pos(nil))
	require.ErrorIs(t, err, ErrBadCall)

	_, err = step.Call(ctx, Pos(1).With("x", 2))
	require.ErrorIs(t, err, ErrBadCall)
}

func TestReflectFunc_StepErrorReturnedAsIs(t *testing.T) {
	t.Parallel()
	sentinel := errors.New("boom")
	step, err := AsCallable(func(int) (int, error) { return 0, sentinel })
	require.NoError(t, err)

	_, err = step.Call(context.Background(), Pos(1))
	assert.Same(t, sentinel, err)
}

func TestSignatureOf(t *testing.T) {
	t.Parallel()

	sig := SignatureOf(parse)
	require.Len(t, sig.Params, 1)
	assert.Equal(t, "arg0", sig.Params[0].Name)
	assert.Equal(t, "string", sig.Params[0].Type)
	assert.False(t, sig.Variadic())

	sig = SignatureOf(func(prefix string, xs ...int) int { return 0 })
	assert.True(t, sig.Variadic())
	assert.Equal(t, "(arg0 string, *args int)", sig.String())

	assert.Equal(t, "(*args, **kwargs)", SignatureOf(callableStruct{}).String())
	assert.Equal(t, "(in any)", SignatureOf(Func(func(_ context.Context, in any) (any, error) { return in, nil })).String())
}

func TestNamedStep(t *testing.T) {
	t.Parallel()

	_, err := Named("", double)
	require.ErrorIs(t, err, ErrInvalidArgument)
	_, err = Named("x", "nope")
	require.ErrorIs(t, err, ErrInvalidArgument)

	a, err := Named("double", double)
	require.NoError(t, err)
	b, err := Named("double", double)
	require.NoError(t, err)
	c, err := Named("twice", double)
	require.NoError(t, err)

	assert.Equal(t, "double", a.Name())
	assert.Equal(t, "double", Describe(a))
	assert.True(t, SameStep(a, b))
	assert.False(t, SameStep(a, c))
	assert.False(t, SameStep(a, double))

	out, err := a.Call(context.Background(), Pos(21))
	require.NoError(t, err)
	assert.Equal(t, 42, out)
}

func TestSameStep(t *testing.T) {
	t.Parallel()

	wrapped, err := AsCallable(double)
	require.NoError(t, err)

	assert.True(t, SameStep(double, double))
	assert.True(t, SameStep(wrapped, double))
	assert.False(t, SameStep(wrapped, parse))
	assert.True(t, SameStep(callableStruct{2}, callableStruct{2}))
	assert.False(t, SameStep(callableStruct{2}, callableStruct{3}))
	assert.True(t, SameStep(nil, nil))
	assert.False(t, SameStep(nil, double))
}

func TestSameStep_ClosuresCompareByCode(t *testing.T) {
	t.Parallel()

	var adders []func(int) int
	for n := range 3 {
		adders = append(adders, func(x int) int { return x + n })
	}

	assert.True(t, SameStep(adders[1], adders[2]), "captured values are not compared")
	assert.False(t, SameStep(adders[1], func(x int) int { return x + 1 }))

	step, err := AsCallable(adders[2])
	require.NoError(t, err)
	v, err := step.Call(context.Background(), Pos(1))
	require.NoError(t, err)
	assert.Equal(t, 3, v)
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "compose.double", Describe(double))
	wrapped, err := AsCallable(parse)
	require.NoError(t, err)
	assert.Equal(t, "compose.parse", Describe(wrapped))
	assert.True(t, strings.HasPrefix(Describe(callableStruct{2}), "compose.callableStruct"))
}

func TestIsAsync(t *testing.T) {
	t.Parallel()

	asyncStep, err := AsCallable(func(x int) *Future { return Resolve(x) })
	require.NoError(t, err)
	syncStep, err := AsCallable(double)
	require.NoError(t, err)

	assert.True(t, IsAsync(asyncStep))
	assert.False(t, IsAsync(syncStep))
	assert.False(t, IsAsync(42))
}

func TestArgs(t *testing.T) {
	t.Parallel()

	base := Pos(1)
	with := base.With("self", 2)
	assert.Nil(t, base.Keyword)
	assert.Equal(t, map[string]any{"self": 2}, with.Keyword)

	_, err := with.Single()
	require.Error(t, err)
	_, err = Pos().Single()
	require.Error(t, err)
	v, err := base.Single()
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}

func TestKind(t *testing.T) {
	t.Parallel()

	for _, k := range []Kind{KindSync, KindAsync, KindSoftAsync} {
		byName, err := ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, byName)
		byPkg, err := ParseKind(k.Package())
		require.NoError(t, err)
		assert.Equal(t, k, byPkg)
	}

	_, err := ParseKind("eager")
	require.ErrorIs(t, err, ErrUnknownKind)
	assert.Equal(t, KindUnknown, KindOf(double))
}
