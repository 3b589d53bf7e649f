// Package builtins registers the integer steps shipped with the composer CLI.
package builtins

import (
	"context"
	"errors"
	"fmt"

	"github.com/ib-77/compose/pkg/compose"
	"github.com/ib-77/compose/pkg/compose/codec"
)

// ErrOdd is returned by half for odd input.
var ErrOdd = errors.New("odd input")

func double(x int) int { return x * 2 }
func inc(x int) int    { return x + 1 }
func square(x int) int { return x * x }
func negate(x int) int { return -x }

func half(x int) (int, error) {
	if x%2 != 0 {
		return 0, fmt.Errorf("half(%d): %w", x, ErrOdd)
	}
	return x / 2, nil
}

func asyncDouble(ctx context.Context, x int) *compose.Future {
	return compose.Go(ctx, func(context.Context) (any, error) {
		return x * 2, nil
	})
}

var steps = []struct {
	name string
	fn   any
}{
	{"double", double},
	{"inc", inc},
	{"square", square},
	{"negate", negate},
	{"half", half},
	{"async-double", asyncDouble},
}

// Register adds every builtin step to reg.
func Register(reg *codec.Registry) error {
	for _, s := range steps {
		if _, err := reg.Register(s.name, s.fn); err != nil {
			return err
		}
	}
	return nil
}

// Registry returns a new registry holding the builtin steps.
func Registry() *codec.Registry {
	reg := codec.NewRegistry()
	if err := Register(reg); err != nil {
		panic(err)
	}
	return reg
}
