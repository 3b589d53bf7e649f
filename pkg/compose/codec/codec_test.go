package codec_test

import (
	"context"
	"strings"
	"testing"

	"github.com/ib-77/compose/internal/builtins"
	"github.com/ib-77/compose/pkg/compose"
	"github.com/ib-77/compose/pkg/compose/codec"
	"github.com/ib-77/compose/pkg/compose/lite"
	"github.com/ib-77/compose/pkg/compose/mass"
	"github.com/ib-77/compose/pkg/compose/solo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(t *testing.T, reg *codec.Registry, name string) *compose.NamedStep {
	t.Helper()
	step, err := reg.Lookup(name)
	require.NoError(t, err)
	return step
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	reg := builtins.Registry()

	for _, format := range []codec.Format{codec.FormatJSON, codec.FormatYAML} {
		t.Run(string(format), func(t *testing.T) {
			orig := lite.MustNew(
				lookup(t, reg, "inc"),
				mass.MustNew(lookup(t, reg, "double"), lookup(t, reg, "async-double")),
				lookup(t, reg, "negate"),
			)
			orig.SetAttr("owner", "billing")
			orig.SetAttr("retries", 3)
			orig.SetAttr("ratio", 0.5)

			cd := codec.Codec{Registry: builtins.Registry(), Format: format}
			data, err := cd.Marshal(orig)
			require.NoError(t, err)

			got, err := cd.Unmarshal(data)
			require.NoError(t, err)
			assert.True(t, orig.Equal(got))
			assert.Equal(t, orig.String(), compose.Describe(got))

			restored, ok := got.(*lite.Composer)
			require.True(t, ok)
			owner, ok := restored.Attr("owner")
			require.True(t, ok)
			assert.Equal(t, "billing", owner)
			assert.Equal(t, orig.Attrs(), restored.Attrs(), "attribute types survive the round trip")

			want, err := compose.AwaitValue(ctx, mustCall(t, orig, 1))
			require.NoError(t, err)
			have, err := compose.AwaitValue(ctx, mustCall(t, got, 1))
			require.NoError(t, err)
			assert.Equal(t, want, have)
			assert.Equal(t, -8, have)
		})
	}
}

func mustCall(t *testing.T, c compose.Composer, in int) any {
	t.Helper()
	out, err := c.Call(context.Background(), compose.Pos(in))
	require.NoError(t, err)
	return out
}

func TestEncode(t *testing.T) {
	t.Parallel()
	reg := builtins.Registry()

	doc, err := codec.Encode(lite.MustNew(lookup(t, reg, "square"), lite.MustNew(lookup(t, reg, "half"))))
	require.NoError(t, err)
	assert.Equal(t, &codec.Document{
		Kind:  "soft-async",
		Steps: []codec.StepDocument{{Name: "square"}, {Name: "half"}},
	}, doc)
}

func TestEncode_RejectsUnnamedSteps(t *testing.T) {
	t.Parallel()

	_, err := codec.Encode(solo.MustNew(func(x int) int { return x }))
	require.ErrorIs(t, err, codec.ErrNotSerializable)

	reg := builtins.Registry()
	_, err = codec.Encode(mass.MustNew(lookup(t, reg, "inc"), solo.MustNew(strings.ToUpper)))
	require.ErrorIs(t, err, codec.ErrNotSerializable)
}

func TestUnmarshal_YAMLDocument(t *testing.T) {
	t.Parallel()

	src := `
kind: lite
steps:
  - name: double
  - composer:
      kind: sync
      steps:
        - name: inc
        - name: square
`
	c, err := codec.Codec{Registry: builtins.Registry(), Format: codec.FormatYAML}.Unmarshal([]byte(src))
	require.NoError(t, err)
	assert.Equal(t, compose.KindSoftAsync, c.Kind())
	assert.Len(t, c.Steps(), 2)
	assert.Equal(t, "lite.New(double, solo.New(inc, square))", compose.Describe(c))

	out, err := c.Call(context.Background(), compose.Pos(2))
	require.NoError(t, err)
	assert.Equal(t, 25, out)
}

func TestUnmarshal_Errors(t *testing.T) {
	t.Parallel()
	cd := codec.Codec{Registry: builtins.Registry()}

	_, err := cd.Unmarshal([]byte(`{"kind":"sync","steps":[{"name":"missing"}]}`))
	require.ErrorIs(t, err, codec.ErrUnknownStep)

	_, err = cd.Unmarshal([]byte(`{"kind":"eager","steps":[{"name":"inc"}]}`))
	require.ErrorIs(t, err, compose.ErrUnknownKind)

	_, err = cd.Unmarshal([]byte(`{"kind":"sync","steps":[]}`))
	require.ErrorIs(t, err, compose.ErrInvalidArgument)

	_, err = cd.Unmarshal([]byte(`{"kind":"sync","steps":[{}]}`))
	require.ErrorIs(t, err, compose.ErrInvalidArgument)

	_, err = cd.Unmarshal([]byte(`{"kind":"sync","step":[{"name":"inc"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step")
	assert.NotErrorIs(t, err, compose.ErrInvalidArgument, "unknown fields fail decoding, not construction")

	_, err = cd.Unmarshal([]byte(`{"kind":"sync","steps":[{"name":"inc","composer":{"kind":"async","steps":[{"name":"inc"}]}}]}`))
	require.ErrorIs(t, err, compose.ErrInvalidArgument)
	assert.Contains(t, err.Error(), "both name and composer set")

	_, err = cd.Unmarshal([]byte(`not json`))
	require.Error(t, err)
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	reg := codec.NewRegistry()
	_, err := reg.Register("", strings.ToUpper)
	require.ErrorIs(t, err, compose.ErrInvalidArgument)
	_, err = reg.Register("upper", "not callable")
	require.ErrorIs(t, err, compose.ErrInvalidArgument)

	first := reg.MustRegister("upper", strings.ToUpper)
	second := reg.MustRegister("upper", strings.ToLower)
	assert.NotSame(t, first, second)

	got, err := reg.Lookup("upper")
	require.NoError(t, err)
	assert.Same(t, second, got, "registering again replaces the step")
	assert.Equal(t, []string{"upper"}, reg.Names())

	var zero codec.Registry
	_, err = zero.Register("upper", strings.ToUpper)
	require.NoError(t, err)
}

func TestParseFormat(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]codec.Format{
		"json": codec.FormatJSON, ".json": codec.FormatJSON,
		"yaml": codec.FormatYAML, "YML": codec.FormatYAML,
	} {
		got, err := codec.ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	got, err := codec.FormatOf("pipelines/main.yaml")
	require.NoError(t, err)
	assert.Equal(t, codec.FormatYAML, got)

	_, err = codec.ParseFormat("toml")
	assert.Error(t, err)
}
