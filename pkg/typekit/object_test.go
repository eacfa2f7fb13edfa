package typekit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstanceCapabilities(t *testing.T) {
	r := NewRegistry()

	shape, err := r.DefineClass("Shape")
	require.NoError(t, err)

	inst, err := NewInstance(shape, map[string]any{"sides": 4})
	require.NoError(t, err)

	assert.Same(t, shape, inst.Class())
	assert.Equal(t, "Shape", inst.Type())
	assert.True(t, inst.TypeOf("Shape"))
	assert.True(t, inst.TypeOf("Object"))
	assert.False(t, inst.TypeOf("UnrelatedType"))

	assert.True(t, r.TypeOf(inst, "Shape"))
	assert.False(t, r.TypeOf(inst, "UnrelatedType"))
	assert.Equal(t, "Shape", TypeName(inst))
}

func TestInstanceUnionQueries(t *testing.T) {
	r := NewRegistry()

	a, err := r.DefineClass("A")
	require.NoError(t, err)
	b, err := r.DefineClass("B")
	require.NoError(t, err)
	c, err := r.DefineClass("C", a, b)
	require.NoError(t, err)

	inst, err := NewInstance(c, nil)
	require.NoError(t, err)

	assert.True(t, r.TypeOf(inst, "A"))
	assert.True(t, r.TypeOf(inst, "B"))
	assert.True(t, r.TypeOf(inst, "C"))
	assert.True(t, r.TypeOf(inst, "A|B"))
	assert.True(t, r.TypeOf(inst, "Missing|B"))
	assert.False(t, r.TypeOf(inst, "Missing|AlsoMissing"))
}

func TestInstanceInspect(t *testing.T) {
	r := NewRegistry()

	shape, err := r.DefineClass("Shape")
	require.NoError(t, err)
	// A display override must not leak into Inspect output.
	shape.Fields["display"] = func(i *Instance) string { return "pretty shape" }

	inst, err := NewInstance(shape, map[string]any{"sides": 4})
	require.NoError(t, err)

	out := inst.Inspect()
	assert.True(t, strings.HasPrefix(out, "Shape "), "Inspect = %q", out)
	assert.Contains(t, out, "sides")
	assert.NotContains(t, out, "pretty shape")
}

func TestNewInstanceNilClass(t *testing.T) {
	_, err := NewInstance(nil, nil)
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
}

func TestZeroValueInstance(t *testing.T) {
	r := NewRegistry()
	var inst Instance

	assert.Nil(t, inst.Class())
	assert.Equal(t, "object", inst.Type())
	assert.False(t, inst.TypeOf("Object"))
	assert.True(t, strings.HasPrefix(inst.Inspect(), "object "))

	assert.True(t, r.TypeOf(&inst, "object"))
	assert.False(t, r.TypeOf(&inst, "Shape"))
	assert.Equal(t, "object", TypeName(&inst))
}
