package typekit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefineClassImplicitBase(t *testing.T) {
	r := NewRegistry()

	shape, err := r.DefineClass("Shape")
	require.NoError(t, err)

	assert.Equal(t, "Shape", shape.Name)
	assert.True(t, shape.Satisfies("Shape"))
	assert.True(t, shape.Satisfies("Object"))
	assert.False(t, shape.Satisfies("UnrelatedType"))
	assert.Equal(t, []string{"Object", "Shape"}, shape.Types())
}

func TestDefineClassMultipleInheritance(t *testing.T) {
	r := NewRegistry()

	a, err := r.DefineClass("A")
	require.NoError(t, err)
	a.Fields["f"] = "from A"
	a.Fields["onlyA"] = 1

	b, err := r.DefineClass("B")
	require.NoError(t, err)
	b.Fields["f"] = "from B"
	b.Fields["onlyB"] = 2

	c, err := r.DefineClass("C", a, b)
	require.NoError(t, err)

	// Later parent wins on key collision.
	assert.Equal(t, "from B", c.Fields["f"])
	assert.Equal(t, 1, c.Fields["onlyA"])
	assert.Equal(t, 2, c.Fields["onlyB"])

	assert.True(t, c.Satisfies("A"))
	assert.True(t, c.Satisfies("B"))
	assert.True(t, c.Satisfies("C"))
	assert.True(t, c.Satisfies("Object"))
}

func TestDefineClassPostCreationIsolation(t *testing.T) {
	r := NewRegistry()

	a, err := r.DefineClass("A")
	require.NoError(t, err)
	a.Fields["f"] = "original"

	c, err := r.DefineClass("C", a)
	require.NoError(t, err)

	a.Fields["f"] = "mutated"
	a.Fields["late"] = true

	assert.Equal(t, "original", c.Fields["f"])
	assert.NotContains(t, c.Fields, "late")
	assert.Equal(t, []string{"A", "C", "Object"}, c.Types())
}

func TestDefineClassExcludedFields(t *testing.T) {
	r := NewRegistry()

	a, err := r.DefineClass("A")
	require.NoError(t, err)
	a.Fields["new"] = "constructor"
	a.Fields["secret"] = 42
	a.Fields["kept"] = "yes"

	r.Exclude("secret")

	c, err := r.DefineClass("C", a)
	require.NoError(t, err)

	assert.NotContains(t, c.Fields, "new")
	assert.NotContains(t, c.Fields, "secret")
	assert.Equal(t, "yes", c.Fields["kept"])
	assert.Equal(t, []string{"new", "secret"}, r.Excluded())
}

func TestDefineClassArgumentErrors(t *testing.T) {
	r := NewRegistry()

	_, err := r.DefineClass("")
	var argErr *ArgumentError
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, 1, argErr.Index)

	_, err = r.DefineClass("C", nil)
	require.ErrorAs(t, err, &argErr)
	assert.Equal(t, 2, argErr.Index)
}

func TestOnClassCreatedHook(t *testing.T) {
	r := NewRegistry()

	var gotClass *Class
	var gotParents []*Class
	r.OnClassCreated(func(c *Class, parents []*Class) {
		gotClass = c
		gotParents = parents
	})

	shape, err := r.DefineClass("Shape")
	require.NoError(t, err)

	assert.Same(t, shape, gotClass)
	require.Len(t, gotParents, 1)
	assert.Same(t, r.BaseClass(), gotParents[0])

	// A hook can inject a constructor field; the default key is excluded
	// from copies, so subclasses do not inherit it.
	r.OnClassCreated(func(c *Class, parents []*Class) {
		c.Fields["new"] = func() {}
	})
	square, err := r.DefineClass("Square", shape)
	require.NoError(t, err)
	assert.Contains(t, square.Fields, "new")

	cube, err := r.DefineClass("Cube", square)
	require.NoError(t, err)
	assert.Contains(t, cube.Fields, "new") // from its own hook run, not the copy
}

func TestBaseClassPatchingIsNotRetroactive(t *testing.T) {
	r := NewRegistry()

	before, err := r.DefineClass("Before")
	require.NoError(t, err)

	r.BaseClass().Fields["describe"] = "capability"

	after, err := r.DefineClass("After")
	require.NoError(t, err)

	assert.NotContains(t, before.Fields, "describe")
	assert.Equal(t, "capability", after.Fields["describe"])
}
