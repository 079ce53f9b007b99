package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/catalog"
	"fixture-generator/internal/random"
	"fixture-generator/primitive"
)

func TestCatalog_Register(t *testing.T) {
	t.Parallel()

	t.Run("keeps first registration order", func(t *testing.T) {
		t.Parallel()

		c := catalog.New().
			Register("b", primitive.Constant(1)).
			Register("a", primitive.Constant(2)).
			Register("b", primitive.Constant(3))

		assert.Equal(t, []string{"b", "a"}, c.Names())
		assert.Equal(t, 2, c.Len())

		gen, ok := c.Lookup("b")
		require.True(t, ok)
		assert.Equal(t, 3, gen(random.NewSequence()))
	})

	t.Run("nil generator is registered but not usable", func(t *testing.T) {
		t.Parallel()

		c := catalog.New().Register("opaque", nil)

		assert.True(t, c.Has("opaque"))
		_, ok := c.Lookup("opaque")
		assert.False(t, ok)
	})

	t.Run("zero value", func(t *testing.T) {
		t.Parallel()

		var c catalog.Catalog
		c.Register("int", primitive.Constant(1))

		assert.True(t, c.Has("int"))
	})
}

func TestCatalog_Lookup_Unknown(t *testing.T) {
	t.Parallel()

	_, ok := catalog.Default().Lookup("std::optional<int>")
	assert.False(t, ok)
}

func TestCatalog_Pick(t *testing.T) {
	t.Parallel()

	c := catalog.New().
		Register("x", nil).
		Register("y", nil).
		Register("z", nil)

	src := random.NewSequence(2, 0, 4)

	for _, want := range []string{"z", "x", "y"} {
		got, ok := c.Pick(src)
		require.True(t, ok)
		assert.Equal(t, want, got)
	}

	empty := random.NewSequence(1)
	_, ok := catalog.New().Pick(empty)
	assert.False(t, ok)
	assert.Zero(t, empty.Consumed())
}

func TestCatalog_Clone(t *testing.T) {
	t.Parallel()

	orig := catalog.New().Register("int", primitive.Constant(1))
	clone := orig.Clone()
	clone.Register("bool", primitive.Constant(true))
	clone.Register("int", primitive.Constant(2))

	assert.Equal(t, []string{"int"}, orig.Names())

	gen, ok := orig.Lookup("int")
	require.True(t, ok)
	assert.Equal(t, 1, gen(random.NewSequence()))
}

func TestDefault(t *testing.T) {
	t.Parallel()

	c := catalog.Default()

	assert.Equal(t, []string{
		"int",
		"int64_t",
		"double",
		"bool",
		"std::string",
		"std::vector<int>",
		"std::vector<std::string>",
		"std::map<std::string, int>",
		"std::map<int, std::string>",
	}, c.Names())

	src := random.NewSeeded(3)
	generate := func(name string) any {
		gen, ok := c.Lookup(name)
		require.True(t, ok, name)
		return gen(src)
	}

	i, ok := generate("int").(int64)
	require.True(t, ok)
	assert.GreaterOrEqual(t, i, int64(primitive.DefaultIntMin))
	assert.LessOrEqual(t, i, int64(primitive.DefaultIntMax))

	assert.IsType(t, int64(0), generate("int64_t"))
	assert.IsType(t, float64(0), generate("double"))
	assert.IsType(t, false, generate("bool"))

	s, ok := generate("std::string").(string)
	require.True(t, ok)
	assert.Len(t, s, primitive.DefaultStringLength)

	list, ok := generate("std::vector<int>").([]any)
	require.True(t, ok)
	assert.Len(t, list, catalog.DefaultContainerLength)

	strs, ok := generate("std::vector<std::string>").([]any)
	require.True(t, ok)
	assert.IsType(t, "", strs[0])

	m, ok := generate("std::map<std::string, int>").(*primitive.Mapping)
	require.True(t, ok)
	assert.LessOrEqual(t, m.Len(), catalog.DefaultContainerLength)
	assert.Equal(t, primitive.KindMapping, primitive.KindOf(generate("std::map<int, std::string>")))
}
