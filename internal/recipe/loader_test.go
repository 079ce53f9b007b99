package recipe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fixture-generator/internal/catalog"
	"fixture-generator/internal/recipe"
)

const yamlRecipe = `
seed: 42
types:
  small_int: {kind: int, min: 0, max: 9}
defaults:
  tail: "    NEKO_SERIALIZER($field_names)"
files:
  - path: proto/structs.hpp
    preamble: "#pragma once"
    enums:
      - name: Color
        values: [Red, Green]
        count: 3
    structs:
      - name: TestA
        base: Base
        fields: 2
        repeat: 2
        head: ""
        field_names: [a, b]
        field_types: [small_int]
`

const tomlRecipe = `
seed = 42

[types.small_int]
kind = "int"
min = 0
max = 9

[defaults]
tail = "    NEKO_SERIALIZER($field_names)"

[[files]]
path = "proto/structs.hpp"
preamble = "#pragma once"

[[files.enums]]
name = "Color"
values = ["Red", "Green"]
count = 3

[[files.structs]]
name = "TestA"
base = "Base"
fields = 2
repeat = 2
head = ""
field_names = ["a", "b"]
field_types = ["small_int"]
`

func assertSample(t *testing.T, r *recipe.Recipe) {
	t.Helper()

	assert.Equal(t, recipe.CurrentVersion, r.Version)
	require.NotNil(t, r.Seed)
	assert.Equal(t, uint64(42), *r.Seed)

	require.Contains(t, r.Types, "small_int")
	assert.Equal(t, catalog.KindInt, r.Types["small_int"].Kind)
	assert.Equal(t, "9", r.Types["small_int"].Max.String())

	require.Len(t, r.Files, 1)
	f := r.Files[0]
	assert.Equal(t, "proto/structs.hpp", f.Path)
	assert.Equal(t, "#pragma once", f.Preamble)

	require.Len(t, f.Enums, 1)
	assert.Equal(t, "Color", f.Enums[0].Name)
	assert.Equal(t, 3, f.Enums[0].ValueCount())
	assert.Equal(t, 1, f.Enums[0].Repeats())

	require.Len(t, f.Structs, 1)
	s := f.Structs[0]
	assert.Equal(t, "Base", s.Base)
	assert.Equal(t, 2, s.FieldCount())
	assert.Equal(t, 2, s.Repeats())
	assert.Equal(t, []string{"a", "b"}, s.FieldNames)

	head, tail := s.Templates(r.Defaults)
	assert.Empty(t, head)
	assert.Equal(t, "    NEKO_SERIALIZER($field_names)", tail)
}

func TestParse(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		r, err := recipe.Parse([]byte(yamlRecipe), recipe.FormatYAML)
		require.NoError(t, err)
		assertSample(t, r)
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()

		r, err := recipe.Parse([]byte(tomlRecipe), recipe.FormatTOML)
		require.NoError(t, err)
		assertSample(t, r)
	})
}

func TestParse_UnknownKeys(t *testing.T) {
	t.Parallel()

	t.Run("yaml", func(t *testing.T) {
		t.Parallel()

		_, err := recipe.Parse([]byte("files:\n  - path: a.hpp\n    structz: []\n"), recipe.FormatYAML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "structz")
	})

	t.Run("toml", func(t *testing.T) {
		t.Parallel()

		_, err := recipe.Parse([]byte("[[files]]\npath = \"a.hpp\"\nstructz = 1\n"), recipe.FormatTOML)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "files.structz")
	})
}

func TestParse_UnknownFormat(t *testing.T) {
	t.Parallel()

	_, err := recipe.Parse(nil, recipe.Format("json"))
	require.ErrorIs(t, err, recipe.ErrUnknownFormat)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "fixtures.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte(yamlRecipe), 0o644))

	r, err := recipe.LoadFile(yamlPath)
	require.NoError(t, err)
	assertSample(t, r)

	tomlPath := filepath.Join(dir, "fixtures.TOML")
	require.NoError(t, os.WriteFile(tomlPath, []byte(tomlRecipe), 0o644))

	r, err = recipe.LoadFile(tomlPath)
	require.NoError(t, err)
	assertSample(t, r)

	_, err = recipe.LoadFile(filepath.Join(dir, "fixtures.json"))
	require.ErrorIs(t, err, recipe.ErrUnknownFormat)

	_, err = recipe.LoadFile(filepath.Join(dir, "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStruct_Defaults(t *testing.T) {
	t.Parallel()

	s := recipe.Struct{FieldNames: []string{"a"}, FieldTypes: []string{"int", "bool", "double"}}
	assert.Equal(t, 3, s.FieldCount())
	assert.Equal(t, 1, s.Repeats())

	head, tail := s.Templates(recipe.Defaults{Head: "h", Tail: "t"})
	assert.Equal(t, "h", head)
	assert.Equal(t, "t", tail)

	e := recipe.Enum{Values: []string{"A", "B"}}
	assert.Equal(t, 2, e.ValueCount())
}
