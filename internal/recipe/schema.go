package recipe

import (
	"fixture-generator/internal/catalog"
)

// CurrentVersion is the only recipe schema version understood.
const CurrentVersion = "1"

// Recipe is the root of a recipe document.
type Recipe struct {
	// Version of the recipe schema. Defaults to CurrentVersion.
	Version string `yaml:"version,omitempty" toml:"version,omitempty"`

	// Seed makes the output reproducible when set.
	Seed *uint64 `yaml:"seed,omitempty" toml:"seed,omitempty"`

	// Types are added to the default catalog, replacing entries of the same
	// name.
	Types map[string]catalog.Spec `yaml:"types,omitempty" toml:"types,omitempty"`

	// Defaults apply to every struct that does not set its own templates.
	Defaults Defaults `yaml:"defaults,omitempty" toml:"defaults,omitempty"`

	Files []File `yaml:"files" toml:"files"`
}

// Defaults holds recipe-wide struct templates.
type Defaults struct {
	Head string `yaml:"head,omitempty" toml:"head,omitempty"`
	Tail string `yaml:"tail,omitempty" toml:"tail,omitempty"`
}

// File is one generated file.
type File struct {
	// Path relative to the output directory. A random <name>.hpp is used
	// when empty.
	Path string `yaml:"path,omitempty" toml:"path,omitempty"`

	// Preamble is written verbatim before the declarations.
	Preamble string `yaml:"preamble,omitempty" toml:"preamble,omitempty"`

	// Enums are written before Structs so struct fields may use them.
	Enums   []Enum   `yaml:"enums,omitempty" toml:"enums,omitempty"`
	Structs []Struct `yaml:"structs,omitempty" toml:"structs,omitempty"`
}

// Struct describes one struct declaration, or Repeat of them.
type Struct struct {
	Name string `yaml:"name,omitempty" toml:"name,omitempty"`
	Base string `yaml:"base,omitempty" toml:"base,omitempty"`

	// Fields is the member count. Defaults to the longer of FieldNames and
	// FieldTypes.
	Fields *int `yaml:"fields,omitempty" toml:"fields,omitempty"`

	// Repeat emits the declaration this many times, each with fresh random
	// parts. Named structs get a _<i> suffix when repeated. Defaults to 1.
	Repeat *int `yaml:"repeat,omitempty" toml:"repeat,omitempty"`

	// Head and Tail override the recipe defaults; an explicit empty string
	// disables them.
	Head *string `yaml:"head,omitempty" toml:"head,omitempty"`
	Tail *string `yaml:"tail,omitempty" toml:"tail,omitempty"`

	FieldNames []string `yaml:"field_names,omitempty" toml:"field_names,omitempty"`
	FieldTypes []string `yaml:"field_types,omitempty" toml:"field_types,omitempty"`
}

// Enum describes one enum declaration, or Repeat of them.
type Enum struct {
	Name   string   `yaml:"name,omitempty" toml:"name,omitempty"`
	Values []string `yaml:"values,omitempty" toml:"values,omitempty"`

	// Count is the enumerator count. Defaults to len(Values).
	Count *int `yaml:"count,omitempty" toml:"count,omitempty"`

	// Repeat works as for Struct.
	Repeat *int `yaml:"repeat,omitempty" toml:"repeat,omitempty"`
}

// FieldCount returns the member count with its default applied.
func (s *Struct) FieldCount() int {
	if s.Fields != nil {
		return *s.Fields
	}

	return max(len(s.FieldNames), len(s.FieldTypes))
}

// Repeats returns the repeat count with its default applied.
func (s *Struct) Repeats() int {
	return repeats(s.Repeat)
}

// Templates returns the head and tail of the struct, falling back to d.
func (s *Struct) Templates(d Defaults) (head, tail string) {
	head, tail = d.Head, d.Tail
	if s.Head != nil {
		head = *s.Head
	}

	if s.Tail != nil {
		tail = *s.Tail
	}

	return head, tail
}

// ValueCount returns the enumerator count with its default applied.
func (e *Enum) ValueCount() int {
	if e.Count != nil {
		return *e.Count
	}

	return len(e.Values)
}

// Repeats returns the repeat count with its default applied.
func (e *Enum) Repeats() int {
	return repeats(e.Repeat)
}

func repeats(n *int) int {
	if n == nil {
		return 1
	}

	return *n
}
