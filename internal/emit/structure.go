package emit

import (
	"strconv"

	"fixture-generator/internal/catalog"
	"fixture-generator/internal/common"
	"fixture-generator/internal/random"
	"fixture-generator/primitive"
)

// DefaultFieldType is the type of padded fields when the catalog is empty.
const DefaultFieldType = "int"

const (
	structNamePrefix = "TestStruct_"
	enumNamePrefix   = "TestEnum_"
	nameSuffixLen    = 10
	memberSuffixLen  = 5
)

// Emitter renders declarations. Names, types and values are drawn from its
// Source in a fixed order: declaration name, member names, member types,
// member values.
type Emitter struct {
	src   random.Source
	types *catalog.Catalog
}

// NewEmitter creates an Emitter. A nil catalog behaves as an empty one.
func NewEmitter(src random.Source, types *catalog.Catalog) *Emitter {
	if types == nil {
		types = catalog.New()
	}

	return &Emitter{src: src, types: types}
}

// StructOptions customize a struct declaration. Every field is optional.
type StructOptions struct {
	// Name of the struct, TestStruct_<random> when empty.
	Name string
	// BaseClass adds an inheritance clause when set.
	BaseClass string
	// Head is a template placed before the first field.
	Head string
	// Tail is a template placed after the last field.
	Tail string
	// FieldNames and FieldTypes are used in order, then padded with random
	// entries or truncated to the field count.
	FieldNames []string
	FieldTypes []string
}

// Field is a resolved struct member.
type Field struct {
	Name    string
	Type    string
	Literal string
}

// StructDecl is a fully resolved struct declaration.
type StructDecl struct {
	Name      string
	BaseClass string
	Head      string
	Tail      string
	Fields    []Field
}

// Opener returns the first line of the declaration.
func (d *StructDecl) Opener() string {
	if d.BaseClass != "" {
		return "struct " + d.Name + " : " + d.BaseClass + " {"
	}

	return "struct " + d.Name + " {"
}

// FieldNames returns the member names in declaration order.
func (d *StructDecl) FieldNames() []string {
	res := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		res[i] = f.Name
	}

	return res
}

// FieldTypes returns the member types in declaration order.
func (d *StructDecl) FieldTypes() []string {
	res := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		res[i] = f.Type
	}

	return res
}

// Bindings returns the placeholder values of the declaration.
func (d *StructDecl) Bindings() Bindings {
	return Bindings{
		StructName: d.Name,
		BaseClass:  d.BaseClass,
		FieldNames: d.FieldNames(),
		FieldTypes: d.FieldTypes(),
	}
}

// String renders the declaration, closing brace and trailing newline
// included.
func (d *StructDecl) String() string {
	return render(structTemplate, d)
}

// ResolveStruct draws everything the declaration needs and substitutes its
// templates. A negative fieldCount is treated as zero.
func (e *Emitter) ResolveStruct(fieldCount int, opts StructOptions) *StructDecl {
	fieldCount = max(fieldCount, 0)

	decl := &StructDecl{
		Name:      e.declName(opts.Name, structNamePrefix),
		BaseClass: opts.BaseClass,
	}

	names := common.Fit(opts.FieldNames, fieldCount, func(i int) string {
		return "field_" + strconv.Itoa(i) + "_" + primitive.String(e.src, memberSuffixLen)
	})

	types := common.Fit(opts.FieldTypes, fieldCount, func(int) string {
		if name, ok := e.types.Pick(e.src); ok {
			return name
		}

		return DefaultFieldType
	})

	decl.Fields = make([]Field, fieldCount)
	for i := range decl.Fields {
		decl.Fields[i] = Field{
			Name:    names[i],
			Type:    types[i],
			Literal: e.initializer(types[i]),
		}
	}

	bindings := decl.Bindings()
	if opts.Head != "" {
		decl.Head = Substitute(opts.Head, bindings)
	}

	if opts.Tail != "" {
		decl.Tail = Substitute(opts.Tail, bindings)
	}

	return decl
}

// Structure renders a struct declaration with fieldCount members.
func (e *Emitter) Structure(fieldCount int, opts StructOptions) string {
	return e.ResolveStruct(fieldCount, opts).String()
}

// initializer returns the literal of a fresh value of the named type, or the
// empty initializer when the type has no generator.
func (e *Emitter) initializer(typeName string) string {
	gen, ok := e.types.Lookup(typeName)
	if !ok {
		return primitive.EmptyInitializer
	}

	return primitive.Literal(gen(e.src))
}

func (e *Emitter) declName(name, prefix string) string {
	if name != "" {
		return name
	}

	return prefix + primitive.String(e.src, nameSuffixLen)
}
