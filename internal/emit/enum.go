package emit

import (
	"strconv"

	"fixture-generator/internal/common"
	"fixture-generator/primitive"
)

// EnumOptions customize an enum declaration.
type EnumOptions struct {
	// Name of the enum, TestEnum_<random> when empty.
	Name string
	// Values are used in order, then padded with Enum<i>_<random> or
	// truncated to the value count.
	Values []string
}

// EnumDecl is a fully resolved enum declaration.
type EnumDecl struct {
	Name   string
	Values []string
}

// String renders the declaration, one enumerator per line.
func (d *EnumDecl) String() string {
	return render(enumTemplate, d)
}

// ResolveEnum draws the name and padding enumerators. The returned values
// never share storage with opts.Values.
func (e *Emitter) ResolveEnum(valueCount int, opts EnumOptions) *EnumDecl {
	name := e.declName(opts.Name, enumNamePrefix)

	values := common.Fit(opts.Values, valueCount, func(i int) string {
		return "Enum" + strconv.Itoa(i) + "_" + primitive.String(e.src, memberSuffixLen)
	})

	return &EnumDecl{Name: name, Values: values}
}

// Enum renders an enum declaration with valueCount enumerators.
func (e *Emitter) Enum(valueCount int, opts EnumOptions) string {
	return e.ResolveEnum(valueCount, opts).String()
}
