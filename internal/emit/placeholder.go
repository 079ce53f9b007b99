package emit

import (
	"regexp"
	"strconv"
	"strings"
)

// Placeholder names understood by Substitute.
const (
	PlaceholderStructName = "struct_name"
	PlaceholderBaseClass  = "base_class"
	PlaceholderFieldNum   = "field_num"
	PlaceholderFieldNames = "field_names"
	PlaceholderFieldTypes = "field_types"

	fieldPrefix = "field_" // field_<i> is the name of field i
	typePrefix  = "type_"  // type_<i> is the type of field i
)

// placeholderPattern matches $name and ${name}. The name is the longest run
// of word characters, so $field_1 never matches the start of $field_11.
var placeholderPattern = regexp.MustCompile(`\$\{(\w+)\}|\$(\w+)`)

// Bindings are the values a template may reference.
type Bindings struct {
	StructName string
	BaseClass  string
	FieldNames []string
	FieldTypes []string
}

// Substitute replaces the placeholders of tmpl with their bound values:
//
//	$struct_name   declaration name
//	$base_class    base class, empty when there is none
//	$field_num     number of fields
//	$field_names   all field names joined with ", "
//	$field_types   all field types joined with ", "
//	$field_<i>     name of field i, counting from 0
//	$type_<i>      type of field i
//
// Any placeholder can also be written ${name} to separate it from the text
// that follows. Unknown placeholders and out-of-range indexes are left as
// written. Substituted values are never scanned again.
func Substitute(tmpl string, b Bindings) string {
	if !strings.Contains(tmpl, "$") {
		return tmpl
	}

	return placeholderPattern.ReplaceAllStringFunc(tmpl, func(token string) string {
		name := strings.TrimPrefix(token, "$")
		name = strings.TrimSuffix(strings.TrimPrefix(name, "{"), "}")

		if v, ok := b.lookup(name); ok {
			return v
		}

		return token
	})
}

func (b Bindings) lookup(name string) (string, bool) {
	switch name {
	case PlaceholderStructName:
		return b.StructName, true
	case PlaceholderBaseClass:
		return b.BaseClass, true
	case PlaceholderFieldNum:
		return strconv.Itoa(len(b.FieldNames)), true
	case PlaceholderFieldNames:
		return strings.Join(b.FieldNames, ", "), true
	case PlaceholderFieldTypes:
		return strings.Join(b.FieldTypes, ", "), true
	}

	if i, ok := indexOf(name, fieldPrefix); ok && i < len(b.FieldNames) {
		return b.FieldNames[i], true
	}

	if i, ok := indexOf(name, typePrefix); ok && i < len(b.FieldTypes) {
		return b.FieldTypes[i], true
	}

	return "", false
}

// indexOf parses the canonical decimal index after prefix; "field_01" and
// "field_+1" are not indexes.
func indexOf(name, prefix string) (int, bool) {
	digits, ok := strings.CutPrefix(name, prefix)
	if !ok {
		return 0, false
	}

	i, err := strconv.Atoi(digits)
	if err != nil || i < 0 || strconv.Itoa(i) != digits {
		return 0, false
	}

	return i, true
}
