package primitive

import (
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// EmptyInitializer is the literal written for absent values, unsupported
// values and fields whose type has no generator.
const EmptyInitializer = "{}"

// Literal renders v as a brace-initializer literal.
//
// Rendering follows KindOf: absent values are "{}", strings are wrapped in
// double quotes as-is (embedded quotes are not escaped), booleans are
// true/false, numbers use their shortest decimal form, sequences are
// "{a,b}" and mappings are "{{k, v},{k, v}}" with keys and values rendered
// recursively. Anything else is "{}".
//
// Go maps have no order; their entries are written in the order of their
// rendered keys so the output is stable. Cyclic values are not supported.
func Literal(v any) string {
	var sb strings.Builder
	writeLiteral(&sb, reflect.ValueOf(v))

	return sb.String()
}

func writeLiteral(sb *strings.Builder, rv reflect.Value) {
	rv = indirect(rv)

	switch kind := kindOfValue(rv); {
	case kind == KindString:
		sb.WriteByte('"')
		sb.WriteString(rv.String())
		sb.WriteByte('"')
	case kind == KindBool:
		sb.WriteString(strconv.FormatBool(rv.Bool()))
	case kind.IsNumber():
		writeNumber(sb, rv, kind)
	case kind.IsComposite():
		writeComposite(sb, rv, kind)
	default:
		sb.WriteString(EmptyInitializer)
	}
}

func writeNumber(sb *strings.Builder, rv reflect.Value, kind KindEnum) {
	switch kind {
	case KindInt:
		sb.WriteString(strconv.FormatInt(rv.Int(), 10))
	case KindUint:
		sb.WriteString(strconv.FormatUint(rv.Uint(), 10))
	default:
		sb.WriteString(strconv.FormatFloat(rv.Float(), 'g', -1, rv.Type().Bits()))
	}
}

func writeComposite(sb *strings.Builder, rv reflect.Value, kind KindEnum) {
	switch {
	case kind == KindSequence:
		sb.WriteByte('{')
		for i := range rv.Len() {
			if i > 0 {
				sb.WriteByte(',')
			}
			writeLiteral(sb, rv.Index(i))
		}
		sb.WriteByte('}')
	case rv.Type() == mappingType:
		m, _ := rv.Interface().(Mapping)
		writeMapping(sb, &m)
	default:
		writeGoMap(sb, rv)
	}
}

func writeMapping(sb *strings.Builder, m *Mapping) {
	sb.WriteByte('{')
	first := true
	for k, v := range m.All() {
		if !first {
			sb.WriteByte(',')
		}
		first = false
		writePair(sb, Literal(k), reflect.ValueOf(v))
	}
	sb.WriteByte('}')
}

func writeGoMap(sb *strings.Builder, rv reflect.Value) {
	type entry struct {
		key   string
		value reflect.Value
	}

	entries := make([]entry, 0, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		entries = append(entries, entry{key: Literal(iter.Key().Interface()), value: iter.Value()})
	}

	slices.SortFunc(entries, func(a, b entry) int {
		return strings.Compare(a.key, b.key)
	})

	sb.WriteByte('{')
	for i, e := range entries {
		if i > 0 {
			sb.WriteByte(',')
		}
		writePair(sb, e.key, e.value)
	}
	sb.WriteByte('}')
}

func writePair(sb *strings.Builder, key string, value reflect.Value) {
	sb.WriteByte('{')
	sb.WriteString(key)
	sb.WriteString(", ")
	writeLiteral(sb, value)
	sb.WriteByte('}')
}
