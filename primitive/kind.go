package primitive

import (
	"reflect"
)

//go:generate go tool stringer -type=KindEnum -output=kind_string.go

// KindEnum is the shape of a generated value as seen by the literal writer.
// Constants are declared in dispatch order: a value takes the first kind it
// satisfies.
type KindEnum int

const (
	_ KindEnum = iota // skip zero value, use it as a default (invalid) value for KindEnum

	KindAbsent // nil, nil pointer or nil interface
	KindString
	KindBool
	KindInt
	KindUint
	KindFloat
	KindSequence // slices and arrays
	KindMapping  // Mapping and Go maps
	KindUnsupported

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

var mappingType = reflect.TypeFor[Mapping]()

// IsNumber reports whether k renders as a bare decimal number.
func (k KindEnum) IsNumber() bool {
	switch k {
	default:
		return false
	case KindInt, KindUint, KindFloat:
		return true
	}
}

// IsComposite reports whether k renders as a brace-delimited list.
func (k KindEnum) IsComposite() bool {
	switch k {
	default:
		return false
	case KindSequence, KindMapping:
		return true
	}
}

// KindOf classifies v. Named types are classified by their underlying kind,
// so a `type Celsius float64` is a KindFloat.
func KindOf(v any) KindEnum {
	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(rv reflect.Value) KindEnum {
	rv = indirect(rv)
	if !rv.IsValid() {
		return KindAbsent
	}

	if rv.Type() == mappingType {
		return KindMapping
	}

	switch rv.Kind() {
	default:
		return KindUnsupported
	case reflect.String:
		return KindString
	case reflect.Bool:
		return KindBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return KindInt
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return KindUint
	case reflect.Float32, reflect.Float64:
		return KindFloat
	case reflect.Slice, reflect.Array:
		return KindSequence
	case reflect.Map:
		return KindMapping
	}
}

// indirect unwraps pointers and interfaces, returning the zero Value when it
// meets a nil.
func indirect(rv reflect.Value) reflect.Value {
	for rv.IsValid() && (rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface) {
		if rv.IsNil() {
			return reflect.Value{}
		}

		rv = rv.Elem()
	}

	return rv
}
