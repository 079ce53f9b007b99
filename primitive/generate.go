package primitive

import (
	"math"
	"strings"

	"fixture-generator/internal/random"
)

// Alphabet is the character set of generated strings: lower case, upper case
// and digits.
const Alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// Defaults used by the catalog when a shape does not name its own.
const (
	DefaultStringLength = 10
	DefaultIntMin       = math.MinInt32
	DefaultIntMax       = math.MaxInt32
	DefaultFloatMin     = -1e300
	DefaultFloatMax     = 1e300
)

// Generator produces a freshly constructed value on every call, drawing its
// randomness from src. Generators keep no state between calls.
//
// Every entry of a type catalog has this signature; shapes that need
// parameters (a length, a range, nested generators) capture them when the
// Generator is built, see StringOf, IntBetween, ListOf and friends.
type Generator func(src random.Source) any

// String returns length characters drawn uniformly from Alphabet.
func String(src random.Source, length int) string {
	if length <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(length)
	for range length {
		sb.WriteByte(Alphabet[src.IntN(len(Alphabet))])
	}

	return sb.String()
}

// Filename returns a random base name with the given extension.
func Filename(src random.Source, extension string) string {
	return String(src, DefaultStringLength) + "." + extension
}

// Int returns a uniformly distributed integer in [lo, hi]. Reversed bounds
// are swapped.
func Int(src random.Source, lo, hi int64) int64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	// two's complement arithmetic keeps the span exact; it wraps to 0 only for
	// the full int64 range
	span := uint64(hi) - uint64(lo) + 1
	if span == 0 {
		return int64(src.Uint64())
	}

	return int64(uint64(lo) + src.Uint64N(span))
}

// Float returns a uniformly distributed float in [lo, hi]. Reversed bounds
// are swapped.
func Float(src random.Source, lo, hi float64) float64 {
	if lo > hi {
		lo, hi = hi, lo
	}

	f := src.Float64()

	var v float64
	if d := hi - lo; math.IsInf(d, 0) {
		v = lo*(1-f) + hi*f
	} else {
		v = lo + f*d
	}

	return min(max(v, lo), hi)
}

// Bool returns true or false with equal probability.
func Bool(src random.Source) bool {
	return src.IntN(2) == 1
}

// List calls elem length times and returns the results in order.
func List(src random.Source, length int, elem Generator) []any {
	length = max(length, 0)

	res := make([]any, length)
	for i := range res {
		res[i] = elem(src)
	}

	return res
}

// Dict draws length key/value pairs. A key drawn twice keeps the later value,
// so the result may hold fewer than length entries.
func Dict(src random.Source, length int, key, value Generator) *Mapping {
	length = max(length, 0)

	res := NewMapping(length)
	for range length {
		k := key(src)
		res.Set(k, value(src))
	}

	return res
}

// StringOf returns a Generator of random strings of the given length.
func StringOf(length int) Generator {
	return func(src random.Source) any {
		return String(src, length)
	}
}

// IntBetween returns a Generator of int64 values in [lo, hi].
func IntBetween(lo, hi int64) Generator {
	return func(src random.Source) any {
		return Int(src, lo, hi)
	}
}

// FloatBetween returns a Generator of float64 values in [lo, hi].
func FloatBetween(lo, hi float64) Generator {
	return func(src random.Source) any {
		return Float(src, lo, hi)
	}
}

// Booleans returns a Generator of fair booleans.
func Booleans() Generator {
	return func(src random.Source) any {
		return Bool(src)
	}
}

// ListOf returns a Generator of length-element lists.
func ListOf(length int, elem Generator) Generator {
	return func(src random.Source) any {
		return List(src, length, elem)
	}
}

// DictOf returns a Generator of mappings with at most length entries.
func DictOf(length int, key, value Generator) Generator {
	return func(src random.Source) any {
		return Dict(src, length, key, value)
	}
}

// Constant returns a Generator that always yields v without drawing.
func Constant(v any) Generator {
	return func(random.Source) any {
		return v
	}
}
