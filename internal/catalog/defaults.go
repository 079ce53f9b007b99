package catalog

import (
	"math"

	"fixture-generator/primitive"
)

// DefaultContainerLength is the element count of containers in the default
// catalog.
const DefaultContainerLength = 10

// Default returns a catalog of common C++ field types.
func Default() *Catalog {
	cppInt := primitive.IntBetween(primitive.DefaultIntMin, primitive.DefaultIntMax)
	cppString := primitive.StringOf(primitive.DefaultStringLength)

	return New().
		Register("int", cppInt).
		Register("int64_t", primitive.IntBetween(math.MinInt64, math.MaxInt64)).
		Register("double", primitive.FloatBetween(primitive.DefaultFloatMin, primitive.DefaultFloatMax)).
		Register("bool", primitive.Booleans()).
		Register("std::string", cppString).
		Register("std::vector<int>", primitive.ListOf(DefaultContainerLength, cppInt)).
		Register("std::vector<std::string>", primitive.ListOf(DefaultContainerLength, cppString)).
		Register("std::map<std::string, int>", primitive.DictOf(DefaultContainerLength, cppString, cppInt)).
		Register("std::map<int, std::string>", primitive.DictOf(DefaultContainerLength, cppInt, cppString))
}
