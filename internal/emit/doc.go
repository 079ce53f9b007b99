// Package emit renders C++ struct and enum declarations whose fields carry
// random initializers, for use as serialization test fixtures.
//
// Rendering never fails. Missing inputs are synthesized and inconsistent
// ones are coerced:
//   - a missing name becomes TestStruct_<10 random chars> (TestEnum_ for enums)
//   - field names and types are padded or truncated to the field count
//   - a field type without a generator gets the empty initializer {}
//
// Head and tail templates accept placeholders, see Substitute.
package emit
