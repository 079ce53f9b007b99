// Package recipe describes batches of fixture files.
//
// A recipe lists the files to generate and the declarations each one holds:
//
//	version: "1"
//	seed: 42
//	types:
//	  std::vector<double>: {kind: list, length: 4, elem: {kind: float}}
//	defaults:
//	  tail: "    NEKO_SERIALIZER($field_names)"
//	files:
//	  - path: proto/structs.hpp
//	    preamble: "#pragma once"
//	    structs:
//	      - name: TestA
//	        fields: 5
//	    enums:
//	      - values: [A, B, C]
//
// Recipes are read from YAML or TOML; the format follows the file extension.
package recipe
