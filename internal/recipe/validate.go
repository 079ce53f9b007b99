package recipe

import (
	"fmt"
	"path/filepath"

	"fixture-generator/internal/catalog"
	"fixture-generator/internal/diagnostic"
)

// Validate reports every error in r as one aggregated error.
func Validate(r *Recipe) error {
	return Check(r).Err()
}

// Check inspects r and returns its errors and warnings. Field types are
// checked against the default catalog extended with r.Types.
func Check(r *Recipe) *diagnostic.Diagnostics {
	return CheckAgainst(r, catalog.Default())
}

// CheckAgainst is Check with field types resolved against base extended with
// r.Types. base is not modified.
func CheckAgainst(r *Recipe, base *catalog.Catalog) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if r == nil {
		res.AddError("recipe_is_nil", "", "recipe is nil")
		return res
	}

	if r.Version != CurrentVersion {
		res.AddError("unsupported_version", "version", "unsupported recipe version %q", r.Version)
	}

	types := base.Clone()
	if err := types.RegisterSpecs(r.Types); err != nil {
		res.AddError("invalid_types", "types", "%v", err)
	}

	if len(r.Files) == 0 {
		res.AddWarning("no_files", "files", "recipe declares no files")
	}

	paths := make(map[string]int, len(r.Files))

	for i := range r.Files {
		f := &r.Files[i]
		loc := fmt.Sprintf("files[%d]", i)

		if f.Path != "" {
			clean := filepath.Clean(f.Path)
			if filepath.IsAbs(f.Path) {
				res.AddError("absolute_path", loc, "path %s must be relative", f.Path)
			} else if !filepath.IsLocal(clean) {
				res.AddError("escaping_path", loc, "path %s leaves the output directory", f.Path)
			} else if prev, ok := paths[clean]; ok {
				res.AddError("duplicate_path", loc, "path %s already used by files[%d]", clean, prev)
			} else {
				paths[clean] = i
			}
		}

		if len(f.Structs) == 0 && len(f.Enums) == 0 {
			res.AddWarning("empty_file", loc, "file declares nothing")
		}

		for j := range f.Enums {
			checkEnum(res, fmt.Sprintf("%s.enums[%d]", loc, j), &f.Enums[j])
		}

		for j := range f.Structs {
			checkStruct(res, fmt.Sprintf("%s.structs[%d]", loc, j), &f.Structs[j], types)
		}
	}

	return res
}

func checkStruct(res *diagnostic.Diagnostics, loc string, s *Struct, types *catalog.Catalog) {
	n := s.FieldCount()
	if n < 0 {
		res.AddError("negative_count", loc, "fields must not be negative, got %d", n)
	}

	if rep := s.Repeats(); rep < 0 {
		res.AddError("negative_count", loc, "repeat must not be negative, got %d", rep)
	}

	n = max(n, 0)
	if len(s.FieldNames) > n {
		res.AddWarning("truncated", loc, "%d field names given for %d fields", len(s.FieldNames), n)
	}

	if len(s.FieldTypes) > n {
		res.AddWarning("truncated", loc, "%d field types given for %d fields", len(s.FieldTypes), n)
	}

	seen := make(map[string]bool, len(s.FieldNames))
	for _, name := range s.FieldNames {
		if seen[name] {
			res.AddWarning("duplicate_field", loc, "field %s declared twice", name)
		}

		seen[name] = true
	}

	for _, typ := range s.FieldTypes {
		if _, ok := types.Lookup(typ); !ok {
			res.AddWarning("unknown_type", loc, "type %s has no generator, its fields get an empty initializer", typ)
		}
	}
}

func checkEnum(res *diagnostic.Diagnostics, loc string, e *Enum) {
	n := e.ValueCount()
	if n < 0 {
		res.AddError("negative_count", loc, "count must not be negative, got %d", n)
	}

	if rep := e.Repeats(); rep < 0 {
		res.AddError("negative_count", loc, "repeat must not be negative, got %d", rep)
	}

	if n = max(n, 0); len(e.Values) > n {
		res.AddWarning("truncated", loc, "%d values given for %d enumerators", len(e.Values), n)
	}
}
