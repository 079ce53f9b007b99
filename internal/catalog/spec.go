package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/hashicorp/go-multierror"

	"fixture-generator/primitive"
)

// Generator kinds accepted by Spec.
const (
	KindString = "string"
	KindInt    = "int"
	KindFloat  = "float"
	KindBool   = "bool"
	KindList   = "list"
	KindMap    = "map"
	KindRef    = "ref" // reuse the generator of another catalog type
)

var (
	ErrUnknownKind   = errors.New("unknown generator kind")
	ErrUnresolvedRef = errors.New("unresolved type reference")
)

// Spec declares a generator in a config file or recipe.
//
//	std::vector<double>:
//	  kind: list
//	  length: 4
//	  elem: {kind: float, min: -1, max: 1}
type Spec struct {
	Kind string `yaml:"kind" toml:"kind"`
	// Length of strings, lists and maps. Defaults to 10.
	Length *int `yaml:"length,omitempty" toml:"length,omitempty"`
	// Min and Max bound ints and floats. Default to the generator defaults.
	Min *Bound `yaml:"min,omitempty" toml:"min,omitempty"`
	Max *Bound `yaml:"max,omitempty" toml:"max,omitempty"`
	// Elem is the element of a list.
	Elem *Spec `yaml:"elem,omitempty" toml:"elem,omitempty"`
	// Key and Value are the entry shapes of a map.
	Key   *Spec `yaml:"key,omitempty" toml:"key,omitempty"`
	Value *Spec `yaml:"value,omitempty" toml:"value,omitempty"`
	// Of names the catalog type a ref resolves to.
	Of string `yaml:"of,omitempty" toml:"of,omitempty"`
}

// Build turns the spec into a generator. References are resolved against c
// at build time; an unknown reference yields an error wrapping
// ErrUnresolvedRef.
func (s *Spec) Build(c *Catalog) (primitive.Generator, error) {
	switch s.Kind {
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownKind, s.Kind)
	case KindString:
		n, err := s.length(primitive.DefaultStringLength)
		if err != nil {
			return nil, err
		}

		return primitive.StringOf(n), nil
	case KindInt:
		lo, err := s.Min.intOr(primitive.DefaultIntMin)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}

		hi, err := s.Max.intOr(primitive.DefaultIntMax)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}

		return primitive.IntBetween(lo, hi), nil
	case KindFloat:
		lo, err := s.Min.floatOr(primitive.DefaultFloatMin)
		if err != nil {
			return nil, fmt.Errorf("min: %w", err)
		}

		hi, err := s.Max.floatOr(primitive.DefaultFloatMax)
		if err != nil {
			return nil, fmt.Errorf("max: %w", err)
		}

		return primitive.FloatBetween(lo, hi), nil
	case KindBool:
		return primitive.Booleans(), nil
	case KindList:
		n, err := s.length(DefaultContainerLength)
		if err != nil {
			return nil, err
		}

		elem, err := s.nested("elem", s.Elem, c)
		if err != nil {
			return nil, err
		}

		return primitive.ListOf(n, elem), nil
	case KindMap:
		n, err := s.length(DefaultContainerLength)
		if err != nil {
			return nil, err
		}

		key, err := s.nested("key", s.Key, c)
		if err != nil {
			return nil, err
		}

		value, err := s.nested("value", s.Value, c)
		if err != nil {
			return nil, err
		}

		return primitive.DictOf(n, key, value), nil
	case KindRef:
		if s.Of == "" {
			return nil, errors.New("ref requires of")
		}

		gen, ok := c.Lookup(s.Of)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnresolvedRef, s.Of)
		}

		return gen, nil
	}
}

func (s *Spec) length(fallback int) (int, error) {
	if s.Length == nil {
		return fallback, nil
	}

	if *s.Length < 0 {
		return 0, fmt.Errorf("length must not be negative, got %d", *s.Length)
	}

	return *s.Length, nil
}

func (s *Spec) nested(field string, spec *Spec, c *Catalog) (primitive.Generator, error) {
	if spec == nil {
		return nil, fmt.Errorf("%s requires %s", s.Kind, field)
	}

	gen, err := spec.Build(c)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}

	return gen, nil
}

// RegisterSpecs builds and registers every spec. Specs may reference each
// other in any order; registration runs in passes until no further reference
// resolves. Every spec that fails to build, including references that never
// resolve or form a cycle, is reported in the returned error. Specs that
// build are registered even when others fail.
func (c *Catalog) RegisterSpecs(specs map[string]Spec) error {
	var result *multierror.Error

	pending := slices.Sorted(maps.Keys(specs))
	for len(pending) > 0 {
		var retry []string

		for _, name := range pending {
			spec := specs[name]

			gen, err := spec.Build(c)
			switch {
			case err == nil:
				c.Register(name, gen)
			case errors.Is(err, ErrUnresolvedRef):
				retry = append(retry, name)
			default:
				result = multierror.Append(result, fmt.Errorf("type %q: %w", name, err))
			}
		}

		if len(retry) == len(pending) {
			for _, name := range retry {
				spec := specs[name]
				_, err := spec.Build(c)
				result = multierror.Append(result, fmt.Errorf("type %q: %w", name, err))
			}

			break
		}

		pending = retry
	}

	return result.ErrorOrNil()
}
