package recipe

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format is a recipe serialization.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

var ErrUnknownFormat = errors.New("unknown recipe format")

// FormatOf returns the format implied by the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".toml":
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

// LoadFile loads and parses a recipe from the given path.
func LoadFile(path string) (*Recipe, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("failed to read recipe %s: %w", path, err)
	}

	r, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return r, nil
}

// Parse parses data in the given format. Unknown keys are an error in both
// formats.
func Parse(data []byte, format Format) (*Recipe, error) {
	var r Recipe

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)

		if err := dec.Decode(&r); err != nil {
			return nil, fmt.Errorf("failed to parse recipe YAML: %w", err)
		}
	case FormatTOML:
		md, err := toml.Decode(string(data), &r)
		if err != nil {
			return nil, fmt.Errorf("failed to parse recipe TOML: %w", err)
		}

		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}

			slices.Sort(keys)

			return nil, fmt.Errorf("failed to parse recipe TOML: unknown keys %s", strings.Join(keys, ", "))
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}

	applyDefaults(&r)

	return &r, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(r *Recipe) {
	if r.Version == "" {
		r.Version = CurrentVersion
	}
}
