// Package config reads the settings of the command line tool from the
// environment and an optional TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"fixture-generator/internal/catalog"
	"fixture-generator/internal/logging"
)

// DefaultPath is the config file read when FIXTUREGEN_CONFIG is unset.
const DefaultPath = "fixturegen.toml"

type Config struct {
	Path      string  // FIXTUREGEN_CONFIG (default "fixturegen.toml", optional)
	Seed      *uint64 // FIXTUREGEN_SEED (optional, nil = entropy)
	OutputDir string  // FIXTUREGEN_OUTPUT_DIR (default ".")
	LogLevel  string  // FIXTUREGEN_LOG_LEVEL (default "info")
	LogFormat string  // FIXTUREGEN_LOG_FORMAT (default "auto")

	// Types extend the default catalog. Only the config file sets them.
	Types map[string]catalog.Spec
}

// File is the layout of the TOML config file.
type File struct {
	Seed      *uint64                 `toml:"seed"`
	OutputDir string                  `toml:"output_dir"`
	LogLevel  string                  `toml:"log_level"`
	LogFormat string                  `toml:"log_format"`
	Types     map[string]catalog.Spec `toml:"types"`
}

// Load reads the config file, then lets environment variables override it.
// A missing file is ignored unless FIXTUREGEN_CONFIG names it explicitly.
func Load() (*Config, error) {
	c := &Config{
		Path:      envOrDefault("FIXTUREGEN_CONFIG", DefaultPath),
		OutputDir: ".",
		LogLevel:  "info",
		LogFormat: logging.FormatAuto,
	}

	f, err := LoadFile(c.Path)
	switch {
	case err == nil:
		c.merge(f)
	case errors.Is(err, fs.ErrNotExist) && os.Getenv("FIXTUREGEN_CONFIG") == "":
		// the default file is optional
	default:
		return nil, err
	}

	c.OutputDir = envOrDefault("FIXTUREGEN_OUTPUT_DIR", c.OutputDir)
	c.LogLevel = envOrDefault("FIXTUREGEN_LOG_LEVEL", c.LogLevel)
	c.LogFormat = envOrDefault("FIXTUREGEN_LOG_FORMAT", c.LogFormat)

	if s := os.Getenv("FIXTUREGEN_SEED"); s != "" {
		seed, err := ParseSeed(s)
		if err != nil {
			return nil, fmt.Errorf("FIXTUREGEN_SEED: %w", err)
		}

		c.Seed = &seed
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// LoadFile decodes a TOML config file. Unknown keys are an error.
func LoadFile(path string) (*File, error) {
	var f File

	md, err := toml.DecodeFile(path, &f)
	if err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}

		slices.Sort(keys)

		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return &f, nil
}

// Validate checks the log settings.
func (c *Config) Validate() error {
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}

	if !logging.ValidFormat(c.LogFormat) {
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}

	return nil
}

// Catalog returns the default catalog extended with the configured types.
func (c *Config) Catalog() (*catalog.Catalog, error) {
	types := catalog.Default()
	if err := types.RegisterSpecs(c.Types); err != nil {
		return nil, fmt.Errorf("config types: %w", err)
	}

	return types, nil
}

// ParseSeed parses a seed in decimal, or hexadecimal with a 0x prefix.
func ParseSeed(s string) (uint64, error) {
	seed, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q: %w", s, err)
	}

	return seed, nil
}

func (c *Config) merge(f *File) {
	if f.Seed != nil {
		c.Seed = f.Seed
	}

	if f.OutputDir != "" {
		c.OutputDir = f.OutputDir
	}

	if f.LogLevel != "" {
		c.LogLevel = f.LogLevel
	}

	if f.LogFormat != "" {
		c.LogFormat = f.LogFormat
	}

	c.Types = f.Types
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
