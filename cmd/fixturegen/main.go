// Package main provides the CLI entrypoint for fixturegen.
//
// fixturegen writes randomized C++ struct and enum declarations used as
// fixtures by serialization test suites:
//   - struct, enum: print one declaration
//   - value: print a random initializer of a catalog type
//   - types: list the catalog
//   - gen: write, or verify, the files described by a recipe
package main

import (
	"fmt"
	"os"

	"fixture-generator/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "fixturegen:", err)
		os.Exit(2)
	}

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}
