// Package catalog maps the type names used in generated declarations to the
// generators that produce their initial values.
package catalog

import (
	"maps"

	"fixture-generator/internal/random"
	"fixture-generator/primitive"
)

// Catalog is an ordered set of type names, each bound to a generator.
//
// Names keep the order of their first registration; Pick and Names rely on
// that order, so a catalog built the same way picks the same names for the
// same draws. A Catalog is not safe for concurrent mutation.
type Catalog struct {
	names []string
	gens  map[string]primitive.Generator
}

// New creates an empty Catalog. The zero value is also ready to use.
func New() *Catalog {
	return &Catalog{gens: make(map[string]primitive.Generator)}
}

// Register binds name to gen. Registering a name again replaces its generator
// and keeps its position. A nil gen keeps the name pickable but without a
// generator, so declarations of that type fall back to an empty initializer.
func (c *Catalog) Register(name string, gen primitive.Generator) *Catalog {
	if c.gens == nil {
		c.gens = make(map[string]primitive.Generator)
	}

	if _, ok := c.gens[name]; !ok {
		c.names = append(c.names, name)
	}

	c.gens[name] = gen

	return c
}

// Lookup returns the generator bound to name. It reports false for unknown
// names and for names registered without a generator.
func (c *Catalog) Lookup(name string) (primitive.Generator, bool) {
	gen, ok := c.gens[name]
	if !ok || gen == nil {
		return nil, false
	}

	return gen, true
}

// Has reports whether name is registered, with or without a generator.
func (c *Catalog) Has(name string) bool {
	_, ok := c.gens[name]
	return ok
}

// Names returns the registered names in registration order.
func (c *Catalog) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of registered names.
func (c *Catalog) Len() int {
	return len(c.names)
}

// Pick returns a uniformly chosen name. It reports false, without drawing,
// when the catalog is empty.
func (c *Catalog) Pick(src random.Source) (string, bool) {
	if len(c.names) == 0 {
		return "", false
	}

	return c.names[src.IntN(len(c.names))], true
}

// Clone returns a copy that can be extended without touching c.
func (c *Catalog) Clone() *Catalog {
	gens := maps.Clone(c.gens)
	if gens == nil {
		gens = make(map[string]primitive.Generator)
	}

	return &Catalog{
		names: append([]string(nil), c.names...),
		gens:  gens,
	}
}
