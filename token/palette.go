// Package token implements the named constant palette backing theme definitions.
package token

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// RefPrefix marks an attribute value as a token reference rather than a literal.
const RefPrefix = "$"

// IsRef reports whether a raw attribute value references a token by name.
func IsRef(raw string) bool {
	return strings.HasPrefix(raw, RefPrefix)
}

// RefName extracts the referenced token name from a "$name" attribute value.
func RefName(raw string) string {
	return strings.TrimPrefix(raw, RefPrefix)
}

// Ref renders the reference form of a token name.
func Ref(name string) string {
	return RefPrefix + name
}

// Palette is an immutable mapping of token names to classified values.
// Once constructed it is safe for concurrent use.
type Palette struct {
	values map[string]Value
}

// NewPalette parses and classifies a raw name → value table.
func NewPalette(defs map[string]string) Palette {
	values := make(map[string]Value, len(defs))
	for name, raw := range defs {
		values[name] = ParseValue(raw)
	}
	return Palette{values: values}
}

// Resolve looks up a token by name. It fails with *UnknownTokenError for
// undefined names and performs no side effects.
func (p Palette) Resolve(name string) (Value, error) {
	v, ok := p.values[name]
	if !ok {
		return Value{}, &UnknownTokenError{Name: name}
	}
	return v, nil
}

// Has reports whether a token name is defined.
func (p Palette) Has(name string) bool {
	_, ok := p.values[name]
	return ok
}

// Names returns all defined token names in lexicographic order.
func (p Palette) Names() []string {
	names := maps.Keys(p.values)
	slices.Sort(names)
	return names
}

// Len returns the number of defined tokens.
func (p Palette) Len() int {
	return len(p.values)
}
