// Package theme manages built-in and custom interface themes: a named token
// palette plus the widget style rule table compiled into a cascade resolver.
package theme

import (
	"fmt"

	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/token"
)

// Theme is an immutable, validated styling configuration. Token references in
// its rule table are resolved once during construction; resolution afterwards
// is a pure lookup safe for concurrent use.
type Theme struct {
	Name     string
	IsCustom bool

	palette  token.Palette
	resolver *cascade.Resolver
}

// New validates a palette and rule table and compiles them into a Theme.
// Every "$name" attribute reference must resolve against the palette;
// an orphan reference fails here, at load time, never at render time.
func New(name string, palette token.Palette, rules []cascade.Rule) (*Theme, error) {
	compiled := make([]cascade.Rule, 0, len(rules))

	for _, rule := range rules {
		attrs := make(cascade.Attributes, len(rule.Attrs))

		for attr, raw := range rule.Attrs {
			if !token.IsRef(raw) {
				attrs[attr] = raw
				continue
			}

			value, err := palette.Resolve(token.RefName(raw))
			if err != nil {
				return nil, fmt.Errorf("theme %s: rule %s: attribute %s: %w", name, rule.Selector, attr, err)
			}
			attrs[attr] = value.Raw
		}

		compiled = append(compiled, cascade.Rule{Selector: rule.Selector, Attrs: attrs})
	}

	return &Theme{
		Name:     name,
		palette:  palette,
		resolver: cascade.NewResolver(compiled),
	}, nil
}

// Tokens returns the theme's token palette.
func (t *Theme) Tokens() token.Palette {
	return t.palette
}

// Resolver exposes the compiled cascade resolver.
func (t *Theme) Resolver() *cascade.Resolver {
	return t.resolver
}

// Resolve answers a style query against the compiled rule table. Token
// references are already inlined; the result holds concrete values only.
func (t *Theme) Resolve(class, id string, state cascade.State) cascade.Attributes {
	return t.resolver.Resolve(class, id, state)
}

// ScaleMetrics applies a UI scale factor to every metric-valued attribute,
// mirroring the original application's interface scaling behavior.
func ScaleMetrics(attrs cascade.Attributes, factor float64) cascade.Attributes {
	if factor == 1 {
		return attrs
	}

	scaled := make(cascade.Attributes, len(attrs))
	for attr, raw := range attrs {
		scaled[attr] = token.ParseValue(raw).Scaled(factor).Raw
	}
	return scaled
}

func (t *Theme) String() string {
	return t.Name
}
