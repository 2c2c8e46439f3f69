// Package theme manages built-in and custom interface themes.
package theme

import (
	"fmt"

	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/token"
)

// Document is the raw, serializable form of a theme definition as authored in
// a TOML document or produced by a Lua theme script.
type Document struct {
	// Name is the registry identifier the theme is selected by.
	Name string `json:"name" mapstructure:"name" jsonschema:"description=Registry identifier the theme is selected by."`
	// Tokens maps token names to color or metric values.
	Tokens map[string]string `json:"tokens" mapstructure:"tokens" jsonschema:"description=Named color or metric constants referenced by rules via $name."`
	// Rules is the ordered widget style rule table.
	Rules []DocumentRule `json:"rules" mapstructure:"rules" jsonschema:"description=Ordered widget style rules; later rules win specificity ties."`
}

// DocumentRule is a single selector → attributes declaration.
type DocumentRule struct {
	Class string `json:"class" mapstructure:"class" jsonschema:"description=Widget class the rule applies to."`
	ID    string `json:"id,omitempty" mapstructure:"id" jsonschema:"description=Optional widget instance identifier; empty matches any."`
	State string `json:"state,omitempty" mapstructure:"state" jsonschema:"description=Optional interaction state (default hover pressed disabled focus selected); empty matches any."`
	// Attrs maps attribute names to literal values or $token references.
	Attrs map[string]string `json:"attrs" mapstructure:"attrs" jsonschema:"description=Visual attribute declarations; values starting with $ reference tokens."`
}

// Theme validates and compiles the document. Selector classes are required,
// states must parse, and every token reference must resolve; any violation is
// a load-time error.
func (d *Document) Theme() (*Theme, error) {
	if d.Name == "" {
		return nil, fmt.Errorf("theme document: name is required")
	}

	rules := make([]cascade.Rule, 0, len(d.Rules))
	for i, raw := range d.Rules {
		if raw.Class == "" {
			return nil, fmt.Errorf("theme %s: rule %d: class is required", d.Name, i+1)
		}

		state, err := cascade.ParseState(raw.State)
		if err != nil {
			return nil, fmt.Errorf("theme %s: rule %d (%s): %w", d.Name, i+1, raw.Class, err)
		}

		rules = append(rules, cascade.Rule{
			Selector: cascade.Selector{Class: raw.Class, ID: raw.ID, State: state},
			Attrs:    cascade.Attributes(raw.Attrs),
		})
	}

	compiled, err := New(d.Name, token.NewPalette(d.Tokens), rules)
	if err != nil {
		return nil, err
	}

	compiled.IsCustom = true
	return compiled, nil
}

// Export reconstructs the portable document form of a compiled theme. Token
// references in rules were inlined at compile time, so the exported rules
// carry literal values.
func Export(t *Theme) *Document {
	tokens := make(map[string]string, t.Tokens().Len())
	for _, name := range t.Tokens().Names() {
		value, err := t.Tokens().Resolve(name)
		if err != nil {
			continue
		}
		tokens[name] = value.Raw
	}

	rules := make([]DocumentRule, 0, len(t.Resolver().Rules()))
	for _, rule := range t.Resolver().Rules() {
		state := ""
		if rule.Selector.State != cascade.StateAny {
			state = rule.Selector.State.String()
		}

		rules = append(rules, DocumentRule{
			Class: rule.Selector.Class,
			ID:    rule.Selector.ID,
			State: state,
			Attrs: map[string]string(rule.Attrs.Clone()),
		})
	}

	return &Document{
		Name:   t.Name,
		Tokens: tokens,
		Rules:  rules,
	}
}
