// Package cascade implements deterministic stylesheet-cascade resolution over widget style rules.
package cascade

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
)

// Attributes is a resolved set of visual attribute declarations, keyed by
// attribute name (background, color, border-radius, ...).
type Attributes map[string]string

// Clone returns an independent copy of the attribute set.
func (a Attributes) Clone() Attributes {
	out := make(Attributes, len(a))
	maps.Copy(out, a)
	return out
}

// merge overlays another attribute set, with the overlay winning per key.
func (a Attributes) merge(over Attributes) {
	maps.Copy(a, over)
}

// Selector identifies which widgets a rule applies to: a widget class, an
// optional instance identifier, and an optional interaction state. An empty
// identifier and StateAny act as wildcards.
type Selector struct {
	Class string
	ID    string
	State State
}

// Matches reports whether the selector applies to a concrete query.
func (s Selector) Matches(class, id string, state State) bool {
	if s.Class != class {
		return false
	}
	if s.ID != "" && s.ID != id {
		return false
	}
	if s.State != StateAny && s.State != state {
		return false
	}
	return true
}

// Specificity places selectors in the explicit total order mandated by cascade
// semantics: identifier+state > identifier > class+state > class. Ties are
// broken elsewhere by declaration order.
func (s Selector) Specificity() int {
	score := 0
	if s.ID != "" {
		score += 2
	}
	if s.State != StateAny {
		score++
	}
	return score
}

// String renders the selector in stylesheet notation, e.g. "Button#startButton:hover".
func (s Selector) String() string {
	var b strings.Builder
	b.WriteString(s.Class)
	if s.ID != "" {
		b.WriteString("#")
		b.WriteString(s.ID)
	}
	if s.State != StateAny {
		b.WriteString(":")
		b.WriteString(s.State.String())
	}
	return b.String()
}

// ParseSelector parses stylesheet notation back into a selector.
// "Button" selects a class, "Button#startButton" a specific widget and
// "Button#startButton:hover" a widget in a given interaction state.
func ParseSelector(raw string) (Selector, error) {
	var selector Selector

	rest, stateName, _ := strings.Cut(strings.TrimSpace(raw), ":")

	state, err := ParseState(stateName)
	if err != nil {
		return Selector{}, err
	}
	selector.State = state
	selector.Class, selector.ID, _ = strings.Cut(rest, "#")

	if selector.Class == "" {
		return Selector{}, fmt.Errorf("selector %q is missing a widget class", raw)
	}

	return selector, nil
}

// Rule is a declarative mapping from a widget selector to visual attributes.
type Rule struct {
	Selector Selector
	Attrs    Attributes

	// seq is the declaration position, used for source-order tie-breaking.
	seq int
}
