// Package cascade implements deterministic stylesheet-cascade resolution over widget style rules.
package cascade

import (
	"golang.org/x/exp/slices"

	"github.com/samber/lo"
)

// Resolver answers style queries against an immutable, ordered rule list.
// Resolution is a pure function over static configuration: a Resolver may be
// shared freely across goroutines without coordination.
type Resolver struct {
	rules []Rule
}

// NewResolver captures the rule list in declaration order. The list is copied;
// later mutation of the input slice does not affect the resolver.
func NewResolver(rules []Rule) *Resolver {
	owned := make([]Rule, len(rules))
	for i, r := range rules {
		r.seq = i
		owned[i] = r
	}
	return &Resolver{rules: owned}
}

// Rules returns the rule list in declaration order.
func (r *Resolver) Rules() []Rule {
	return slices.Clone(r.rules)
}

// Classes returns the distinct widget classes mentioned by any rule, in
// declaration order of first appearance.
func (r *Resolver) Classes() []string {
	return lo.Uniq(lo.Map(r.rules, func(rule Rule, _ int) string {
		return rule.Selector.Class
	}))
}

// IDs returns the distinct identifiers declared for a widget class.
func (r *Resolver) IDs(class string) []string {
	ids := lo.FilterMap(r.rules, func(rule Rule, _ int) (string, bool) {
		return rule.Selector.ID, rule.Selector.Class == class && rule.Selector.ID != ""
	})
	return lo.Uniq(ids)
}

// Resolve selects every rule matching (class, id, state), orders matches by
// specificity with declaration order breaking ties (last declared wins), and
// merges their attribute sets with higher-specificity values overriding lower
// ones per attribute key. A query with no matching rule yields an empty
// attribute set, never an error.
func (r *Resolver) Resolve(class, id string, state State) Attributes {
	matches := lo.Filter(r.rules, func(rule Rule, _ int) bool {
		return rule.Selector.Matches(class, id, state)
	})

	// Ascending merge order: the least specific, earliest declared rule is
	// applied first so that each later rule overrides it.
	slices.SortFunc(matches, func(a, b Rule) int {
		if d := a.Selector.Specificity() - b.Selector.Specificity(); d != 0 {
			return d
		}
		return a.seq - b.seq
	})

	resolved := make(Attributes)
	for _, rule := range matches {
		resolved.merge(rule.Attrs)
	}
	return resolved
}
