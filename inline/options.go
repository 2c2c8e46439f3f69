// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/theme"
)

// StatesFilter narrows the set of interaction states a selector is resolved for.
type StatesFilter func([]cascade.State) []cascade.State

type Options struct {
	Out      io.Writer
	Theme    *theme.Theme
	Selector cascade.Selector
	States   StatesFilter
	Json     bool
	// Scale multiplies pixel metrics in the resolved attributes. 1 leaves them untouched.
	Scale float64
}

// ParseStatesFilter parses the string description of a states filter.
// Format: "all", "default", or a comma separated list like "hover,pressed".
func ParseStatesFilter(description string) (StatesFilter, error) {
	description = strings.ToLower(strings.TrimSpace(description))

	switch description {
	case "", "all":
		return func(states []cascade.State) []cascade.State {
			return states
		}, nil
	case "default":
		return func([]cascade.State) []cascade.State {
			return []cascade.State{cascade.StateDefault}
		}, nil
	}

	var wanted []cascade.State
	for _, name := range strings.Split(description, ",") {
		state, err := cascade.ParseState(strings.TrimSpace(name))
		if err != nil {
			return nil, fmt.Errorf("invalid states filter %q: %w", description, err)
		}
		if state == cascade.StateAny {
			continue
		}
		wanted = append(wanted, state)
	}

	if len(wanted) == 0 {
		return nil, fmt.Errorf("states filter %q selects nothing", description)
	}

	return func(states []cascade.State) []cascade.State {
		return lo.Filter(states, func(s cascade.State, _ int) bool {
			return lo.Contains(wanted, s)
		})
	}, nil
}
