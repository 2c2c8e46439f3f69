// Package cascade implements deterministic stylesheet-cascade resolution over widget style rules.
package cascade

import "fmt"

// State is a widget's current interaction condition affecting which rules apply.
type State int

const (
	// StateAny is the wildcard: a rule without a state applies under every state.
	StateAny State = iota
	StateDefault
	StateHover
	StatePressed
	StateDisabled
	StateFocus
	StateSelected
)

var stateNames = map[State]string{
	StateAny:      "",
	StateDefault:  "default",
	StateHover:    "hover",
	StatePressed:  "pressed",
	StateDisabled: "disabled",
	StateFocus:    "focus",
	StateSelected: "selected",
}

func (s State) String() string {
	return stateNames[s]
}

// ParseState interprets a textual state name from a theme document.
// The empty string denotes the wildcard.
func ParseState(name string) (State, error) {
	for state, n := range stateNames {
		if n == name {
			return state, nil
		}
	}
	return StateAny, fmt.Errorf("unknown interaction state %q", name)
}

// States lists every concrete interaction state, in layering priority order.
func States() []State {
	return []State{StateDefault, StateHover, StateFocus, StateSelected, StatePressed, StateDisabled}
}

// layerRank orders concrete states for Effective: a higher rank wins when
// several states hold at once.
var layerRank = map[State]int{
	StateDefault:  0,
	StateSelected: 1,
	StateHover:    2,
	StateFocus:    3,
	StatePressed:  4,
	StateDisabled: 5,
}

// Effective collapses simultaneously-held states into the single state used
// for resolution. Disabled overrides every other state, Pressed overrides
// Hover, and so on down to Default.
func Effective(states ...State) State {
	result := StateDefault
	for _, s := range states {
		if s == StateAny {
			continue
		}
		if layerRank[s] > layerRank[result] {
			result = s
		}
	}
	return result
}
