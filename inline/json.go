// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"encoding/json"

	"github.com/tinct-cli/tinct/cascade"
)

type Resolution struct {
	// State is the interaction state the selector was resolved for.
	State string `json:"state"`
	// Attributes is the cascaded attribute set for that state.
	Attributes cascade.Attributes `json:"attributes"`
}

type Output struct {
	Theme    string        `json:"theme"`
	Selector string        `json:"selector"`
	Result   []*Resolution `json:"result"`
}

func asJson(resolutions []*Resolution, options *Options) ([]byte, error) {
	if resolutions == nil {
		resolutions = []*Resolution{}
	}

	return json.Marshal(&Output{
		Theme:    options.Theme.Name,
		Selector: options.Selector.String(),
		Result:   resolutions,
	})
}
