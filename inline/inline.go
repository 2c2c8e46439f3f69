// Package inline provides the implementation for the application's non-interactive, programmable execution mode.
package inline

import (
	"fmt"
	"os"

	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/theme"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	// Step 1: Decide which interaction states to resolve for. A selector
	// pinned to a concrete state resolves for that state only.
	states := cascade.States()
	if options.Selector.State != cascade.StateAny {
		states = []cascade.State{options.Selector.State}
	} else if options.States != nil {
		states = options.States(states)
	}

	// Step 2: Run the cascade per state.
	var resolutions []*Resolution
	for _, state := range states {
		attrs := options.Theme.Resolve(options.Selector.Class, options.Selector.ID, state)
		if options.Scale != 0 && options.Scale != 1 {
			attrs = theme.ScaleMetrics(attrs, options.Scale)
		}

		resolutions = append(resolutions, &Resolution{
			State:      state.String(),
			Attributes: attrs,
		})
	}

	// Step 3: Dispatch to the configured output writer.
	if options.Json {
		data, err := asJson(resolutions, options)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(options.Out, string(data))
		return err
	}

	for i, state := range states {
		selector := cascade.Selector{
			Class: options.Selector.Class,
			ID:    options.Selector.ID,
			State: state,
		}
		fmt.Fprintln(options.Out, selector.String())

		keys := maps.Keys(resolutions[i].Attributes)
		slices.Sort(keys)
		for _, k := range keys {
			fmt.Fprintf(options.Out, "  %s: %s\n", k, resolutions[i].Attributes[k])
		}
	}

	return nil
}
