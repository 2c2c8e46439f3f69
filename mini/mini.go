// Package mini implements a lightweight, non-interactive gallery printout for scripts and narrow terminals.
package mini

import (
	"fmt"
	"io"
	"os"

	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/render"
	"github.com/tinct-cli/tinct/style"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/util"
)

var truncateAt = 100

type Options struct {
	Out   io.Writer
	Theme *theme.Theme
	// States limits the printed interaction states. Empty prints all of them.
	States []cascade.State
}

// Run prints a one-shot widget gallery for the given theme.
func Run(options *Options) error {
	if options.Out == nil {
		options.Out = os.Stdout
	}

	if options.Theme == nil {
		options.Theme = theme.Active()
	}

	states := options.States
	if len(states) == 0 {
		states = cascade.States()
	}

	if w, _, err := util.TerminalSize(); err == nil {
		truncateAt = w
	}

	t := options.Theme
	truncate := style.Truncate(truncateAt)

	fmt.Fprintln(options.Out, style.Title(t.Name))
	fmt.Fprintln(options.Out)

	for _, class := range t.Resolver().Classes() {
		fmt.Fprintln(options.Out, style.Bold(class))

		for _, state := range states {
			attrs := t.Resolve(class, "", state)
			fmt.Fprintf(options.Out, "  %-9s %s\n",
				state.String(),
				truncate(render.Render(attrs, sampleOf(class))),
			)
		}

		for _, id := range t.Resolver().IDs(class) {
			attrs := t.Resolve(class, id, cascade.StateDefault)
			fmt.Fprintf(options.Out, "  #%s %s\n",
				id,
				truncate(render.Render(attrs, sampleOf(class))),
			)
		}

		fmt.Fprintln(options.Out)
	}

	return nil
}

func sampleOf(class string) string {
	samples := map[string]string{
		"Button":      " Start ",
		"ProgressBar": "████████░░░░",
		"Tooltip":     " hint ",
	}

	if sample, ok := samples[class]; ok {
		return sample
	}
	return " " + class + " "
}
