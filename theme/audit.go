// Package theme manages built-in and custom interface themes.
package theme

import (
	"fmt"

	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/color"
)

// Finding reports a resolved text/background pairing whose contrast ratio
// falls below the audited minimum.
type Finding struct {
	Selector   string
	Foreground string
	Background string
	Ratio      float64
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s on %s contrast %.2f", f.Selector, f.Foreground, f.Background, f.Ratio)
}

// Audit checks every declared (class, identifier, state) combination for
// accessible text contrast. Combinations without both a parseable text color
// and background are skipped: the widget falls back to platform defaults.
func Audit(t *Theme, minRatio float64) []Finding {
	var findings []Finding

	resolver := t.Resolver()
	for _, class := range resolver.Classes() {
		ids := append([]string{""}, resolver.IDs(class)...)

		for _, id := range ids {
			for _, state := range cascade.States() {
				// WCAG 1.4.3 exempts text in inactive components.
				if state == cascade.StateDisabled {
					continue
				}

				attrs := resolver.Resolve(class, id, state)

				fg, err := color.Parse(attrs["color"])
				if err != nil {
					continue
				}
				bg, err := color.Parse(attrs["background"])
				if err != nil || bg.Alpha < 1 {
					continue
				}

				ratio := color.ContrastRatio(fg, bg)
				if ratio >= minRatio {
					continue
				}

				findings = append(findings, Finding{
					Selector:   cascade.Selector{Class: class, ID: id, State: state}.String(),
					Foreground: fg.Hex(),
					Background: bg.Hex(),
					Ratio:      ratio,
				})
			}
		}
	}

	return findings
}
