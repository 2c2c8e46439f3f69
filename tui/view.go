// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"
	"github.com/spf13/viper"
	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/key"
	"github.com/tinct-cli/tinct/render"
	"github.com/tinct-cli/tinct/style"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

var (
	listExtraPaddingStyle = lipgloss.NewStyle().Padding(1, 2, 1, 0)
	paddingStyle          = lipgloss.NewStyle().Padding(1, 2)
)

func (b *statefulBubble) View() string {
	var output string

	switch b.state {
	case themesState:
		output = listExtraPaddingStyle.Render(b.themesC.View())
	case galleryState:
		output = listExtraPaddingStyle.Render(b.galleryC.View())
	case widgetsState:
		output = listExtraPaddingStyle.Render(b.widgetsC.View())
	case detailState:
		output = b.viewDetail()
	case queryState:
		output = b.viewQuery()
	case errorState:
		output = b.viewError()
	default:
		output = "Unknown state"
	}

	return b.notifier.View(output)
}

func (b *statefulBubble) viewDetail() string {
	t := b.selectedTheme
	widget := b.selectedWidget

	selector := cascade.Selector{Class: widget.class, ID: widget.id, State: b.activeState}
	if pinned, ok := b.resolvedSelector.Get(); ok && pinned.State != cascade.StateAny {
		selector.State = pinned.State
	}

	attrs := t.Resolve(widget.class, widget.id, b.activeState)

	lines := []string{
		style.Title(fmt.Sprintf("%s — %s", t.Name, selector)),
		"",
		render.Render(attrs, sampleText(widget.class)),
		"",
	}

	keys := maps.Keys(attrs)
	slices.Sort(keys)

	for _, k := range keys {
		value := attrs[k]
		line := fmt.Sprintf("  %s: %s", style.Fg(style.SecondaryColor)(k), value)
		if viper.GetBool(key.TUIShowSwatches) && color.IsColor(value) {
			if parsed, err := color.Parse(value); err == nil {
				line += " " + style.Swatch(parsed.Lipgloss())
			}
		}
		lines = append(lines, line)
	}

	if len(keys) == 0 {
		lines = append(lines, style.Faint("  no declarations match this selector"))
	}

	if ratio, ok := contrastOf(attrs); ok {
		minimum := viper.GetFloat64(key.ContrastMinimumRatio)
		verdict := style.Fg(style.SuccessColor)(fmt.Sprintf("%.2f:1", ratio))
		if ratio < minimum {
			verdict = style.Fg(style.ErrorColor)(fmt.Sprintf("%.2f:1 (below %.1f:1)", ratio, minimum))
		}
		lines = append(lines, "", fmt.Sprintf("%s contrast %s", icon.Get(icon.Contrast), verdict))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewQuery() string {
	lines := []string{
		style.Title("Selector Playground"),
		"",
		b.inputC.View(),
	}

	if suggestion, ok := b.querySuggestion.Get(); ok {
		lines = append(lines, "", style.Faint(fmt.Sprintf("suggestion: %s (tab to accept)", suggestion)))
	}

	return b.renderLines(true, lines)
}

func (b *statefulBubble) viewError() string {
	errorBody := style.Fg(style.ErrorColor)(fmt.Sprintf("%v", b.lastError))
	errorMsg := wrap.String(errorBody, b.width)
	return b.renderLines(
		true,
		append([]string{
			style.ErrorTitle("Error"),
			"",
			icon.Get(icon.Fail) + " An error occurred:",
			"",
		},
			errorMsg,
		),
	)
}

func (b *statefulBubble) renderLines(addHelp bool, lines []string) string {
	h := len(lines)
	l := strings.Join(lines, "\n")
	if addHelp {
		if b.height > h {
			l += strings.Repeat("\n", b.height-h)
		}
		l += b.helpC.View(b.keymap)
	}

	return paddingStyle.Render(l)
}

// contrastOf computes the WCAG contrast ratio of a text/background pair,
// when both are present and opaque.
func contrastOf(attrs cascade.Attributes) (float64, bool) {
	fg, err := color.Parse(attrs["color"])
	if err != nil {
		return 0, false
	}

	bg, err := color.Parse(attrs["background"])
	if err != nil || bg.Alpha < 1 {
		return 0, false
	}

	return color.ContrastRatio(fg, bg), true
}
