// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/query"
	"github.com/tinct-cli/tinct/render"
	"github.com/tinct-cli/tinct/theme"
)

// sampleTexts provides representative preview content per widget class.
var sampleTexts = map[string]string{
	"Button":      "Start Recording",
	"Label":       "Ready to record",
	"ComboBox":    "Large model ▾",
	"ProgressBar": "████████░░░░░░░░",
	"List":        "session-2026-08-30.wav",
	"ListItem":    "session-2026-08-30.wav",
	"TextEdit":    "Transcription appears here…",
	"Tooltip":     "Drop audio files to transcribe",
	"GroupBox":    "Output",
	"ScrollBar":   "▐",
	"Splitter":    "─",
	"Window":      "tinct",
	"Dialog":      "Confirm",
}

func sampleText(class string) string {
	if text, ok := sampleTexts[class]; ok {
		return text
	}
	return class
}

// loadThemes fills the theme picker with built-in and discovered custom themes.
func (b *statefulBubble) loadThemes() {
	items := lo.Map(theme.All(), func(t *theme.Theme, _ int) list.Item {
		return &listItem{internal: t}
	})

	b.themesC.SetItems(items)
}

// selectTheme activates a theme and rebuilds the gallery for it.
func (b *statefulBubble) selectTheme(t *theme.Theme) {
	b.selectedTheme = t
	b.reloadGallery()
}

// reloadGallery rebuilds the widget class list with samples rendered in
// the active theme and interaction state.
func (b *statefulBubble) reloadGallery() {
	t := b.selectedTheme
	if t == nil {
		return
	}

	b.galleryC.Title = fmt.Sprintf("Widget Gallery — %s (%s)", t.Name, b.activeState)

	items := lo.Map(t.Resolver().Classes(), func(class string, _ int) list.Item {
		attrs := t.Resolve(class, "", b.activeState)
		return &listItem{
			internal: widgetEntry{class: class},
			sample:   render.Render(attrs, sampleText(class)),
		}
	})

	b.galleryC.SetItems(items)
}

// loadWidgets fills the instance list with the identifiers declared for a class.
func (b *statefulBubble) loadWidgets(class string) {
	t := b.selectedTheme
	b.widgetsC.Title = fmt.Sprintf("%s Instances", class)

	entries := []widgetEntry{{class: class}}
	for _, id := range t.Resolver().IDs(class) {
		entries = append(entries, widgetEntry{class: class, id: id})
	}

	items := lo.Map(entries, func(entry widgetEntry, _ int) list.Item {
		attrs := t.Resolve(entry.class, entry.id, b.activeState)
		return &listItem{
			internal: entry,
			sample:   render.Render(attrs, sampleText(entry.class)),
		}
	})

	b.widgetsC.SetItems(items)
}

// cycleState advances the previewed interaction state and re-renders samples.
func (b *statefulBubble) cycleState(delta int) {
	states := cascade.States()
	index := lo.IndexOf(states, b.activeState)
	index = (index + delta + len(states)) % len(states)
	b.activeState = states[index]

	b.reloadGallery()
	if b.state == widgetsState || b.state == detailState {
		b.loadWidgets(b.selectedWidget.class)
	}
}

// toggleTheme flips the preview between the dark and light built-ins.
func (b *statefulBubble) toggleTheme() {
	if b.selectedTheme == theme.Dark {
		b.selectTheme(theme.Light)
	} else {
		b.selectTheme(theme.Dark)
	}

	if b.state == widgetsState || b.state == detailState {
		b.loadWidgets(b.selectedWidget.class)
	}
}

// resolveQuery parses the playground input and jumps to the detail view.
func (b *statefulBubble) resolveQuery() error {
	selector, err := cascade.ParseSelector(b.inputC.Value())
	if err != nil {
		return err
	}

	// remembering failures must not break the flow
	_ = query.Remember(selector.String(), 1)

	b.selectedWidget = widgetEntry{class: selector.Class, id: selector.ID}
	if selector.State != cascade.StateAny {
		b.activeState = selector.State
	}
	b.resolvedSelector = mo.Some(selector)
	b.newState(detailState)

	return nil
}

// refreshSuggestion updates the playground suggestion from the selector history.
func (b *statefulBubble) refreshSuggestion() {
	input := b.inputC.Value()
	if input == "" {
		b.querySuggestion = mo.None[string]()
		return
	}

	b.querySuggestion = query.Suggest(input)
}
