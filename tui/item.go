// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"fmt"

	"github.com/tinct-cli/tinct/icon"
	"github.com/tinct-cli/tinct/theme"
	"github.com/tinct-cli/tinct/util"
)

// widgetEntry identifies a single previewable widget: a class plus an
// optional instance identifier.
type widgetEntry struct {
	class string
	id    string
}

func (w widgetEntry) selector() string {
	if w.id == "" {
		return w.class
	}
	return fmt.Sprintf("%s#%s", w.class, w.id)
}

// listItem implements the list.Item interface, wrapping various domain models for terminal display.
type listItem struct {
	internal interface{}

	// sample is a pre-rendered themed preview, rebuilt whenever the
	// active theme or interaction state changes.
	sample string
}

// Title retrieves the primary display text for the list item.
func (t *listItem) Title() (title string) {
	switch e := t.internal.(type) {
	case *theme.Theme:
		title = fmt.Sprintf("%s %s", icon.Get(icon.Theme), e.Name)
	case widgetEntry:
		title = e.selector()
	case string:
		title = e
	default:
		title = t.FilterValue()
	}

	return
}

// Description retrieves the secondary metadata for the list item.
func (t *listItem) Description() (description string) {
	if t.sample != "" {
		return t.sample
	}

	switch e := t.internal.(type) {
	case *theme.Theme:
		kind := "built-in"
		if e.IsCustom {
			kind = "custom"
		}
		description = fmt.Sprintf("%s • %s • %s",
			kind,
			util.Quantify(e.Tokens().Len(), "token", "tokens"),
			util.Quantify(len(e.Resolver().Rules()), "rule", "rules"),
		)
	}

	return
}

// FilterValue returns the string used for real-time list filtering and searching.
func (t *listItem) FilterValue() string {
	switch e := t.internal.(type) {
	case *theme.Theme:
		return e.Name
	case widgetEntry:
		return e.selector()
	case string:
		return e
	default:
		return ""
	}
}
