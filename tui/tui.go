// Package tui provides the primary terminal user interface implementation.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tinct-cli/tinct/theme"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	// Theme opens the gallery on a specific theme instead of the theme picker.
	Theme *theme.Theme
	// Query opens the selector playground immediately.
	Query bool
}

// Run initializes and executes the primary Bubble Tea application loop.
func Run(options *Options) error {
	bubble := newBubble(options)

	switch {
	case options.Query:
		bubble.selectTheme(activeOr(options.Theme))
		bubble.newState(queryState)
	case options.Theme != nil:
		bubble.selectTheme(options.Theme)
		bubble.newState(galleryState)
	default:
		bubble.newState(themesState)
	}

	_, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	return err
}

func activeOr(t *theme.Theme) *theme.Theme {
	if t != nil {
		return t
	}
	return theme.Active()
}
