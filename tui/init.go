// Package tui provides the primary terminal user interface implementation.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/viper"

	"github.com/tinct-cli/tinct/key"
)

// Init initializes the terminal user interface.
func (b *statefulBubble) Init() tea.Cmd {
	if !viper.GetBool(key.UIAnimations) {
		return nil
	}
	return textinput.Blink
}
