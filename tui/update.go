// Package tui provides the primary terminal user interface implementation.
package tui

import (
	bubblesKey "github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/mo"
	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/internal/ui"
	"github.com/tinct-cli/tinct/theme"
)

func (b *statefulBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.resize(msg.Width, msg.Height)
	case string, ui.ClearNotificationMsg:
		return b, b.notifier.Update(msg)
	case tea.KeyMsg:
		if bubblesKey.Matches(msg, b.keymap.forceQuit) {
			return b, tea.Quit
		}
	}

	switch b.state {
	case themesState:
		return b.updateThemes(msg)
	case galleryState:
		return b.updateGallery(msg)
	case widgetsState:
		return b.updateWidgets(msg)
	case detailState:
		return b.updateDetail(msg)
	case queryState:
		return b.updateQuery(msg)
	case errorState:
		return b.updateError(msg)
	}

	return b, nil
}

func (b *statefulBubble) updateThemes(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.themesC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.themesC.SelectedItem().(*listItem); ok {
				b.selectTheme(item.internal.(*theme.Theme))
				b.newState(galleryState)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	b.themesC, cmd = b.themesC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateGallery(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.galleryC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.galleryC.SelectedItem().(*listItem); ok {
				b.selectedWidget = item.internal.(widgetEntry)
				b.loadWidgets(b.selectedWidget.class)
				b.newState(widgetsState)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.nextState):
			b.cycleState(1)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.prevState):
			b.cycleState(-1)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.toggleTheme):
			b.toggleTheme()
			return b, ui.Notify("theme: " + b.selectedTheme.Name)
		case bubblesKey.Matches(msg, b.keymap.openQuery):
			b.inputC.Focus()
			b.newState(queryState)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	b.galleryC, cmd = b.galleryC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateWidgets(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && b.widgetsC.FilterState() != list.Filtering {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if item, ok := b.widgetsC.SelectedItem().(*listItem); ok {
				b.selectedWidget = item.internal.(widgetEntry)
				b.resolvedSelector = mo.None[cascade.Selector]()
				b.newState(detailState)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.nextState):
			b.cycleState(1)
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	var cmd tea.Cmd
	b.widgetsC, cmd = b.widgetsC.Update(msg)
	return b, cmd
}

func (b *statefulBubble) updateDetail(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.nextState):
			b.cycleState(1)
		case bubblesKey.Matches(msg, b.keymap.prevState):
			b.cycleState(-1)
		case bubblesKey.Matches(msg, b.keymap.toggleTheme):
			b.toggleTheme()
			return b, ui.Notify("theme: " + b.selectedTheme.Name)
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}

func (b *statefulBubble) updateQuery(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.confirm):
			if err := b.resolveQuery(); err != nil {
				b.raiseError(err)
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.acceptSuggestion):
			if suggestion, ok := b.querySuggestion.Get(); ok {
				b.inputC.SetValue(suggestion)
				b.inputC.CursorEnd()
			}
			return b, nil
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
			return b, nil
		}
	}

	var cmd tea.Cmd
	b.inputC, cmd = b.inputC.Update(msg)
	b.refreshSuggestion()
	return b, cmd
}

func (b *statefulBubble) updateError(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case bubblesKey.Matches(msg, b.keymap.back):
			b.previousState()
		case bubblesKey.Matches(msg, b.keymap.quit):
			return b, tea.Quit
		}
	}

	return b, nil
}
