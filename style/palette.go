// Package style provides a functional API for composing and applying lipgloss-based TUI styles.
package style

import "github.com/charmbracelet/lipgloss"

// Palette defines the application's own color scheme, drawn from the dark
// built-in theme so the CLI wears what it sells.
var (
	// Base colors
	Base    = lipgloss.Color("#2D3436")
	Surface = lipgloss.Color("#34495E")
	Text    = lipgloss.Color("#DFE6E9")
	Subtext = lipgloss.Color("#B2BEC3")
	Overlay = lipgloss.Color("#7F8C8D")

	// Accents
	Primary   = lipgloss.Color("#6C5CE7")
	Secondary = lipgloss.Color("#A29BFE")
	Green     = lipgloss.Color("#00B894")
	Yellow    = lipgloss.Color("#FDCB6E")
	Red       = lipgloss.Color("#FF6B6B")
	Blue      = lipgloss.Color("#3498DB")

	// Semantic mappings
	AccentColor    = Primary
	SecondaryColor = Secondary
	SuccessColor   = Green
	WarningColor   = Yellow
	ErrorColor     = Red
	HiRed          = Red
	FaintColor     = Overlay

	// UI Elements
	BorderColor       = lipgloss.Color("#495A6B")
	ActiveBorderColor = AccentColor
)
