// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Theme Selection - these keys govern which theme skins the interface.
const (
	ThemeDefault = "theme.default"
)

// Cascade Resolution - these keys define the UI/UX parameters for style queries.
const (
	ResolveShowSuggestions = "resolve.show_suggestions"
)

// Contrast Auditing - these keys configure the accessibility checks performed during theme validation.
const (
	ContrastMinimumRatio = "contrast.minimum_ratio"
	ContrastAudit        = "contrast.audit"
)

// Interface Scaling - these keys configure metric token scaling (original application UI scale factor).
const (
	UIScale      = "ui.scale"
	UIAnimations = "ui.animations"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Terminal User Interface (TUI) - these keys define the preview gallery's styling and logic.
const (
	TUIItemSpacing  = "tui.item_spacing"
	TUIQueryPrompt  = "tui.query_prompt"
	TUIShowSwatches = "tui.show_swatches"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics and auditing system.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
