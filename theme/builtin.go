// Package theme manages built-in and custom interface themes.
package theme

import (
	"github.com/samber/lo"

	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/token"
)

// darkTokens is the application's baseline palette.
var darkTokens = map[string]string{
	// Main colors
	"background":    "#2D3436",
	"surface":       "#34495E",
	"surface-hover": "#3D4F60",

	// Text colors
	"text-primary":   "#DFE6E9",
	"text-secondary": "#B2BEC3",
	"text-disabled":  "#7F8C8D",

	// Brand colors
	"primary":       "#6C5CE7",
	"primary-hover": "#5C4CD7",
	"secondary":     "#A29BFE",

	// Status colors
	"success":       "#00B894",
	"success-hover": "#00A884",
	"warning":       "#FDCB6E",
	"warning-hover": "#FCBB5E",
	"error":         "#FF6B6B",
	"error-hover":   "#FF5B5B",
	"info":          "#3498DB",

	// Border colors
	"border":       "#495A6B",
	"border-hover": "#6C5CE7",

	// Drop zone effects
	"drop-zone-border":   "#6C5CE7",
	"drop-zone-hover":    "#A29BFE",
	"drop-zone-bg":       "rgba(108, 92, 231, 0.1)",
	"drop-zone-bg-hover": "rgba(162, 155, 254, 0.2)",

	// Typography
	"font-family":      "'Segoe UI', Arial, sans-serif",
	"font-family-mono": "'Consolas', 'Monaco', monospace",
	"font-size-base":   "14px",
	"font-size-small":  "12px",
	"font-size-large":  "16px",
	"font-size-title":  "20px",

	// Spacing
	"padding-small":  "6px",
	"padding-medium": "10px",
	"padding-large":  "16px",

	// Corner rounding
	"radius-small":  "4px",
	"radius-medium": "6px",
	"radius-large":  "8px",
	"radius-xlarge": "12px",
}

// lightTokens inverts the surfaces while keeping the brand and status colors.
var lightTokens = func() map[string]string {
	tokens := make(map[string]string, len(darkTokens))
	for name, value := range darkTokens {
		tokens[name] = value
	}

	for name, value := range map[string]string{
		"background":    "#F5F6FA",
		"surface":       "#FFFFFF",
		"surface-hover": "#ECEFF4",

		"text-primary":   "#2D3436",
		"text-secondary": "#636E72",
		"text-disabled":  "#B2BEC3",

		"border": "#DCDDE1",

		"drop-zone-bg":       "rgba(108, 92, 231, 0.06)",
		"drop-zone-bg-hover": "rgba(162, 155, 254, 0.12)",
	} {
		tokens[name] = value
	}

	return tokens
}()

// r is shorthand for declaring a builtin rule.
func r(class, id string, state cascade.State, attrs cascade.Attributes) cascade.Rule {
	return cascade.Rule{
		Selector: cascade.Selector{Class: class, ID: id, State: state},
		Attrs:    attrs,
	}
}

// builtinRules re-expresses the original application stylesheet as an ordered
// rule table. Both built-in themes share it; only their palettes differ.
var builtinRules = []cascade.Rule{
	// Global window chrome
	r("Window", "", cascade.StateAny, cascade.Attributes{
		"background":  "$background",
		"color":       "$text-primary",
		"font-family": "$font-family",
		"font-size":   "$font-size-base",
	}),
	r("Dialog", "", cascade.StateAny, cascade.Attributes{
		"background": "$background",
	}),
	r("Tooltip", "", cascade.StateAny, cascade.Attributes{
		"background":    "$surface",
		"color":         "$text-primary",
		"border-color":  "$primary",
		"border-radius": "$radius-small",
		"padding":       "$padding-small",
	}),

	// Labels
	r("Label", "", cascade.StateAny, cascade.Attributes{
		"color":   "$text-primary",
		"padding": "2px",
	}),
	r("Label", "dropArea", cascade.StateAny, cascade.Attributes{
		"border-style":  "dashed",
		"border-color":  "$drop-zone-border",
		"border-radius": "$radius-large",
		"background":    "$drop-zone-bg",
		"color":         "$secondary",
		"font-size":     "$font-size-base",
		"padding":       "$padding-large",
	}),
	r("Label", "dropArea", cascade.StateHover, cascade.Attributes{
		"border-color": "$drop-zone-hover",
		"background":   "$drop-zone-bg-hover",
	}),
	r("Label", "fileCounterLabel", cascade.StateAny, cascade.Attributes{
		"font-size":     "$font-size-base",
		"font-weight":   "500",
		"color":         "$text-primary",
		"padding":       "$padding-medium",
		"background":    "$surface",
		"border-radius": "$radius-medium",
	}),
	r("Label", "performanceLabel", cascade.StateAny, cascade.Attributes{
		"font-size":   "$font-size-small",
		"color":       "$secondary",
		"font-weight": "500",
	}),

	// Combo boxes
	r("ComboBox", "", cascade.StateAny, cascade.Attributes{
		"background":    "$surface",
		"border-color":  "$border",
		"border-radius": "$radius-medium",
		"padding":       "$padding-small",
		"color":         "$text-primary",
	}),
	r("ComboBox", "", cascade.StateHover, cascade.Attributes{
		"border-color": "$border-hover",
	}),
	r("ComboBox", "", cascade.StateFocus, cascade.Attributes{
		"border-color": "$primary",
	}),

	// Buttons
	r("Button", "", cascade.StateAny, cascade.Attributes{
		"border-radius": "$radius-medium",
		"padding":       "$padding-small",
		"font-weight":   "500",
		"font-size":     "$font-size-base",
		"background":    "$surface",
		"color":         "$text-primary",
	}),
	r("Button", "", cascade.StateHover, cascade.Attributes{
		"background": "$surface-hover",
	}),
	r("Button", "", cascade.StatePressed, cascade.Attributes{
		"background": "$primary-hover",
		"color":      "white",
	}),
	r("Button", "", cascade.StateDisabled, cascade.Attributes{
		"background": "$surface",
		"color":      "$text-disabled",
	}),
	r("Button", "startButton", cascade.StateAny, cascade.Attributes{
		"background": "$success",
		"color":      "white",
	}),
	r("Button", "startButton", cascade.StateHover, cascade.Attributes{
		"background": "$success-hover",
	}),
	r("Button", "startButton", cascade.StateDisabled, cascade.Attributes{
		"background": "$surface",
		"color":      "$text-disabled",
	}),
	r("Button", "stopButton", cascade.StateAny, cascade.Attributes{
		"background": "$warning",
		"color":      "$background",
	}),
	r("Button", "stopButton", cascade.StateHover, cascade.Attributes{
		"background": "$warning-hover",
	}),
	r("Button", "stopButton", cascade.StateDisabled, cascade.Attributes{
		"background": "$surface",
		"color":      "$text-disabled",
	}),
	r("Button", "clearButton", cascade.StateAny, cascade.Attributes{
		"background": "$error",
		"color":      "white",
	}),
	r("Button", "clearButton", cascade.StateHover, cascade.Attributes{
		"background": "$error-hover",
	}),
	r("Button", "benchmarkButton", cascade.StateAny, cascade.Attributes{
		"background": "$primary",
		"color":      "white",
	}),
	r("Button", "benchmarkButton", cascade.StateHover, cascade.Attributes{
		"background": "$primary-hover",
	}),

	// Progress bars
	r("ProgressBar", "", cascade.StateAny, cascade.Attributes{
		"border-radius": "$radius-large",
		"background":    "$surface",
		"color":         "white",
		"font-weight":   "500",
		"font-size":     "$font-size-small",
		"chunk-start":   "$primary",
		"chunk-end":     "$secondary",
	}),
	r("ProgressBar", "overallProgress", cascade.StateAny, cascade.Attributes{
		"chunk-start": "$success",
		"chunk-end":   "#00D4A4",
	}),

	// List widget
	r("List", "", cascade.StateAny, cascade.Attributes{
		"background":    "$surface",
		"border-color":  "$border",
		"border-radius": "$radius-large",
		"padding":       "$padding-small",
	}),
	r("ListItem", "", cascade.StateAny, cascade.Attributes{
		"padding":       "$padding-small",
		"border-radius": "$radius-small",
	}),
	r("ListItem", "", cascade.StateHover, cascade.Attributes{
		"background": "$surface-hover",
	}),
	r("ListItem", "", cascade.StateSelected, cascade.Attributes{
		"background":   "rgba(108, 92, 231, 0.3)",
		"border-color": "$primary",
	}),

	// Text edit
	r("TextEdit", "", cascade.StateAny, cascade.Attributes{
		"background":    "$surface",
		"border-color":  "$border",
		"border-radius": "$radius-large",
		"padding":       "$padding-medium",
		"color":         "$text-primary",
		"font-family":   "$font-family-mono",
		"font-size":     "$font-size-small",
	}),
	r("TextEdit", "", cascade.StateFocus, cascade.Attributes{
		"border-color": "$primary",
	}),

	// Group box
	r("GroupBox", "", cascade.StateAny, cascade.Attributes{
		"font-weight":   "600",
		"font-size":     "$font-size-base",
		"color":         "$secondary",
		"border-color":  "$border",
		"border-radius": "$radius-large",
	}),

	// Scroll bars
	r("ScrollBar", "", cascade.StateAny, cascade.Attributes{
		"background":    "$surface",
		"handle-color":  "$primary",
		"border-radius": "5px",
	}),
	r("ScrollBar", "", cascade.StateHover, cascade.Attributes{
		"handle-color": "$secondary",
	}),

	// Splitter
	r("Splitter", "", cascade.StateAny, cascade.Attributes{
		"background": "$border",
	}),
	r("Splitter", "", cascade.StateHover, cascade.Attributes{
		"background": "$primary",
	}),
}

// Built-in themes, compiled once at startup. A failure here is a programmer
// error in the tables above.
var (
	Dark  = lo.Must(New("dark", token.NewPalette(darkTokens), builtinRules))
	Light = lo.Must(New("light", token.NewPalette(lightTokens), builtinRules))
)

// Builtins returns the built-in themes.
func Builtins() []*Theme {
	return []*Theme{Dark, Light}
}
