package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/tinct-cli/tinct/cascade"
	"github.com/tinct-cli/tinct/color"
	"github.com/tinct-cli/tinct/token"
)

// pixels per terminal cell, used to approximate pixel metrics on a character grid
const cellPixels = 8

// Style converts resolved widget attributes into a lipgloss style.
// Unknown attributes are ignored so that themes may carry
// renderer-specific keys without breaking the terminal preview.
func Style(attrs cascade.Attributes) lipgloss.Style {
	style := lipgloss.NewStyle()

	if raw, ok := attrs["color"]; ok {
		if c, err := color.Parse(raw); err == nil {
			style = style.Foreground(c.Lipgloss())
		}
	}

	if raw, ok := attrs["background"]; ok {
		if c, err := color.Parse(raw); err == nil {
			style = style.Background(c.Lipgloss())
		}
	}

	switch attrs["font-weight"] {
	case "bold", "600", "700", "800", "900":
		style = style.Bold(true)
	}

	if attrs["font-style"] == "italic" {
		style = style.Italic(true)
	}

	if border, ok := borderFor(attrs); ok {
		style = style.BorderStyle(border)

		if raw, ok := attrs["border-color"]; ok {
			if c, err := color.Parse(raw); err == nil {
				style = style.BorderForeground(c.Lipgloss())
			}
		}
	}

	if raw, ok := attrs["padding"]; ok {
		h, v := paddingCells(raw)
		style = style.Padding(v, h)
	}

	return style
}

// Render applies the resolved attributes to the given text.
func Render(attrs cascade.Attributes, text string) string {
	return Style(attrs).Render(text)
}

// borderFor decides which border to draw. A border is drawn when the
// attributes carry an explicit border-style, or a border-color together
// with a non-zero border-radius (rounded corners in the source styling).
func borderFor(attrs cascade.Attributes) (lipgloss.Border, bool) {
	switch attrs["border-style"] {
	case "none":
		return lipgloss.Border{}, false
	case "solid":
		return lipgloss.NormalBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	case "dashed":
		return lipgloss.BlockBorder(), true
	}

	if _, ok := attrs["border-color"]; !ok {
		return lipgloss.Border{}, false
	}

	if radius, ok := attrs["border-radius"]; ok && pixelsOf(radius) > 0 {
		return lipgloss.RoundedBorder(), true
	}

	return lipgloss.NormalBorder(), true
}

// paddingCells maps a pixel padding value onto horizontal and vertical
// cell counts. Terminal cells are roughly twice as tall as they are
// wide, so the vertical padding is halved.
func paddingCells(raw string) (horizontal, vertical int) {
	// only the first value of a multi-value shorthand is considered
	first := strings.Fields(raw)
	if len(first) == 0 {
		return 0, 0
	}

	px := pixelsOf(first[0])
	if px <= 0 {
		return 0, 0
	}

	horizontal = int(math.Ceil(px / cellPixels))
	vertical = horizontal / 2
	return horizontal, vertical
}

func pixelsOf(raw string) float64 {
	return token.ParseValue(raw).Pixels().OrElse(0)
}
