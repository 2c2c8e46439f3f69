// Package color provides a curated palette of colors and parsing for theme color values.
package color

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Value is a parsed theme color: an sRGB color plus an alpha channel.
type Value struct {
	colorful.Color

	// Alpha is the opacity in [0, 1]. Stylesheet rgba() declarations carry it.
	Alpha float64

	// Raw is the original textual form the value was parsed from.
	Raw string
}

// rgbaPattern matches stylesheet rgba(r, g, b, a) declarations.
var rgbaPattern = regexp.MustCompile(`^rgba\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*([0-9]*\.?[0-9]+)\s*\)$`)

// named covers the handful of keyword colors the original stylesheet uses literally.
var named = map[string]string{
	"white":       "#FFFFFF",
	"black":       "#000000",
	"gray":        "#808080",
	"transparent": "#000000",
}

// Parse interprets a color value in one of the supported textual forms:
// #RRGGBB, #RGB, rgba(r, g, b, a), or a keyword (white, black, gray, transparent).
func Parse(raw string) (Value, error) {
	s := strings.TrimSpace(strings.ToLower(raw))

	if hex, ok := named[s]; ok {
		c, _ := colorful.Hex(hex)
		alpha := 1.0
		if s == "transparent" {
			alpha = 0
		}
		return Value{Color: c, Alpha: alpha, Raw: raw}, nil
	}

	if m := rgbaPattern.FindStringSubmatch(s); m != nil {
		r, _ := strconv.Atoi(m[1])
		g, _ := strconv.Atoi(m[2])
		b, _ := strconv.Atoi(m[3])
		a, _ := strconv.ParseFloat(m[4], 64)

		if r > 255 || g > 255 || b > 255 || a > 1 {
			return Value{}, fmt.Errorf("color component out of range in %q", raw)
		}

		c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		return Value{Color: c, Alpha: a, Raw: raw}, nil
	}

	if strings.HasPrefix(s, "#") {
		// Expand #RGB shorthand before handing off to colorful.
		if len(s) == 4 {
			s = fmt.Sprintf("#%c%c%c%c%c%c", s[1], s[1], s[2], s[2], s[3], s[3])
		}

		c, err := colorful.Hex(s)
		if err != nil {
			return Value{}, fmt.Errorf("parse color %q: %w", raw, err)
		}
		return Value{Color: c, Alpha: 1, Raw: raw}, nil
	}

	return Value{}, fmt.Errorf("unsupported color value %q", raw)
}

// IsColor reports whether a raw attribute value looks like a parseable color.
func IsColor(raw string) bool {
	_, err := Parse(raw)
	return err == nil
}

// Lipgloss converts the value into a lipgloss terminal color.
func (v Value) Lipgloss() lipgloss.Color {
	return lipgloss.Color(v.Hex())
}

// Hex returns the canonical uppercase #RRGGBB form, discarding alpha.
func (v Value) Hex() string {
	return strings.ToUpper(v.Color.Hex())
}
