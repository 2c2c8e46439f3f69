// Package token implements the named constant palette backing theme definitions.
//
// A token is a named, reusable color or metric constant. Rules reference tokens
// by name; every reference must resolve against the palette at load time.
package token

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/mo"
	"github.com/tinct-cli/tinct/color"
)

// Kind classifies what a token's value denotes.
type Kind int

const (
	// KindColor is an RGBA color value.
	KindColor Kind = iota
	// KindMetric is a pixel dimension (font size, padding, radius).
	KindMetric
	// KindText is an opaque textual value (font family, weight keyword).
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindColor:
		return "color"
	case KindMetric:
		return "metric"
	default:
		return "text"
	}
}

// metricPattern matches pixel dimension values such as "14px".
var metricPattern = regexp.MustCompile(`^(\d+(?:\.\d+)?)px$`)

// Value is a single palette entry with its classified payload.
type Value struct {
	// Raw is the textual form the token was defined with.
	Raw  string
	Kind Kind

	colorValue mo.Option[color.Value]
	pixels     mo.Option[float64]
}

// ParseValue classifies and parses a raw token value.
func ParseValue(raw string) Value {
	if m := metricPattern.FindStringSubmatch(strings.TrimSpace(raw)); m != nil {
		px, _ := strconv.ParseFloat(m[1], 64)
		return Value{Raw: raw, Kind: KindMetric, colorValue: mo.None[color.Value](), pixels: mo.Some(px)}
	}

	if c, err := color.Parse(raw); err == nil {
		return Value{Raw: raw, Kind: KindColor, colorValue: mo.Some(c), pixels: mo.None[float64]()}
	}

	return Value{Raw: raw, Kind: KindText, colorValue: mo.None[color.Value](), pixels: mo.None[float64]()}
}

// Color returns the parsed color payload for KindColor tokens.
func (v Value) Color() mo.Option[color.Value] {
	return v.colorValue
}

// Pixels returns the numeric pixel payload for KindMetric tokens.
func (v Value) Pixels() mo.Option[float64] {
	return v.pixels
}

// Scaled returns the metric value multiplied by a UI scale factor, re-rendered
// in its textual form. Non-metric tokens are returned unchanged.
func (v Value) Scaled(factor float64) Value {
	px, ok := v.pixels.Get()
	if !ok || factor == 1 {
		return v
	}

	scaled := px * factor
	return ParseValue(fmt.Sprintf("%gpx", scaled))
}

// UnknownTokenError reports a reference to a palette entry that was never defined.
type UnknownTokenError struct {
	Name string
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("unknown token %q", e.Name)
}
