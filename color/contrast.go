// Package color provides a curated palette of colors and parsing for theme color values.
package color

import "math"

// linearize converts a single sRGB channel to its linear form per the WCAG definition.
func linearize(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the WCAG relative luminance of the value in [0, 1].
func (v Value) Luminance() float64 {
	return 0.2126*linearize(v.R) + 0.7152*linearize(v.G) + 0.0722*linearize(v.B)
}

// ContrastRatio computes the WCAG contrast ratio between two colors, in [1, 21].
// WCAG AA requires at least 4.5 for normal text and 3.0 for large text.
func ContrastRatio(a, b Value) float64 {
	la, lb := a.Luminance(), b.Luminance()
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05)
}
