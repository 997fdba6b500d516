// Package colorspace implements conversions between the RGB, HSV/HSB, HSL,
// YIQ and CMYK color models plus hexadecimal parsing and formatting.
//
// Every conversion is a pure function: numeric inputs outside their legal
// range are clamped rather than rejected, and any conversion between two
// non-RGB models is composed through an intermediate RGB value. RGB is the
// single source of numeric truth for the whole package.
package colorspace

import (
	"cmp"
	"math"
)

// Clamp limits v to the inclusive range [lo, hi].
// It returns lo when v < lo, hi when v > hi, and v otherwise.
func Clamp[T cmp.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 limits v to the unit interval [0, 1], the default range for
// saturation, value, luminance and CMYK channels.
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

// clampByte rounds v to the nearest integer and limits it to a byte channel.
func clampByte(v float64) int {
	return int(Clamp(math.Round(v), 0, 255))
}

// unit rounds and clamps a byte channel, then scales it to [0, 1].
func unit(v float64) float64 {
	return Clamp(math.Round(v), 0, 255) / 255
}

// floorMod returns the mathematical modulo of x by m. Unlike math.Mod the
// result is never negative for positive m, which keeps hue reductions
// inside [0, m).
func floorMod(x, m float64) float64 {
	r := math.Mod(x, m)
	if r < 0 {
		r += m
	}
	return r
}
