package colorspace

import "fmt"

// RGB is an additive color with integer channels in [0, 255].
type RGB struct {
	R, G, B int
}

// NewRGB builds an RGB color from arbitrary channel values, rounding each to
// the nearest integer and clamping to [0, 255].
func NewRGB(red, green, blue float64) RGB {
	return roundRGB(red, green, blue)
}

// HSV is a cylindrical color with hue in whole degrees [0, 360) and
// saturation/value in [0, 1]. Achromatic colors carry a hue of 0.
type HSV struct {
	H    int
	S, V float64
}

// HSL is a cylindrical color with hue in whole degrees [0, 360) and
// saturation/luminance in [0, 1]. Achromatic colors carry a hue of 0.
type HSL struct {
	H    int
	S, L float64
}

// YIQ is a luma/chrominance color: Y in [0, 1], I in [-0.5959, 0.5959],
// Q in [-0.5229, 0.5229].
type YIQ struct {
	Y, I, Q float64
}

// CMYK is a subtractive color with all four channels in [0, 1].
// Pure black is always (0, 0, 0, 1).
type CMYK struct {
	C, M, Y, K float64
}

func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

func (c HSV) String() string {
	return fmt.Sprintf("hsv(%d, %g, %g)", c.H, c.S, c.V)
}

func (c HSL) String() string {
	return fmt.Sprintf("hsl(%d, %g, %g)", c.H, c.S, c.L)
}

func (c YIQ) String() string {
	return fmt.Sprintf("yiq(%g, %g, %g)", c.Y, c.I, c.Q)
}

func (c CMYK) String() string {
	return fmt.Sprintf("cmyk(%g, %g, %g, %g)", c.C, c.M, c.Y, c.K)
}
