package colorspace

import "math"

// RGBToHSL converts an RGB color to HSL. Channels are rounded and clamped to
// [0, 255] before conversion. The hue is rounded to whole degrees; an
// achromatic input yields a hue and saturation of 0.
func RGBToHSL(red, green, blue float64) HSL {
	r, g, b := unit(red), unit(green), unit(blue)

	cmax := max(r, g, b)
	cmin := min(r, g, b)
	diff := cmax - cmin

	lum := (cmax + cmin) / 2

	var hue float64
	switch {
	case diff == 0:
		hue = 0
	case cmax == r:
		hue = 60 * floorMod((g-b)/diff, 6)
	case cmax == g:
		hue = 60 * ((b-r)/diff + 2)
	case cmax == b:
		hue = 60 * ((r-g)/diff + 4)
	}

	var sat float64
	if diff != 0 {
		sat = diff / (1 - math.Abs(2*lum-1))
	}

	return HSL{H: int(math.Round(hue)), S: sat, L: lum}
}

// HSLToRGB converts an HSL color to RGB. The hue is reduced cyclically into
// [0, 360); saturation and luminance are clamped to [0, 1]. Each 60-degree
// sector assigns the chroma, intermediate and match terms to the channels in
// a fixed rotation.
func HSLToRGB(hue, saturation, luminance float64) RGB {
	h := floorMod(hue, 360)
	s := Clamp01(saturation)
	l := Clamp01(luminance)

	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(floorMod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return roundRGB((r+m)*255, (g+m)*255, (b+m)*255)
}
