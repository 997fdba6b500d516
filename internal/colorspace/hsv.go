package colorspace

import "math"

// RGBToHSV converts an RGB color to HSV. Channels are rounded and clamped to
// [0, 255] before conversion. The hue is rounded to whole degrees; an
// achromatic input yields a hue of 0.
func RGBToHSV(red, green, blue float64) HSV {
	r, g, b := unit(red), unit(green), unit(blue)

	cmax := max(r, g, b)
	cmin := min(r, g, b)
	diff := cmax - cmin

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
	if cmax != 0 {
		sat = diff / cmax
	}

	return HSV{H: int(math.Round(hue)), S: sat, V: cmax}
}

// HSVToRGB converts an HSV color to RGB. The hue is reduced cyclically into
// [0, 360); saturation and value are clamped to [0, 1].
func HSVToRGB(hue, saturation, value float64) RGB {
	h := floorMod(hue, 360) / 360
	s := Clamp01(saturation)
	v := Clamp01(value)

	if s == 0 {
		c := clampByte(v * 255)
		return RGB{R: c, G: c, B: c}
	}

	i := int(h * 6)
	f := h*6 - float64(i)
	p := 255 * v * (1 - s)
	q := 255 * v * (1 - s*f)
	t := 255 * v * (1 - s*(1-f))
	vv := 255 * v

	switch i % 6 {
	case 0:
		return roundRGB(vv, t, p)
	case 1:
		return roundRGB(q, vv, p)
	case 2:
		return roundRGB(p, vv, t)
	case 3:
		return roundRGB(p, q, vv)
	case 4:
		return roundRGB(t, p, vv)
	default:
		return roundRGB(vv, p, q)
	}
}

func roundRGB(r, g, b float64) RGB {
	return RGB{R: clampByte(r), G: clampByte(g), B: clampByte(b)}
}
