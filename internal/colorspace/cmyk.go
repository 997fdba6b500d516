package colorspace

// RGBToCMYK converts an RGB color to CMYK. Channels are rounded and clamped
// to [0, 255] before conversion. Pure black short-circuits to (0, 0, 0, 1)
// so the chromatic channels never divide by zero.
func RGBToCMYK(red, green, blue float64) CMYK {
	r, g, b := unit(red), unit(green), unit(blue)

	k := 1 - max(r, g, b)
	if k == 1 {
		return CMYK{K: 1}
	}

	return CMYK{
		C: (1 - k - r) / (1 - k),
		M: (1 - k - g) / (1 - k),
		Y: (1 - k - b) / (1 - k),
		K: k,
	}
}

// CMYKToRGB converts a CMYK color to RGB. All four inputs are clamped to
// [0, 1] first.
func CMYKToRGB(cyan, magenta, yellow, key float64) RGB {
	c := Clamp01(cyan)
	m := Clamp01(magenta)
	y := Clamp01(yellow)
	k := Clamp01(key)

	return roundRGB(
		255*(1-c)*(1-k),
		255*(1-m)*(1-k),
		255*(1-y)*(1-k),
	)
}
