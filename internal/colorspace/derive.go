package colorspace

// Conversions between two non-RGB models are always composed through an
// intermediate RGB value. Keeping RGB as the mandatory pivot bounds the
// number of hand-written formulas to one forward/inverse pair per model.

// HexToHSV parses a hex color code and converts it to HSV.
func HexToHSV(code string) (HSV, error) {
	c, err := ParseHex(code)
	if err != nil {
		return HSV{}, err
	}
	return c.HSV(), nil
}

// HexToHSL parses a hex color code and converts it to HSL.
func HexToHSL(code string) (HSL, error) {
	c, err := ParseHex(code)
	if err != nil {
		return HSL{}, err
	}
	return c.HSL(), nil
}

// HexToYIQ parses a hex color code and converts it to YIQ.
func HexToYIQ(code string) (YIQ, error) {
	c, err := ParseHex(code)
	if err != nil {
		return YIQ{}, err
	}
	return c.YIQ(), nil
}

// HexToCMYK parses a hex color code and converts it to CMYK.
func HexToCMYK(code string) (CMYK, error) {
	c, err := ParseHex(code)
	if err != nil {
		return CMYK{}, err
	}
	return c.CMYK(), nil
}

// HSVToHex converts an HSV color to a "#rrggbb" string.
func HSVToHex(hue, saturation, value float64) string {
	return HSVToRGB(hue, saturation, value).Hex()
}

// HSLToHex converts an HSL color to a "#rrggbb" string.
func HSLToHex(hue, saturation, luminance float64) string {
	return HSLToRGB(hue, saturation, luminance).Hex()
}

// YIQToHex converts a YIQ color to a "#rrggbb" string.
func YIQToHex(y, i, q float64) string {
	return YIQToRGB(y, i, q).Hex()
}

// CMYKToHex converts a CMYK color to a "#rrggbb" string.
func CMYKToHex(cyan, magenta, yellow, key float64) string {
	return CMYKToRGB(cyan, magenta, yellow, key).Hex()
}

// HSVToHSL converts an HSV color to HSL.
func HSVToHSL(hue, saturation, value float64) HSL {
	return HSVToRGB(hue, saturation, value).HSL()
}

// HSVToYIQ converts an HSV color to YIQ.
func HSVToYIQ(hue, saturation, value float64) YIQ {
	return HSVToRGB(hue, saturation, value).YIQ()
}

// HSVToCMYK converts an HSV color to CMYK.
func HSVToCMYK(hue, saturation, value float64) CMYK {
	return HSVToRGB(hue, saturation, value).CMYK()
}

// HSLToHSV converts an HSL color to HSV.
func HSLToHSV(hue, saturation, luminance float64) HSV {
	return HSLToRGB(hue, saturation, luminance).HSV()
}

// HSLToYIQ converts an HSL color to YIQ.
func HSLToYIQ(hue, saturation, luminance float64) YIQ {
	return HSLToRGB(hue, saturation, luminance).YIQ()
}

// HSLToCMYK converts an HSL color to CMYK.
func HSLToCMYK(hue, saturation, luminance float64) CMYK {
	return HSLToRGB(hue, saturation, luminance).CMYK()
}

// YIQToHSV converts a YIQ color to HSV.
func YIQToHSV(y, i, q float64) HSV {
	return YIQToRGB(y, i, q).HSV()
}

// YIQToHSL converts a YIQ color to HSL.
func YIQToHSL(y, i, q float64) HSL {
	return YIQToRGB(y, i, q).HSL()
}

// YIQToCMYK converts a YIQ color to CMYK.
func YIQToCMYK(y, i, q float64) CMYK {
	return YIQToRGB(y, i, q).CMYK()
}

// CMYKToHSV converts a CMYK color to HSV.
func CMYKToHSV(cyan, magenta, yellow, key float64) HSV {
	return CMYKToRGB(cyan, magenta, yellow, key).HSV()
}

// CMYKToHSL converts a CMYK color to HSL.
func CMYKToHSL(cyan, magenta, yellow, key float64) HSL {
	return CMYKToRGB(cyan, magenta, yellow, key).HSL()
}

// CMYKToYIQ converts a CMYK color to YIQ.
func CMYKToYIQ(cyan, magenta, yellow, key float64) YIQ {
	return CMYKToRGB(cyan, magenta, yellow, key).YIQ()
}

// HSV converts the color to HSV.
func (c RGB) HSV() HSV {
	return RGBToHSV(float64(c.R), float64(c.G), float64(c.B))
}

// HSL converts the color to HSL.
func (c RGB) HSL() HSL {
	return RGBToHSL(float64(c.R), float64(c.G), float64(c.B))
}

// YIQ converts the color to YIQ.
func (c RGB) YIQ() YIQ {
	return RGBToYIQ(float64(c.R), float64(c.G), float64(c.B))
}

// CMYK converts the color to CMYK.
func (c RGB) CMYK() CMYK {
	return RGBToCMYK(float64(c.R), float64(c.G), float64(c.B))
}
