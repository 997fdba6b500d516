package colorspace

// Legal chrominance bounds for the YIQ model.
const (
	maxI = 0.5959
	maxQ = 0.5229
)

// RGBToYIQ converts an RGB color to YIQ using the fixed NTSC transform.
// Channels are rounded and clamped to [0, 255] before conversion; the
// resulting components are clamped to their legal ranges.
func RGBToYIQ(red, green, blue float64) YIQ {
	r, g, b := unit(red), unit(green), unit(blue)

	return YIQ{
		Y: Clamp01(0.299*r + 0.587*g + 0.114*b),
		I: Clamp(0.596*r-0.274*g-0.322*b, -maxI, maxI),
		Q: Clamp(0.211*r-0.523*g+0.312*b, -maxQ, maxQ),
	}
}

// YIQToRGB converts a YIQ color to RGB using the fixed inverse transform.
// Inputs are clamped to their legal ranges first; each reconstructed channel
// is clamped to [0, 1] before scaling to a byte.
func YIQToRGB(y, i, q float64) RGB {
	y = Clamp01(y)
	i = Clamp(i, -maxI, maxI)
	q = Clamp(q, -maxQ, maxQ)

	r := y + 0.956*i + 0.621*q
	g := y - 0.272*i - 0.647*q
	b := y - 1.11*i + 1.7*q

	return roundRGB(Clamp01(r)*255, Clamp01(g)*255, Clamp01(b)*255)
}
