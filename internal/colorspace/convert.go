package colorspace

import (
	"fmt"
	"strconv"
)

// Model identifies one of the supported color models.
type Model string

// Supported color models.
const (
	ModelHex  Model = "hex"
	ModelRGB  Model = "rgb"
	ModelHSV  Model = "hsv"
	ModelHSL  Model = "hsl"
	ModelYIQ  Model = "yiq"
	ModelCMYK Model = "cmyk"
)

// ParseModel resolves a model name. "hsb" is accepted as an alias for HSV.
func ParseModel(name string) (Model, error) {
	switch Model(name) {
	case ModelHex, ModelRGB, ModelHSV, ModelHSL, ModelYIQ, ModelCMYK:
		return Model(name), nil
	case "hsb":
		return ModelHSV, nil
	default:
		return "", fmt.Errorf("colorspace: unknown color model %q", name)
	}
}

// ArgCount returns the number of input values the model expects: one hex
// code, four CMYK channels, or three channels for everything else.
func (m Model) ArgCount() int {
	switch m {
	case ModelHex:
		return 1
	case ModelCMYK:
		return 4
	default:
		return 3
	}
}

// Convert parses args as a color in the from model, pivots through RGB, and
// formats the result in the to model. Hex input takes a single code string;
// the other models take their channels as decimal numbers.
func Convert(from, to Model, args []string) (string, error) {
	if len(args) != from.ArgCount() {
		return "", fmt.Errorf("colorspace: %s takes %d values, got %d", from, from.ArgCount(), len(args))
	}

	var (
		pivot RGB
		err   error
	)

	if from == ModelHex {
		pivot, err = ParseHex(args[0])
		if err != nil {
			return "", err
		}
	} else {
		vals := make([]float64, len(args))
		for i, a := range args {
			vals[i], err = strconv.ParseFloat(a, 64)
			if err != nil {
				return "", fmt.Errorf("colorspace: %s value %q is not a number", from, a)
			}
		}

		switch from {
		case ModelRGB:
			pivot = roundRGB(vals[0], vals[1], vals[2])
		case ModelHSV:
			pivot = HSVToRGB(vals[0], vals[1], vals[2])
		case ModelHSL:
			pivot = HSLToRGB(vals[0], vals[1], vals[2])
		case ModelYIQ:
			pivot = YIQToRGB(vals[0], vals[1], vals[2])
		case ModelCMYK:
			pivot = CMYKToRGB(vals[0], vals[1], vals[2], vals[3])
		}
	}

	switch to {
	case ModelHex:
		return pivot.Hex(), nil
	case ModelRGB:
		return pivot.String(), nil
	case ModelHSV:
		return pivot.HSV().String(), nil
	case ModelHSL:
		return pivot.HSL().String(), nil
	case ModelYIQ:
		return pivot.YIQ().String(), nil
	case ModelCMYK:
		return pivot.CMYK().String(), nil
	default:
		return "", fmt.Errorf("colorspace: unknown color model %q", to)
	}
}
