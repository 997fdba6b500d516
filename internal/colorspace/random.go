package colorspace

import "math/rand"

// Random returns a uniformly random RGB color drawn from rng.
func Random(rng *rand.Rand) RGB {
	return RGB{
		R: rng.Intn(256),
		G: rng.Intn(256),
		B: rng.Intn(256),
	}
}

// RandomHex returns a uniformly random "#rrggbb" color drawn from rng.
func RandomHex(rng *rand.Rand) string {
	return Random(rng).Hex()
}
