// Package channel simulates a noisy binary symmetric channel: flipping each
// transmitted bit independently with some fixed probability, so the CLI's
// encode path has something to push codewords through besides a file.
package channel

import (
	"math/rand/v2"

	"github.com/bchcodec/bchcodec/gf"
)

// Inject returns a copy of codeword with each bit flipped independently
// with probability p, using rng as the source of randomness. p outside
// [0,1] is clamped.
func Inject(codeword gf.Bits, p float64, rng *rand.Rand) gf.Bits {
	if p < 0 {
		p = 0
	}
	if p > 1 {
		p = 1
	}
	out := append(gf.Bits(nil), codeword...)
	for i := range out {
		if rng.Float64() < p {
			out[i] ^= 1
		}
	}
	return out
}
