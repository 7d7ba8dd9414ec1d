package bch

import (
	"fmt"

	"github.com/bchcodec/bchcodec/field"
	"github.com/bchcodec/bchcodec/gf"
)

// Decode attempts to correct up to T bit errors in a received n-bit
// codeword and extract the original k-bit message: compute syndromes, run
// Berlekamp-Massey to find the error-locator polynomial, locate its roots
// by Chien search, flip the indicated bits, and take the corrected
// codeword's leading k bits as the message.
//
// ok reports whether decoding found a consistent correction. A malformed
// input (wrong length) is a fatal error; a codeword with more errors than
// the code can correct returns ok=false with a best-effort message (the
// received word's leading k bits, uncorrected) rather than an error — the
// caller decides whether best effort is useful.
func (c *Code) Decode(recv gf.Bits) (msg gf.Bits, ok bool, err error) {
	corrected, ok, err := c.correct(recv)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return append(gf.Bits(nil), recv[:c.K]...), false, nil
	}
	return append(gf.Bits(nil), corrected[:c.K]...), true, nil
}

// DecodeStrict behaves like Decode but additionally re-divides the
// corrected codeword by g(x) and folds that check into the success flag:
// Decode trusts Berlekamp-Massey's own consistency check; DecodeStrict also
// rejects a "successful" correction that does not actually land on a
// codeword.
func (c *Code) DecodeStrict(recv gf.Bits) (msg gf.Bits, ok bool, err error) {
	corrected, ok, err := c.correct(recv)
	if err != nil {
		return nil, false, err
	}
	if !ok {
		return append(gf.Bits(nil), recv[:c.K]...), false, nil
	}
	_, remainder := gf.DivMod(corrected, c.G)
	if !remainder.IsZero() {
		return append(gf.Bits(nil), recv[:c.K]...), false, nil
	}
	return append(gf.Bits(nil), corrected[:c.K]...), true, nil
}

// correct runs the syndrome/Berlekamp-Massey/Chien pipeline and returns the
// bit-flipped codeword. ok is false when the syndromes are nonzero but no
// consistent error pattern of weight <= t was found.
func (c *Code) correct(recv gf.Bits) (corrected gf.Bits, ok bool, err error) {
	if len(recv) != c.N {
		return nil, false, fmt.Errorf("%w: codeword has %d bits, code expects n=%d", ErrMalformedInput, len(recv), c.N)
	}

	f, err := field.New(c.M)
	if err != nil {
		return nil, false, err
	}

	syndromes := make([]int, 2*c.T)
	allZero := true
	for i := range syndromes {
		syndromes[i] = f.EvalBinary(recv, i+1)
		if syndromes[i] != 0 {
			allZero = false
		}
	}
	if allZero {
		return append(gf.Bits(nil), recv...), true, nil
	}

	sigma, locatorDegree := berlekampMassey(f, syndromes)
	if locatorDegree > c.T {
		return nil, false, nil
	}

	logCoeffs := make([]int, len(sigma))
	for i, v := range sigma {
		if v == 0 {
			logCoeffs[i] = -1
		} else {
			logCoeffs[i] = f.Log(v)
		}
	}
	roots := f.ChienSearch(logCoeffs)
	if len(roots) != locatorDegree {
		return nil, false, nil
	}

	corrected = append(gf.Bits(nil), recv...)
	for _, e := range roots {
		position := (f.Q - e) % f.Q
		idx := f.Q - 1 - position
		if idx < 0 || idx >= len(corrected) {
			return nil, false, nil
		}
		corrected[idx] ^= 1
	}
	return corrected, true, nil
}

// berlekampMassey finds the error-locator polynomial sigma for the given
// syndromes S_1..S_2t (syndromes[i] holds S_(i+1)), working over the field
// f. sigma is returned with coefficients as field elements, ascending
// degree (sigma[0] is the constant term, always 1); locatorDegree is its
// degree L, the number of errors the algorithm believes it found.
//
// This is the classic shift-register synthesis algorithm, generalized from
// GF(2^8) byte arithmetic to a parametric field.Field.
func berlekampMassey(f *field.Field, syndromes []int) (sigma []int, locatorDegree int) {
	sigma = []int{1}
	prevSigma := []int{1}
	b := 1
	shift := 1
	l := 0

	for n := 0; n < len(syndromes); n++ {
		delta := syndromes[n]
		for i := 1; i <= l; i++ {
			if i < len(sigma) {
				delta ^= f.Mul(sigma[i], syndromes[n-i])
			}
		}

		if delta == 0 {
			shift++
			continue
		}

		t := append([]int(nil), sigma...)
		coeff := f.Div(delta, b)
		needed := shift + len(prevSigma)
		if needed > len(sigma) {
			grown := make([]int, needed)
			copy(grown, sigma)
			sigma = grown
		}
		for i, pc := range prevSigma {
			sigma[shift+i] ^= f.Mul(coeff, pc)
		}

		if 2*l <= n {
			l = n + 1 - l
			prevSigma = t
			b = delta
			shift = 1
		} else {
			shift++
		}
	}

	for len(sigma) > 1 && sigma[len(sigma)-1] == 0 {
		sigma = sigma[:len(sigma)-1]
	}
	return sigma, l
}
