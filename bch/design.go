package bch

import (
	"errors"
	"fmt"
	"math"

	"github.com/bchcodec/bchcodec/field"
	"github.com/bchcodec/bchcodec/gf"
)

// ErrParameterOutOfRange covers every fatal design-time failure: an m that
// falls outside what the primitive-polynomial table supports, or a t that
// leaves no room for any information bit.
var ErrParameterOutOfRange = errors.New("bch: parameter out of range")

// Design chooses BCH parameters for a target block length nTarget and a
// channel bit-error probability p, then builds the generator polynomial.
// p is retained on the returned Code for diagnostics only; it does not
// influence encode/decode.
func Design(nTarget int, p float64) (*Code, error) {
	if nTarget < 3 {
		return nil, fmt.Errorf("%w: nTarget=%d too small for any GF(2^2) code", ErrParameterOutOfRange, nTarget)
	}
	if p <= 0 || p >= 1 {
		return nil, fmt.Errorf("%w: p=%v must be in (0,1)", ErrParameterOutOfRange, p)
	}

	m := int(math.Floor(math.Log2(float64(nTarget + 1))))
	n := (1 << uint(m)) - 1

	for m >= field.MinM && float64(n)*p > float64(m-1) {
		m--
		n = (1 << uint(m)) - 1
	}
	if m < field.MinM {
		return nil, fmt.Errorf("%w: no m in [%d,%d] satisfies n*p <= m-1 for p=%v", ErrParameterOutOfRange, field.MinM, field.MaxM, p)
	}

	t := int(math.Ceil(float64(n) * p))
	if t < 1 {
		t = 1
	}

	f, err := field.New(m)
	if err != nil {
		return nil, err
	}
	if err := f.Verify(); err != nil {
		return nil, fmt.Errorf("%w: field self-check failed: %v", ErrParameterOutOfRange, err)
	}

	g := buildGenerator(f, t)
	k := n - (len(g) - 1)
	if k < 1 {
		return nil, fmt.Errorf("%w: t=%d leaves no room for information bits (n=%d, deg(g)=%d)", ErrParameterOutOfRange, t, n, len(g)-1)
	}

	return &Code{N: n, K: k, T: t, P: p, M: m, G: g}, nil
}

// buildGenerator constructs g(x) = lcm of the minimal polynomials of
// alpha, alpha^2, ..., alpha^(2t): the standard BCH generator with roots at
// every power from 1 through 2t, deduplicated by cyclotomic coset so each
// distinct minimal polynomial contributes exactly once.
func buildGenerator(f *field.Field, t int) gf.Bits {
	seen := make(map[int]bool)
	g := gf.Bits{1}
	for i := 1; i <= 2*t; i++ {
		coset := f.CosetContaining(i)
		rep := coset[0]
		for _, v := range coset {
			if v < rep {
				rep = v
			}
		}
		if seen[rep] {
			continue
		}
		seen[rep] = true
		minpoly := f.MinimalPolynomial(coset)
		g = gf.Multiply(g, minpoly).Trim()
	}
	return g
}
