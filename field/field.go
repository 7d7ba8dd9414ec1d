// Package field constructs and operates over GF(2^m) for m in [2,20]:
// exp/log tables, cyclotomic cosets of 2 mod q, per-coset minimal
// polynomials, and Chien-search root finding.
//
// The exp/log tables are built with the classic bit-shift-and-reduce loop
// over a fixed primitive polynomial, wrapped as methods on a Field value
// rather than package-level functions so more than one m can be live at
// once.
package field

import (
	"errors"
	"fmt"

	"github.com/bchcodec/bchcodec/gf"
)

// ErrParameterOutOfRange reports an m outside [MinM, MaxM].
var ErrParameterOutOfRange = errors.New("field: m out of range")

// Field is an immutable GF(2^m) descriptor: exponent/log tables, cyclotomic
// cosets of 2 mod q, and the primitive polynomial used to construct it.
// Safe for concurrent read-only use once returned by New.
type Field struct {
	M         int
	Q         int // 2^m - 1
	Primitive uint32

	expTable []int // expTable[i] = bit pattern of alpha^i, i in [0,q)
	logTable []int // logTable[v] = i such that alpha^i = v; -1 for v=0

	cosets [][]int // cyclotomic cosets of 2 mod q, in discovery order
}

// New constructs the field GF(2^m), building its exp/log tables and
// cyclotomic cosets.
func New(m int) (*Field, error) {
	prim, ok := Primitive(m)
	if !ok {
		return nil, fmt.Errorf("%w: m=%d (supported range [%d,%d])", ErrParameterOutOfRange, m, MinM, MaxM)
	}

	q := (1 << uint(m)) - 1
	f := &Field{
		M:         m,
		Q:         q,
		Primitive: prim,
		expTable:  make([]int, q),
		logTable:  make([]int, 1<<uint(m)),
	}
	for i := range f.logTable {
		f.logTable[i] = -1
	}

	low := prim & uint32((1<<uint(m))-1)
	val := uint32(1)
	for i := 0; i < q; i++ {
		f.expTable[i] = int(val)
		f.logTable[val] = i
		val <<= 1
		if val&(1<<uint(m)) != 0 {
			val = (val ^ low) & uint32((1<<uint(m))-1)
		}
	}

	f.cosets = buildCosets(q)
	return f, nil
}

// buildCosets enumerates the cyclotomic cosets of 2 modulo q, in discovery
// order starting with C_0={0}.
func buildCosets(q int) [][]int {
	assigned := make([]bool, q)
	var cosets [][]int
	for s := 0; s < q; s++ {
		if assigned[s] {
			continue
		}
		var coset []int
		x := s
		for {
			if assigned[x] {
				break
			}
			assigned[x] = true
			coset = append(coset, x)
			x = (x * 2) % q
		}
		cosets = append(cosets, coset)
	}
	return cosets
}

// Cosets returns the cyclotomic cosets of 2 mod q, in discovery order.
func (f *Field) Cosets() [][]int {
	return f.cosets
}

// CosetContaining returns the cyclotomic coset that contains i mod q.
func (f *Field) CosetContaining(i int) []int {
	i = ((i % f.Q) + f.Q) % f.Q
	for _, c := range f.cosets {
		for _, v := range c {
			if v == i {
				return c
			}
		}
	}
	panic("field: cosets do not partition [0,q) — construction invariant violated")
}

// Add returns a + b in GF(2^m). Addition in characteristic 2 is XOR.
func (f *Field) Add(a, b int) int { return a ^ b }

// Mul returns a * b in GF(2^m) via the log/exp tables.
func (f *Field) Mul(a, b int) int {
	if a == 0 || b == 0 {
		return 0
	}
	s := f.logTable[a] + f.logTable[b]
	if s >= f.Q {
		s -= f.Q
	}
	return f.expTable[s]
}

// Div returns a / b in GF(2^m). Panics if b is zero.
func (f *Field) Div(a, b int) int {
	if b == 0 {
		panic("field: division by zero")
	}
	if a == 0 {
		return 0
	}
	d := f.logTable[a] - f.logTable[b]
	if d < 0 {
		d += f.Q
	}
	return f.expTable[d]
}

// Inv returns the multiplicative inverse of a. Panics if a is zero.
func (f *Field) Inv(a int) int {
	if a == 0 {
		panic("field: inverse of zero")
	}
	inv := f.Q - f.logTable[a]
	if inv >= f.Q {
		inv -= f.Q
	}
	return f.expTable[inv]
}

// Exp returns alpha^i, i taken modulo q (negative i wraps around).
func (f *Field) Exp(i int) int {
	idx := i % f.Q
	if idx < 0 {
		idx += f.Q
	}
	return f.expTable[idx]
}

// Log returns the discrete logarithm of a (base alpha), or -1 if a is zero.
func (f *Field) Log(a int) int {
	if a < 0 || a >= len(f.logTable) {
		return -1
	}
	return f.logTable[a]
}

// Verify re-derives the exp/log tables from scratch and checks them against
// f, along with coset-partition and primitivity invariants. It is a
// self-check callers may run before trusting a constructed Field, not part
// of normal construction.
func (f *Field) Verify() error {
	check, err := New(f.M)
	if err != nil {
		return err
	}
	for i := 0; i < f.Q; i++ {
		if f.expTable[i] != check.expTable[i] {
			return fmt.Errorf("field: exp table mismatch at i=%d", i)
		}
	}
	seen := make([]bool, f.Q)
	count := 0
	for _, c := range f.cosets {
		for _, v := range c {
			if seen[v] {
				return fmt.Errorf("field: value %d appears in more than one coset", v)
			}
			seen[v] = true
			count++
			double := (v * 2) % f.Q
			closed := false
			for _, w := range c {
				if w == double {
					closed = true
					break
				}
			}
			if !closed {
				return fmt.Errorf("field: coset not closed under x->2x at %d", v)
			}
		}
	}
	if count != f.Q {
		return fmt.Errorf("field: cosets do not cover [0,q): covered %d of %d", count, f.Q)
	}
	for i := 0; i < f.Q; i++ {
		if f.Log(f.expTable[i]) != i {
			return fmt.Errorf("field: log(exp(%d)) != %d", i, i)
		}
	}
	return nil
}

// EvalBinary evaluates the GF(2) polynomial bits (coefficients 0 or 1, most
// significant bit first, per the gf package's convention) at alpha^exponent
// using Horner's method. Syndrome computation needs exactly this: evaluating
// a received codeword's polynomial at successive powers of alpha.
func (f *Field) EvalBinary(bits gf.Bits, exponent int) int {
	x := f.Exp(exponent)
	result := 0
	for _, bit := range bits {
		result = f.Mul(result, x) ^ int(bit)
	}
	return result
}

// MinimalPolynomial computes the minimal polynomial over GF(2) for the
// coset C: the monic polynomial of degree |C| whose roots are exactly
// {alpha^c : c in C}. Built by incremental multiplication of linear factors
// (x + alpha^c) rather than expanding the elementary-symmetric-function
// sums directly over every subset of C — the two are mathematically
// identical, but incremental multiplication avoids the combinatorial
// blowup of enumerating every k-subset.
func (f *Field) MinimalPolynomial(coset []int) gf.Bits {
	// poly[i] is the coefficient of x^i, as a GF(2^m) field value; low to
	// high degree while under construction, converted to gf.Bits at the end.
	poly := []int{1}
	for _, c := range coset {
		root := f.Exp(c)
		next := make([]int, len(poly)+1)
		for i, coeff := range poly {
			next[i+1] ^= coeff
			next[i] ^= f.Mul(coeff, root)
		}
		poly = next
	}

	bits := make(gf.Bits, len(poly))
	for i, c := range poly {
		if c != 0 && c != 1 {
			panic("field: minimal polynomial has a non-binary coefficient — coset is not Frobenius-closed")
		}
		bits[len(poly)-1-i] = byte(c)
	}
	return bits.Trim()
}

// ChienSearch finds the roots, in GF(2^m), of the polynomial whose
// coefficients are given as discrete logarithms (coeffs[i] is the log of
// the coefficient of x^i; -1 denotes a zero coefficient). It evaluates the
// polynomial at every alpha^e for e in [0,q) and returns the indices e
// where the evaluation is zero.
func (f *Field) ChienSearch(coeffs []int) []int {
	var roots []int
	for e := 0; e < f.Q; e++ {
		sum := 0
		for i, logA := range coeffs {
			if logA == -1 {
				continue
			}
			exponent := logA + i*e
			exponent %= f.Q
			if exponent < 0 {
				exponent += f.Q
			}
			sum ^= f.expTable[exponent]
		}
		if sum == 0 {
			roots = append(roots, e)
		}
	}
	return roots
}
