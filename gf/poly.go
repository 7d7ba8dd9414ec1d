// Package gf implements polynomial arithmetic over GF(2): the bitvector
// layer every other package in this module builds on. A polynomial is a
// big-endian sequence of bits, index 0 holding the highest power of x. The
// same shapes (degree, normalize, long division, modular reduction) show up
// for byte-coefficient GF(2^8) polynomials elsewhere; here the coefficients
// are single bits instead of bytes.
package gf

// Bits is a polynomial over GF(2), most significant bit first. Each element
// is 0 or 1. Bits is immutable by convention: every operation below returns
// a new value rather than mutating its arguments.
type Bits []byte

// FromUint64 builds a fixed-width Bits value from an integer, width bits
// wide, most significant bit first.
func FromUint64(v uint64, width int) Bits {
	b := make(Bits, width)
	for i := 0; i < width; i++ {
		shift := width - 1 - i
		if shift < 64 && (v>>uint(shift))&1 == 1 {
			b[i] = 1
		}
	}
	return b
}

// Uint64 reinterprets b as an unsigned integer, most significant bit first.
// Panics if b is wider than 64 bits.
func (b Bits) Uint64() uint64 {
	if len(b) > 64 {
		panic("gf: Bits too wide for Uint64")
	}
	var v uint64
	for _, bit := range b {
		v = v<<1 | uint64(bit&1)
	}
	return v
}

// Degree returns the position of the highest set bit, counted from the low
// (rightmost) end and 1-based: a polynomial occupying only its lowest bit
// has degree 1. The all-zero polynomial (including the empty one) has
// degree 0.
func (b Bits) Degree() int {
	for i := 0; i < len(b); i++ {
		if b[i] == 1 {
			return len(b) - i
		}
	}
	return 0
}

// IsZero reports whether every bit of b is 0.
func (b Bits) IsZero() bool {
	return b.Degree() == 0
}

// Trim strips leading zero bits, returning the canonical (minimum-width)
// form. The all-zero polynomial trims to a single zero bit.
func (b Bits) Trim() Bits {
	d := b.Degree()
	if d == 0 {
		return Bits{0}
	}
	return append(Bits(nil), b[len(b)-d:]...)
}

// Pad left-pads b with zero bits until it is width bits wide. Panics if b is
// already wider than width.
func (b Bits) Pad(width int) Bits {
	if len(b) > width {
		panic("gf: Pad: value wider than requested width")
	}
	out := make(Bits, width)
	copy(out[width-len(b):], b)
	return out
}

// XOR adds (equivalently, subtracts) a and b in GF(2), left-padding both to
// width bits first.
func XOR(a, b Bits, width int) Bits {
	pa, pb := a.Pad(width), b.Pad(width)
	out := make(Bits, width)
	for i := range out {
		out[i] = pa[i] ^ pb[i]
	}
	return out
}

// Multiply computes a * b via schoolbook multiplication: for every set bit
// of a, XOR a shifted copy of b into the accumulator. The result is
// len(a)+len(b) bits wide (including any leading zeros); callers that want
// the canonical form should call Trim.
func Multiply(a, b Bits) Bits {
	width := len(a) + len(b)
	if width == 0 {
		return Bits{0}
	}
	acc := make(Bits, width)
	degA := a.Degree()
	if degA == 0 || b.IsZero() {
		return acc
	}
	for i, bit := range a {
		if bit == 0 {
			continue
		}
		// a[i] is the coefficient of x^(degA-1-(i-(len(a)-degA))); expressed
		// directly: the power of x carried by position i is (len(a)-1-i).
		shift := len(a) - 1 - i
		shifted := shiftLeft(b, shift, width)
		for j := range acc {
			acc[j] ^= shifted[j]
		}
	}
	return acc
}

// shiftLeft multiplies p by x^n (shifts toward higher degree) and left-pads
// the result to width bits.
func shiftLeft(p Bits, n int, width int) Bits {
	out := make(Bits, width)
	// p's lowest bit sits at out index (width-1-n); placing the whole
	// polynomial there is equivalent to appending n zero bits on the right.
	start := width - len(p) - n
	if start < 0 {
		// overflow would be a caller bug (width too small); truncate high bits
		p = p[-start:]
		start = 0
	}
	copy(out[start:start+len(p)], p)
	return out
}

// DivMod performs polynomial long division of a by b, returning a quotient
// and a remainder with degree strictly less than deg(b). If deg(b) > deg(a)
// the quotient is zero and the remainder equals a (trimmed).
func DivMod(a, b Bits) (quotient, remainder Bits) {
	degB := b.Degree()
	if degB == 0 {
		panic("gf: DivMod: division by zero polynomial")
	}
	degA := a.Degree()
	if degA < degB {
		return Bits{0}, a.Trim()
	}

	rem := append(Bits(nil), a.Trim()...)
	bTrim := b.Trim()
	quotLen := degA - degB + 1
	quot := make(Bits, quotLen)

	for rem.Degree() >= degB {
		shift := rem.Degree() - degB
		aligned := shiftLeft(bTrim, shift, len(rem))
		for i := range rem {
			rem[i] ^= aligned[i]
		}
		quot[quotLen-1-shift] = 1
		rem = rem.Trim()
		if rem.IsZero() {
			break
		}
	}
	return quot, rem
}

// RaiseArgument computes p(x^r): coefficient at power e of p moves to power
// e*r of the result. The result is trimmed to canonical form.
func RaiseArgument(p Bits, r int) Bits {
	if r <= 0 {
		panic("gf: RaiseArgument: r must be positive")
	}
	deg := p.Degree()
	if deg == 0 {
		return Bits{0}
	}
	newDeg := (deg-1)*r + 1
	out := make(Bits, newDeg)
	for i, bit := range p {
		if bit == 0 {
			continue
		}
		power := len(p) - 1 - i
		newPower := power * r
		out[newDeg-1-newPower] = 1
	}
	return out.Trim()
}
