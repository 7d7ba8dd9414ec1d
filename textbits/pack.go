// Package textbits converts between text and the bitvector form the bch
// package operates on: 8 bits per byte, most significant bit first. It lets
// the CLI take a text message on the command line and print a decoded one
// back out.
package textbits

import "github.com/bchcodec/bchcodec/gf"

// Pack converts s into a bit-per-byte vector (8 bits per character, most
// significant bit first), zero-padded on the right until its length is a
// multiple of blockSize. blockSize <= 0 disables padding.
func Pack(s string, blockSize int) gf.Bits {
	raw := []byte(s)
	bits := make(gf.Bits, 0, len(raw)*8)
	for _, b := range raw {
		for shift := 7; shift >= 0; shift-- {
			bits = append(bits, (b>>uint(shift))&1)
		}
	}
	if blockSize > 0 {
		if rem := len(bits) % blockSize; rem != 0 {
			bits = append(bits, make(gf.Bits, blockSize-rem)...)
		}
	}
	return bits
}

// Unpack regroups bits into bytes (8 bits per character, most significant
// bit first) and returns the resulting string. Trailing bits that don't
// complete a full byte are dropped.
func Unpack(bits gf.Bits) string {
	n := len(bits) / 8
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | bits[i*8+j]
		}
		out[i] = b
	}
	return string(out)
}
