package bch

import (
	"errors"
	"fmt"

	"github.com/bchcodec/bchcodec/gf"
)

// ErrMalformedInput reports a message or codeword whose length does not
// match the code's K or N.
var ErrMalformedInput = errors.New("bch: malformed input")

// Encode systematically encodes a k-bit message into an n-bit codeword:
// the message occupies the high-order k bits unchanged, and the low-order
// n-k bits are the remainder of msg(x)*x^(n-k) divided by g(x).
func (c *Code) Encode(msg gf.Bits) (gf.Bits, error) {
	if len(msg) != c.K {
		return nil, fmt.Errorf("%w: message has %d bits, code expects k=%d", ErrMalformedInput, len(msg), c.K)
	}

	parityLen := c.N - c.K
	shifted := make(gf.Bits, c.N)
	copy(shifted, msg)

	_, remainder := gf.DivMod(shifted, c.G)
	remainder = remainder.Pad(parityLen)

	codeword := make(gf.Bits, c.N)
	copy(codeword, msg)
	copy(codeword[c.K:], remainder)
	return codeword, nil
}
