package bch

import (
	"testing"

	"github.com/bchcodec/bchcodec/gf"
)

func mustDesign(t *testing.T, n int, p float64) *Code {
	t.Helper()
	c, err := Design(n, p)
	if err != nil {
		t.Fatalf("Design(%d, %v): %v", n, p, err)
	}
	return c
}

func flip(b gf.Bits, positions ...int) gf.Bits {
	out := append(gf.Bits(nil), b...)
	for _, p := range positions {
		out[p] ^= 1
	}
	return out
}

func TestDecodeZeroErrors(t *testing.T) {
	// Decoding a codeword with no injected errors returns the original
	// message.
	c := mustDesign(t, 15, 0.1)
	msg := gf.FromUint64(0b1010101, c.K)
	codeword, err := c.Encode(msg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	got, ok, err := c.Decode(codeword)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !ok {
		t.Fatal("Decode reported failure on an unmodified codeword")
	}
	if got.Uint64() != msg.Uint64() {
		t.Errorf("Decode = %b, want %b", got.Uint64(), msg.Uint64())
	}
}

func TestDecodeSingleBitFlip(t *testing.T) {
	// A single flipped bit at every position is always corrected.
	c := mustDesign(t, 15, 0.1)
	msg := gf.FromUint64(0b1010101, c.K)
	codeword, err := c.Encode(msg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for pos := 0; pos < c.N; pos++ {
		received := flip(codeword, pos)
		got, ok, err := c.Decode(received)
		if err != nil {
			t.Fatalf("pos=%d: Decode: %v", pos, err)
		}
		if !ok {
			t.Errorf("pos=%d: Decode reported failure on a single-bit error", pos)
			continue
		}
		if got.Uint64() != msg.Uint64() {
			t.Errorf("pos=%d: Decode = %b, want %b", pos, got.Uint64(), msg.Uint64())
		}
	}
}

func TestDecodeTwoBitFlip(t *testing.T) {
	// Two flipped bits, here at positions 0 and 7, are within T=2 and must
	// be corrected.
	c := mustDesign(t, 15, 0.1)
	msg := gf.FromUint64(0b1010101, c.K)
	codeword, err := c.Encode(msg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	received := flip(codeword, 0, 7)
	got, ok, err := c.Decode(received)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !ok {
		t.Fatal("Decode reported failure on a two-bit error within T=2")
	}
	if got.Uint64() != msg.Uint64() {
		t.Errorf("Decode = %b, want %b", got.Uint64(), msg.Uint64())
	}
}

func TestDecodeTwoBitFlipExhaustive(t *testing.T) {
	c := mustDesign(t, 15, 0.1)
	msg := gf.FromUint64(0b0110011, c.K)
	codeword, err := c.Encode(msg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	for i := 0; i < c.N; i++ {
		for j := i + 1; j < c.N; j++ {
			received := flip(codeword, i, j)
			got, ok, err := c.Decode(received)
			if err != nil {
				t.Fatalf("positions=%d,%d: Decode: %v", i, j, err)
			}
			if !ok || got.Uint64() != msg.Uint64() {
				t.Errorf("positions=%d,%d: Decode = (%v, ok=%v), want (%b, true)", i, j, got, ok, msg.Uint64())
			}
		}
	}
}

func TestDecodeThreeBitFlipGracefulFailure(t *testing.T) {
	// Three errors exceed T=2; decoding must fail gracefully (no panic)
	// rather than silently returning a wrong message as if it were correct.
	c := mustDesign(t, 15, 0.1)
	msg := gf.FromUint64(0b1010101, c.K)
	codeword, err := c.Encode(msg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	received := flip(codeword, 0, 5, 10)
	got, ok, err := c.Decode(received)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if ok {
		t.Fatalf("Decode reported success (message %b) on a three-bit error beyond T=2", got.Uint64())
	}
}

func TestDecodeRejectsWrongLength(t *testing.T) {
	c := mustDesign(t, 15, 0.1)
	if _, _, err := c.Decode(gf.FromUint64(0, c.N+1)); err == nil {
		t.Error("Decode with wrong-length codeword should fail")
	}
}

func TestDecodeStrictNoLooserThanDecode(t *testing.T) {
	// DecodeStrict only adds a check on top of Decode, so on a three-bit
	// error beyond T it must not report success where Decode does not.
	c := mustDesign(t, 15, 0.1)
	msg := gf.FromUint64(0b1010101, c.K)
	codeword, err := c.Encode(msg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	received := flip(codeword, 0, 5, 10)
	_, strictOK, err := c.DecodeStrict(received)
	if err != nil {
		t.Fatalf("DecodeStrict: %v", err)
	}
	_, looseOK, err := c.Decode(received)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if strictOK && !looseOK {
		t.Fatal("DecodeStrict reported success where Decode did not")
	}
}
