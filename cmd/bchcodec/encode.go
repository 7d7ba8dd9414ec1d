package main

import (
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/bchcodec/bchcodec/bch"
	"github.com/bchcodec/bchcodec/channel"
	"github.com/bchcodec/bchcodec/gf"
	"github.com/bchcodec/bchcodec/textbits"
)

func runEncode(args []string) int {
	fs := newCustomFlagSet("encode")
	codePath := fs.String("c", "", "path to a code descriptor written by generate")
	input := fs.String("i", "", "text message to encode")
	out := fs.String("o", "", "output path for the encoded bitstring")
	noise := fs.Float64("noise", 0, "per-bit flip probability to simulate after encoding")
	var seed uint64
	fs.Uint64Var(&seed, "seed", 1, "RNG seed for -noise")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 2
	}
	if *codePath == "" || *input == "" || *out == "" {
		fmt.Fprintln(os.Stderr, "encode: -c, -i and -o are required")
		return 2
	}

	c, err := bch.Load(*codePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}

	packed := textbits.Pack(*input, c.K)
	var codeword gf.Bits
	for off := 0; off < len(packed); off += c.K {
		block, err := c.Encode(packed[off : off+c.K])
		if err != nil {
			logger.Error("encode failed", "block", off / c.K, "err", err)
			fmt.Fprintf(os.Stderr, "encode: %v\n", err)
			return 1
		}
		codeword = append(codeword, block...)
	}

	if *noise > 0 {
		rng := rand.New(rand.NewPCG(seed, seed))
		codeword = channel.Inject(codeword, *noise, rng)
	}

	if err := os.WriteFile(*out, []byte(bitsToASCII(codeword)), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		return 1
	}

	logger.Info("encoded", "blocks", len(packed)/c.K, "bits", len(codeword), "path", *out)
	return 0
}

func bitsToASCII(b gf.Bits) string {
	out := make([]byte, len(b))
	for i, bit := range b {
		if bit == 1 {
			out[i] = '1'
		} else {
			out[i] = '0'
		}
	}
	return string(out)
}

func asciiToBits(s string) (gf.Bits, error) {
	out := make(gf.Bits, len(s))
	for i, r := range s {
		switch r {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			return nil, fmt.Errorf("encode: bitstring contains non-binary character %q", r)
		}
	}
	return out, nil
}
