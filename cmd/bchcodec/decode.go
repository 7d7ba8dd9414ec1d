package main

import (
	"fmt"
	"os"

	"github.com/bchcodec/bchcodec/bch"
	"github.com/bchcodec/bchcodec/gf"
	"github.com/bchcodec/bchcodec/textbits"
)

func runDecode(args []string) int {
	fs := newCustomFlagSet("decode")
	codePath := fs.String("c", "", "path to a code descriptor written by generate")
	input := fs.String("i", "", "path to an encoded bitstring file")
	out := fs.String("o", "", "output path for the decoded text (stdout if omitted)")
	strict := fs.Bool("strict", false, "re-verify each corrected block against g(x)")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 2
	}
	if *codePath == "" || *input == "" {
		fmt.Fprintln(os.Stderr, "decode: -c and -i are required")
		return 2
	}

	c, err := bch.Load(*codePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}

	raw, err := os.ReadFile(*input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}
	received, err := asciiToBits(string(raw))
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}
	if len(received)%c.N != 0 {
		fmt.Fprintf(os.Stderr, "decode: input length %d is not a multiple of n=%d\n", len(received), c.N)
		return 1
	}

	var message gf.Bits
	failures := 0
	for off := 0; off < len(received); off += c.N {
		block := received[off : off+c.N]
		decoded, good, err := decodeBlock(c, block, *strict)
		if err != nil {
			fmt.Fprintf(os.Stderr, "decode: %v\n", err)
			return 1
		}
		if !good {
			failures++
			logger.Warn("block failed to decode cleanly", "block", off/c.N)
		}
		message = append(message, decoded...)
	}

	text := textbits.Unpack(message)
	if *out == "" {
		fmt.Println(text)
	} else if err := os.WriteFile(*out, []byte(text), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "decode: %v\n", err)
		return 1
	}

	logger.Info("decoded", "blocks", len(received)/c.N, "failures", failures, "path", *out)
	if failures > 0 {
		return 1
	}
	return 0
}

func decodeBlock(c *bch.Code, block gf.Bits, strict bool) (gf.Bits, bool, error) {
	if strict {
		return c.DecodeStrict(block)
	}
	return c.Decode(block)
}
