package main

import (
	"fmt"
	"os"

	"github.com/bchcodec/bchcodec/bch"
)

func runGenerate(args []string) int {
	fs := newCustomFlagSet("generate")
	n := fs.Int("n", 0, "target block length in bits")
	p := fs.Float64("p", 0, "channel bit-error probability")
	out := fs.String("o", "", "output path for the code descriptor")

	if err := fs.Parse(args); err != nil {
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return 2
	}
	if *n <= 0 || *p <= 0 || *out == "" {
		fmt.Fprintln(os.Stderr, "generate: -n, -p and -o are required")
		return 2
	}

	c, err := bch.Design(*n, *p)
	if err != nil {
		logger.Error("design failed", "n", *n, "p", *p, "err", err)
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return 1
	}

	if err := bch.Save(*out, c); err != nil {
		logger.Error("save failed", "path", *out, "err", err)
		fmt.Fprintf(os.Stderr, "generate: %v\n", err)
		return 1
	}

	logger.Info("code generated", "m", c.M, "n", c.N, "k", c.K, "t", c.T, "path", *out)
	fmt.Printf("generated code: m=%d n=%d k=%d t=%d -> %s\n", c.M, c.N, c.K, c.T, *out)
	return 0
}
