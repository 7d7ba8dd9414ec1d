// Package bch builds BCH codes from a target length and error probability
// and uses them to systematically encode and syndrome-decode fixed-width
// blocks: parameter validation followed by precomputing a generator
// polynomial, then a generator/syndrome/Berlekamp-Massey/Chien pipeline for
// decoding, generalized from GF(2^8) byte codewords to GF(2^m) binary
// codewords.
package bch

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bchcodec/bchcodec/gf"
)

// Code is an immutable BCH code descriptor: n = 2^m-1, t errors correctable,
// k = n - deg(g) information bits, the error probability it was designed
// for (kept for diagnostics only), and the generator polynomial g.
type Code struct {
	N int
	K int
	T int
	P float64
	M int
	G gf.Bits
}

// codeRecord is the on-disk shape of a Code: the six fields a persisted
// descriptor needs to round-trip, with the generator polynomial written as
// a string of '0'/'1' characters (most significant bit first) rather than
// a raw byte slice, so the YAML stays human-readable.
type codeRecord struct {
	N         int     `yaml:"n"`
	T         int     `yaml:"t"`
	K         int     `yaml:"k"`
	P         float64 `yaml:"p"`
	M         int     `yaml:"m"`
	Generator string  `yaml:"generator"`
}

// Save writes c's descriptor to path as YAML.
func Save(path string, c *Code) error {
	rec := codeRecord{N: c.N, T: c.T, K: c.K, P: c.P, M: c.M, Generator: bitsToString(c.G)}
	data, err := yaml.Marshal(rec)
	if err != nil {
		return fmt.Errorf("bch: marshal code descriptor: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("bch: write code descriptor %q: %w", path, err)
	}
	return nil
}

// Load reads a Code descriptor previously written by Save.
func Load(path string) (*Code, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bch: read code descriptor %q: %w", path, err)
	}
	var rec codeRecord
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("bch: unmarshal code descriptor: %w", err)
	}
	g, err := stringToBits(rec.Generator)
	if err != nil {
		return nil, fmt.Errorf("bch: code descriptor has invalid generator: %w", err)
	}
	return &Code{N: rec.N, T: rec.T, K: rec.K, P: rec.P, M: rec.M, G: g}, nil
}

func bitsToString(b gf.Bits) string {
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

func stringToBits(s string) (gf.Bits, error) {
	out := make(gf.Bits, len(s))
	for i, c := range s {
		switch c {
		case '0':
			out[i] = 0
		case '1':
			out[i] = 1
		default:
			return nil, fmt.Errorf("bch: generator string contains non-binary character %q", c)
		}
	}
	return out, nil
}
