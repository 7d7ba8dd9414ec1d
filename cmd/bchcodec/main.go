// Command bchcodec designs, encodes with, and decodes with binary BCH
// codes.
//
// Usage:
//
//	bchcodec generate -n N -p P -o FILE
//	bchcodec encode    -c FILE -i TEXT -o FILE [-noise P]
//	bchcodec decode    -c FILE -i FILE -o TEXT
//
// generate designs a code for a target block length N and channel
// bit-error probability P and writes its descriptor to FILE. encode reads
// the descriptor at -c, packs the text at -i into k-bit blocks, encodes
// each one, optionally injects bit-flip noise at probability -noise, and
// writes the concatenated bitstring to -o. decode reverses that: it reads
// n-bit blocks from -i, corrects and extracts each one, and writes the
// reassembled text to -o (stdout if -o is omitted).
package main

import (
	"fmt"
	"os"

	"github.com/bchcodec/bchcodec/log"
)

var (
	version = "v0.1.0-dev"
	commit  = "unknown"
)

var logger = log.Default().Module("cli")

func main() {
	os.Exit(run(os.Args[1:]))
}

// run is the actual entry point, returning an exit code. Accepts CLI
// arguments (without the program name) so it can be tested in isolation.
func run(args []string) int {
	if len(args) == 0 {
		printUsage()
		return 2
	}

	if args[0] == "-version" || args[0] == "--version" {
		fmt.Printf("bchcodec %s (commit %s)\n", version, commit)
		return 0
	}

	sub, rest := args[0], args[1:]
	switch sub {
	case "generate":
		return runGenerate(rest)
	case "encode":
		return runEncode(rest)
	case "decode":
		return runDecode(rest)
	case "-h", "--help", "help":
		printUsage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "bchcodec: unknown subcommand %q\n", sub)
		printUsage()
		return 2
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: bchcodec <generate|encode|decode> [flags]")
	fmt.Fprintln(os.Stderr, "  generate -n N -p P -o FILE")
	fmt.Fprintln(os.Stderr, "  encode   -c FILE -i TEXT -o FILE [-noise P]")
	fmt.Fprintln(os.Stderr, "  decode   -c FILE -i FILE -o TEXT")
}
