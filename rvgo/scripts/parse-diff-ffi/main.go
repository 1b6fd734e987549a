package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/zaneoblaneo/zRV64imc-emu/rvgo/slow"
)

// parsers exposes the uint256 reference parsers to external differential fuzzers.
var parsers = map[string]func(slow.U64) slow.U64{
	"ParseTypeI":  slow.ParseImmTypeI,
	"ParseTypeS":  slow.ParseImmTypeS,
	"ParseTypeB":  slow.ParseImmTypeB,
	"ParseTypeU":  slow.ParseImmTypeU,
	"ParseTypeJ":  slow.ParseImmTypeJ,
	"ParseOpcode": slow.ParseOpcode,
	"ParseRd":     slow.ParseRd,
	"ParseFunct3": slow.ParseFunct3,
	"ParseRs1":    slow.ParseRs1,
	"ParseRs2":    slow.ParseRs2,
	"ParseFunct7": slow.ParseFunct7,
}

// run writes the parsed field of word as a 32-byte hex word, the form the
// fuzzers compare against.
func run(w io.Writer, function string, word uint32) error {
	parse, ok := parsers[function]
	if !ok {
		names := make([]string, 0, len(parsers))
		for name := range parsers {
			names = append(names, name)
		}
		sort.Strings(names)
		return fmt.Errorf("unknown fuzz function %q, expected one of %v", function, names)
	}
	_, err := fmt.Fprintf(w, "%064x", slow.Val(parse(slow.FromWord(word))))
	return err
}

func main() {
	function := flag.String("fuzz", "ParseTypeI", "fuzz function")
	input := flag.Uint64("number", 0, "instruction word to parse")
	flag.Parse()

	if *input > 0xFFFF_FFFF {
		fmt.Fprintf(os.Stderr, "input %#x does not fit an instruction word\n", *input)
		os.Exit(2)
	}
	if err := run(os.Stdout, *function, uint32(*input)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
