package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ethereum-optimism/optimism/op-service/ioutil"
	"github.com/ethereum-optimism/optimism/op-service/jsonutil"
)

const EnvVarPrefix = "RVDECODE"

func prefixEnvVars(name string) []string {
	return []string{EnvVarPrefix + "_" + name}
}

var (
	PProfCPUFlag = &cli.BoolFlag{
		Name:    "pprof.cpu",
		Usage:   "enable pprof cpu profiling, written to the working directory",
		EnvVars: prefixEnvVars("PPROF_CPU"),
	}

	DecodeDumpFlag = &cli.BoolFlag{
		Name:    "dump",
		Usage:   "Dump the full decoded structure of every word",
		EnvVars: prefixEnvVars("DUMP"),
	}
	DecodeJSONFlag = &cli.BoolFlag{
		Name:    "json",
		Usage:   "Write the decoded words as a JSON array",
		EnvVars: prefixEnvVars("JSON"),
	}

	DisasmELFFlag = &cli.PathFlag{
		Name:      "elf",
		Usage:     "Path of a RISC-V ELF file; its executable sections are decoded",
		EnvVars:   prefixEnvVars("ELF"),
		TakesFile: true,
	}
	DisasmBinFlag = &cli.PathFlag{
		Name:      "bin",
		Usage:     "Path of a raw little-endian code image, mapped at --base",
		EnvVars:   prefixEnvVars("BIN"),
		TakesFile: true,
	}
	DisasmBaseFlag = &cli.Uint64Flag{
		Name:    "base",
		Usage:   "Load address of the --bin image, decimal or 0x-prefixed hex",
		EnvVars: prefixEnvVars("BASE"),
	}
	DisasmWorkersFlag = &cli.IntFlag{
		Name:    "workers",
		Usage:   "Number of decoding goroutines, 0 for GOMAXPROCS",
		EnvVars: prefixEnvVars("WORKERS"),
	}
	OutputFlag = &cli.PathFlag{
		Name:      "output",
		Usage:     "Path of the output file. '-' writes to stdout, empty discards the output",
		EnvVars:   prefixEnvVars("OUTPUT"),
		TakesFile: true,
		Value:     "-",
	}
	DisasmFormatFlag = &cli.StringFlag{
		Name:    "format",
		Usage:   "Listing format: text or json",
		EnvVars: prefixEnvVars("FORMAT"),
		Value:   "text",
	}
	DisasmStatsFlag = &cli.BoolFlag{
		Name:    "stats",
		Usage:   "Append decoding statistics to the listing",
		EnvVars: prefixEnvVars("STATS"),
	}
)

var OutFilePerm = os.FileMode(0o644)

// writeOutput runs fn against the --output target, aborting the target if fn fails.
func writeOutput(path string, fn func(w io.Writer) error) error {
	w, closer, abort, err := ioutil.ToStdOutOrFileOrNoop(path, OutFilePerm)()
	if err != nil {
		return fmt.Errorf("failed to open output %q: %w", path, err)
	}
	if w == nil {
		return nil
	}
	if err := fn(w); err != nil {
		if abort != nil {
			abort()
		}
		return err
	}
	if err := closer.Close(); err != nil {
		return fmt.Errorf("failed to close output %q: %w", path, err)
	}
	return nil
}

// writeJSON writes v as one indented JSON document to the --output target.
func writeJSON[X any](path string, v X) error {
	if err := jsonutil.WriteJSON(v, ioutil.ToStdOutOrFileOrNoop(path, OutFilePerm)); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	return nil
}

// parseWord reads an instruction word in hex, with or without 0x prefix.
func parseWord(s string) (uint32, error) {
	t := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	t = strings.ReplaceAll(t, "_", "")
	v, err := strconv.ParseUint(t, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid instruction word %q: %w", s, err)
	}
	return uint32(v), nil
}
