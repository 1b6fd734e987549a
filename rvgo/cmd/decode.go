package cmd

import (
	"fmt"
	"io"

	"github.com/davecgh/go-spew/spew"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/urfave/cli/v2"

	oplog "github.com/ethereum-optimism/optimism/op-service/log"

	"github.com/zaneoblaneo/zRV64imc-emu/rvgo/decode"
	"github.com/zaneoblaneo/zRV64imc-emu/rvgo/disasm"
)

type DecodeOutput struct {
	Raw    hexutil.Bytes `json:"raw"`
	Op     string        `json:"op,omitempty"`
	Format string        `json:"format,omitempty"`
	Ext    string        `json:"ext,omitempty"`
	Asm    string        `json:"asm,omitempty"`
	Args   decode.View   `json:"args,omitempty"`
	Err    string        `json:"error,omitempty"`
}

func newDecodeOutput(raw uint32, inst decode.Instruction, err error) *DecodeOutput {
	out := &DecodeOutput{Raw: disasm.RawWord(raw)}
	if err != nil {
		out.Err = err.Error()
		return out
	}
	out.Op = inst.Op.String()
	out.Format = inst.Op.Format().String()
	out.Ext = inst.Op.Extension().String()
	out.Asm = inst.String()
	out.Args = inst.Args
	return out
}

type decodedWord struct {
	raw  uint32
	inst decode.Instruction
	err  error
}

func writeDecodeText(w io.Writer, words []decodedWord, dump bool) error {
	cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableCapacities: true}
	for _, d := range words {
		var err error
		switch {
		case d.err != nil && dump:
			_, err = fmt.Fprintf(w, "%08x: error: %v\n", d.raw, d.err)
		case d.err != nil:
			_, err = fmt.Fprintf(w, "%08x\terror: %v\n", d.raw, d.err)
		case dump:
			if _, err = fmt.Fprintf(w, "%08x: %s\n", d.raw, d.inst); err == nil {
				cfg.Fdump(w, d.inst.Args)
			}
		default:
			_, err = fmt.Fprintf(w, "%08x\t%s\n", d.raw, d.inst)
		}
		if err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func Decode(ctx *cli.Context) error {
	l := newLogger(ctx)
	if ctx.NArg() == 0 {
		return fmt.Errorf("no instruction words given")
	}
	asJSON, dump := ctx.Bool(DecodeJSONFlag.Name), ctx.Bool(DecodeDumpFlag.Name)
	if asJSON && dump {
		return fmt.Errorf("--%s and --%s are mutually exclusive", DecodeJSONFlag.Name, DecodeDumpFlag.Name)
	}

	words := make([]decodedWord, 0, ctx.NArg())
	failed := 0
	for _, arg := range ctx.Args().Slice() {
		raw, err := parseWord(arg)
		if err != nil {
			return err
		}
		inst, err := decode.Parse(raw)
		if err != nil {
			failed++
			l.Debug("failed to decode word", "insn", HexU32(raw), "err", err)
		}
		words = append(words, decodedWord{raw: raw, inst: inst, err: err})
	}
	if failed > 0 {
		l.Warn("some words did not decode", "failed", failed, "total", len(words))
	}

	path := ctx.Path(OutputFlag.Name)
	if asJSON {
		outputs := make([]*DecodeOutput, 0, len(words))
		for _, d := range words {
			outputs = append(outputs, newDecodeOutput(d.raw, d.inst, d.err))
		}
		return writeJSON(path, outputs)
	}
	return writeOutput(path, func(w io.Writer) error {
		return writeDecodeText(w, words, dump)
	})
}

// NewDecodeCommand builds the command. The log flags hold their parsed values, so each app gets its own.
func NewDecodeCommand() *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Usage:       "Decode RISC-V instruction words",
		Description: "Decode the hex instruction words given as arguments, one line per word.",
		ArgsUsage:   "WORD [WORD...]",
		Action:      Decode,
		Flags: append([]cli.Flag{
			DecodeDumpFlag,
			DecodeJSONFlag,
			OutputFlag,
		}, oplog.CLIFlags(EnvVarPrefix)...),
	}
}

var DecodeCommand = NewDecodeCommand()
