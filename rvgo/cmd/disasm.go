package cmd

import (
	"debug/elf"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/pkg/profile"
	"github.com/urfave/cli/v2"

	oplog "github.com/ethereum-optimism/optimism/op-service/log"

	"github.com/zaneoblaneo/zRV64imc-emu/rvgo/disasm"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// loadInput reads the sections to decode, and the symbols to label them with.
func loadInput(ctx *cli.Context) ([]disasm.Section, disasm.SortedSymbols, error) {
	elfPath := ctx.Path(DisasmELFFlag.Name)
	binPath := ctx.Path(DisasmBinFlag.Name)
	switch {
	case elfPath != "" && binPath != "":
		return nil, nil, fmt.Errorf("--%s and --%s are mutually exclusive", DisasmELFFlag.Name, DisasmBinFlag.Name)
	case elfPath != "":
		f, err := elf.Open(elfPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open ELF file %q: %w", elfPath, err)
		}
		defer f.Close()
		sections, err := disasm.LoadText(f)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load ELF text: %w", err)
		}
		syms, err := disasm.Symbols(f)
		if err != nil {
			return nil, nil, err
		}
		return sections, syms, nil
	case binPath != "":
		base := ctx.Uint64(DisasmBaseFlag.Name)
		data, err := os.ReadFile(binPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to read code image %q: %w", binPath, err)
		}
		return []disasm.Section{{Name: binPath, Addr: base, Data: data}}, nil, nil
	default:
		return nil, nil, fmt.Errorf("one of --%s or --%s is required", DisasmELFFlag.Name, DisasmBinFlag.Name)
	}
}

// SectionListing is the JSON form of one decoded section.
type SectionListing struct {
	Name    string               `json:"name"`
	Addr    hexutil.Uint64       `json:"addr"`
	Entries []disasm.EntryRecord `json:"entries"`
}

// Listing is the JSON document written by --format json.
type Listing struct {
	Sections []SectionListing `json:"sections"`
	Stats    *disasm.Stats    `json:"stats,omitempty"`
}

type decodedSection struct {
	sec     disasm.Section
	entries []disasm.Entry
}

func symbolAt(syms disasm.SortedSymbols, addr uint64) elf.Symbol {
	if len(syms) == 0 {
		return elf.Symbol{}
	}
	return syms.FindSymbol(addr)
}

func newListing(decoded []decodedSection, syms disasm.SortedSymbols, stats *disasm.Stats) *Listing {
	out := &Listing{Sections: make([]SectionListing, 0, len(decoded)), Stats: stats}
	for _, d := range decoded {
		sl := SectionListing{
			Name:    d.sec.Name,
			Addr:    hexutil.Uint64(d.sec.Addr),
			Entries: make([]disasm.EntryRecord, 0, len(d.entries)),
		}
		for _, e := range d.entries {
			sl.Entries = append(sl.Entries, disasm.NewEntryRecord(e, symbolAt(syms, e.Addr)))
		}
		out.Sections = append(out.Sections, sl)
	}
	return out
}

func writeListingText(w io.Writer, decoded []decodedSection, syms disasm.SortedSymbols, stats *disasm.Stats) error {
	for _, d := range decoded {
		if _, err := fmt.Fprintf(w, "\nDisassembly of section %s:\n\n", d.sec.Name); err != nil {
			return err
		}
		for _, e := range d.entries {
			if _, err := fmt.Fprintln(w, disasm.FormatEntry(e, symbolAt(syms, e.Addr))); err != nil {
				return err
			}
		}
	}
	if stats == nil {
		return nil
	}
	if _, err := fmt.Fprintf(w, "\nwords: %d decoded: %d unknown: %d compressed: %d truncated: %d\n",
		stats.Words, stats.Decoded, stats.Unknown, stats.Compressed, stats.Truncated); err != nil {
		return err
	}
	exts := stats.ExtensionCounts()
	if len(exts) > 0 {
		parts := make([]string, 0, len(exts))
		for _, ec := range exts {
			parts = append(parts, fmt.Sprintf("%s=%d", ec.Ext, ec.Count))
		}
		if _, err := fmt.Fprintf(w, "extensions: %s\n", strings.Join(parts, " ")); err != nil {
			return err
		}
	}
	for _, oc := range stats.Top(10) {
		if _, err := fmt.Fprintf(w, "%10d  %s\n", oc.Count, oc.Op); err != nil {
			return err
		}
	}
	return nil
}

func Disasm(ctx *cli.Context) error {
	if ctx.Bool(PProfCPUFlag.Name) {
		defer profile.Start(profile.NoShutdownHook, profile.ProfilePath("."), profile.CPUProfile).Stop()
	}
	l := newLogger(ctx)

	format := ctx.String(DisasmFormatFlag.Name)
	switch format {
	case formatText, formatJSON:
	default:
		return fmt.Errorf("invalid listing format %q", format)
	}

	sections, syms, err := loadInput(ctx)
	if err != nil {
		return err
	}
	if len(sections) == 0 {
		l.Warn("no executable sections to decode")
	}

	stats := disasm.NewStats()
	workers := ctx.Int(DisasmWorkersFlag.Name)
	decoded := make([]decodedSection, 0, len(sections))
	for _, sec := range sections {
		start := time.Now()
		entries, err := disasm.DecodeRange(ctx.Context, sec.Data, sec.Addr, workers)
		if err != nil {
			return fmt.Errorf("failed to decode section %q: %w", sec.Name, err)
		}
		secStats := disasm.NewStats()
		secStats.AddAll(entries)
		l.Info("decoded section",
			"name", sec.Name,
			"addr", HexU64(sec.Addr),
			"words", secStats.Words,
			"unknown", secStats.Unknown,
			"compressed", secStats.Compressed,
			"elapsed", time.Since(start),
		)
		stats.AddAll(entries)
		decoded = append(decoded, decodedSection{sec: sec, entries: entries})
	}

	var listed *disasm.Stats
	if ctx.Bool(DisasmStatsFlag.Name) {
		listed = stats
	}
	path := ctx.Path(OutputFlag.Name)
	if format == formatJSON {
		err = writeJSON(path, newListing(decoded, syms, listed))
	} else {
		err = writeOutput(path, func(w io.Writer) error {
			return writeListingText(w, decoded, syms, listed)
		})
	}
	if err != nil {
		return fmt.Errorf("failed to write listing: %w", err)
	}
	l.Debug("done", "words", stats.Words, "decoded", stats.Decoded, "unknown", stats.Unknown)
	return nil
}

// NewDisasmCommand builds the command. The log flags hold their parsed values, so each app gets its own.
func NewDisasmCommand() *cli.Command {
	return &cli.Command{
		Name:        "disasm",
		Usage:       "Disassemble a RISC-V ELF file or raw code image",
		Description: "Disassemble the executable sections of a RISC-V ELF file, or a raw code image loaded at --base. Words are decoded concurrently and listed in address order.",
		Action:      Disasm,
		Flags: append([]cli.Flag{
			DisasmELFFlag,
			DisasmBinFlag,
			DisasmBaseFlag,
			DisasmWorkersFlag,
			OutputFlag,
			DisasmFormatFlag,
			DisasmStatsFlag,
			PProfCPUFlag,
		}, oplog.CLIFlags(EnvVarPrefix)...),
	}
}

var DisasmCommand = NewDisasmCommand()
