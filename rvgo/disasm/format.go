package disasm

import (
	"debug/elf"
	"encoding/binary"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"

	"github.com/zaneoblaneo/zRV64imc-emu/rvgo/decode"
)

// FormatEntry renders one listing line:
//
//	0000000000010078 <_start+0x8>:	00002517	auipc x10, 0x2
//
// sym is the symbol the entry's address falls in; an empty name omits the label.
func FormatEntry(e Entry, sym elf.Symbol) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%016x", e.Addr)
	if sym.Name != "" {
		if off := e.Addr - sym.Value; off != 0 {
			fmt.Fprintf(&sb, " <%s+%#x>", sym.Name, off)
		} else {
			fmt.Fprintf(&sb, " <%s>", sym.Name)
		}
	}
	fmt.Fprintf(&sb, ":\t%08x\t%s", e.Raw, entryText(e))
	return sb.String()
}

func entryText(e Entry) string {
	switch {
	case e.Err == nil:
		return e.Inst.String()
	case errors.Is(e.Err, ErrTruncated):
		return "(truncated)"
	case errors.Is(e.Err, decode.ErrCompressedUnsupported):
		return "(compressed)"
	case errors.Is(e.Err, decode.ErrUnknownEncoding):
		return "(unknown)"
	default:
		return "(bad)"
	}
}

// RawWord renders an instruction word as fixed-width big-endian hex, 0x00002517.
func RawWord(raw uint32) hexutil.Bytes {
	return binary.BigEndian.AppendUint32(nil, raw)
}

// EntryRecord is the JSON form of a listing line.
type EntryRecord struct {
	Addr   hexutil.Uint64 `json:"addr"`
	Raw    hexutil.Bytes  `json:"raw"`
	Op     string         `json:"op,omitempty"`
	Format string         `json:"format,omitempty"`
	Asm    string         `json:"asm,omitempty"`
	Symbol string         `json:"symbol,omitempty"`
	Err    string         `json:"error,omitempty"`
}

func NewEntryRecord(e Entry, sym elf.Symbol) EntryRecord {
	out := EntryRecord{
		Addr:   hexutil.Uint64(e.Addr),
		Raw:    RawWord(e.Raw),
		Symbol: sym.Name,
	}
	if e.Err != nil {
		out.Err = e.Err.Error()
	} else {
		out.Op = e.Inst.Op.String()
		out.Format = e.Inst.Op.Format().String()
		out.Asm = e.Inst.String()
	}
	return out
}
