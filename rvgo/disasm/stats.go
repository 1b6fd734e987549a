package disasm

import (
	"errors"
	"sort"

	"github.com/zaneoblaneo/zRV64imc-emu/rvgo/decode"
)

// Stats summarizes a decoded listing.
type Stats struct {
	Words      int                      `json:"words"`
	Decoded    int                      `json:"decoded"`
	Unknown    int                      `json:"unknown"`
	Compressed int                      `json:"compressed"`
	Truncated  int                      `json:"truncated"`
	Ops        map[decode.Op]int        `json:"ops"`
	Extensions map[decode.Extension]int `json:"extensions"`
}

func NewStats() *Stats {
	return &Stats{
		Ops:        make(map[decode.Op]int),
		Extensions: make(map[decode.Extension]int),
	}
}

// Add counts one entry.
func (s *Stats) Add(e Entry) {
	s.Words++
	switch {
	case e.Err == nil:
		s.Decoded++
		s.Ops[e.Inst.Op]++
		s.Extensions[e.Inst.Op.Extension()]++
	case errors.Is(e.Err, ErrTruncated):
		s.Truncated++
	case errors.Is(e.Err, decode.ErrCompressedUnsupported):
		s.Compressed++
	default:
		s.Unknown++
	}
}

func (s *Stats) AddAll(entries []Entry) {
	for _, e := range entries {
		s.Add(e)
	}
}

type OpCount struct {
	Op    decode.Op
	Count int
}

// Top returns the n most frequent ops, ties broken by op order.
// n <= 0 returns all of them.
func (s *Stats) Top(n int) []OpCount {
	out := make([]OpCount, 0, len(s.Ops))
	for op, c := range s.Ops {
		out = append(out, OpCount{Op: op, Count: c})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Op < out[j].Op
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

type ExtCount struct {
	Ext   decode.Extension
	Count int
}

// ExtensionCounts returns the per-extension counts in extension order.
func (s *Stats) ExtensionCounts() []ExtCount {
	out := make([]ExtCount, 0, len(s.Extensions))
	for ext, c := range s.Extensions {
		out = append(out, ExtCount{Ext: ext, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Ext < out[j].Ext })
	return out
}
