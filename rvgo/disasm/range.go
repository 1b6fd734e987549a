package disasm

import (
	"context"
	"encoding/binary"
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/zaneoblaneo/zRV64imc-emu/rvgo/decode"
)

// WordSize is the fixed decoding stride. Compressed encodings are reported,
// not skipped over, so the listing stays aligned to 4 bytes.
const WordSize = 4

// minChunk keeps tiny buffers from being split across many goroutines.
const minChunk = 1024

// ErrTruncated is set on the entry for the 1-3 trailing bytes of a buffer
// that do not form a full word.
var ErrTruncated = errors.New("truncated instruction word")

// Entry is one decoded word of a code buffer.
type Entry struct {
	Addr uint64
	Raw  uint32
	Inst decode.Instruction
	Err  error
}

func decodeAt(code []byte, base uint64, i int) Entry {
	raw := binary.LittleEndian.Uint32(code[i*WordSize:])
	inst, err := decode.Parse(raw)
	return Entry{
		Addr: base + uint64(i*WordSize),
		Raw:  raw,
		Inst: inst,
		Err:  err,
	}
}

func trailing(code []byte, base uint64) (Entry, bool) {
	n := len(code) % WordSize
	if n == 0 {
		return Entry{}, false
	}
	off := len(code) - n
	var buf [WordSize]byte
	copy(buf[:], code[off:])
	return Entry{
		Addr: base + uint64(off),
		Raw:  binary.LittleEndian.Uint32(buf[:]),
		Err:  ErrTruncated,
	}, true
}

// Decode decodes code sequentially, with the first byte at address base.
// Per-word decode failures are kept in Entry.Err.
func Decode(code []byte, base uint64) []Entry {
	words := len(code) / WordSize
	out := make([]Entry, 0, words+1)
	for i := 0; i < words; i++ {
		out = append(out, decodeAt(code, base, i))
	}
	if e, ok := trailing(code, base); ok {
		out = append(out, e)
	}
	return out
}

// DecodeRange decodes code like Decode, but splits it into chunks decoded by
// up to workers goroutines. Output order matches Decode. workers <= 0 means
// GOMAXPROCS. The only error returned is a context error.
func DecodeRange(ctx context.Context, code []byte, base uint64, workers int) ([]Entry, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	words := len(code) / WordSize
	out := make([]Entry, words, words+1)

	chunk := (words + workers - 1) / workers
	if chunk < minChunk {
		chunk = minChunk
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for lo := 0; lo < words; lo += chunk {
		lo, hi := lo, min(lo+chunk, words)
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%256 == 0 { // don't do the ctx err check too often
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				out[i] = decodeAt(code, base, i)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if e, ok := trailing(code, base); ok {
		out = append(out, e)
	}
	return out, nil
}
