package disasm

import (
	"debug/elf"
	"errors"
	"fmt"
	"sort"
)

// Section is an executable section of an ELF file.
type Section struct {
	Name string
	Addr uint64
	Data []byte
}

// LoadText returns the executable sections of a RISC-V ELF, in file order.
// SHT_NOBITS sections have no bytes to decode and are skipped.
func LoadText(f *elf.File) ([]Section, error) {
	if f.Machine != elf.EM_RISCV {
		return nil, fmt.Errorf("ELF is not RISC-V, but got %q", f.Machine.String())
	}
	var out []Section
	for _, s := range f.Sections {
		if s.Flags&elf.SHF_EXECINSTR == 0 || s.Type == elf.SHT_NOBITS {
			continue
		}
		data, err := s.Data()
		if err != nil {
			return nil, fmt.Errorf("failed to read section %q: %w", s.Name, err)
		}
		out = append(out, Section{Name: s.Name, Addr: s.Addr, Data: data})
	}
	return out, nil
}

type SortedSymbols []elf.Symbol

// FindSymbol finds the symbol that intersects with the given addr.
// Addresses before the first symbol map to "!start", addresses in a gap
// between symbols to "!gap". A symbol without a size extends to the next one.
func (s SortedSymbols) FindSymbol(addr uint64) elf.Symbol {
	// find first symbol with higher start. Or n if no such symbol exists
	i := sort.Search(len(s), func(i int) bool {
		return s[i].Value > addr
	})
	if i == 0 {
		return elf.Symbol{Name: "!start", Value: 0}
	}
	out := &s[i-1]
	if out.Size != 0 && out.Value+out.Size <= addr { // addr may be pointing to a gap between symbols
		return elf.Symbol{Name: "!gap", Value: addr}
	}
	return *out
}

// Symbols returns the function symbols of f sorted by address. A stripped
// binary yields no symbols and no error.
func Symbols(f *elf.File) (SortedSymbols, error) {
	symbols, err := f.Symbols()
	if errors.Is(err, elf.ErrNoSymbols) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read symbols data: %w", err)
	}
	// not every ELF has sorted symbols
	out := make(SortedSymbols, 0, len(symbols))
	for _, sym := range symbols {
		if elf.ST_TYPE(sym.Info) != elf.STT_FUNC {
			continue
		}
		out = append(out, sym)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Value < out[j].Value
	})
	return out, nil
}
