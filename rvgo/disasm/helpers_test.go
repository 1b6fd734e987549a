package disasm

import (
	"bytes"
	"debug/elf"
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

type testSym struct {
	name  string
	value uint64
	size  uint64
	typ   elf.SymType
}

type testSection struct {
	name  string
	addr  uint64
	flags elf.SectionFlag
	data  []byte
}

// buildELF writes a minimal little-endian ELF64 image with the given
// sections and a symbol table.
func buildELF(t *testing.T, machine elf.Machine, sections []testSection, syms []testSym) *elf.File {
	t.Helper()
	var shstr, str bytes.Buffer
	shstr.WriteByte(0)
	str.WriteByte(0)
	addName := func(b *bytes.Buffer, name string) uint32 {
		off := uint32(b.Len())
		b.WriteString(name)
		b.WriteByte(0)
		return off
	}

	var body bytes.Buffer
	const hdrSize = 64
	offset := func() uint64 { return uint64(hdrSize + body.Len()) }
	align := func() {
		for body.Len()%8 != 0 {
			body.WriteByte(0)
		}
	}

	headers := []elf.Section64{{}}
	for _, s := range sections {
		headers = append(headers, elf.Section64{
			Name:      addName(&shstr, s.name),
			Type:      uint32(elf.SHT_PROGBITS),
			Flags:     uint64(s.flags),
			Addr:      s.addr,
			Off:       offset(),
			Size:      uint64(len(s.data)),
			Addralign: 4,
		})
		body.Write(s.data)
		align()
	}

	var symtab bytes.Buffer
	require.NoError(t, binary.Write(&symtab, binary.LittleEndian, elf.Sym64{}))
	for _, s := range syms {
		require.NoError(t, binary.Write(&symtab, binary.LittleEndian, elf.Sym64{
			Name:  addName(&str, s.name),
			Info:  elf.ST_INFO(elf.STB_GLOBAL, s.typ),
			Shndx: 1,
			Value: s.value,
			Size:  s.size,
		}))
	}

	strtabIdx := uint32(len(headers))
	headers = append(headers, elf.Section64{
		Name: addName(&shstr, ".strtab"),
		Type: uint32(elf.SHT_STRTAB),
		Off:  offset(),
		Size: uint64(str.Len()),
	})
	body.Write(str.Bytes())
	align()

	headers = append(headers, elf.Section64{
		Name:      addName(&shstr, ".symtab"),
		Type:      uint32(elf.SHT_SYMTAB),
		Off:       offset(),
		Size:      uint64(symtab.Len()),
		Link:      strtabIdx,
		Info:      1,
		Addralign: 8,
		Entsize:   elf.Sym64Size,
	})
	body.Write(symtab.Bytes())
	align()

	shstrIdx := uint16(len(headers))
	shstrName := addName(&shstr, ".shstrtab")
	headers = append(headers, elf.Section64{
		Name: shstrName,
		Type: uint32(elf.SHT_STRTAB),
		Off:  offset(),
		Size: uint64(shstr.Len()),
	})
	body.Write(shstr.Bytes())
	align()

	hdr := elf.Header64{
		Type:      uint16(elf.ET_EXEC),
		Machine:   uint16(machine),
		Version:   uint32(elf.EV_CURRENT),
		Shoff:     offset(),
		Ehsize:    hdrSize,
		Shentsize: 64,
		Shnum:     uint16(len(headers)),
		Shstrndx:  shstrIdx,
	}
	copy(hdr.Ident[:], elf.ELFMAG)
	hdr.Ident[elf.EI_CLASS] = byte(elf.ELFCLASS64)
	hdr.Ident[elf.EI_DATA] = byte(elf.ELFDATA2LSB)
	hdr.Ident[elf.EI_VERSION] = byte(elf.EV_CURRENT)

	var out bytes.Buffer
	require.NoError(t, binary.Write(&out, binary.LittleEndian, hdr))
	out.Write(body.Bytes())
	for _, h := range headers {
		require.NoError(t, binary.Write(&out, binary.LittleEndian, h))
	}

	f, err := elf.NewFile(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	return f
}

func words(ws ...uint32) []byte {
	out := make([]byte, 0, len(ws)*4)
	for _, w := range ws {
		out = binary.LittleEndian.AppendUint32(out, w)
	}
	return out
}
