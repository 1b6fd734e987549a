package decode

import "github.com/zaneoblaneo/zRV64imc-emu/rvgo/riscv"

// GenericProbe looks at the major opcode only, to cheaply reject encodings
// this decoder does not handle before any format is extracted.
type GenericProbe struct {
	Opcode uint8
	Raw    uint32
}

func Probe(raw uint32) GenericProbe {
	return GenericProbe{
		Opcode: uint8(raw & riscv.OpcodeFieldMax),
		Raw:    raw,
	}
}

// Compressed reports whether the word is a 16-bit `C` extension encoding.
// In the 32-bit instructions, the lowest-order 2 bits are always set, whereas
// in the compressed 16-bit instruction set this is not the case.
func (p GenericProbe) Compressed() bool {
	return p.Opcode&riscv.OpcodeLowBits != riscv.OpcodeLowBits
}
