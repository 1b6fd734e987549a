package decode

import "github.com/zaneoblaneo/zRV64imc-emu/rvgo/riscv"

// FormatOf returns the encoding format used by a major opcode, independent of
// whether any instruction under that opcode is wired into Parse.
func FormatOf(opcode uint8) (Format, bool) {
	switch opcode {
	case riscv.OpcodeLUI, riscv.OpcodeAUIPC:
		return FormatU, true
	case riscv.OpcodeJAL:
		return FormatJ, true
	case riscv.OpcodeBranch:
		return FormatB, true
	case riscv.OpcodeStore, riscv.OpcodeStoreFP:
		return FormatS, true
	case riscv.OpcodeLoad, riscv.OpcodeLoadFP, riscv.OpcodeMiscMem,
		riscv.OpcodeOpImm, riscv.OpcodeOpImm32, riscv.OpcodeJALR, riscv.OpcodeSystem:
		// shift-immediates, FENCE and the SYSTEM instructions are not quite
		// I-type, but the fields line up.
		return FormatI, true
	case riscv.OpcodeOp, riscv.OpcodeOp32, riscv.OpcodeAMO, riscv.OpcodeOpFP,
		riscv.OpcodeMAdd, riscv.OpcodeMSub, riscv.OpcodeNMSub, riscv.OpcodeNMAdd:
		return FormatR, true
	default:
		return 0, false
	}
}

// Classify returns the format view of a word by its major opcode only. Words
// that Parse rejects as unknown may still classify, e.g. floating point ops.
func Classify(raw uint32) (View, error) {
	if Probe(raw).Compressed() {
		return nil, ErrCompressedUnsupported
	}
	f, ok := FormatOf(parseOpcode(raw))
	if !ok {
		return nil, &UnknownEncodingError{
			Opcode: parseOpcode(raw),
			Funct3: parseFunct3(raw),
			Funct7: parseFunct7(raw),
		}
	}
	v := extractAll(raw)
	return v.of(f), nil
}
