package decode

import "fmt"

// Format identifies one of the six base instruction encodings.
type Format uint8

const (
	FormatR Format = iota + 1
	FormatI
	FormatS
	FormatB
	FormatU
	FormatJ
)

func (f Format) String() string {
	switch f {
	case FormatR:
		return "R"
	case FormatI:
		return "I"
	case FormatS:
		return "S"
	case FormatB:
		return "B"
	case FormatU:
		return "U"
	case FormatJ:
		return "J"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// View is a fixed-layout view of an instruction word in one of the six
// formats. It is implemented by RType, IType, SType, BType, UType and JType
// only.
type View interface {
	Format() Format
	// Encode packs the raw fields of the view back into an instruction word.
	// Reconstructed immediates are not consulted.
	Encode() uint32

	isView()
}

// Field extraction helpers, ignored where not applicable to a format.

func parseOpcode(raw uint32) uint8 { return uint8(raw & 0x7F) }
func parseRd(raw uint32) uint8     { return uint8((raw >> 7) & 0x1F) }
func parseFunct3(raw uint32) uint8 { return uint8((raw >> 12) & 0x7) }
func parseRs1(raw uint32) uint8    { return uint8((raw >> 15) & 0x1F) }
func parseRs2(raw uint32) uint8    { return uint8((raw >> 20) & 0x1F) }
func parseFunct7(raw uint32) uint8 { return uint8(raw >> 25) }

// RType is the register-register format.
type RType struct {
	Opcode uint8
	Rd     uint8
	Funct3 uint8
	Rs1    uint8
	Rs2    uint8
	Funct7 uint8
}

func ExtractR(raw uint32) RType {
	return RType{
		Opcode: parseOpcode(raw),
		Rd:     parseRd(raw),
		Funct3: parseFunct3(raw),
		Rs1:    parseRs1(raw),
		Rs2:    parseRs2(raw),
		Funct7: parseFunct7(raw),
	}
}

func (RType) Format() Format { return FormatR }
func (RType) isView()        {}

func (r RType) Encode() uint32 {
	return uint32(r.Funct7&0x7F)<<25 |
		uint32(r.Rs2&0x1F)<<20 |
		uint32(r.Rs1&0x1F)<<15 |
		uint32(r.Funct3&0x7)<<12 |
		uint32(r.Rd&0x1F)<<7 |
		uint32(r.Opcode&0x7F)
}

// Funct6 is funct7 without its lowest bit.
func (r RType) Funct6() uint8 { return r.Funct7 >> 1 }

// Funct5 is the top five bits of funct7: the AMO operation and the FP operation.
func (r RType) Funct5() uint8 { return r.Funct7 >> 2 }

// Funct2 is the low two bits of funct7: the FP format of fused multiply-add.
func (r RType) Funct2() uint8 { return r.Funct7 & 0x3 }

// Rs3 is the third source register of fused multiply-add, bits [31:27].
func (r RType) Rs3() uint8 { return r.Funct7 >> 2 }

// Aq is the AMO acquire bit.
func (r RType) Aq() bool { return r.Funct7&0x2 != 0 }

// Rl is the AMO release bit.
func (r RType) Rl() bool { return r.Funct7&0x1 != 0 }

// IType is the register-immediate format.
type IType struct {
	Opcode uint8
	Rd     uint8
	Funct3 uint8
	Rs1    uint8
	Imm12  uint16 // imm[11:0], raw
	Imm    int64  // imm[11:0] sign-extended
}

func ExtractI(raw uint32) IType {
	imm12 := raw >> 20
	return IType{
		Opcode: parseOpcode(raw),
		Rd:     parseRd(raw),
		Funct3: parseFunct3(raw),
		Rs1:    parseRs1(raw),
		Imm12:  uint16(imm12),
		Imm:    signExtend(imm12, 11),
	}
}

func (IType) Format() Format { return FormatI }
func (IType) isView()        {}

func (i IType) Encode() uint32 {
	return uint32(i.Imm12&0xFFF)<<20 |
		uint32(i.Rs1&0x1F)<<15 |
		uint32(i.Funct3&0x7)<<12 |
		uint32(i.Rd&0x1F)<<7 |
		uint32(i.Opcode&0x7F)
}

// Shamt is the shift amount of the shift-immediate instructions, lower 6 bits in 64 bit mode.
func (i IType) Shamt() uint8 { return uint8(i.Imm12 & 0x3F) }

// Funct6 selects the shift type in rv64i, the top 6 bits of imm.
func (i IType) Funct6() uint8 { return uint8(i.Imm12 >> 6) }

// Funct7 selects the shift type of the 32-bit shift-immediates, the top 7 bits of imm.
func (i IType) Funct7() uint8 { return uint8(i.Imm12 >> 5) }

// CSR is the control and status register address of the Zicsr instructions.
func (i IType) CSR() uint16 { return i.Imm12 }

// Zimm is the 5-bit unsigned immediate of CSRRWI, CSRRSI and CSRRCI, held in the rs1 field.
func (i IType) Zimm() uint8 { return i.Rs1 }

// SType is the store format.
type SType struct {
	Opcode uint8
	Funct3 uint8
	Rs1    uint8
	Rs2    uint8
	ImmHi  uint8 // imm[11:5]
	ImmLo  uint8 // imm[4:0]
	Imm    int64
}

func ExtractS(raw uint32) SType {
	hi := raw >> 25
	lo := (raw >> 7) & 0x1F
	return SType{
		Opcode: parseOpcode(raw),
		Funct3: parseFunct3(raw),
		Rs1:    parseRs1(raw),
		Rs2:    parseRs2(raw),
		ImmHi:  uint8(hi),
		ImmLo:  uint8(lo),
		Imm:    signExtend(hi<<5|lo, 11),
	}
}

func (SType) Format() Format { return FormatS }
func (SType) isView()        {}

func (s SType) Encode() uint32 {
	return uint32(s.ImmHi&0x7F)<<25 |
		uint32(s.Rs2&0x1F)<<20 |
		uint32(s.Rs1&0x1F)<<15 |
		uint32(s.Funct3&0x7)<<12 |
		uint32(s.ImmLo&0x1F)<<7 |
		uint32(s.Opcode&0x7F)
}

// BType is the conditional branch format. The layout is the S format with
// the immediate bits shuffled.
type BType struct {
	Opcode uint8
	Funct3 uint8
	Rs1    uint8
	Rs2    uint8
	ImmHi  uint8 // imm[12|10:5]
	ImmLo  uint8 // imm[4:1|11]
	Imm    int64 // signed byte offset, bit 0 always clear
}

func ExtractB(raw uint32) BType {
	hi := raw >> 25
	lo := (raw >> 7) & 0x1F
	// {imm[12], imm[11], imm[10:5], imm[4:1], 0}
	imm := (hi>>6)<<12 |
		(lo&0x1)<<11 |
		(hi&0x3F)<<5 |
		(lo>>1)<<1
	return BType{
		Opcode: parseOpcode(raw),
		Funct3: parseFunct3(raw),
		Rs1:    parseRs1(raw),
		Rs2:    parseRs2(raw),
		ImmHi:  uint8(hi),
		ImmLo:  uint8(lo),
		Imm:    signExtend(imm, 12),
	}
}

func (BType) Format() Format { return FormatB }
func (BType) isView()        {}

func (b BType) Encode() uint32 {
	return uint32(b.ImmHi&0x7F)<<25 |
		uint32(b.Rs2&0x1F)<<20 |
		uint32(b.Rs1&0x1F)<<15 |
		uint32(b.Funct3&0x7)<<12 |
		uint32(b.ImmLo&0x1F)<<7 |
		uint32(b.Opcode&0x7F)
}

// UType is the upper-immediate format of LUI and AUIPC.
type UType struct {
	Opcode uint8
	Rd     uint8
	Imm20  uint32 // imm[31:12], raw
	Imm    int64  // imm[31:12] in position, low 12 bits zero, sign-extended
}

func ExtractU(raw uint32) UType {
	return UType{
		Opcode: parseOpcode(raw),
		Rd:     parseRd(raw),
		Imm20:  raw >> 12,
		Imm:    signExtend(raw&0xFFFFF000, 31),
	}
}

func (UType) Format() Format { return FormatU }
func (UType) isView()        {}

func (u UType) Encode() uint32 {
	return (u.Imm20&0xFFFFF)<<12 |
		uint32(u.Rd&0x1F)<<7 |
		uint32(u.Opcode&0x7F)
}

// JType is the unconditional jump format.
type JType struct {
	Opcode uint8
	Rd     uint8
	Imm20  uint32 // imm[20|10:1|11|19:12], raw
	Imm    int64  // signed byte offset, bit 0 always clear
}

func ExtractJ(raw uint32) JType {
	f := raw >> 12
	// {imm[20], imm[19:12], imm[11], imm[10:1], 0}
	imm := (f>>19)<<20 |
		(f&0xFF)<<12 |
		((f>>8)&0x1)<<11 |
		((f>>9)&0x3FF)<<1
	return JType{
		Opcode: parseOpcode(raw),
		Rd:     parseRd(raw),
		Imm20:  f,
		Imm:    signExtend(imm, 20),
	}
}

func (JType) Format() Format { return FormatJ }
func (JType) isView()        {}

func (j JType) Encode() uint32 {
	return (j.Imm20&0xFFFFF)<<12 |
		uint32(j.Rd&0x1F)<<7 |
		uint32(j.Opcode&0x7F)
}
