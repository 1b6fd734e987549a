package decode

// Word builders for tests. Immediates are given as the signed values the
// extractors are expected to reconstruct.

func encodeR(opcode, funct3, funct7, rd, rs1, rs2 uint8) uint32 {
	return RType{Opcode: opcode, Funct3: funct3, Funct7: funct7, Rd: rd, Rs1: rs1, Rs2: rs2}.Encode()
}

func encodeI(opcode, funct3, rd, rs1 uint8, imm int64) uint32 {
	return IType{Opcode: opcode, Funct3: funct3, Rd: rd, Rs1: rs1, Imm12: uint16(imm) & 0xFFF}.Encode()
}

func encodeS(opcode, funct3, rs1, rs2 uint8, imm int64) uint32 {
	u := uint32(imm) & 0xFFF
	return SType{Opcode: opcode, Funct3: funct3, Rs1: rs1, Rs2: rs2, ImmHi: uint8(u >> 5), ImmLo: uint8(u & 0x1F)}.Encode()
}

// encodeB scrambles a branch offset into imm[12|10:5] and imm[4:1|11].
func encodeB(funct3, rs1, rs2 uint8, off int64) uint32 {
	u := uint32(off) & 0x1FFF
	hi := (u>>12)<<6 | (u>>5)&0x3F
	lo := ((u>>1)&0xF)<<1 | (u>>11)&0x1
	return BType{Opcode: 0x63, Funct3: funct3, Rs1: rs1, Rs2: rs2, ImmHi: uint8(hi), ImmLo: uint8(lo)}.Encode()
}

func encodeU(opcode, rd uint8, imm20 uint32) uint32 {
	return UType{Opcode: opcode, Rd: rd, Imm20: imm20}.Encode()
}

// encodeJ scrambles a jump offset into imm[20|10:1|11|19:12].
func encodeJ(rd uint8, off int64) uint32 {
	u := uint32(off) & 0x1FFFFF
	f := (u>>20)<<19 |
		((u>>1)&0x3FF)<<9 |
		((u>>11)&0x1)<<8 |
		(u>>12)&0xFF
	return JType{Opcode: 0x6F, Rd: rd, Imm20: f}.Encode()
}
