package slow

// Field parsers for 32-bit RISC-V instruction words, in uint256 word math.
// These should 1:1 match the extractors of the decode package: immediates
// come back sign-extended to 64 bits, everything else zero-extended.

func ParseImmTypeI(instr U64) U64 {
	return signExtend64(shr64(instr, toU64(20)), toU64(11))
}

func ParseImmTypeS(instr U64) U64 {
	return signExtend64(or64(shl64(shr64(instr, toU64(25)), toU64(5)), and64(shr64(instr, toU64(7)), toU64(0x1F))), toU64(11))
}

func ParseImmTypeB(instr U64) U64 {
	return signExtend64(
		or64(
			or64(
				shl64(and64(shr64(instr, toU64(8)), toU64(0xF)), toU64(1)),
				shl64(and64(shr64(instr, toU64(25)), toU64(0x3F)), toU64(5)),
			),
			or64(
				shl64(and64(shr64(instr, toU64(7)), toU64(1)), toU64(11)),
				shl64(shr64(instr, toU64(31)), toU64(12)),
			),
		),
		toU64(12),
	)
}

// ParseImmTypeU returns the upper immediate in place, bits [31:12].
func ParseImmTypeU(instr U64) U64 {
	return signExtend64(shl64(shr64(instr, toU64(12)), toU64(12)), toU64(31))
}

func ParseImmTypeJ(instr U64) U64 {
	return signExtend64(
		or64(
			or64(
				shl64(and64(shr64(instr, toU64(21)), shortToU64(0x3FF)), toU64(1)),
				shl64(and64(shr64(instr, toU64(20)), toU64(1)), toU64(11)),
			),
			or64(
				shl64(and64(shr64(instr, toU64(12)), toU64(0xFF)), toU64(12)),
				shl64(shr64(instr, toU64(31)), toU64(20)),
			),
		),
		toU64(20),
	)
}

func ParseOpcode(instr U64) U64 {
	return and64(instr, toU64(0x7F))
}

func ParseRd(instr U64) U64 {
	return and64(shr64(instr, toU64(7)), toU64(0x1F))
}

func ParseFunct3(instr U64) U64 {
	return and64(shr64(instr, toU64(12)), toU64(0x7))
}

func ParseRs1(instr U64) U64 {
	return and64(shr64(instr, toU64(15)), toU64(0x1F))
}

func ParseRs2(instr U64) U64 {
	return and64(shr64(instr, toU64(20)), toU64(0x1F))
}

func ParseFunct7(instr U64) U64 {
	return shr64(instr, toU64(25))
}
