package riscv

// Major opcodes, bits [6:0] of a 32-bit instruction word.
const (
	OpcodeLoad     = 0x03 // 000_0011
	OpcodeLoadFP   = 0x07 // 000_0111
	OpcodeMiscMem  = 0x0F // 000_1111
	OpcodeOpImm    = 0x13 // 001_0011
	OpcodeAUIPC    = 0x17 // 001_0111
	OpcodeOpImm32  = 0x1B // 001_1011
	OpcodeStore    = 0x23 // 010_0011
	OpcodeStoreFP  = 0x27 // 010_0111
	OpcodeAMO      = 0x2F // 010_1111
	OpcodeOp       = 0x33 // 011_0011
	OpcodeLUI      = 0x37 // 011_0111
	OpcodeOp32     = 0x3B // 011_1011
	OpcodeMAdd     = 0x43 // 100_0011
	OpcodeMSub     = 0x47 // 100_0111
	OpcodeNMSub    = 0x4B // 100_1011
	OpcodeNMAdd    = 0x4F // 100_1111
	OpcodeOpFP     = 0x53 // 101_0011
	OpcodeBranch   = 0x63 // 110_0011
	OpcodeJALR     = 0x67 // 110_0111
	OpcodeJAL      = 0x6F // 110_1111
	OpcodeSystem   = 0x73 // 111_0011
	OpcodeLowBits  = 0x03 // bits [1:0] of every 32-bit encoding
	OpcodeFieldMax = 0x7F
)

// funct7 values shared by the OP and OP-32 opcodes.
const (
	Funct7Base   = 0x00 // 0000000 = ADD, SLL, SRL, ...
	Funct7MulDiv = 0x01 // 0000001 = RV M extension
	Funct7Alt    = 0x20 // 0100000 = SUB, SRA
)

// funct6 selects the RV64I shift-immediate kind; shamt takes the low 6 bits of imm.
const (
	Funct6SLLI = 0x00 // 000000
	Funct6SRLI = 0x00 // 000000
	Funct6SRAI = 0x10 // 010000
)

// funct5 values of the AMO opcode, bits [31:27].
const (
	AMOAdd  = 0x00 // 00000
	AMOSwap = 0x01 // 00001
	AMOLR   = 0x02 // 00010
	AMOSC   = 0x03 // 00011
	AMOXor  = 0x04 // 00100
	AMOOr   = 0x08 // 01000
	AMOAnd  = 0x0c // 01100
	AMOMin  = 0x10 // 10000
	AMOMax  = 0x14 // 10100
	AMOMinU = 0x18 // 11000
	AMOMaxU = 0x1c // 11100
)

// funct3 width selectors of the AMO opcode.
const (
	AMOWidthW = 0x2 // 010 = RV32A W variants
	AMOWidthD = 0x3 // 011 = RV64A D variants
)

// 12-bit immediates of the SYSTEM opcode with funct3 000.
const (
	SystemECALL  = 0x000
	SystemEBREAK = 0x001
)

// ABI register indices. The decoder reports plain 0-31 indices; these names
// are for callers that want calling-convention roles.
const (
	RegZero = 0  // hardwired zero
	RegRA   = 1  // return address
	RegSP   = 2  // stack pointer
	RegGP   = 3  // global pointer
	RegTP   = 4  // thread pointer
	RegT0   = 5  // t0-t2: caller-saved temporaries
	RegS0   = 8  // s0/fp, s1: callee-saved
	RegA0   = 10 // a0-a7: arguments and return values
	RegA7   = 17
	RegS2   = 18 // s2-s11: callee-saved
	RegS11  = 27
	RegT3   = 28 // t3-t6: caller-saved temporaries
	RegT6   = 31

	RegCount = 32
)
