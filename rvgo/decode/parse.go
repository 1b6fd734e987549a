package decode

import "github.com/zaneoblaneo/zRV64imc-emu/rvgo/riscv"

// views holds every format interpretation of one word.
type views struct {
	r RType
	i IType
	s SType
	b BType
	u UType
	j JType
}

func extractAll(raw uint32) views {
	return views{
		r: ExtractR(raw),
		i: ExtractI(raw),
		s: ExtractS(raw),
		b: ExtractB(raw),
		u: ExtractU(raw),
		j: ExtractJ(raw),
	}
}

func (v *views) of(f Format) View {
	switch f {
	case FormatR:
		return v.r
	case FormatI:
		return v.i
	case FormatS:
		return v.s
	case FormatB:
		return v.b
	case FormatU:
		return v.u
	case FormatJ:
		return v.j
	default:
		return nil
	}
}

// selector is the tuple the dispatch table is keyed by.
// imm12 is only set for the SYSTEM opcode.
type selector struct {
	opcode uint8
	funct3 uint8
	funct7 uint8
	imm12  uint16
}

func newSelector(v *views) selector {
	sel := selector{
		opcode: v.r.Opcode,
		funct3: v.r.Funct3,
		funct7: v.r.Funct7,
	}
	if sel.opcode == riscv.OpcodeSystem {
		sel.imm12 = v.i.Imm12
	}
	return sel
}

// Parse decodes a single 32-bit instruction word.
// The error is ErrCompressedUnsupported for 16-bit encodings, or an
// *UnknownEncodingError when no instruction matches.
// Parse is a pure function and safe for concurrent use.
func Parse(raw uint32) (Instruction, error) {
	if Probe(raw).Compressed() {
		return Instruction{}, ErrCompressedUnsupported
	}
	v := extractAll(raw)
	sel := newSelector(&v)
	op := lookup(sel)
	if op == OpInvalid {
		return Instruction{}, &UnknownEncodingError{
			Opcode: sel.opcode,
			Funct3: sel.funct3,
			Funct7: sel.funct7,
		}
	}
	return Instruction{Op: op, Args: v.of(op.Format())}, nil
}

// lookup resolves a selector opcode -> funct3 -> funct7. Rows are disjoint;
// anything not listed is OpInvalid.
func lookup(sel selector) Op {
	funct3, funct7 := sel.funct3, sel.funct7
	switch sel.opcode {
	case riscv.OpcodeLUI: // 011_0111: LUI = Load upper immediate
		return OpLUI
	case riscv.OpcodeAUIPC: // 001_0111: AUIPC = Add upper immediate to PC
		return OpAUIPC
	case riscv.OpcodeJAL: // 110_1111: JAL = Jump and link
		return OpJAL
	case riscv.OpcodeJALR: // 110_0111: JALR = Jump and link register
		if funct3 == 0 {
			return OpJALR
		}
	case riscv.OpcodeBranch: // 110_0011: branching
		switch funct3 {
		case 0: // 000 = BEQ
			return OpBEQ
		case 1: // 001 = BNE
			return OpBNE
		case 4: // 100 = BLT
			return OpBLT
		case 5: // 101 = BGE
			return OpBGE
		case 6: // 110 = BLTU
			return OpBLTU
		case 7: // 111 = BGEU
			return OpBGEU
		}
	case riscv.OpcodeLoad: // 000_0011: memory loading
		switch funct3 {
		case 0: // 000 = LB
			return OpLB
		case 1: // 001 = LH
			return OpLH
		case 2: // 010 = LW
			return OpLW
		case 3: // 011 = LD
			return OpLD
		case 4: // 100 = LBU
			return OpLBU
		case 5: // 101 = LHU
			return OpLHU
		case 6: // 110 = LWU
			return OpLWU
		}
	case riscv.OpcodeStore: // 010_0011: memory storing
		switch funct3 {
		case 0: // 000 = SB
			return OpSB
		case 1: // 001 = SH
			return OpSH
		case 2: // 010 = SW
			return OpSW
		case 3: // 011 = SD
			return OpSD
		}
	case riscv.OpcodeOpImm: // 001_0011: immediate arithmetic and logic
		switch funct3 {
		case 0: // 000 = ADDI
			return OpADDI
		case 1: // 001 = SLLI
			if funct7>>1 == riscv.Funct6SLLI {
				return OpSLLI
			}
		case 2: // 010 = SLTI
			return OpSLTI
		case 3: // 011 = SLTIU
			return OpSLTIU
		case 4: // 100 = XORI
			return OpXORI
		case 5: // 101 = SR~
			switch funct7 >> 1 { // in rv64i the top 6 bits select the shift type
			case riscv.Funct6SRLI: // 000000 = SRLI
				return OpSRLI
			case riscv.Funct6SRAI: // 010000 = SRAI
				return OpSRAI
			}
		case 6: // 110 = ORI
			return OpORI
		case 7: // 111 = ANDI
			return OpANDI
		}
	case riscv.OpcodeOpImm32: // 001_1011: immediate arithmetic and logic signed 32 bit
		switch funct3 {
		case 0: // 000 = ADDIW
			return OpADDIW
		case 1: // 001 = SLLIW
			if funct7 == riscv.Funct7Base {
				return OpSLLIW
			}
		case 5: // 101 = SR~
			switch funct7 {
			case riscv.Funct7Base: // 0000000 = SRLIW
				return OpSRLIW
			case riscv.Funct7Alt: // 0100000 = SRAIW
				return OpSRAIW
			}
		}
	case riscv.OpcodeOp: // 011_0011: register arithmetic and logic
		switch funct7 {
		case riscv.Funct7Base:
			switch funct3 {
			case 0: // 000 = ADD
				return OpADD
			case 1: // 001 = SLL
				return OpSLL
			case 2: // 010 = SLT
				return OpSLT
			case 3: // 011 = SLTU
				return OpSLTU
			case 4: // 100 = XOR
				return OpXOR
			case 5: // 101 = SRL
				return OpSRL
			case 6: // 110 = OR
				return OpOR
			case 7: // 111 = AND
				return OpAND
			}
		case riscv.Funct7Alt:
			switch funct3 {
			case 0: // 000 = SUB
				return OpSUB
			case 5: // 101 = SRA
				return OpSRA
			}
		case riscv.Funct7MulDiv: // RV M extension
			switch funct3 {
			case 0: // 000 = MUL: signed x signed
				return OpMUL
			case 1: // 001 = MULH: upper bits of signed x signed
				return OpMULH
			case 2: // 010 = MULHSU: upper bits of signed x unsigned
				return OpMULHSU
			case 3: // 011 = MULHU: upper bits of unsigned x unsigned
				return OpMULHU
			case 4: // 100 = DIV
				return OpDIV
			case 5: // 101 = DIVU
				return OpDIVU
			case 6: // 110 = REM
				return OpREM
			case 7: // 111 = REMU
				return OpREMU
			}
		}
	case riscv.OpcodeOp32: // 011_1011: register arithmetic and logic in 32 bits
		switch funct7 {
		case riscv.Funct7Base:
			switch funct3 {
			case 0: // 000 = ADDW
				return OpADDW
			case 1: // 001 = SLLW
				return OpSLLW
			case 5: // 101 = SRLW
				return OpSRLW
			}
		case riscv.Funct7Alt:
			switch funct3 {
			case 0: // 000 = SUBW
				return OpSUBW
			case 5: // 101 = SRAW
				return OpSRAW
			}
		case riscv.Funct7MulDiv: // RV M extension
			switch funct3 {
			case 0: // 000 = MULW
				return OpMULW
			case 4: // 100 = DIVW
				return OpDIVW
			case 5: // 101 = DIVUW
				return OpDIVUW
			case 6: // 110 = REMW
				return OpREMW
			case 7: // 111 = REMUW
				return OpREMUW
			}
		}
	case riscv.OpcodeMiscMem: // 000_1111: fence
		switch funct3 {
		case 0: // 000 = FENCE, FENCE.TSO and PAUSE
			return OpFENCE
		case 1: // 001 = FENCE.I
			return OpFENCEI
		}
	case riscv.OpcodeSystem: // 111_0011: environment things
		switch funct3 {
		case 0: // 000 = ECALL/EBREAK
			switch sel.imm12 { // I-type, top 12 bits
			case riscv.SystemECALL:
				return OpECALL
			case riscv.SystemEBREAK:
				return OpEBREAK
			}
		case 1: // 001 = CSRRW
			return OpCSRRW
		case 2: // 010 = CSRRS
			return OpCSRRS
		case 3: // 011 = CSRRC
			return OpCSRRC
		case 5: // 101 = CSRRWI
			return OpCSRRWI
		case 6: // 110 = CSRRSI
			return OpCSRRSI
		case 7: // 111 = CSRRCI
			return OpCSRRCI
		}
	case riscv.OpcodeAMO: // 010_1111: RV32A and RV64A atomic operations extension
		// Only LR.W is wired; the other atomics are declared ops without rows yet.
		if funct3 == riscv.AMOWidthW && funct7>>2 == riscv.AMOLR {
			return OpLRW
		}
	}
	return OpInvalid
}
