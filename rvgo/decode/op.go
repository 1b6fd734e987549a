package decode

import "fmt"

// Extension is the ISA extension an instruction belongs to.
type Extension uint8

const (
	ExtI        Extension = iota + 1 // base integer
	ExtZifencei                      // instruction-fetch fence
	ExtZicsr                         // control and status registers
	ExtM                             // multiply and divide
	ExtA                             // atomic
	ExtF                             // single-precision floating point
	ExtD                             // double-precision floating point
)

func (e Extension) String() string {
	switch e {
	case ExtI:
		return "I"
	case ExtZifencei:
		return "Zifencei"
	case ExtZicsr:
		return "Zicsr"
	case ExtM:
		return "M"
	case ExtA:
		return "A"
	case ExtF:
		return "F"
	case ExtD:
		return "D"
	default:
		return fmt.Sprintf("Extension(%d)", uint8(e))
	}
}

// MarshalText encodes the extension by name, so it can key JSON maps.
func (e Extension) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// Op names one instruction mnemonic.
type Op uint8

const (
	OpInvalid Op = iota

	// RV32I
	OpLUI
	OpAUIPC
	OpJAL
	OpJALR
	OpBEQ
	OpBNE
	OpBLT
	OpBGE
	OpBLTU
	OpBGEU
	OpLB
	OpLH
	OpLW
	OpLBU
	OpLHU
	OpSB
	OpSH
	OpSW
	OpADDI
	OpSLTI
	OpSLTIU
	OpXORI
	OpORI
	OpANDI
	OpSLLI
	OpSRLI
	OpSRAI
	OpADD
	OpSUB
	OpSLL
	OpSLT
	OpSLTU
	OpXOR
	OpSRL
	OpSRA
	OpOR
	OpAND
	OpFENCE
	OpECALL
	OpEBREAK

	// RV64I
	OpLWU
	OpLD
	OpSD
	OpADDIW
	OpSLLIW
	OpSRLIW
	OpSRAIW
	OpADDW
	OpSUBW
	OpSLLW
	OpSRLW
	OpSRAW

	// Zifencei
	OpFENCEI

	// Zicsr
	OpCSRRW
	OpCSRRS
	OpCSRRC
	OpCSRRWI
	OpCSRRSI
	OpCSRRCI

	// RV32M
	OpMUL
	OpMULH
	OpMULHSU
	OpMULHU
	OpDIV
	OpDIVU
	OpREM
	OpREMU

	// RV64M
	OpMULW
	OpDIVW
	OpDIVUW
	OpREMW
	OpREMUW

	// RV32A
	OpLRW
	OpSCW
	OpAMOSWAPW
	OpAMOADDW
	OpAMOXORW
	OpAMOANDW
	OpAMOORW
	OpAMOMINW
	OpAMOMAXW
	OpAMOMINUW
	OpAMOMAXUW

	// RV64A
	OpLRD
	OpSCD
	OpAMOSWAPD
	OpAMOADDD
	OpAMOXORD
	OpAMOANDD
	OpAMOORD
	OpAMOMIND
	OpAMOMAXD
	OpAMOMINUD
	OpAMOMAXUD

	// RV32F
	OpFLW
	OpFSW
	OpFMADDS
	OpFMSUBS
	OpFNMSUBS
	OpFNMADDS
	OpFADDS
	OpFSUBS
	OpFMULS
	OpFDIVS
	OpFSQRTS
	OpFSGNJS
	OpFSGNJNS
	OpFSGNJXS
	OpFMINS
	OpFMAXS
	OpFCVTWS
	OpFCVTWUS
	OpFMVXW
	OpFEQS
	OpFLTS
	OpFLES
	OpFCLASSS
	OpFCVTSW
	OpFCVTSWU
	OpFMVWX

	// RV64F
	OpFCVTLS
	OpFCVTLUS
	OpFCVTSL
	OpFCVTSLU

	// RV32D
	OpFLD
	OpFSD
	OpFMADDD
	OpFMSUBD
	OpFNMSUBD
	OpFNMADDD
	OpFADDD
	OpFSUBD
	OpFMULD
	OpFDIVD
	OpFSQRTD
	OpFSGNJD
	OpFSGNJND
	OpFSGNJXD
	OpFMIND
	OpFMAXD
	OpFCVTSD
	OpFCVTDS
	OpFEQD
	OpFLTD
	OpFLED
	OpFCLASSD
	OpFCVTWD
	OpFCVTWUD
	OpFCVTDW
	OpFCVTDWU

	// RV64D
	OpFCVTLD
	OpFCVTLUD
	OpFMVXD
	OpFCVTDL
	OpFCVTDLU
	OpFMVDX

	opCount
)

type opInfo struct {
	name   string
	format Format
	ext    Extension
	rv64   bool
	// operands is the comma separated operand template used by String.
	operands string
}

var ops = [opCount]opInfo{
	OpLUI:   {"lui", FormatU, ExtI, false, "rd,uimm"},
	OpAUIPC: {"auipc", FormatU, ExtI, false, "rd,uimm"},
	OpJAL:   {"jal", FormatJ, ExtI, false, "rd,off"},
	OpJALR:  {"jalr", FormatI, ExtI, false, "rd,mem"},
	OpBEQ:   {"beq", FormatB, ExtI, false, "rs1,rs2,off"},
	OpBNE:   {"bne", FormatB, ExtI, false, "rs1,rs2,off"},
	OpBLT:   {"blt", FormatB, ExtI, false, "rs1,rs2,off"},
	OpBGE:   {"bge", FormatB, ExtI, false, "rs1,rs2,off"},
	OpBLTU:  {"bltu", FormatB, ExtI, false, "rs1,rs2,off"},
	OpBGEU:  {"bgeu", FormatB, ExtI, false, "rs1,rs2,off"},
	OpLB:    {"lb", FormatI, ExtI, false, "rd,mem"},
	OpLH:    {"lh", FormatI, ExtI, false, "rd,mem"},
	OpLW:    {"lw", FormatI, ExtI, false, "rd,mem"},
	OpLBU:   {"lbu", FormatI, ExtI, false, "rd,mem"},
	OpLHU:   {"lhu", FormatI, ExtI, false, "rd,mem"},
	OpSB:    {"sb", FormatS, ExtI, false, "rs2,mem"},
	OpSH:    {"sh", FormatS, ExtI, false, "rs2,mem"},
	OpSW:    {"sw", FormatS, ExtI, false, "rs2,mem"},
	OpADDI:  {"addi", FormatI, ExtI, false, "rd,rs1,imm"},
	OpSLTI:  {"slti", FormatI, ExtI, false, "rd,rs1,imm"},
	OpSLTIU: {"sltiu", FormatI, ExtI, false, "rd,rs1,imm"},
	OpXORI:  {"xori", FormatI, ExtI, false, "rd,rs1,imm"},
	OpORI:   {"ori", FormatI, ExtI, false, "rd,rs1,imm"},
	OpANDI:  {"andi", FormatI, ExtI, false, "rd,rs1,imm"},
	OpSLLI:  {"slli", FormatI, ExtI, false, "rd,rs1,shamt"},
	OpSRLI:  {"srli", FormatI, ExtI, false, "rd,rs1,shamt"},
	OpSRAI:  {"srai", FormatI, ExtI, false, "rd,rs1,shamt"},
	OpADD:   {"add", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpSUB:   {"sub", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpSLL:   {"sll", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpSLT:   {"slt", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpSLTU:  {"sltu", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpXOR:   {"xor", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpSRL:   {"srl", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpSRA:   {"sra", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpOR:    {"or", FormatR, ExtI, false, "rd,rs1,rs2"},
	OpAND:   {"and", FormatR, ExtI, false, "rd,rs1,rs2"},

	OpFENCE:  {"fence", FormatI, ExtI, false, "pred,succ"},
	OpECALL:  {"ecall", FormatI, ExtI, false, ""},
	OpEBREAK: {"ebreak", FormatI, ExtI, false, ""},

	OpLWU:   {"lwu", FormatI, ExtI, true, "rd,mem"},
	OpLD:    {"ld", FormatI, ExtI, true, "rd,mem"},
	OpSD:    {"sd", FormatS, ExtI, true, "rs2,mem"},
	OpADDIW: {"addiw", FormatI, ExtI, true, "rd,rs1,imm"},
	OpSLLIW: {"slliw", FormatI, ExtI, true, "rd,rs1,shamt"},
	OpSRLIW: {"srliw", FormatI, ExtI, true, "rd,rs1,shamt"},
	OpSRAIW: {"sraiw", FormatI, ExtI, true, "rd,rs1,shamt"},
	OpADDW:  {"addw", FormatR, ExtI, true, "rd,rs1,rs2"},
	OpSUBW:  {"subw", FormatR, ExtI, true, "rd,rs1,rs2"},
	OpSLLW:  {"sllw", FormatR, ExtI, true, "rd,rs1,rs2"},
	OpSRLW:  {"srlw", FormatR, ExtI, true, "rd,rs1,rs2"},
	OpSRAW:  {"sraw", FormatR, ExtI, true, "rd,rs1,rs2"},

	OpFENCEI: {"fence.i", FormatI, ExtZifencei, false, ""},

	OpCSRRW:  {"csrrw", FormatI, ExtZicsr, false, "rd,csr,rs1"},
	OpCSRRS:  {"csrrs", FormatI, ExtZicsr, false, "rd,csr,rs1"},
	OpCSRRC:  {"csrrc", FormatI, ExtZicsr, false, "rd,csr,rs1"},
	OpCSRRWI: {"csrrwi", FormatI, ExtZicsr, false, "rd,csr,zimm"},
	OpCSRRSI: {"csrrsi", FormatI, ExtZicsr, false, "rd,csr,zimm"},
	OpCSRRCI: {"csrrci", FormatI, ExtZicsr, false, "rd,csr,zimm"},

	OpMUL:    {"mul", FormatR, ExtM, false, "rd,rs1,rs2"},
	OpMULH:   {"mulh", FormatR, ExtM, false, "rd,rs1,rs2"},
	OpMULHSU: {"mulhsu", FormatR, ExtM, false, "rd,rs1,rs2"},
	OpMULHU:  {"mulhu", FormatR, ExtM, false, "rd,rs1,rs2"},
	OpDIV:    {"div", FormatR, ExtM, false, "rd,rs1,rs2"},
	OpDIVU:   {"divu", FormatR, ExtM, false, "rd,rs1,rs2"},
	OpREM:    {"rem", FormatR, ExtM, false, "rd,rs1,rs2"},
	OpREMU:   {"remu", FormatR, ExtM, false, "rd,rs1,rs2"},

	OpMULW:  {"mulw", FormatR, ExtM, true, "rd,rs1,rs2"},
	OpDIVW:  {"divw", FormatR, ExtM, true, "rd,rs1,rs2"},
	OpDIVUW: {"divuw", FormatR, ExtM, true, "rd,rs1,rs2"},
	OpREMW:  {"remw", FormatR, ExtM, true, "rd,rs1,rs2"},
	OpREMUW: {"remuw", FormatR, ExtM, true, "rd,rs1,rs2"},

	OpLRW:      {"lr.w", FormatR, ExtA, false, "rd,addr"},
	OpSCW:      {"sc.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOSWAPW: {"amoswap.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOADDW:  {"amoadd.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOXORW:  {"amoxor.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOANDW:  {"amoand.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOORW:   {"amoor.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOMINW:  {"amomin.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOMAXW:  {"amomax.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOMINUW: {"amominu.w", FormatR, ExtA, false, "rd,rs2,addr"},
	OpAMOMAXUW: {"amomaxu.w", FormatR, ExtA, false, "rd,rs2,addr"},

	OpLRD:      {"lr.d", FormatR, ExtA, true, "rd,addr"},
	OpSCD:      {"sc.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOSWAPD: {"amoswap.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOADDD:  {"amoadd.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOXORD:  {"amoxor.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOANDD:  {"amoand.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOORD:   {"amoor.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOMIND:  {"amomin.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOMAXD:  {"amomax.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOMINUD: {"amominu.d", FormatR, ExtA, true, "rd,rs2,addr"},
	OpAMOMAXUD: {"amomaxu.d", FormatR, ExtA, true, "rd,rs2,addr"},

	OpFLW:     {"flw", FormatI, ExtF, false, "fd,mem"},
	OpFSW:     {"fsw", FormatS, ExtF, false, "fs2,mem"},
	OpFMADDS:  {"fmadd.s", FormatR, ExtF, false, "fd,fs1,fs2,fs3"},
	OpFMSUBS:  {"fmsub.s", FormatR, ExtF, false, "fd,fs1,fs2,fs3"},
	OpFNMSUBS: {"fnmsub.s", FormatR, ExtF, false, "fd,fs1,fs2,fs3"},
	OpFNMADDS: {"fnmadd.s", FormatR, ExtF, false, "fd,fs1,fs2,fs3"},
	OpFADDS:   {"fadd.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFSUBS:   {"fsub.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFMULS:   {"fmul.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFDIVS:   {"fdiv.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFSQRTS:  {"fsqrt.s", FormatR, ExtF, false, "fd,fs1"},
	OpFSGNJS:  {"fsgnj.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFSGNJNS: {"fsgnjn.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFSGNJXS: {"fsgnjx.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFMINS:   {"fmin.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFMAXS:   {"fmax.s", FormatR, ExtF, false, "fd,fs1,fs2"},
	OpFCVTWS:  {"fcvt.w.s", FormatR, ExtF, false, "rd,fs1"},
	OpFCVTWUS: {"fcvt.wu.s", FormatR, ExtF, false, "rd,fs1"},
	OpFMVXW:   {"fmv.x.w", FormatR, ExtF, false, "rd,fs1"},
	OpFEQS:    {"feq.s", FormatR, ExtF, false, "rd,fs1,fs2"},
	OpFLTS:    {"flt.s", FormatR, ExtF, false, "rd,fs1,fs2"},
	OpFLES:    {"fle.s", FormatR, ExtF, false, "rd,fs1,fs2"},
	OpFCLASSS: {"fclass.s", FormatR, ExtF, false, "rd,fs1"},
	OpFCVTSW:  {"fcvt.s.w", FormatR, ExtF, false, "fd,rs1"},
	OpFCVTSWU: {"fcvt.s.wu", FormatR, ExtF, false, "fd,rs1"},
	OpFMVWX:   {"fmv.w.x", FormatR, ExtF, false, "fd,rs1"},

	OpFCVTLS:  {"fcvt.l.s", FormatR, ExtF, true, "rd,fs1"},
	OpFCVTLUS: {"fcvt.lu.s", FormatR, ExtF, true, "rd,fs1"},
	OpFCVTSL:  {"fcvt.s.l", FormatR, ExtF, true, "fd,rs1"},
	OpFCVTSLU: {"fcvt.s.lu", FormatR, ExtF, true, "fd,rs1"},

	OpFLD:     {"fld", FormatI, ExtD, false, "fd,mem"},
	OpFSD:     {"fsd", FormatS, ExtD, false, "fs2,mem"},
	OpFMADDD:  {"fmadd.d", FormatR, ExtD, false, "fd,fs1,fs2,fs3"},
	OpFMSUBD:  {"fmsub.d", FormatR, ExtD, false, "fd,fs1,fs2,fs3"},
	OpFNMSUBD: {"fnmsub.d", FormatR, ExtD, false, "fd,fs1,fs2,fs3"},
	OpFNMADDD: {"fnmadd.d", FormatR, ExtD, false, "fd,fs1,fs2,fs3"},
	OpFADDD:   {"fadd.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFSUBD:   {"fsub.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFMULD:   {"fmul.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFDIVD:   {"fdiv.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFSQRTD:  {"fsqrt.d", FormatR, ExtD, false, "fd,fs1"},
	OpFSGNJD:  {"fsgnj.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFSGNJND: {"fsgnjn.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFSGNJXD: {"fsgnjx.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFMIND:   {"fmin.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFMAXD:   {"fmax.d", FormatR, ExtD, false, "fd,fs1,fs2"},
	OpFCVTSD:  {"fcvt.s.d", FormatR, ExtD, false, "fd,fs1"},
	OpFCVTDS:  {"fcvt.d.s", FormatR, ExtD, false, "fd,fs1"},
	OpFEQD:    {"feq.d", FormatR, ExtD, false, "rd,fs1,fs2"},
	OpFLTD:    {"flt.d", FormatR, ExtD, false, "rd,fs1,fs2"},
	OpFLED:    {"fle.d", FormatR, ExtD, false, "rd,fs1,fs2"},
	OpFCLASSD: {"fclass.d", FormatR, ExtD, false, "rd,fs1"},
	OpFCVTWD:  {"fcvt.w.d", FormatR, ExtD, false, "rd,fs1"},
	OpFCVTWUD: {"fcvt.wu.d", FormatR, ExtD, false, "rd,fs1"},
	OpFCVTDW:  {"fcvt.d.w", FormatR, ExtD, false, "fd,rs1"},
	OpFCVTDWU: {"fcvt.d.wu", FormatR, ExtD, false, "fd,rs1"},

	OpFCVTLD:  {"fcvt.l.d", FormatR, ExtD, true, "rd,fs1"},
	OpFCVTLUD: {"fcvt.lu.d", FormatR, ExtD, true, "rd,fs1"},
	OpFMVXD:   {"fmv.x.d", FormatR, ExtD, true, "rd,fs1"},
	OpFCVTDL:  {"fcvt.d.l", FormatR, ExtD, true, "fd,rs1"},
	OpFCVTDLU: {"fcvt.d.lu", FormatR, ExtD, true, "fd,rs1"},
	OpFMVDX:   {"fmv.d.x", FormatR, ExtD, true, "fd,rs1"},
}

// Ops lists every declared mnemonic, in declaration order.
func Ops() []Op {
	out := make([]Op, 0, opCount-1)
	for op := OpInvalid + 1; op < opCount; op++ {
		out = append(out, op)
	}
	return out
}

// Valid reports whether op is a declared mnemonic.
func (op Op) Valid() bool {
	return op > OpInvalid && op < opCount
}

func (op Op) String() string {
	if !op.Valid() {
		return fmt.Sprintf("Op(%d)", uint8(op))
	}
	return ops[op].name
}

// Format is the encoding format the instruction is built from.
func (op Op) Format() Format {
	if !op.Valid() {
		return 0
	}
	return ops[op].format
}

func (op Op) Extension() Extension {
	if !op.Valid() {
		return 0
	}
	return ops[op].ext
}

// RV64Only reports whether the instruction exists only in the 64-bit base ISA.
func (op Op) RV64Only() bool {
	return op.Valid() && ops[op].rv64
}

// MarshalText encodes the op as its assembly name.
func (op Op) MarshalText() ([]byte, error) {
	if !op.Valid() {
		return nil, fmt.Errorf("invalid op %d", uint8(op))
	}
	return []byte(ops[op].name), nil
}
