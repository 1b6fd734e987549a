package decode

import (
	"fmt"
	"strings"
)

// Instruction is one decoded instruction: the mnemonic and the format view it
// was built from. Args always has the format of Op.Format().
type Instruction struct {
	Op   Op
	Args View
}

func (inst Instruction) R() (RType, bool) {
	v, ok := inst.Args.(RType)
	return v, ok
}

func (inst Instruction) I() (IType, bool) {
	v, ok := inst.Args.(IType)
	return v, ok
}

func (inst Instruction) S() (SType, bool) {
	v, ok := inst.Args.(SType)
	return v, ok
}

func (inst Instruction) B() (BType, bool) {
	v, ok := inst.Args.(BType)
	return v, ok
}

func (inst Instruction) U() (UType, bool) {
	v, ok := inst.Args.(UType)
	return v, ok
}

func (inst Instruction) J() (JType, bool) {
	v, ok := inst.Args.(JType)
	return v, ok
}

// Raw re-encodes the instruction word.
func (inst Instruction) Raw() uint32 {
	if inst.Args == nil {
		return 0
	}
	return inst.Args.Encode()
}

// String renders the instruction in assembly syntax with numeric register
// and CSR operands, e.g. "addi x10, x0, -1" or "csrrs x5, 0xf14, x0".
func (inst Instruction) String() string {
	if !inst.Op.Valid() || inst.Args == nil {
		return "invalid"
	}
	tmpl := ops[inst.Op].operands
	if tmpl == "" {
		return inst.Op.String()
	}
	toks := strings.Split(tmpl, ",")
	args := make([]string, len(toks))
	for i, tok := range toks {
		args[i] = inst.operand(tok)
	}
	return inst.Op.String() + " " + strings.Join(args, ", ")
}

func (inst Instruction) operand(tok string) string {
	switch v := inst.Args.(type) {
	case RType:
		switch tok {
		case "rd":
			return xreg(v.Rd)
		case "rs1":
			return xreg(v.Rs1)
		case "rs2":
			return xreg(v.Rs2)
		case "fd":
			return freg(v.Rd)
		case "fs1":
			return freg(v.Rs1)
		case "fs2":
			return freg(v.Rs2)
		case "fs3":
			return freg(v.Rs3())
		case "addr":
			return "(" + xreg(v.Rs1) + ")"
		}
	case IType:
		switch tok {
		case "rd":
			return xreg(v.Rd)
		case "fd":
			return freg(v.Rd)
		case "rs1":
			return xreg(v.Rs1)
		case "imm":
			return fmt.Sprintf("%d", v.Imm)
		case "shamt":
			return fmt.Sprintf("%d", v.Shamt())
		case "mem":
			return fmt.Sprintf("%d(%s)", v.Imm, xreg(v.Rs1))
		case "csr":
			return fmt.Sprintf("%#03x", v.CSR())
		case "zimm":
			return fmt.Sprintf("%d", v.Zimm())
		case "pred":
			return fenceSet(uint8(v.Imm12>>4) & 0xF)
		case "succ":
			return fenceSet(uint8(v.Imm12) & 0xF)
		}
	case SType:
		switch tok {
		case "rs2":
			return xreg(v.Rs2)
		case "fs2":
			return freg(v.Rs2)
		case "mem":
			return fmt.Sprintf("%d(%s)", v.Imm, xreg(v.Rs1))
		}
	case BType:
		switch tok {
		case "rs1":
			return xreg(v.Rs1)
		case "rs2":
			return xreg(v.Rs2)
		case "off":
			return fmt.Sprintf("%d", v.Imm)
		}
	case UType:
		switch tok {
		case "rd":
			return xreg(v.Rd)
		case "uimm":
			return fmt.Sprintf("%#x", v.Imm20)
		}
	case JType:
		switch tok {
		case "rd":
			return xreg(v.Rd)
		case "off":
			return fmt.Sprintf("%d", v.Imm)
		}
	}
	return "?"
}

func xreg(r uint8) string { return fmt.Sprintf("x%d", r) }
func freg(r uint8) string { return fmt.Sprintf("f%d", r) }

// fenceSet renders a FENCE predecessor or successor set, bits IORW.
func fenceSet(bits uint8) string {
	if bits == 0 {
		return "0"
	}
	var sb strings.Builder
	for i, c := range "iorw" {
		if bits&(0x8>>i) != 0 {
			sb.WriteRune(c)
		}
	}
	return sb.String()
}
