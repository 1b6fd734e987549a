package slow

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignExtend64(t *testing.T) {
	require.Equal(t, uint64(0x7FF), Val(signExtend64(shortToU64(0x7FF), toU64(11))))
	require.Equal(t, ^uint64(0), Val(signExtend64(shortToU64(0xFFF), toU64(11))))
	require.Equal(t, uint64(0xFFFFFFFFFFFFF800), Val(signExtend64(shortToU64(0x800), toU64(11))))
	require.Equal(t, uint64(0), Val(signExtend64(toU64(0), toU64(63))))
}

func TestParseImmediates(t *testing.T) {
	require.Equal(t, int64(-1), Signed(ParseImmTypeI(FromWord(0xFFF00093))))   // addi x1, x0, -1
	require.Equal(t, int64(-4), Signed(ParseImmTypeS(FromWord(0xFE20AE23))))   // sw x2, -4(x1)
	require.Equal(t, int64(4088), Signed(ParseImmTypeB(FromWord(0x7E000CE3)))) // beq x0, x0, 4088
	require.Equal(t, int64(0x2000), Signed(ParseImmTypeU(FromWord(0x00002517))))
	require.Equal(t, int64(-4096), Signed(ParseImmTypeU(FromWord(0xFFFFF2B7))))
	require.Equal(t, int64(4088), Signed(ParseImmTypeJ(FromWord(0x7F90006F))))
	require.Equal(t, int64(-4), Signed(ParseImmTypeJ(FromWord(0xFFDFF06F))))
}

func TestParseFields(t *testing.T) {
	instr := FromWord(0x100120AF) // lr.w x1, (x2)
	require.Equal(t, uint64(0x2F), Val(ParseOpcode(instr)))
	require.Equal(t, uint64(1), Val(ParseRd(instr)))
	require.Equal(t, uint64(2), Val(ParseFunct3(instr)))
	require.Equal(t, uint64(2), Val(ParseRs1(instr)))
	require.Equal(t, uint64(0), Val(ParseRs2(instr)))
	require.Equal(t, uint64(0x08), Val(ParseFunct7(instr)))
}
