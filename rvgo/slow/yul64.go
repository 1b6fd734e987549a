package slow

import "github.com/holiman/uint256"

// U64 is like a Go uint64, always within range, but represented as uint256 in memory with 0 padding.
type U64 uint256.Int

// FromWord widens a 32-bit instruction word.
func FromWord(raw uint32) U64 {
	return U64(*uint256.NewInt(uint64(raw)))
}

func Val(v U64) uint64 {
	return (*uint256.Int)(&v).Uint64()
}

// Signed reinterprets the 64-bit value as two's complement.
func Signed(v U64) int64 {
	return int64(Val(v))
}

func toU256(v uint8) U256 {
	return *uint256.NewInt(uint64(v))
}

func toU64(v uint8) U64 {
	return U64(toU256(v))
}

func shortToU64(v uint16) U64 {
	return U64(*uint256.NewInt(uint64(v)))
}

func u64Mask() U64 { // max uint64
	return U64(shr(toU256(192), not(U256{}))) // 256-64 = 192
}

func u256ToU64(v U256) U64 {
	return U64(and(v, U256(u64Mask())))
}

// signExtend64 copies bit `bit` of v into every higher bit of the 64-bit value.
func signExtend64(v U64, bit U64) U64 {
	if iszero(and(U256(v), shl(U256(bit), toU256(1)))) {
		// fill with zeroes, by masking
		return U64(and(U256(v), shr(sub(toU256(63), U256(bit)), U256(u64Mask()))))
	}
	// fill with ones, by or-ing
	return u256ToU64(or(U256(v), shl(U256(bit), U256(u64Mask()))))
}

func and64(x, y U64) (out U64) {
	out = U64(and(U256(x), U256(y)))
	return
}

func or64(x, y U64) (out U64) {
	out = U64(or(U256(x), U256(y)))
	return
}

// returns x << y, truncated to 64 bits
func shl64(x, y U64) (out U64) {
	out = u256ToU64(shl(U256(y), U256(x)))
	return
}

// returns x >> y
func shr64(x, y U64) (out U64) {
	out = U64(shr(U256(y), U256(x)))
	return
}
