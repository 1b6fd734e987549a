package slow

import "github.com/holiman/uint256"

// EVM-style word operations over uint256, argument order as in yul.

type U256 = uint256.Int

func and(x, y U256) (out U256) {
	out.And(&x, &y)
	return
}

func or(x, y U256) (out U256) {
	out.Or(&x, &y)
	return
}

func not(x U256) (out U256) {
	out.Not(&x)
	return
}

func sub(x, y U256) (out U256) {
	out.Sub(&x, &y)
	return
}

func iszero(x U256) bool {
	return x.IsZero()
}

// returns y << x
func shl(x, y U256) (out U256) {
	if !x.IsUint64() || x.Uint64() >= 256 {
		return
	}
	out.Lsh(&y, uint(x.Uint64()))
	return
}

// returns y >> x
func shr(x, y U256) (out U256) {
	if !x.IsUint64() || x.Uint64() >= 256 {
		return
	}
	out.Rsh(&y, uint(x.Uint64()))
	return
}
