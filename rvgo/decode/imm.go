package decode

// signExtend interprets v[bit:0] as a two's complement number and extends it
// to 64 bits. Bits of v above bit are discarded.
func signExtend(v uint32, bit uint) int64 {
	shift := 63 - bit
	return int64(uint64(v)<<shift) >> shift
}
