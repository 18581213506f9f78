package bitmanip

import "strconv"

// ToBinaryString renders v as an unsigned 32-bit two's-complement binary
// string without leading zeros, so negative values always take 32 digits.
func ToBinaryString(v int32) string {
	return strconv.FormatUint(uint64(uint32(v)), 2)
}

// ArithmeticShiftRight shifts v right by n bits, copying the sign bit into
// the vacated positions. Shifting a negative value by 31 yields -1.
func ArithmeticShiftRight(v int32, n uint) int32 {
	return v >> n
}

// LogicalShiftRight shifts v right by n bits, filling with zeros.
func LogicalShiftRight(v int32, n uint) int32 {
	return int32(uint32(v) >> n)
}
