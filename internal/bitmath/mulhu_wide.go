package bitmath

import "github.com/holiman/uint256"

// MulHU64Wide is the "optional 128-bit promotion for 64-bit operands"
// capability switch spec.md sections 1 and 9 name explicitly: instead of
// Go's math/bits.Mul64 intrinsic (MulHU64's default path) it materializes
// the full product in an actual wide integer type, github.com/holiman/
// uint256's Int (used upstream for EVM 256-bit words). Produces identical
// results to MulHU64; it exists to give callers a literal wide-integer
// code path when they want one, not because it is faster in Go.
func MulHU64Wide(a, b uint64, shift uint) uint64 {
	var wa, wb, product uint256.Int
	wa.SetUint64(a)
	wb.SetUint64(b)
	product.Mul(&wa, &wb)

	if shift >= 256 {
		return 0
	}
	var shifted uint256.Int
	shifted.Rsh(&product, uint(shift))
	return shifted.Uint64()
}
