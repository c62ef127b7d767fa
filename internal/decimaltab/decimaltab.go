// Package decimaltab holds the precomputed power-of-ten tables that back
// decimal<->fixed conversion without a division opcode: pow10_table for
// exact powers of ten, log10_table for the default decimal precision a
// given fractional-bit count justifies, and pow10_inv_table for scaled
// reciprocal powers of ten consumed by DivPow10_32/DivPow10_64.
//
// The inverse-table mantissas were generated the same way the original
// library generated them (see utils/invpow10.py in the source this was
// ported from): for each exponent k, find the largest j such that
// 2^j/10^k <= 1, then store floor(2^j/10^k * 2^bits) (2^bits - 1 for
// k = 0) alongside j.
package decimaltab

import "github.com/develer-staff/fixedpoint/internal/bitmath"

// MaxLog10_32 and MaxLog10_64 bound the decimal precision/exponent
// DivPow10_32/DivPow10_64 and Log10_32/Log10_64 can serve.
const (
	MaxLog10_32 = 9
	MaxLog10_64 = 18
)

// Pow10_32 holds 10^k for k in [0, MaxLog10_32].
var Pow10_32 = [MaxLog10_32 + 1]int32{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000, 1000000000,
}

// Pow10_64 holds 10^k for k in [0, MaxLog10_64].
var Pow10_64 = [MaxLog10_64 + 1]int64{
	1, 10, 100, 1000, 10000, 100000, 1000000, 10000000, 100000000,
	1000000000, 10000000000, 100000000000, 1000000000000, 10000000000000,
	100000000000000, 1000000000000000, 10000000000000000, 100000000000000000,
	1000000000000000000,
}

// Log10_32 holds floor(log10(2^k)) for k in [0,32), indexed by fractional
// bit count to pick the largest decimal precision that bit count justifies.
var Log10_32 = [32]int{
	0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 3, 4, 4,
	4, 5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 8, 8, 8, 9, 9,
}

// Log10_64 is Log10_32's 64-bit counterpart, k in [0,64).
var Log10_64 = [64]int{
	0, 0, 0, 0, 1, 1, 1, 2, 2, 2, 3, 3, 3, 3, 4, 4,
	4, 5, 5, 5, 6, 6, 6, 6, 7, 7, 7, 8, 8, 8, 9, 9,
	9, 9, 10, 10, 10, 11, 11, 11, 12, 12, 12, 12, 13, 13, 13, 14,
	14, 14, 15, 15, 15, 15, 16, 16, 16, 17, 17, 17, 18, 18, 18, 18,
}

// InvPow10_32 holds, for exponent k at index k, the normalized mantissa
// of the scaled reciprocal of 10^k (top bit set); InvPow10Shift32[k] is
// the accompanying extra_shift. The true reciprocal is
// mantissa >> (32 + extra_shift). Index MaxLog10_32 is intentionally
// zero: the source's table is sized one past the last generated pair and
// relies on static zero-initialization there. DivPow10_32 therefore
// returns 0 for exp == MaxLog10_32: ToDecimal's rounding bump adds
// nothing when prec is MaxLog10_32-1, and ParseDecimal's ninth
// fractional digit contributes nothing.
var InvPow10_32 = [MaxLog10_32 + 1]uint32{
	0xffffffff,
	0xcccccccc,
	0xa3d70a3d,
	0x83126e97,
	0xd1b71758,
	0xa7c5ac47,
	0x8637bd05,
	0xd6bf94d5,
	0xabcc7711,
	0,
}

// InvPow10Shift32 pairs with InvPow10_32.
var InvPow10Shift32 = [MaxLog10_32 + 1]int{0, 3, 6, 9, 13, 16, 19, 23, 26, 0}

// InvPow10_64 is InvPow10_32's 64-bit counterpart.
var InvPow10_64 = [MaxLog10_64 + 1]uint64{
	0xffffffffffffffff,
	0xcccccccccccccccc,
	0xa3d70a3d70a3d70a,
	0x83126e978d4fdf3b,
	0xd1b71758e219652b,
	0xa7c5ac471b478423,
	0x8637bd05af6c69b5,
	0xd6bf94d5e57a42bc,
	0xabcc77118461cefc,
	0x89705f4136b4a597,
	0xdbe6fecebdedd5be,
	0xafebff0bcb24aafe,
	0x8cbccc096f5088cb,
	0xe12e13424bb40e13,
	0xb424dc35095cd80f,
	0x901d7cf73ab0acd9,
	0xe69594bec44de15b,
	0xb877aa3236a4b449,
	0x9392ee8e921d5d07,
}

// InvPow10Shift64 pairs with InvPow10_64.
var InvPow10Shift64 = [MaxLog10_64 + 1]int{
	0, 3, 6, 9, 13, 16, 19, 23, 26, 29, 33, 36, 39, 43, 46, 49, 53, 56, 59,
}

// DivPow10_32 computes num/10^exp scaled into an F-bit-fractional Q(*,F)
// value, with exp in [0, MaxLog10_32) and num > 0, using only shifts and
// one multiply against the precomputed reciprocal mantissa.
func DivPow10_32(num int32, exp, f int) int32 {
	const w = 32
	if exp >= len(InvPow10_32) {
		return 0
	}
	intbits := bitmath.Log2CeilU64(uint64(num))

	value := InvPow10_32[exp]
	shift := w + InvPow10Shift32[exp]

	value >>= uint(intbits)
	shift -= intbits

	value *= uint32(num)
	value >>= 1
	shift--

	if shift > f {
		d := shift - f
		if d > w {
			return 0
		}
		return int32((value + (1 << uint(d-1))) >> uint(d))
	}
	return int32(value << uint(f-shift))
}

// DivPow10_64 is DivPow10_32's 64-bit counterpart, exp in [0, MaxLog10_64).
func DivPow10_64(num int64, exp, f int) int64 {
	const w = 64
	if exp >= len(InvPow10_64) {
		return 0
	}
	intbits := bitmath.Log2CeilU64(uint64(num))

	value := InvPow10_64[exp]
	shift := w + InvPow10Shift64[exp]

	value >>= uint(intbits)
	shift -= intbits

	value *= uint64(num)
	value >>= 1
	shift--

	if shift > f {
		d := shift - f
		if d > w {
			return 0
		}
		return int64((value + (1 << uint(d-1))) >> uint(d))
	}
	return int64(value << uint(f-shift))
}
