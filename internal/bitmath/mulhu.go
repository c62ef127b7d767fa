package bitmath

import "math/bits"

// MulHU8 computes (a*b) >> shift for unsigned 8-bit operands, shift >= 8,
// by promoting to the native 16-bit type. 16-bit is skipped as a Q backing
// width (spec: slow on common CPUs) but is fine as a scratch promotion type.
func MulHU8(a, b uint8, shift uint) uint8 {
	if shift >= 16 {
		return 0
	}
	return uint8((uint16(a) * uint16(b)) >> shift)
}

// MulHU32 computes (a*b) >> shift for unsigned 32-bit operands, shift >= 32,
// by promoting to the native 64-bit type.
func MulHU32(a, b uint32, shift uint) uint32 {
	if shift >= 64 {
		return 0
	}
	return uint32((uint64(a) * uint64(b)) >> shift)
}

// MulHU64 computes (a*b) >> shift for unsigned 64-bit operands, shift >= 64.
// Go's math/bits.Mul64 is the portable equivalent of a hardware 128-bit
// multiply (it lowers to a single wide multiply instruction on amd64/
// arm64), so it plays the role spec.md calls "when a double-width unsigned
// type exists": no split-multiply recurrence is needed for correctness on
// this platform. See mulHU64Split for the portable recurrence kept for
// platforms without that primitive, and MulHU64Wide for the uint256-backed
// capability switch.
func MulHU64(a, b uint64, shift uint) uint64 {
	hi, lo := bits.Mul64(a, b)
	return highBitsShift(hi, lo, shift)
}

// mulHU64Split computes the same 128-bit product as bits.Mul64 by hand,
// using only native 64-bit multiplies over 32-bit halves of each operand —
// the "split each operand into two halves, compute the four partial
// products, combine the middle terms" recurrence spec.md section 4.1
// requires "unconditionally for correctness" on platforms without a wide
// multiply. Ported from the partial-product combination in
// aelaguiz-pthash-go's internal/core/fastmod.go (mul128_u64/FastModU64),
// generalized here to a full 64x64->128 product instead of a 128x64->64
// one. Exercised in tests as the portable reference for MulHU64.
func mulHU64Split(a, b uint64, shift uint) uint64 {
	const mask32 = 1<<32 - 1
	x0, x1 := a&mask32, a>>32
	y0, y1 := b&mask32, b>>32

	w0 := x0 * y0
	t := x1*y0 + w0>>32
	w1 := t & mask32
	w2 := t >> 32
	w1 += x0 * y1
	hi := x1*y1 + w2 + w1>>32
	lo := a * b

	return highBitsShift(hi, lo, shift)
}

// highBitsShift returns ((hi<<64 | lo)) >> shift, exact for any shift.
func highBitsShift(hi, lo uint64, shift uint) uint64 {
	switch {
	case shift == 64:
		return hi
	case shift > 64:
		s := shift - 64
		if s >= 64 {
			return 0
		}
		return hi >> s
	default:
		return (hi << (64 - shift)) | (lo >> shift)
	}
}
