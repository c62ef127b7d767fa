package bitmath

// This file bridges the three concrete backing widths (int8/int32/int64)
// a Q(I,F) value can use to the width-specific primitives above. Go's
// generics give arithmetic operators for free over a constrained type
// parameter, but clz/overflow/MulHU/ScaledAdd need an unsigned
// reinterpretation and width-specific combination, so those go through a
// type switch on the boxed value — the standard workaround for a closed
// set of underlying kinds that Go generics cannot otherwise dispatch on.

// AddOverflow reports a+b and whether it overflows B's width.
func AddOverflow[B Signed](a, b B) (B, bool) {
	switch a := any(a).(type) {
	case int8:
		sum, ovf := AddOverflowI8(a, any(b).(int8))
		return any(sum).(B), ovf
	case int32:
		sum, ovf := AddOverflowI32(a, any(b).(int32))
		return any(sum).(B), ovf
	case int64:
		sum, ovf := AddOverflowI64(a, any(b).(int64))
		return any(sum).(B), ovf
	default:
		panic("bitmath: unsupported backing type")
	}
}

// SubOverflow reports a-b and whether it overflows B's width.
func SubOverflow[B Signed](a, b B) (B, bool) {
	switch a := any(a).(type) {
	case int8:
		diff, ovf := SubOverflowI8(a, any(b).(int8))
		return any(diff).(B), ovf
	case int32:
		diff, ovf := SubOverflowI32(a, any(b).(int32))
		return any(diff).(B), ovf
	case int64:
		diff, ovf := SubOverflowI64(a, any(b).(int64))
		return any(diff).(B), ovf
	default:
		panic("bitmath: unsupported backing type")
	}
}

// FitIn reports whether x fits in n signed bits.
func FitIn[B Signed](x B, n int) bool {
	switch x := any(x).(type) {
	case int8:
		return FitInI8(x, n)
	case int32:
		return FitInI32(x, n)
	case int64:
		return FitInI64(x, n)
	default:
		panic("bitmath: unsupported backing type")
	}
}

// Abs returns |x|, preserving the most-negative-value caveat documented
// on AbsI8/AbsI32/AbsI64.
func Abs[B Signed](x B) B {
	switch x := any(x).(type) {
	case int8:
		return any(AbsI8(x)).(B)
	case int32:
		return any(AbsI32(x)).(B)
	case int64:
		return any(AbsI64(x)).(B)
	default:
		panic("bitmath: unsupported backing type")
	}
}

// CLZ returns the number of leading zero bits of x reinterpreted as
// unsigned at B's width; undefined (returns the full width) for x == 0.
func CLZ[B Signed](x B) int {
	switch x := any(x).(type) {
	case int8:
		return CLZ8(uint8(x))
	case int32:
		return CLZ32(uint32(x))
	case int64:
		return CLZ64(uint64(x))
	default:
		panic("bitmath: unsupported backing type")
	}
}

// Width returns the bit width of B: 8, 32, or 64.
func Width[B Signed]() int {
	var zero B
	switch any(zero).(type) {
	case int8:
		return 8
	case int32:
		return 32
	case int64:
		return 64
	default:
		panic("bitmath: unsupported backing type")
	}
}

// MulHU computes (a*b) >> shift treating a, b as unsigned at B's width.
func MulHU[B Signed](a, b B, shift uint) B {
	switch a := any(a).(type) {
	case int8:
		return any(int8(MulHU8(uint8(a), uint8(any(b).(int8)), shift))).(B)
	case int32:
		return any(int32(MulHU32(uint32(a), uint32(any(b).(int32)), shift))).(B)
	case int64:
		return any(int64(MulHU64(uint64(a), uint64(any(b).(int64)), shift))).(B)
	default:
		panic("bitmath: unsupported backing type")
	}
}

// ScaledAdd computes (a+b) >> shift treating a, b as unsigned at B's
// width, exact even when a+b overflows that width.
func ScaledAdd[B Signed](a, b B, shift uint) B {
	switch a := any(a).(type) {
	case int8:
		return any(int8(ScaledAdd8(uint8(a), uint8(any(b).(int8)), shift))).(B)
	case int32:
		return any(int32(ScaledAdd32(uint32(a), uint32(any(b).(int32)), shift))).(B)
	case int64:
		return any(int64(ScaledAdd64(uint64(a), uint64(any(b).(int64)), shift))).(B)
	default:
		panic("bitmath: unsupported backing type")
	}
}
