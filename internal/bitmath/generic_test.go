package bitmath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenericWidth(t *testing.T) {
	require.Equal(t, 8, Width[int8]())
	require.Equal(t, 32, Width[int32]())
	require.Equal(t, 64, Width[int64]())
}

func TestGenericMulHUMatchesConcrete(t *testing.T) {
	// 245, 38 don't fit a signed int8; bit-reinterpret through uint8 the
	// same way MulHU's type switch does internally.
	want8 := int8(MulHU8(245, 38, 8))
	u8 := uint8(245)
	got8 := MulHU(int8(u8), int8(38), 8)
	require.Equal(t, want8, got8)

	a, b := uint64(11111111111111111111), uint64(2222222222222222222)
	want64 := int64(MulHU64(a, b, 64))
	got64 := MulHU(int64(a), int64(b), 64)
	require.Equal(t, want64, got64)
}

func TestGenericAddOverflow(t *testing.T) {
	_, ovf := AddOverflow(int8(120), int8(10))
	require.True(t, ovf)
	sum, ovf := AddOverflow(int8(1), int8(2))
	require.False(t, ovf)
	require.Equal(t, int8(3), sum)
}

func TestGenericFitIn(t *testing.T) {
	require.True(t, FitIn(int64(-1), 1))
	require.False(t, FitIn(int64(1), 1))
}
