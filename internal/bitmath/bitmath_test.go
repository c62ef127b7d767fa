package bitmath

import (
	"math"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/require"
)

func TestCLZ(t *testing.T) {
	require.Equal(t, 0, CLZ64(1<<63))
	require.Equal(t, 63, CLZ64(1))
	require.Equal(t, 64, CLZ64(0))
	require.Equal(t, 24, CLZ32(0x80))
	require.Equal(t, 0, CLZ8(0x80))
}

func TestLog2Ceil(t *testing.T) {
	require.Equal(t, 0, Log2Ceil64(0))
	require.Equal(t, 1, Log2Ceil64(1))
	require.Equal(t, 8, Log2Ceil64(255))
	require.Equal(t, 8, Log2Ceil64(-255))
}

func TestFitIn(t *testing.T) {
	require.True(t, FitInI8(0, 1))
	require.True(t, FitInI8(-1, 1))
	require.False(t, FitInI8(1, 1))
	require.False(t, FitInI8(-2, 1))

	require.True(t, FitInI8(-2, 2))
	require.True(t, FitInI8(1, 2))
	require.False(t, FitInI8(2, 2))
	require.False(t, FitInI8(-3, 2))

	require.True(t, FitInI64(127, 8))
	require.True(t, FitInI64(-128, 8))
	require.False(t, FitInI64(128, 8))
	require.False(t, FitInI64(-129, 8))

	require.True(t, FitInI64(math.MaxInt64, 64))
	require.True(t, FitInI64(math.MinInt64, 64))
}

func TestAddSubOverflow(t *testing.T) {
	_, ovf := AddOverflowI64(math.MaxInt64, 1)
	require.True(t, ovf)
	sum, ovf := AddOverflowI64(1, 2)
	require.False(t, ovf)
	require.EqualValues(t, 3, sum)

	_, ovf = SubOverflowI64(math.MinInt64, 1)
	require.True(t, ovf)
	diff, ovf := SubOverflowI64(5, 2)
	require.False(t, ovf)
	require.EqualValues(t, 3, diff)
}

// TestMulHUGoldenValues pins down the concrete cases from spec.md section 8.
func TestMulHUGoldenValues(t *testing.T) {
	require.EqualValues(t, 36, MulHU8(245, 38, 8))
	require.EqualValues(t, 2015261648, MulHU32(3894967294, 2222222222, 32))
	require.EqualValues(t, 1338521200599388189, MulHU64(11111111111111111111, 2222222222222222222, 64))
}

func TestScaledAddGoldenValues(t *testing.T) {
	require.EqualValues(t, uint64(11111111111111111111), ScaledAdd64(11111111111111111111, 11111111111111111111, 1))
	require.EqualValues(t, 999999999999999996, ScaledAdd64(1999999999999999992, 1999999999999999992, 2))
}

// TestMulHU64AgreesWithSplitPath checks property 7 from spec.md section 8:
// MulHU(a,b,W) == floor(a*b / 2^W).
func TestMulHU64AgreesWithSplitPath(t *testing.T) {
	f := func(a, b uint64, shiftPick uint8) bool {
		shift := 64 + uint(shiftPick%65)
		return MulHU64(a, b, shift) == mulHU64Split(a, b, shift) &&
			MulHU64(a, b, shift) == MulHU64Wide(a, b, shift)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestScaledAdd64AgreesWithIdentity(t *testing.T) {
	f := func(a, b uint64, shiftPick uint8) bool {
		shift := uint(shiftPick%64) + 1
		return ScaledAdd64(a, b, shift) == scaledAdd64Identity(a, b, shift)
	}
	require.NoError(t, quick.Check(f, nil))
}

func TestFastestWidthTable(t *testing.T) {
	cases := []struct {
		n    int
		want int
	}{
		{1, 8}, {8, 8}, {9, 32}, {32, 32}, {33, 64}, {64, 64},
	}
	for _, c := range cases {
		got, ok := FastestWidth(c.n)
		require.True(t, ok)
		require.Equal(t, c.want, got)
	}
	_, ok := FastestWidth(65)
	require.False(t, ok)
}

func TestSmallestWidthKeeps16BitSlot(t *testing.T) {
	got, ok := SmallestWidth(9)
	require.True(t, ok)
	require.Equal(t, 16, got)
}
