package decimaltab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPow10Tables(t *testing.T) {
	require.EqualValues(t, 1, Pow10_32[0])
	require.EqualValues(t, 1000000000, Pow10_32[9])
	require.EqualValues(t, 1000000000000000000, Pow10_64[18])
}

func TestLog10Tables(t *testing.T) {
	require.Equal(t, 4, Log10_32[16])
	require.Equal(t, 9, Log10_64[32])
}

func TestDivPow10_32Basic(t *testing.T) {
	// 5 / 10^1, scaled to 16 fractional bits, should land near 0.5.
	got := DivPow10_32(5, 1, 16)
	want := int32(0.5 * (1 << 16))
	require.InDelta(t, want, got, 2)
}

func TestDivPow10_64Basic(t *testing.T) {
	got := DivPow10_64(5, 1, 32)
	want := int64(0.5 * (1 << 32))
	require.InDelta(t, want, got, 2)
}

func TestDivPow10OutOfRangeExponent(t *testing.T) {
	require.EqualValues(t, 0, DivPow10_32(5, MaxLog10_32+5, 16))
	require.EqualValues(t, 0, DivPow10_64(5, MaxLog10_64+5, 16))
}
