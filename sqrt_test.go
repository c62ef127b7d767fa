package fixedpoint

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSqrtFastOfZero(t *testing.T) {
	zero, err := NewInt[Shape16_48, int64](0)
	require.NoError(t, err)
	got, err := SqrtFast[Shape8_24, int32](zero)
	require.NoError(t, err)
	require.EqualValues(t, 0, got.Raw())
}

func TestSqrtFastRejectsNegative(t *testing.T) {
	neg, err := NewInt[Shape16_48, int64](-1)
	require.NoError(t, err)
	_, err = SqrtFast[Shape8_24, int32](neg)
	require.Error(t, err)
}

func TestSqrtOfFortyNine(t *testing.T) {
	x, err := NewInt[Shape8_24, int32](49)
	require.NoError(t, err)
	got, err := Sqrt[Shape16_48, int64](x)
	require.NoError(t, err)
	require.InDelta(t, 7.0, got.ToFloat64(), 1e-5)
}

func TestSqrtOfZeroWideShape(t *testing.T) {
	x, err := NewInt[Shape16_16, int32](0)
	require.NoError(t, err)
	got, err := Sqrt[Shape32_32, int64](x)
	require.NoError(t, err)
	require.EqualValues(t, 0, got.Raw())
}

func TestSqrtRejectsNegative(t *testing.T) {
	x, err := NewInt[Shape16_16, int32](-1)
	require.NoError(t, err)
	_, err = Sqrt[Shape32_32, int64](x)
	require.Error(t, err)
}

func TestSqrtFastShapeMismatchPanics(t *testing.T) {
	x, err := NewInt[Shape16_16, int32](4)
	require.NoError(t, err)
	require.Panics(t, func() {
		_, _ = SqrtFast[Shape16_16, int32](x)
	})
}
