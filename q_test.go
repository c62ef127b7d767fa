package fixedpoint

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/develer-staff/fixedpoint/xerrors"
)

func TestNewIntOverflow(t *testing.T) {
	q, err := NewInt[Shape1_7, int8](0)
	require.NoError(t, err)
	require.EqualValues(t, 0, q.Raw())

	_, err = NewInt[Shape1_7, int8](1)
	require.Error(t, err)
	require.True(t, xerrors.ErrOverflow.Is(err.(xerrors.XError)))
}

func TestNewFloat64TruncatesTowardZero(t *testing.T) {
	q, err := NewFloat64[Shape16_16, int32](3.75)
	require.NoError(t, err)
	require.InDelta(t, 3.75, q.ToFloat64(), 1e-9)

	q, err = NewFloat64[Shape16_16, int32](-3.75)
	require.NoError(t, err)
	require.InDelta(t, -3.75, q.ToFloat64(), 1e-9)
}

func TestNewFloat64OverflowAndNaN(t *testing.T) {
	_, err := NewFloat64[Shape8_0, int8](200)
	require.Error(t, err)

	_, err = NewFloat64[Shape16_16, int32](math.NaN())
	require.Error(t, err)
}

func TestConvertWidenAndNarrow(t *testing.T) {
	a, err := NewInt[Shape16_16, int32](7)
	require.NoError(t, err)

	wide, err := Convert[Shape32_32, int64](a)
	require.NoError(t, err)
	require.EqualValues(t, 7, Floor[int64](wide))

	back, err := Convert[Shape16_16, int32](wide)
	require.NoError(t, err)
	require.Equal(t, a, back)
}

func TestConvertOverflow(t *testing.T) {
	a, err := NewInt[Shape32_0, int32](200)
	require.NoError(t, err)
	_, err = Convert[Shape8_0, int8](a)
	require.Error(t, err)
}

func TestAddSubOverflow(t *testing.T) {
	a, err := NewInt[Shape8_0, int8](100)
	require.NoError(t, err)
	b, err := NewInt[Shape8_0, int8](100)
	require.NoError(t, err)

	_, err = a.Add(b)
	require.Error(t, err)

	diff, err := a.Sub(b)
	require.NoError(t, err)
	require.EqualValues(t, 0, diff.Raw())
}

func TestAddConvertSubConvert(t *testing.T) {
	a, err := NewInt[Shape16_16, int32](1)
	require.NoError(t, err)
	b, err := NewInt[Shape8_0, int8](2)
	require.NoError(t, err)

	sum, err := AddConvert[Shape16_16, int32](a, b)
	require.NoError(t, err)
	require.InDelta(t, 3.0, sum.ToFloat64(), 1e-9)

	diff, err := SubConvert[Shape16_16, int32](a, b)
	require.NoError(t, err)
	require.InDelta(t, -1.0, diff.ToFloat64(), 1e-9)
}

func TestFloorCeil(t *testing.T) {
	q, err := NewFloat64[Shape16_16, int32](3.25)
	require.NoError(t, err)
	require.EqualValues(t, 3, Floor[int32](q))
	require.EqualValues(t, 4, Ceil[int32](q))

	neg, err := NewFloat64[Shape16_16, int32](-3.25)
	require.NoError(t, err)
	require.EqualValues(t, -4, Floor[int32](neg))
	require.EqualValues(t, -3, Ceil[int32](neg))
}

func TestLessEqual(t *testing.T) {
	a, _ := NewInt[Shape8_0, int8](1)
	b, _ := NewInt[Shape8_0, int8](2)
	require.True(t, a.Less(b))
	require.False(t, b.Less(a))
	require.True(t, a.Equal(a))
	require.False(t, a.Equal(b))
}

func TestAbs(t *testing.T) {
	a, _ := NewInt[Shape8_0, int8](-5)
	require.EqualValues(t, 5, a.Abs().Raw())
}

func TestErrorBits(t *testing.T) {
	a, _ := NewInt[Shape8_0, int8](0)
	b, _ := NewInt[Shape8_0, int8](1)
	require.Equal(t, 1, ErrorBits(a, b))
}
