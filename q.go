// Package fixedpoint implements Q(I,F) fixed-point values: I bits of
// signed integer part, F bits of fractional part, stored in the
// narrowest native signed integer that holds I+F bits. Construction,
// arithmetic, rounding and conversion are all overflow-checked; the
// library never logs, retries, or recovers — every failure surfaces as
// an xerrors.XError the caller discriminates by code.
package fixedpoint

import (
	"math"

	"github.com/develer-staff/fixedpoint/internal/bitmath"
	"github.com/develer-staff/fixedpoint/xerrors"
)

// Q is a fixed-point value at shape S, backed by integer type B. Copying
// a Q is a plain value copy of B; there is no sharing and no lifetime to
// manage.
type Q[S Shape, B bitmath.Signed] struct {
	x B
}

// fromRaw builds a Q directly from its backing integer, bypassing every
// overflow check. Used internally wherever a kernel (decimal parsing,
// sqrt, reciprocal) has already established the result fits.
func fromRaw[S Shape, B bitmath.Signed](x B) Q[S, B] {
	return Q[S, B]{x: x}
}

// Raw returns the backing integer, x such that the value equals
// x / 2^F(S).
func (q Q[S, B]) Raw() B { return q.x }

// NewInt constructs Q(S) from an integer, storing i<<F. Fails with
// xerrors.ErrOverflow unless i fits in S's integer bits.
func NewInt[S Shape, B bitmath.Signed](i int64) (Q[S, B], error) {
	s := shapeOf[S]()
	if !bitmath.FitInI64(i, s.IBits()) {
		return Q[S, B]{}, xerrors.ErrOverflow
	}
	return Q[S, B]{x: B(i << uint(s.FBits()))}, nil
}

// NewFloat64 constructs Q(S) from a float, storing
// round_toward_zero(f * 2^F) — the same truncating conversion a C cast
// from double to integer performs, not round-to-nearest. Fails with
// xerrors.ErrOverflow if f is NaN, or if the integer part of the value
// as stored in B differs from floor(f) or does not fit S's integer bits,
// which catches range overflow and ±Inf.
func NewFloat64[S Shape, B bitmath.Signed](f float64) (Q[S, B], error) {
	s := shapeOf[S]()
	scale := float64(int64(1) << uint(s.FBits()))
	stored := B(int64(f * scale))
	ipart := int64(stored) >> uint(s.FBits())
	if math.IsNaN(f) || ipart != int64(math.Floor(f)) || !bitmath.FitInI64(ipart, s.IBits()) {
		return Q[S, B]{}, xerrors.ErrOverflow
	}
	return Q[S, B]{x: stored}, nil
}

// fxAlign64 re-expresses x (fFrom fractional bits) at fTo fractional
// bits: right-shift (arithmetic, rounding toward -inf) if narrowing,
// left-shift if widening. Always computed in int64 so it is exact for
// every backing width this package supports.
func fxAlign64[B bitmath.Signed](x B, fFrom, fTo int) int64 {
	v := int64(x)
	if fFrom > fTo {
		return v >> uint(fFrom-fTo)
	}
	return v << uint(fTo-fFrom)
}

// Convert re-expresses src at shape S2/backing B2 via fxAlign, failing
// with xerrors.ErrOverflow if the realigned integer part doesn't fit S2.
func Convert[S2 Shape, B2 bitmath.Signed, S Shape, B bitmath.Signed](src Q[S, B]) (Q[S2, B2], error) {
	sFrom := shapeOf[S]()
	sTo := shapeOf[S2]()
	aligned := fxAlign64(src.x, sFrom.FBits(), sTo.FBits())
	if !bitmath.FitInI64(aligned>>uint(sTo.FBits()), sTo.IBits()) {
		return Q[S2, B2]{}, xerrors.ErrOverflow
	}
	return Q[S2, B2]{x: B2(aligned)}, nil
}

// Add returns a+b, failing with xerrors.ErrOverflow on signed wrap.
func (q Q[S, B]) Add(other Q[S, B]) (Q[S, B], error) {
	sum, ovf := bitmath.AddOverflow(q.x, other.x)
	if ovf {
		return Q[S, B]{}, xerrors.ErrOverflow
	}
	return Q[S, B]{x: sum}, nil
}

// Sub returns a-b, failing with xerrors.ErrOverflow on signed wrap.
func (q Q[S, B]) Sub(other Q[S, B]) (Q[S, B], error) {
	diff, ovf := bitmath.SubOverflow(q.x, other.x)
	if ovf {
		return Q[S, B]{}, xerrors.ErrOverflow
	}
	return Q[S, B]{x: diff}, nil
}

// AddConvert converts other to S/B's shape before adding, the
// mixed-shape form of Add: the right operand takes on the left
// operand's shape first.
func AddConvert[S Shape, B bitmath.Signed, S2 Shape, B2 bitmath.Signed](a Q[S, B], b Q[S2, B2]) (Q[S, B], error) {
	conv, err := Convert[S, B](b)
	if err != nil {
		return Q[S, B]{}, err
	}
	return a.Add(conv)
}

// SubConvert is AddConvert's subtraction counterpart.
func SubConvert[S Shape, B bitmath.Signed, S2 Shape, B2 bitmath.Signed](a Q[S, B], b Q[S2, B2]) (Q[S, B], error) {
	conv, err := Convert[S, B](b)
	if err != nil {
		return Q[S, B]{}, err
	}
	return a.Sub(conv)
}

// Less compares the backing integers directly; same-shape only — convert
// first for a mixed-shape comparison.
func (q Q[S, B]) Less(other Q[S, B]) bool { return q.x < other.x }

// Equal compares the backing integers directly.
func (q Q[S, B]) Equal(other Q[S, B]) bool { return q.x == other.x }

// Floor returns the arithmetic floor (x>>F) narrowed to N, the caller's
// chosen return width — the source picks this via a "smallest width that
// holds I bits" table; Go generics can't pick N for the caller, so N is
// an explicit type argument (see bitmath.SmallestWidth for the table).
func Floor[N bitmath.Signed, S Shape, B bitmath.Signed](q Q[S, B]) N {
	s := shapeOf[S]()
	return N(int64(q.x) >> uint(s.FBits()))
}

// Ceil returns (x + (2^F - 1)) >> F narrowed to N.
func Ceil[N bitmath.Signed, S Shape, B bitmath.Signed](q Q[S, B]) N {
	s := shapeOf[S]()
	mask := (int64(1) << uint(s.FBits())) - 1
	return N((int64(q.x) + mask) >> uint(s.FBits()))
}

// ToFloat64 returns x / 2^F as a float64.
func (q Q[S, B]) ToFloat64() float64 {
	s := shapeOf[S]()
	return float64(q.x) / float64(int64(1)<<uint(s.FBits()))
}

// ToFloat32 returns x / 2^F as a float32.
func (q Q[S, B]) ToFloat32() float32 {
	return float32(q.ToFloat64())
}

// Abs returns |x| at the same shape. On the most-negative backing value
// this returns the same bit pattern rather than raising Overflow,
// matching the source: callers in strict mode are responsible for not
// feeding the most-negative value.
func (q Q[S, B]) Abs() Q[S, B] {
	return Q[S, B]{x: bitmath.Abs(q.x)}
}

// ErrorBits returns log2_ceil(|a.x - b.x|), the number of bits of
// difference between two same-shape values — used by tests to bound
// loss-of-precision, not part of normal arithmetic.
func ErrorBits[S Shape, B bitmath.Signed](a, b Q[S, B]) int {
	diff := int64(a.x) - int64(b.x)
	if diff < 0 {
		diff = -diff
	}
	return bitmath.Log2CeilU64(uint64(diff))
}
