package fixedpoint

import (
	"github.com/develer-staff/fixedpoint/internal/bitmath"
	"github.com/develer-staff/fixedpoint/xerrors"
)

// SqrtFast computes sqrt(x) at half of x's precision: Q(I,F) -> Q(I/2,
// F/2). S2/B2 must name exactly that halved shape — Go generics can't
// derive I/2,F/2 from S the way a template parameter would, so the
// caller supplies it explicitly and SqrtFast asserts the ratio at call
// time. Domain error on a negative x. Classic binary restoring
// digit-by-digit integer square root on the raw backing integer: it is
// exact to the result's own precision, not merely an approximation.
func SqrtFast[S2 Shape, B2 bitmath.Signed, S Shape, B bitmath.Signed](x Q[S, B]) (Q[S2, B2], error) {
	sh := shapeOf[S]()
	sh2 := shapeOf[S2]()
	if sh2.IBits() != sh.IBits()/2 || sh2.FBits() != sh.FBits()/2 {
		panic("fixedpoint: SqrtFast target shape must be exactly half the source shape's I and F")
	}
	if x.x < 0 {
		return Q[S2, B2]{}, xerrors.ErrDomain
	}

	val := int64(x.x)
	if val == 0 {
		return fromRaw[S2, B2](0), nil
	}

	bshft := (bitmath.Log2Ceil64(val) - 1) >> 1
	b := int64(1) << uint(bshft)
	var g int64
	for {
		temp := (g + g + b) << uint(bshft)
		if val >= temp {
			g += b
			val -= temp
		}
		b >>= 1
		if bshft == 0 {
			break
		}
		bshft--
	}
	return fromRaw[S2, B2](B2(g)), nil
}

// Sqrt computes sqrt(x) at x's own precision by first promoting x to
// Q(2I,2F) (double the storage width) and running SqrtFast on that —
// the promoted intermediate has the headroom SqrtFast needs to return a
// bit-exact result back at Q(I,F). SWide/BWide must name that doubled
// shape/backing, matching the pattern SqrtFast already requires.
func Sqrt[SWide Shape, BWide bitmath.Signed, S Shape, B bitmath.Signed](x Q[S, B]) (Q[S, B], error) {
	wide, err := Convert[SWide, BWide](x)
	if err != nil {
		return Q[S, B]{}, err
	}
	return SqrtFast[S, B](wide)
}
