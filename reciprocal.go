package fixedpoint

import (
	"github.com/develer-staff/fixedpoint/internal/bitmath"
	"github.com/develer-staff/fixedpoint/xerrors"
)

// nrTargets are the unrolled Newton-Raphson precision targets: each
// doubles the running precision, capped at the backing width. Six
// rounds cover backing integers up to 128 bits, per the source's
// unrolled-loop ceiling.
var nrTargets = [6]int{6, 12, 24, 48, 96, 192}

// Reciprocal is a lazy 1/v carrier: it snapshots v's backing integer and
// F, but the Newton-Raphson iteration that actually approximates 1/v
// does not run until the carrier is multiplied against a concrete Q
// shape (ReciprocalMul/ReciprocalTo), so the iteration runs to exactly
// the precision that consumer needs and no further.
//
// resultHighestBit and resultShift are scratch fields written by
// evaluate and read by ReciprocalMul; a carrier must not be evaluated
// concurrently by two callers.
type Reciprocal[S Shape, B bitmath.Signed] struct {
	x B
	f int

	resultHighestBit bool
	resultShift      int
}

// NewReciprocal snapshots v for later lazy evaluation. Fails with
// xerrors.ErrDomain if v is zero — clz of zero is undefined, and the
// reciprocal of zero has no finite value.
func NewReciprocal[S Shape, B bitmath.Signed](v Q[S, B]) (Reciprocal[S, B], error) {
	if v.x == 0 {
		return Reciprocal[S, B]{}, xerrors.ErrDomain
	}
	sh := shapeOf[S]()
	return Reciprocal[S, B]{x: v.x, f: sh.FBits()}, nil
}

// evaluate runs the Newton-Raphson iteration to (at least) prec bits of
// precision and returns the resulting mantissa, writing
// resultHighestBit/resultShift as it goes. Ported bit-for-bit from the
// source's LazyReciprocal::evaluate(): the seed and each iteration stay
// within the backing width by construction, so no intermediate ever
// needs a wider type.
func (r *Reciprocal[S, B]) evaluate(prec int) B {
	w := bitmath.Width[B]()
	shift := bitmath.CLZ[B](r.x)

	r.resultHighestBit = false
	r.resultShift = w + (w-shift) - r.f - 1

	input := r.x << uint(shift)
	if input<<1 == 0 {
		// Power of two: its reciprocal is exactly another shifted
		// power of two, nothing to iterate.
		r.resultShift--
		return input
	}

	// 3-bit seed: "two's complement minus one minus input" on the
	// normalized (top-bit-set) representation.
	result := (^B(0) ^ (B(1) << uint(w-1))) - input
	if prec <= 3 {
		return result
	}

	curprec := 3
	for _, target := range nrTargets {
		if target/2 < w {
			result = bitmath.MulHU(result, -bitmath.MulHU(result, input, uint(w)), uint(w)) << 1
			if target > w {
				curprec = w - 2
			} else {
				curprec = target
			}
		}
		if curprec >= prec {
			return result - (bitmath.MulHU(result, input, uint(w)) << 1)
		}
	}

	// Highest bit is always one at this point: the true reciprocal no
	// longer fits the backing width without an implicit leading one.
	result <<= 1
	curprec--
	r.resultHighestBit = true
	r.resultShift++

	result -= 3

	result -= bitmath.MulHU(result, input, uint(w)) + input
	curprec++
	if curprec >= prec {
		return result
	}
	result -= bitmath.MulHU(result, input, uint(w)) + input
	curprec++
	if curprec >= prec {
		return result
	}
	result -= bitmath.MulHU(result, input, uint(w)) + input
	return result
}

// ReciprocalMul evaluates r at the consumer's precision (I2+F2) and
// combines it with b, producing 1/v * b at shape S2/B2. The combination
// happens in r's own backing width B — b's raw value is narrowed or
// widened into B first — which is the documented precision tradeoff
// when the consumer's backing type is wider than the carrier's.
func ReciprocalMul[S2 Shape, B2 bitmath.Signed, S Shape, B bitmath.Signed](r *Reciprocal[S, B], b Q[S2, B2]) (Q[S2, B2], error) {
	sh2 := shapeOf[S2]()
	w := bitmath.Width[B]()

	inv := r.evaluate(sh2.IBits() + sh2.FBits())
	bx := B(int64(b.Raw()))

	var combined B
	if !r.resultHighestBit {
		combined = bitmath.MulHU(inv, bx, uint(r.resultShift))
	} else {
		combined = bitmath.ScaledAdd(bitmath.MulHU(inv, bx, uint(w)), bx, uint(r.resultShift-w))
	}

	raw := int64(combined)
	if !bitmath.FitInI64(raw>>uint(sh2.FBits()), sh2.IBits()) {
		return Q[S2, B2]{}, xerrors.ErrOverflow
	}
	return fromRaw[S2, B2](B2(raw)), nil
}

// ReciprocalTo converts r directly to Q(S2,B2), defined as r * 1.
func ReciprocalTo[S2 Shape, B2 bitmath.Signed, S Shape, B bitmath.Signed](r *Reciprocal[S, B]) (Q[S2, B2], error) {
	one, err := NewInt[S2, B2](1)
	if err != nil {
		return Q[S2, B2]{}, err
	}
	return ReciprocalMul[S2, B2](r, one)
}
