// Package interop bridges Q(I,F) values to two other decimal
// representations commonly found alongside fixed-point code:
// github.com/robaho/fixed (a scale-7 int64-backed decimal) and
// github.com/shopspring/decimal (an arbitrary-precision decimal).
//
// Both bridges go through a decimal string rather than the raw backing
// integer. A seen-in-the-wild int64-reinterpretation shortcut — read a
// fixed.Fixed's internal scaled integer directly and hand it to
// decimal.New — looks tempting but silently breaks the moment the two
// libraries' internal scale and this package's F disagree; decimal
// strings cost a format/parse pass but can never drift out of sync with
// either side's actual value.
package interop

import (
	"github.com/robaho/fixed"
	"github.com/shopspring/decimal"

	fp "github.com/develer-staff/fixedpoint"
	"github.com/develer-staff/fixedpoint/internal/bitmath"
)

// ToFixed renders q as a github.com/robaho/fixed.Fixed via its decimal
// string form, at the largest precision q's F justifies.
func ToFixed[S fp.Shape, B bitmath.Signed](q fp.Q[S, B]) fixed.Fixed {
	return fixed.NewS(fp.ToDecimal(q, -1, false))
}

// FromFixed parses f's decimal string into Q(S,B), failing with
// xerrors.ErrDomain if f's value doesn't fit S.
func FromFixed[S fp.Shape, B bitmath.Signed](f fixed.Fixed) (fp.Q[S, B], error) {
	return fp.FromDecimal[S, B](f.String())
}

// ToDecimal renders q as a github.com/shopspring/decimal.Decimal via its
// decimal string form.
func ToDecimal[S fp.Shape, B bitmath.Signed](q fp.Q[S, B]) (decimal.Decimal, error) {
	return decimal.NewFromString(fp.ToDecimal(q, -1, false))
}

// FromDecimal parses d's decimal string into Q(S,B), failing with
// xerrors.ErrDomain if d's value doesn't fit S.
func FromDecimal[S fp.Shape, B bitmath.Signed](d decimal.Decimal) (fp.Q[S, B], error) {
	return fp.FromDecimal[S, B](d.String())
}
