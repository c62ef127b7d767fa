package fixedpoint

import (
	"strconv"
	"strings"

	"github.com/develer-staff/fixedpoint/internal/bitmath"
	"github.com/develer-staff/fixedpoint/internal/decimaltab"
	"github.com/develer-staff/fixedpoint/xerrors"
)

// divPow10 dispatches to the 32-bit or 64-bit table by B's width, the
// generic stand-in for the source's IntType-templated Pow10Funcs.
func divPow10[B bitmath.Signed](num int64, exp, f int) int64 {
	if bitmath.Width[B]() > 32 {
		return decimaltab.DivPow10_64(num, exp, f)
	}
	return int64(decimaltab.DivPow10_32(int32(num), exp, f))
}

func maxLog10[B bitmath.Signed]() int {
	if bitmath.Width[B]() > 32 {
		return decimaltab.MaxLog10_64
	}
	return decimaltab.MaxLog10_32
}

func log10Table[B bitmath.Signed](k int) int {
	if bitmath.Width[B]() > 32 {
		return decimaltab.Log10_64[k]
	}
	return decimaltab.Log10_32[k]
}

// ToDecimal renders q as a decimal string: optional leading '-', the
// integer part, '.', then prec fractional digits. prec == -1 picks the
// largest precision F fractional bits justify (log10Table[F]); prec at
// or past the table's reach clamps down by one. zeropad keeps trailing
// zero digits instead of stripping them, but a single digit after '.'
// always remains even when stripped down to nothing.
func ToDecimal[S Shape, B bitmath.Signed](q Q[S, B], prec int, zeropad bool) string {
	sh := shapeOf[S]()
	f := sh.FBits()

	switch {
	case prec == -1:
		prec = log10Table[B](f)
	case prec >= maxLog10[B]():
		prec = maxLog10[B]() - 1
	}

	var out strings.Builder
	uvalue := int64(q.x)
	if uvalue < 0 {
		out.WriteByte('-')
		uvalue = -uvalue
	}

	// Round half-up: bump by one ULP at decimal position prec+1.
	uvalue += divPow10[B](5, prec+1, f)

	out.WriteString(strconv.FormatInt(uvalue>>uint(f), 10))
	out.WriteByte('.')

	fracMask := (int64(1) << uint(f)) - 1
	frac := make([]byte, 0, prec)
	for k := 0; k < prec; k++ {
		uvalue &= fracMask
		if !zeropad && uvalue == 0 {
			break
		}
		uvalue *= 10
		frac = append(frac, byte('0'+(uvalue>>uint(f))))
	}
	if !zeropad {
		for len(frac) > 0 && frac[len(frac)-1] == '0' {
			frac = frac[:len(frac)-1]
		}
	}
	if len(frac) == 0 {
		frac = append(frac, '0')
	}
	out.Write(frac)
	return out.String()
}

// ParseDecimal parses s into Q(S,B), reporting success via the returned
// bool instead of an error — the out-parameter form the source's
// fromString offers so a caller can avoid the failure-signal path
// entirely. FromDecimal wraps this with xerrors.ErrDomain for callers
// that want the strict-mode error instead.
func ParseDecimal[S Shape, B bitmath.Signed](s string) (Q[S, B], bool) {
	sh := shapeOf[S]()
	f := sh.FBits()
	w := bitmath.Width[B]()

	i := 0
	for i < len(s) && (s[i] == ' ' || s[i] == '\t') {
		i++
	}
	negate := false
	if i < len(s) && s[i] == '-' {
		negate = true
		i++
	}

	var xi int64
	hasFraction := false
	for ; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			xi = xi*10 + int64(c-'0')
			continue
		}
		if c == '.' {
			hasFraction = true
			i++
			break
		}
		return Q[S, B]{}, false
	}

	if !hasFraction {
		result := xi << uint(f)
		if negate {
			result = -result
		}
		return finishParse[S, B](result)
	}

	// Accumulate the fractional part at W-1 fractional bits (the widest
	// precision the backing width can express), then round to nearest
	// at F bits once at the end — matches the source computing xf in Q(W-1,0)
	// semantics before the final composition step.
	tableLen := maxLog10[B]() + 1
	var xf int64
	for fi := 1; i < len(s) && fi < tableLen; fi++ {
		c := s[i]
		switch {
		case c >= '1' && c <= '9':
			xf += divPow10[B](int64(c-'0'), fi, w-1)
		case c == '0':
			// contributes nothing
		default:
			return Q[S, B]{}, false
		}
		i++
	}

	xfshift := w - 1 - f
	var fracBits int64
	if xfshift == 0 {
		fracBits = xf
	} else {
		fracBits = (xf + (int64(1) << uint(xfshift-1))) >> uint(xfshift)
	}
	result := (xi << uint(f)) | fracBits
	if negate {
		result = -result
	}
	return finishParse[S, B](result)
}

func finishParse[S Shape, B bitmath.Signed](result int64) (Q[S, B], bool) {
	sh := shapeOf[S]()
	if !bitmath.FitInI64(result>>uint(sh.FBits()), sh.IBits()) {
		return Q[S, B]{}, false
	}
	return Q[S, B]{x: B(result)}, true
}

// FromDecimal is ParseDecimal's strict-mode form: xerrors.ErrDomain on
// any parse failure instead of a bare false.
func FromDecimal[S Shape, B bitmath.Signed](s string) (Q[S, B], error) {
	q, ok := ParseDecimal[S, B](s)
	if !ok {
		return Q[S, B]{}, xerrors.ErrDomain
	}
	return q, nil
}
