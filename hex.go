package fixedpoint

import "github.com/develer-staff/fixedpoint/internal/bitmath"

const hexDigits = "0123456789abcdef"

// bitsAsU64 reinterprets x's raw bits as unsigned, widened to uint64.
func bitsAsU64[B bitmath.Signed](x B) uint64 {
	switch x := any(x).(type) {
	case int8:
		return uint64(uint8(x))
	case int32:
		return uint64(uint32(x))
	case int64:
		return uint64(x)
	default:
		panic("fixedpoint: unsupported backing type")
	}
}

// ToHex renders the raw backing integer as "0x" followed by exactly
// W/4 lowercase hex digits, zero-padded, W being B's bit width.
func ToHex[S Shape, B bitmath.Signed](q Q[S, B]) string {
	w := bitmath.Width[B]()
	n := w / 4
	u := bitsAsU64(q.x)

	buf := make([]byte, n+2)
	buf[0] = '0'
	buf[1] = 'x'
	for i := n + 1; i > 1; i-- {
		buf[i] = hexDigits[u&0xF]
		u >>= 4
	}
	return string(buf)
}
