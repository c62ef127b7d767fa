package fixedpoint

import "github.com/develer-staff/fixedpoint/internal/bitmath"

// Shape labels a Q(I,F) value at compile time: I integer bits (including
// the sign bit) and F fractional bits. Go has no value-level generics, so
// unlike a template<int I, int F> instantiation this label is a type
// parameter bound to one of the zero-size marker types below, each
// hardcoding its own I/F pair — the "generics with phantom markers"
// mechanism called out as the fallback for languages without true
// compile-time integer generics.
type Shape interface {
	IBits() int
	FBits() int
}

func shapeOf[S Shape]() S {
	var s S
	return s
}

// checkShape panics if shape S's I+F doesn't fit backing type B, and if I
// leaves no room for a sign bit. This is the init-time stand-in for the
// compile-time rejection a real template instantiation would give; every
// Shape/Backing pairing used by this package runs through it once from an
// init() below.
func checkShape[S Shape, B bitmath.Signed]() {
	s := shapeOf[S]()
	if s.IBits() < 1 {
		panic("fixedpoint: shape needs at least one integer bit for sign")
	}
	if s.IBits()+s.FBits() > bitmath.Width[B]() {
		panic("fixedpoint: shape does not fit its backing type")
	}
}

// Shape1_7 is Q(1,7): accepts {0,-1}, the narrowest shape with one
// fractional byte's worth of precision and a single sign-only integer
// bit.
type Shape1_7 struct{}

func (Shape1_7) IBits() int { return 1 }
func (Shape1_7) FBits() int { return 7 }

// Shape2_6 is Q(2,6).
type Shape2_6 struct{}

func (Shape2_6) IBits() int { return 2 }
func (Shape2_6) FBits() int { return 6 }

// Shape8_0 is Q(8,0): a plain signed byte with no fractional bits.
type Shape8_0 struct{}

func (Shape8_0) IBits() int { return 8 }
func (Shape8_0) FBits() int { return 0 }

// Shape16_16 is Q(16,16), backed by int32.
type Shape16_16 struct{}

func (Shape16_16) IBits() int { return 16 }
func (Shape16_16) FBits() int { return 16 }

// Shape8_24 is Q(8,24), backed by int32.
type Shape8_24 struct{}

func (Shape8_24) IBits() int { return 8 }
func (Shape8_24) FBits() int { return 24 }

// Shape32_32 is Q(32,32), backed by int64. It is also the Q(2I,2F)
// promotion target for Sqrt on a Shape16_16/int32 value.
type Shape32_32 struct{}

func (Shape32_32) IBits() int { return 32 }
func (Shape32_32) FBits() int { return 32 }

// Shape16_48 is Q(16,48), backed by int64; the Q(2I,2F) promotion target
// for Sqrt on a Shape8_24/int32 value.
type Shape16_48 struct{}

func (Shape16_48) IBits() int { return 16 }
func (Shape16_48) FBits() int { return 48 }

// Shape32_0 is Q(32,0), backed by int32.
type Shape32_0 struct{}

func (Shape32_0) IBits() int { return 32 }
func (Shape32_0) FBits() int { return 0 }

// Shape64_0 is Q(64,0), backed by int64.
type Shape64_0 struct{}

func (Shape64_0) IBits() int { return 64 }
func (Shape64_0) FBits() int { return 0 }

func init() {
	checkShape[Shape1_7, int8]()
	checkShape[Shape2_6, int8]()
	checkShape[Shape8_0, int8]()
	checkShape[Shape16_16, int32]()
	checkShape[Shape8_24, int32]()
	checkShape[Shape32_0, int32]()
	checkShape[Shape32_32, int64]()
	checkShape[Shape16_48, int64]()
	checkShape[Shape64_0, int64]()
}
