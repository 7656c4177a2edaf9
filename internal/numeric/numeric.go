// Package numeric implements petal's variable-width integer and float
// carriers, choosing the smallest representation that fits a value.
//
// Grounded on original_source/src/types.rs: the Int/Float enums and the
// VariablySized::fit ascending-width check.
package numeric

import "math/big"

// IntWidth enumerates the supported integer widths, ascending.
type IntWidth int

const (
	Width8 IntWidth = iota
	Width16
	Width32
	Width64
	Width128
)

func (w IntWidth) String() string {
	switch w {
	case Width8:
		return "8"
	case Width16:
		return "16"
	case Width32:
		return "32"
	case Width64:
		return "64"
	case Width128:
		return "128"
	default:
		return "?"
	}
}

// FloatWidth enumerates the supported float widths.
type FloatWidth int

const (
	FWidth32 FloatWidth = iota
	FWidth64
)

func (w FloatWidth) String() string {
	if w == FWidth32 {
		return "32"
	}
	return "64"
}

// Int is a width-tagged signed integer, up to 128 bits. Values that fit
// in 64 bits are stored directly; the 128-bit case falls back to
// math/big, since Go has no native int128 (the one place this package
// reaches for a third-party-grade capability; math/big is the standard
// library's own answer and no pack dependency offers anything narrower).
type Int struct {
	Width IntWidth
	small int64
	big   *big.Int
}

var (
	max8    = big.NewInt(1<<7 - 1)
	min8    = big.NewInt(-1 << 7)
	max16   = big.NewInt(1<<15 - 1)
	min16   = big.NewInt(-1 << 15)
	max32   = big.NewInt(1<<31 - 1)
	min32   = big.NewInt(-1 << 31)
	max64   = big.NewInt(1<<63 - 1)
	min64   = new(big.Int).Neg(big.NewInt(1 << 63))
	max128  = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	min128  = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	widths  = []IntWidth{Width8, Width16, Width32, Width64, Width128}
	boundsM = map[IntWidth][2]*big.Int{
		Width8:   {min8, max8},
		Width16:  {min16, max16},
		Width32:  {min32, max32},
		Width64:  {min64, max64},
		Width128: {min128, max128},
	}
)

// FitInt selects the narrowest width whose range accommodates value,
// checked in ascending order, falling back to the widest (128-bit) width.
func FitInt(value *big.Int) Int {
	for _, w := range widths {
		b := boundsM[w]
		if value.Cmp(b[0]) >= 0 && value.Cmp(b[1]) <= 0 {
			return newInt(w, value)
		}
	}
	return newInt(Width128, value)
}

// FitInt64 is the common-case convenience entry point for a native int64.
func FitInt64(value int64) Int {
	return FitInt(big.NewInt(value))
}

func newInt(w IntWidth, value *big.Int) Int {
	if w == Width128 || !value.IsInt64() {
		return Int{Width: w, big: new(big.Int).Set(value)}
	}
	return Int{Width: w, small: value.Int64()}
}

// ToBig returns the integer's value as a math/big.Int for widening
// arithmetic.
func (i Int) ToBig() *big.Int {
	if i.big != nil {
		return new(big.Int).Set(i.big)
	}
	return big.NewInt(i.small)
}

// ToInt64 returns the value truncated/converted to an int64, used where
// the language semantics call for a native width (e.g. exit codes and
// integer exponents).
func (i Int) ToInt64() int64 {
	if i.big != nil {
		return i.big.Int64()
	}
	return i.small
}

func (i Int) String() string {
	return i.ToBig().String()
}

// Equal reports structural equality between two Ints (value, ignoring
// width -- widths are a display/storage optimization, not part of
// identity).
func (i Int) Equal(o Int) bool {
	return i.ToBig().Cmp(o.ToBig()) == 0
}

// Compare orders two Ints by value.
func (i Int) Compare(o Int) int {
	return i.ToBig().Cmp(o.ToBig())
}

// Float is a width-tagged binary float (32 or 64 bit).
type Float struct {
	Width FloatWidth
	Value float64
}

// FitFloat selects the narrowest float width that round-trips value
// without loss; falls back to 64-bit.
func FitFloat(value float64) Float {
	if float64(float32(value)) == value {
		return Float{Width: FWidth32, Value: value}
	}
	return Float{Width: FWidth64, Value: value}
}

func (f Float) String() string {
	return formatFloat(f.Value)
}
