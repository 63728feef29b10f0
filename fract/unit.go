package fract

import "strconv"

// A fixed point value stored in 64ths. See the package
// documentation for more context.
type Unit int32

// Converts the given int to its fixed point representation.
func FromInt(value int) Unit {
	return Unit(value << 6)
}

// Returns whether the Unit is a whole number or if it
// has a fractional part.
func (self Unit) IsWhole() bool {
	return self & 0x3F == 0
}

// Returns only the fractional part of the Unit.
func (self Unit) Fract() Unit {
	return self % 64
}

// Multiplies two Units, rounding the result half up.
func (self Unit) Mul(multiplier Unit) Unit {
	return Unit((int64(self)*int64(multiplier) + 32) >> 6)
}

// Defaults to [Unit.ToIntHalfUp]().
func (self Unit) ToInt() int {
	return self.ToIntHalfUp()
}

// Fastest conversion from Unit to int.
func (self Unit) ToIntFloor() int {
	return int(self) >> 6
}

func (self Unit) ToIntCeil() int {
	return (int(self) + 63) >> 6
}

// Rounds to the nearest int, with ties going up. This matches the
// rounding that the compositor's rotation transform applies, so
// whole-pixel fast paths and the general transform stay consistent.
func (self Unit) ToIntHalfUp() int {
	return (int(self) + 32) >> 6
}

func (self Unit) Floor() Unit {
	return self & ^Unit(0x3F)
}

func (self Unit) Ceil() Unit {
	return (self + 0x3F).Floor()
}

func (self Unit) ToFloat64() float64 {
	return float64(self)/64.0
}

// Returns a string representation of the Unit, e.g. "2.5" or "1+23/64".
func (self Unit) String() string {
	if self < 0 { return "-" + (-self).String() }
	whole, fraction := self >> 6, self & 0x3F
	if fraction == 0 { return strconv.Itoa(int(whole)) }
	switch fraction {
	case 32: return strconv.Itoa(int(whole)) + ".5"
	case 16: return strconv.Itoa(int(whole)) + ".25"
	case 48: return strconv.Itoa(int(whole)) + ".75"
	default:
		return strconv.Itoa(int(whole)) + "+" + strconv.Itoa(int(fraction)) + "/64"
	}
}
