package fract

// A pair of [Unit] coordinates. Used by the compositor to shift
// glyphs by sub-pixel amounts before rotation.
type Point struct {
	X Unit
	Y Unit
}

// Creates a [Point] from two [Unit] values.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a [Point] from two ints, which are converted
// to Units along the way.
func IntsToPoint(x, y int) Point {
	return Point{ X: FromInt(x), Y: FromInt(y) }
}

// Returns the addition of the given units to the current point.
func (self Point) AddUnits(x, y Unit) Point {
	self.X += x
	self.Y += y
	return self
}

// Returns whether both coordinates are whole numbers.
func (self Point) IsWhole() bool {
	return self.X.IsWhole() && self.Y.IsWhole()
}

func (self Point) String() string {
	return "(" + self.X.String() + ", " + self.Y.String() + ")"
}
