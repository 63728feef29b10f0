package microfont

// Sine values for 0..179 degrees, scaled by 64. The second half
// period and the cosine are derived by sign flip and 90 degree
// phase shift, so half a period is all that needs storing.
var sinTable = [180]int{
	 0,  1,  2,  3,  4,  6,  7,  8,  9, 10, 11, 12, 13, 14, 15,
	17, 18, 19, 20, 21, 22, 23, 24, 25, 26, 27, 28, 29, 30, 31,
	32, 33, 34, 35, 36, 37, 38, 39, 39, 40, 41, 42, 43, 44, 44,
	45, 46, 47, 48, 48, 49, 50, 50, 51, 52, 52, 53, 54, 54, 55,
	55, 56, 57, 57, 58, 58, 58, 59, 59, 60, 60, 61, 61, 61, 62,
	62, 62, 62, 63, 63, 63, 63, 63, 64, 64, 64, 64, 64, 64, 64,
	64, 64, 64, 64, 64, 64, 64, 64, 63, 63, 63, 63, 63, 62, 62,
	62, 62, 61, 61, 61, 60, 60, 59, 59, 58, 58, 58, 57, 57, 56,
	55, 55, 54, 54, 53, 52, 52, 51, 50, 50, 49, 48, 48, 47, 46,
	45, 44, 44, 43, 42, 41, 40, 39, 39, 38, 37, 36, 35, 34, 33,
	32, 31, 30, 29, 28, 27, 26, 25, 24, 23, 22, 21, 20, 19, 18,
	17, 15, 14, 13, 12, 11, 10,  9,  8,  7,  6,  4,  3,  2,  1,
}

// Reduces an angle in degrees to [0, 360).
func normalizeDegrees(degrees int) int {
	degrees %= 360
	if degrees < 0 { degrees += 360 }
	return degrees
}

// Fixed point sine at scale 64 for a whole number of degrees.
func fixedSin(degrees int) int {
	degrees = normalizeDegrees(degrees)
	if degrees < 180 { return sinTable[degrees] }
	return -sinTable[degrees - 180]
}

// Fixed point cosine at scale 64 for a whole number of degrees.
func fixedCos(degrees int) int {
	return fixedSin(degrees + 90)
}

// Returns the fixed point sine and cosine pair for a rotation. The
// four canonical angles bypass the table so the axis aligned cases
// are exact independently of table contents.
func rotationPair(degrees int) (sin, cos int) {
	switch normalizeDegrees(degrees) {
	case 0: return 0, 64
	case 90: return 64, 0
	case 180: return 0, -64
	case 270: return -64, 0
	default:
		return fixedSin(degrees), fixedCos(degrees)
	}
}
