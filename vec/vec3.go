package vec

import "math"

// Epsilon is the tolerance used for every float comparison in the module.
const Epsilon = 1e-6

// Compare returns 0 if a and b are within Epsilon of each other, -1 if a is the
// smaller of the two and 1 otherwise.
func Compare(a, b float64) int {
	switch {
	case math.Abs(a-b) < Epsilon:
		return 0
	case a < b:
		return -1
	default:
		return 1
	}
}

// IsZero reports whether f is within Epsilon of zero.
func IsZero(f float64) bool {
	return Compare(f, 0) == 0
}

// Vec3 is used as a 2D position or direction; Z is carried through the math but
// Rotate never touches it.
type Vec3 struct {
	X, Y, Z float64
}

func New(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Dot returns the dot product of a and b.
func Dot(a, b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Distance returns the euclidean distance between a and b.
func Distance(a, b Vec3) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Length returns the euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(Dot(v, v))
}

// Translate adds b to v componentwise.
func (v *Vec3) Translate(b Vec3) {
	v.X += b.X
	v.Y += b.Y
	v.Z += b.Z
}

// Rotate rotates v in the x/y plane by angle radians:
//
//	[cos -sin]
//	[sin  cos]
func (v *Vec3) Rotate(angle float64) {
	sin, cos := math.Sincos(angle)
	x := v.X
	v.X = cos*x - sin*v.Y
	v.Y = sin*x + cos*v.Y
}

func (v *Vec3) Scale(k float64) {
	v.X *= k
	v.Y *= k
	v.Z *= k
}

func (v *Vec3) Invert() {
	v.X = -v.X
	v.Y = -v.Y
	v.Z = -v.Z
}

// Normalize scales v to unit length. Vectors with a norm within Epsilon of zero
// are left unchanged.
func (v *Vec3) Normalize() {
	l := v.Length()
	if IsZero(l) {
		return
	}
	v.X /= l
	v.Y /= l
	v.Z /= l
}

// Sub returns a - b.
func Sub(a, b Vec3) Vec3 {
	return Vec3{X: a.X - b.X, Y: a.Y - b.Y, Z: a.Z - b.Z}
}
