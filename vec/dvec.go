// dvec.go defines the double-precision companions of the types in vec.go.
// The formulas are identical; only the scalar type differs. Double-precision
// vectors exist for CPU-side tooling and comparison paths; they have no WGSL
// counterpart and no GPU layout guarantees.
package vec

// DVec2 is a 2-component double-precision vector.
type DVec2 struct {
	X, Y float64
}

// DVec3 is a 3-component double-precision vector.
type DVec3 struct {
	X, Y, Z float64
}

// DVec4 is a 4-component double-precision vector.
type DVec4 struct {
	X, Y, Z, W float64
}

// Dot returns the dot product of v and q.
func (v DVec2) Dot(q DVec2) float64 {
	return v.X*q.X + v.Y*q.Y
}

// Dot returns the dot product of v and q.
func (v DVec3) Dot(q DVec3) float64 {
	return v.X*q.X + v.Y*q.Y + v.Z*q.Z
}

// Dot returns the dot product of v and q.
func (v DVec4) Dot(q DVec4) float64 {
	return v.X*q.X + v.Y*q.Y + v.Z*q.Z + v.W*q.W
}

// DotSelf returns the dot product of v with itself, i.e. the squared Euclidean
// length. The result is always >= 0 and exactly 0 for the zero vector.
//
// Returns:
//   - float64: sum of squares of the components
func (v DVec2) DotSelf() float64 {
	return v.X*v.X + v.Y*v.Y
}

// DotSelf returns the dot product of v with itself, i.e. the squared Euclidean
// length. The result is always >= 0 and exactly 0 for the zero vector.
//
// Returns:
//   - float64: sum of squares of the components
func (v DVec3) DotSelf() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// DotSelf returns the dot product of v with itself, i.e. the squared Euclidean
// length. The result is always >= 0 and exactly 0 for the zero vector.
//
// Returns:
//   - float64: sum of squares of the components
func (v DVec4) DotSelf() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// DCross2 returns the 2D scalar cross product of a and b at double precision.
// Antisymmetric and zero for parallel inputs, matching Cross2.
//
// Parameters:
//   - a: left operand
//   - b: right operand
//
// Returns:
//   - float64: a.X*b.Y - a.Y*b.X
func DCross2(a, b DVec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
