// vec.go defines the single-precision vector types used by shader-equivalent
// CPU code and the arithmetic helpers shared across the shader codebase. Each
// helper is one formula repeated per concrete type; resolution is entirely
// static and no function here validates input, branches on type, or reports
// errors (division by zero follows IEEE-754 and yields infinities).
//
// Double-precision companions live in dvec.go. Layout of the float32 types is
// GPU-compatible: fields are tightly packed in declaration order, so slices of
// them can be uploaded directly via SliceToBytes.
package vec

// Vec2 is a 2-component single-precision vector.
type Vec2 struct {
	X, Y float32
}

// Vec3 is a 3-component single-precision vector.
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 is a 4-component single-precision vector.
type Vec4 struct {
	X, Y, Z, W float32
}

// Add returns v + q componentwise.
func (v Vec2) Add(q Vec2) Vec2 {
	return Vec2{v.X + q.X, v.Y + q.Y}
}

// Sub returns v - q componentwise.
func (v Vec2) Sub(q Vec2) Vec2 {
	return Vec2{v.X - q.X, v.Y - q.Y}
}

// Mul returns the componentwise product v * q.
func (v Vec2) Mul(q Vec2) Vec2 {
	return Vec2{v.X * q.X, v.Y * q.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Dot returns the dot product of v and q.
func (v Vec2) Dot(q Vec2) float32 {
	return v.X*q.X + v.Y*q.Y
}

// Add returns v + q componentwise.
func (v Vec3) Add(q Vec3) Vec3 {
	return Vec3{v.X + q.X, v.Y + q.Y, v.Z + q.Z}
}

// Sub returns v - q componentwise.
func (v Vec3) Sub(q Vec3) Vec3 {
	return Vec3{v.X - q.X, v.Y - q.Y, v.Z - q.Z}
}

// Mul returns the componentwise product v * q.
func (v Vec3) Mul(q Vec3) Vec3 {
	return Vec3{v.X * q.X, v.Y * q.Y, v.Z * q.Z}
}

// Scale returns v scaled by s.
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Dot returns the dot product of v and q.
func (v Vec3) Dot(q Vec3) float32 {
	return v.X*q.X + v.Y*q.Y + v.Z*q.Z
}

// Add returns v + q componentwise.
func (v Vec4) Add(q Vec4) Vec4 {
	return Vec4{v.X + q.X, v.Y + q.Y, v.Z + q.Z, v.W + q.W}
}

// Sub returns v - q componentwise.
func (v Vec4) Sub(q Vec4) Vec4 {
	return Vec4{v.X - q.X, v.Y - q.Y, v.Z - q.Z, v.W - q.W}
}

// Mul returns the componentwise product v * q.
func (v Vec4) Mul(q Vec4) Vec4 {
	return Vec4{v.X * q.X, v.Y * q.Y, v.Z * q.Z, v.W * q.W}
}

// Scale returns v scaled by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v.X * s, v.Y * s, v.Z * s, v.W * s}
}

// Dot returns the dot product of v and q.
func (v Vec4) Dot(q Vec4) float32 {
	return v.X*q.X + v.Y*q.Y + v.Z*q.Z + v.W*q.W
}

// DotSelf returns the dot product of v with itself, i.e. the squared Euclidean
// length. The result is always >= 0 and exactly 0 for the zero vector.
//
// Returns:
//   - float32: sum of squares of the components
func (v Vec2) DotSelf() float32 {
	return v.X*v.X + v.Y*v.Y
}

// DotSelf returns the dot product of v with itself, i.e. the squared Euclidean
// length. The result is always >= 0 and exactly 0 for the zero vector.
//
// Returns:
//   - float32: sum of squares of the components
func (v Vec3) DotSelf() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// DotSelf returns the dot product of v with itself, i.e. the squared Euclidean
// length. The result is always >= 0 and exactly 0 for the zero vector.
//
// Returns:
//   - float32: sum of squares of the components
func (v Vec4) DotSelf() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z + v.W*v.W
}

// Rcp returns the componentwise reciprocal 1/v. Components equal to 0 produce
// signed infinities per IEEE-754 division; that is the intended result, not an
// error condition.
//
// Returns:
//   - Vec2: the componentwise reciprocal
func (v Vec2) Rcp() Vec2 {
	return Vec2{1.0 / v.X, 1.0 / v.Y}
}

// Rcp returns the componentwise reciprocal 1/v. Components equal to 0 produce
// signed infinities per IEEE-754 division; that is the intended result, not an
// error condition.
//
// Returns:
//   - Vec3: the componentwise reciprocal
func (v Vec3) Rcp() Vec3 {
	return Vec3{1.0 / v.X, 1.0 / v.Y, 1.0 / v.Z}
}

// Rcp returns the componentwise reciprocal 1/v. Components equal to 0 produce
// signed infinities per IEEE-754 division; that is the intended result, not an
// error condition.
//
// Returns:
//   - Vec4: the componentwise reciprocal
func (v Vec4) Rcp() Vec4 {
	return Vec4{1.0 / v.X, 1.0 / v.Y, 1.0 / v.Z, 1.0 / v.W}
}

// Cross2 returns the 2D scalar cross product of a and b: the z-component of
// the 3D cross product of (a, 0) and (b, 0). Antisymmetric
// (Cross2(a, b) == -Cross2(b, a)) and zero when a and b are parallel,
// including when either is the zero vector.
//
// Parameters:
//   - a: left operand
//   - b: right operand
//
// Returns:
//   - float32: a.X*b.Y - a.Y*b.X
func Cross2(a, b Vec2) float32 {
	return a.X*b.Y - a.Y*b.X
}
