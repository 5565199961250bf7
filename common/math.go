// math.go holds the generic scalar arithmetic helpers shared across shader
// programs and their CPU-side equivalents. Every function is one formula
// instantiated over a closed numeric type set; dispatch is entirely static
// (generic instantiation), there is no runtime type branching, and none of
// these helpers validate input or report errors. Division by zero and integer
// overflow follow the host numeric model (IEEE-754 and Go's defined
// wraparound respectively).
package common

// Scalar is the closed set of shader scalar types: 32-bit signed and unsigned
// integers and single/double-precision floats.
type Scalar interface {
	~int32 | ~uint32 | ~float32 | ~float64
}

// Float is the closed set of shader floating-point scalar types.
type Float interface {
	~float32 | ~float64
}

// Sqr returns x * x. For signed integer input, overflow wraps per Go's
// defined two's-complement semantics; callers are responsible for range.
//
// Parameters:
//   - x: value to square
//
// Returns:
//   - T: x * x in the input type
func Sqr[T Scalar](x T) T {
	return x * x
}

// Rcp returns the reciprocal 1/x. When x is exactly 0 the result is a signed
// infinity per IEEE-754 division; that is the intended result, not an error
// condition.
//
// Parameters:
//   - x: value to invert
//
// Returns:
//   - T: 1.0 / x at the input precision
func Rcp[T Float](x T) T {
	return 1.0 / x
}

// Clamp limits x to the range [lo, hi].
//
// Parameters:
//   - x: value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: x clamped to [lo, hi]
func Clamp[T Scalar](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Smoothstep performs the Hermite interpolation the shading language's
// smoothstep builtin performs: 0 for x <= edge0, 1 for x >= edge1, and
// 3t^2 - 2t^3 across the window. The caller must ensure edge0 < edge1;
// a zero-width window divides by zero, matching the builtin's contract.
//
// Parameters:
//   - edge0: lower edge of the interpolation window
//   - edge1: upper edge of the interpolation window
//   - x: interpolation source value
//
// Returns:
//   - T: interpolated value in [0, 1]
func Smoothstep[T Float](edge0, edge1, x T) T {
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}
