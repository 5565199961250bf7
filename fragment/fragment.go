// package fragment holds the helpers that are only meaningful where
// screen-space partial derivatives exist: fragment-stage shading and its
// CPU-side equivalent. The capability gate is the import itself: vertex- and
// compute-equivalent code has no business importing this package, mirroring
// the shader side where the aa_step chunk is compiled in only under the
// derivatives feature flag (see the shader package).
//
// Derivatives on the CPU are forward differences at one-pixel offsets, the
// same coarse-quad model GPUs use for dpdx/dpdy.
package fragment

import (
	"math"

	"github.com/Carmen-Shannon/oxy-shadermath/common"
	"github.com/Carmen-Shannon/oxy-shadermath/vec"
)

// invSqrt2 scales the derivative vector length to a half-pixel-diagonal
// filter radius.
const invSqrt2 = 0.70710678

// ScalarField is a scalar quantity varying over screen space, sampled at
// pixel coordinates.
type ScalarField func(p vec.Vec2) float32

// AAStep is the anti-aliased step function: a soft threshold on value at edge
// whose transition width tracks the local screen-space derivative magnitude,
// approximating a hard step without aliasing. The filter radius is
// df = length(dpdx, dpdy) / sqrt(2) and the result is
// smoothstep(edge-df, edge+df, value).
//
// When the derivative magnitude is zero (value constant across the pixel) the
// result degrades to a hard step: 0 below edge, 1 above, 0.5 exactly at it.
//
// Parameters:
//   - edge: threshold location
//   - value: value being thresholded
//   - dpdx: partial derivative of value along the screen x axis
//   - dpdy: partial derivative of value along the screen y axis
//
// Returns:
//   - float32: the anti-aliased step result in [0, 1]
func AAStep(edge, value, dpdx, dpdy float32) float32 {
	df := float32(math.Sqrt(float64(dpdx*dpdx+dpdy*dpdy))) * invSqrt2
	if df == 0 {
		switch {
		case value < edge:
			return 0
		case value > edge:
			return 1
		default:
			return 0.5
		}
	}
	return common.Smoothstep(edge-df, edge+df, value)
}

// Context carries the screen-space position of a single fragment invocation
// and answers derivative queries against it. Contexts are handed out by
// fragment-stage drivers (the dispatch package); each invocation gets its own
// and nothing is shared between invocations.
type Context struct {
	coord vec.Vec2
}

// NewContext creates a fragment context at the given pixel coordinate.
// Intended for fragment-stage drivers; shading code receives contexts, it
// does not construct them.
//
// Parameters:
//   - coord: the fragment's position in pixel coordinates
//
// Returns:
//   - *Context: the per-invocation fragment context
func NewContext(coord vec.Vec2) *Context {
	return &Context{coord: coord}
}

// Coord returns the fragment's position in pixel coordinates.
//
// Returns:
//   - vec.Vec2: the fragment coordinate
func (c *Context) Coord() vec.Vec2 {
	return c.coord
}

// Dpdx returns the partial derivative of f along the screen x axis at this
// fragment, as a forward difference over one pixel.
//
// Parameters:
//   - f: scalar field to differentiate
//
// Returns:
//   - float32: f(coord + (1, 0)) - f(coord)
func (c *Context) Dpdx(f ScalarField) float32 {
	return f(c.coord.Add(vec.Vec2{X: 1})) - f(c.coord)
}

// Dpdy returns the partial derivative of f along the screen y axis at this
// fragment, as a forward difference over one pixel.
//
// Parameters:
//   - f: scalar field to differentiate
//
// Returns:
//   - float32: f(coord + (0, 1)) - f(coord)
func (c *Context) Dpdy(f ScalarField) float32 {
	return f(c.coord.Add(vec.Vec2{Y: 1})) - f(c.coord)
}

// Fwidth returns the sum of the absolute partial derivatives of f at this
// fragment, matching the shading-language fwidth builtin.
//
// Parameters:
//   - f: scalar field to differentiate
//
// Returns:
//   - float32: |dpdx| + |dpdy|
func (c *Context) Fwidth(f ScalarField) float32 {
	return float32(math.Abs(float64(c.Dpdx(f))) + math.Abs(float64(c.Dpdy(f))))
}

// AAStep evaluates the anti-aliased step of f against edge at this fragment,
// deriving the filter radius from the field's local derivatives.
//
// Parameters:
//   - edge: threshold location
//   - f: scalar field being thresholded
//
// Returns:
//   - float32: the anti-aliased step result in [0, 1]
func (c *Context) AAStep(edge float32, f ScalarField) float32 {
	return AAStep(edge, f(c.coord), c.Dpdx(f), c.Dpdy(f))
}
