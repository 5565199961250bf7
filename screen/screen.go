// package screen provides the viewport-size descriptor and the pixel-space to
// normalized-device-coordinate remap used by shader programs and their
// CPU-side equivalents. The remap assumes only pixel scale, not orientation;
// whether the origin is top-left or bottom-left is the caller's convention.
package screen

import "github.com/Carmen-Shannon/oxy-shadermath/vec"

// ScreenSize describes viewport dimensions in pixels. Both dimensions must be
// positive and finite in any valid use; this package does not validate them
// (a zero dimension divides by zero per IEEE-754 downstream).
type ScreenSize struct {
	// Width is the viewport width in pixels.
	Width float32

	// Height is the viewport height in pixels.
	Height float32
}

// Remap converts a position in pixel coordinates into normalized device
// coordinates in [-1, 1] per axis: p / (width, height) * 2 - 1. (0, 0) maps to
// (-1, -1), (width, height) maps to (1, 1), the viewport center maps to
// (0, 0). No clamping is performed; out-of-viewport points map outside
// [-1, 1] linearly.
//
// Parameters:
//   - size: viewport dimensions in pixels
//   - p: position in pixel coordinates
//
// Returns:
//   - vec.Vec2: the position in normalized device coordinates
func Remap(size ScreenSize, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: p.X/size.Width*2.0 - 1.0,
		Y: p.Y/size.Height*2.0 - 1.0,
	}
}

// DRemap is the double-precision companion of Remap, for CPU-side tooling
// that carries positions as DVec2. Same formula, same guarantees.
//
// Parameters:
//   - size: viewport dimensions in pixels
//   - p: position in pixel coordinates
//
// Returns:
//   - vec.DVec2: the position in normalized device coordinates
func DRemap(size ScreenSize, p vec.DVec2) vec.DVec2 {
	return vec.DVec2{
		X: p.X/float64(size.Width)*2.0 - 1.0,
		Y: p.Y/float64(size.Height)*2.0 - 1.0,
	}
}
