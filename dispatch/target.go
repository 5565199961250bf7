package dispatch

import (
	"image"
	"image/color"

	"github.com/Carmen-Shannon/oxy-shadermath/common"
	"github.com/Carmen-Shannon/oxy-shadermath/vec"
)

// Target holds the output of one dispatch: a width*height grid of Vec4
// fragment results in row-major order. Targets are written once by Dispatch
// and read-only afterwards.
type Target struct {
	width  int
	height int
	pixels []vec.Vec4
}

// Width returns the target width in pixels.
//
// Returns:
//   - int: width in pixels
func (t *Target) Width() int {
	return t.width
}

// Height returns the target height in pixels.
//
// Returns:
//   - int: height in pixels
func (t *Target) Height() int {
	return t.height
}

// At returns the fragment result at pixel (x, y). Coordinates outside the
// target are the caller's error and will panic on the backing slice.
//
// Parameters:
//   - x: pixel column
//   - y: pixel row
//
// Returns:
//   - vec.Vec4: the fragment result written at (x, y)
func (t *Target) At(x, y int) vec.Vec4 {
	return t.pixels[y*t.width+x]
}

// Pixels returns the backing row-major fragment results. The slice is shared
// with the target; treat it as read-only.
//
// Returns:
//   - []vec.Vec4: row-major fragment results
func (t *Target) Pixels() []vec.Vec4 {
	return t.pixels
}

// Bytes returns the raw float32 pixel data as a byte view suitable for GPU
// buffer upload (rgba32float layout, row-major). The view shares memory with
// the target.
//
// Returns:
//   - []byte: byte view of the fragment results
func (t *Target) Bytes() []byte {
	return vec.SliceToBytes(t.pixels)
}

// RGBA converts the target to an 8-bit RGBA image for inspection or encoding.
// Components are clamped to [0, 1] before quantization; alpha is taken from W.
//
// Returns:
//   - *image.RGBA: the quantized image
func (t *Target) RGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, t.width, t.height))
	for y := 0; y < t.height; y++ {
		for x := 0; x < t.width; x++ {
			p := t.pixels[y*t.width+x]
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(common.Clamp(p.X, 0, 1)*255 + 0.5),
				G: uint8(common.Clamp(p.Y, 0, 1)*255 + 0.5),
				B: uint8(common.Clamp(p.Z, 0, 1)*255 + 0.5),
				A: uint8(common.Clamp(p.W, 0, 1)*255 + 0.5),
			})
		}
	}
	return img
}
