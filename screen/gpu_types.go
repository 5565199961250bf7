package screen

import (
	_ "embed"
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUScreenSizeSource is the canonical WGSL definition of the ScreenSize
// struct together with the remap function that consumes it. Matches
// GPUScreenSize layout exactly (16 bytes, uniform-buffer aligned).
//
//go:embed assets/screen.wgsl
var GPUScreenSizeSource string

// GPUScreenSize is the GPU-aligned representation of the screen-size uniform.
// Matches the WGSL ScreenSize struct layout exactly (see GPUScreenSizeSource).
// Size: 16 bytes (vec2<f32> plus trailing pad to uniform alignment).
type GPUScreenSize struct {
	Width  float32    // offset 0: viewport width in pixels
	Height float32    // offset 4: viewport height in pixels
	_pad   [2]float32 // offset 8: padding to 16 bytes
}

// NewGPUScreenSize builds the uniform representation of a ScreenSize.
//
// Parameters:
//   - size: viewport dimensions in pixels
//
// Returns:
//   - GPUScreenSize: the GPU-aligned uniform value
func NewGPUScreenSize(size ScreenSize) GPUScreenSize {
	return GPUScreenSize{Width: size.Width, Height: size.Height}
}

// Size returns the size of the GPUScreenSize struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (16)
func (g *GPUScreenSize) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUScreenSize struct into a byte buffer suitable for
// GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUScreenSize) Marshal() []byte {
	buf := make([]byte, g.Size())
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(g.Width))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(g.Height))
	binary.LittleEndian.PutUint32(buf[8:], 0)  // _pad
	binary.LittleEndian.PutUint32(buf[12:], 0) // _pad
	return buf
}
