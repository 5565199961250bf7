// package limits exposes the numeric limit records shared by every shader in
// the codebase: 32-bit unsigned, 32-bit signed, and IEEE-754 single-precision
// limit values. The records are package-level immutable values computed at
// compile time; nothing in this package allocates, validates, or fails.
//
// The same constants exist on the WGSL side as the embedded chunk
// GPULimitsSource (see assets/limits.wgsl), injected into shaders by the
// shader pre-processor.
package limits

import (
	_ "embed"
	"math"
)

// GPULimitsSource is the canonical WGSL definition of the limit constants.
// Values match the Go records in this package exactly.
//
//go:embed assets/limits.wgsl
var GPULimitsSource string

// UintLimits holds the limit values for 32-bit unsigned integers.
type UintLimits struct {
	// Max is the largest representable value, 0xFFFFFFFF.
	Max uint32

	// Min is the smallest representable value, 0.
	Min uint32
}

// IntLimits holds the limit values for 32-bit two's-complement signed integers.
type IntLimits struct {
	// Max is the largest representable value, 0x7FFFFFFF.
	Max int32

	// Min is the smallest representable value, the bit pattern 0x80000000
	// interpreted as signed.
	Min int32
}

// FloatLimits holds the limit values for IEEE-754 single-precision floats.
type FloatLimits struct {
	// Epsilon is the smallest representable difference near 1.0
	// (1.0 + Epsilon != 1.0, 1.0 + Epsilon/2 == 1.0 under default rounding).
	Epsilon float32

	// Infinity is positive infinity.
	Infinity float32

	// NegInfinity is negative infinity.
	NegInfinity float32

	// Max is the largest finite value.
	Max float32

	// Min is the most-negative finite value, i.e. -Max. Note: this is NOT the
	// smallest positive magnitude. Call sites depend on this meaning; do not
	// repurpose the field.
	Min float32

	// Pi is the circle constant at single precision.
	Pi float32

	// E is Euler's number at single precision.
	E float32
}

// Uint is the limit record for 32-bit unsigned integers.
var Uint = UintLimits{
	Max: 0xFFFFFFFF,
	Min: 0,
}

// Int is the limit record for 32-bit signed integers.
var Int = IntLimits{
	Max: 0x7FFFFFFF,
	Min: -0x80000000,
}

// Float is the limit record for 32-bit floats.
var Float = FloatLimits{
	Epsilon:     1.19209290e-07,
	Infinity:    float32(math.Inf(1)),
	NegInfinity: float32(math.Inf(-1)),
	Max:         3.40282347e+38,
	Min:         -3.40282347e+38,
	Pi:          3.14159265,
	E:           2.71828183,
}
