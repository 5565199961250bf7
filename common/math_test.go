package common

import (
	"math"
	"testing"
)

func TestSqr(t *testing.T) {
	if got := Sqr(int32(-3)); got != 9 {
		t.Errorf("Sqr(-3) = %d, want 9", got)
	}
	if got := Sqr(int32(0)); got != 0 {
		t.Errorf("Sqr(0) = %d, want 0", got)
	}
	if got := Sqr(uint32(7)); got != 49 {
		t.Errorf("Sqr(7u) = %d, want 49", got)
	}
	if got := Sqr(float32(1.5)); got != 2.25 {
		t.Errorf("Sqr(1.5) = %v, want 2.25", got)
	}
	if got := Sqr(float64(-0.5)); got != 0.25 {
		t.Errorf("Sqr(-0.5) = %v, want 0.25", got)
	}
	// Signed overflow wraps per two's complement, same as on the GPU host.
	if got := Sqr(int32(1 << 16)); got != 0 {
		t.Errorf("Sqr(2^16) = %d, want wrapped 0", got)
	}
}

func TestRcp(t *testing.T) {
	// Exact binary fractions invert exactly.
	for _, x := range []float32{0.5, 2.0, 4.0, -8.0, 1.0} {
		if got := Rcp(x) * x; got != 1.0 {
			t.Errorf("Rcp(%v) * %v = %v, want exactly 1", x, x, got)
		}
	}
	if got := Rcp(float32(0)); !math.IsInf(float64(got), 1) {
		t.Errorf("Rcp(+0) = %v, want +Inf", got)
	}
	if got := Rcp(float64(3)) * 3; math.Abs(got-1) > 1e-15 {
		t.Errorf("Rcp(3.0) * 3.0 = %v, want 1 within one ULP", got)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		x, lo, hi float32
		want      float32
	}{
		{name: "below", x: -1, lo: 0, hi: 1, want: 0},
		{name: "above", x: 2, lo: 0, hi: 1, want: 1},
		{name: "inside", x: 0.25, lo: 0, hi: 1, want: 0.25},
		{name: "at lower edge", x: 0, lo: 0, hi: 1, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.x, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.x, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
	if got := Clamp(int32(5), -2, 3); got != 3 {
		t.Errorf("Clamp(5, -2, 3) = %d, want 3", got)
	}
}

func TestSmoothstep(t *testing.T) {
	if got := Smoothstep(float32(0), 1, -0.5); got != 0 {
		t.Errorf("Smoothstep below window = %v, want 0", got)
	}
	if got := Smoothstep(float32(0), 1, 1.5); got != 1 {
		t.Errorf("Smoothstep above window = %v, want 1", got)
	}
	if got := Smoothstep(float32(0), 1, 0.5); got != 0.5 {
		t.Errorf("Smoothstep at midpoint = %v, want 0.5", got)
	}
	// Monotonic across the window.
	prev := float32(-1)
	for i := 0; i <= 10; i++ {
		x := float32(i) / 10
		y := Smoothstep(0, 1, x)
		if y < prev {
			t.Fatalf("Smoothstep not monotonic at x=%v", x)
		}
		prev = y
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Errorf("Coalesce(0,0,3,4) = %d, want 3", got)
	}
	if got := Coalesce("", "a"); got != "a" {
		t.Errorf("Coalesce(\"\", \"a\") = %q, want \"a\"", got)
	}
	if got := Coalesce(0, 0); got != 0 {
		t.Errorf("Coalesce all-zero = %d, want 0", got)
	}
}
