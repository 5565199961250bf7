package vec

import (
	"math"
	"testing"
)

func TestDotSelfMatchesDot(t *testing.T) {
	v2s := []Vec2{{0, 0}, {1, 2}, {-3, 4}, {0.5, -0.25}}
	for _, v := range v2s {
		if got, want := v.DotSelf(), v.Dot(v); got != want {
			t.Errorf("Vec2%v.DotSelf() = %v, want Dot(v, v) = %v", v, got, want)
		}
		if v.DotSelf() < 0 {
			t.Errorf("Vec2%v.DotSelf() negative", v)
		}
	}
	v3s := []Vec3{{0, 0, 0}, {1, 2, 3}, {-1, -2, -3}}
	for _, v := range v3s {
		if got, want := v.DotSelf(), v.Dot(v); got != want {
			t.Errorf("Vec3%v.DotSelf() = %v, want %v", v, got, want)
		}
	}
	v4s := []Vec4{{0, 0, 0, 0}, {1, -2, 3, -4}}
	for _, v := range v4s {
		if got, want := v.DotSelf(), v.Dot(v); got != want {
			t.Errorf("Vec4%v.DotSelf() = %v, want %v", v, got, want)
		}
	}
}

func TestDotSelfZeroVector(t *testing.T) {
	if got := (Vec2{}).DotSelf(); got != 0 {
		t.Errorf("zero Vec2 DotSelf = %v, want exactly 0", got)
	}
	if got := (Vec3{}).DotSelf(); got != 0 {
		t.Errorf("zero Vec3 DotSelf = %v, want exactly 0", got)
	}
	if got := (Vec4{}).DotSelf(); got != 0 {
		t.Errorf("zero Vec4 DotSelf = %v, want exactly 0", got)
	}
	if got := (DVec2{}).DotSelf(); got != 0 {
		t.Errorf("zero DVec2 DotSelf = %v, want exactly 0", got)
	}
}

func TestRcpExactBinaryFractions(t *testing.T) {
	// Powers of two invert exactly, so v.Rcp().Mul(v) must be exactly one.
	tests := []struct {
		name string
		v    Vec4
	}{
		{name: "powers of two", v: Vec4{0.5, 2.0, 4.0, 0.25}},
		{name: "ones", v: Vec4{1, 1, 1, 1}},
		{name: "mixed signs", v: Vec4{-2, 8, -0.125, 16}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.Rcp().Mul(tt.v)
			want := Vec4{1, 1, 1, 1}
			if got != want {
				t.Errorf("Rcp().Mul(v) = %v, want %v", got, want)
			}
		})
	}
}

func TestRcpZeroProducesInfinity(t *testing.T) {
	r := Vec2{0, -2}.Rcp()
	if !math.IsInf(float64(r.X), 1) {
		t.Errorf("Rcp of +0 = %v, want +Inf", r.X)
	}
	if r.Y != -0.5 {
		t.Errorf("Rcp of -2 = %v, want -0.5", r.Y)
	}
	r3 := Vec3{1, 0, 4}.Rcp()
	if r3.X != 1 || !math.IsInf(float64(r3.Y), 1) || r3.Z != 0.25 {
		t.Errorf("Vec3{1,0,4}.Rcp() = %v, want {1, +Inf, 0.25}", r3)
	}
}

func TestCross2(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec2
		want float32
	}{
		{name: "unit basis", a: Vec2{1, 0}, b: Vec2{0, 1}, want: 1},
		{name: "parallel", a: Vec2{2, 4}, b: Vec2{1, 2}, want: 0},
		{name: "self", a: Vec2{3, -7}, b: Vec2{3, -7}, want: 0},
		{name: "zero operand", a: Vec2{}, b: Vec2{5, 6}, want: 0},
		{name: "general", a: Vec2{2, 1}, b: Vec2{-1, 3}, want: 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Cross2(tt.a, tt.b); got != tt.want {
				t.Errorf("Cross2(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Antisymmetry holds for every pair.
			if got, neg := Cross2(tt.a, tt.b), Cross2(tt.b, tt.a); got != -neg {
				t.Errorf("Cross2 not antisymmetric: %v vs %v", got, neg)
			}
		})
	}
}

func TestDVecDotSelfMatchesDot(t *testing.T) {
	d2 := DVec2{X: 1.5, Y: -2.5}
	if d2.DotSelf() != d2.Dot(d2) {
		t.Errorf("DVec2 DotSelf = %v, want %v", d2.DotSelf(), d2.Dot(d2))
	}
	d3 := DVec3{X: 1, Y: 2, Z: 3}
	if d3.DotSelf() != d3.Dot(d3) {
		t.Errorf("DVec3 DotSelf = %v, want %v", d3.DotSelf(), d3.Dot(d3))
	}
	d4 := DVec4{X: -1, Y: 2, Z: -3, W: 4}
	if d4.DotSelf() != d4.Dot(d4) {
		t.Errorf("DVec4 DotSelf = %v, want %v", d4.DotSelf(), d4.Dot(d4))
	}
}

func TestDCross2(t *testing.T) {
	a, b := DVec2{2, 1}, DVec2{-1, 3}
	if got := DCross2(a, b); got != 7 {
		t.Errorf("DCross2(%v, %v) = %v, want 7", a, b, got)
	}
	if DCross2(a, b) != -DCross2(b, a) {
		t.Error("DCross2 not antisymmetric")
	}
	if DCross2(a, a) != 0 {
		t.Error("DCross2(a, a) != 0")
	}
}

func TestSliceToBytes(t *testing.T) {
	vs := []Vec2{{1, 2}, {3, 4}}
	b := SliceToBytes(vs)
	if len(b) != 16 {
		t.Fatalf("SliceToBytes length = %d, want 16", len(b))
	}
	// Byte view aliases the source slice.
	vs[0].X = 5
	if b2 := SliceToBytes(vs); &b2[0] != &b[0] {
		t.Error("SliceToBytes did not return a view into the source")
	}
	if SliceToBytes([]Vec4(nil)) != nil {
		t.Error("SliceToBytes of empty slice should be nil")
	}
}
