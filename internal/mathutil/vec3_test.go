package mathutil

import (
	"testing"

	"github.com/chewxy/math32"
)

func approxVec(a, b Vec3, tol float32) bool {
	return math32.Abs(a[0]-b[0]) <= tol &&
		math32.Abs(a[1]-b[1]) <= tol &&
		math32.Abs(a[2]-b[2]) <= tol
}

func TestVec3_Arithmetic(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{4, -5, 6}

	tests := []struct {
		name     string
		got      Vec3
		expected Vec3
	}{
		{"add", a.Add(b), Vec3{5, -3, 9}},
		{"sub", a.Sub(b), Vec3{-3, 7, -3}},
		{"mul", a.Mul(b), Vec3{4, -10, 18}},
		{"scale", a.Scale(2), Vec3{2, 4, 6}},
		{"neg", a.Neg(), Vec3{-1, -2, -3}},
		{"splat", Splat(2), Vec3{2, 2, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, tt.got)
			}
		})
	}
}

func TestVec3_DotBilinearAndCommutative(t *testing.T) {
	a := Vec3{1, 2, 3}
	b := Vec3{-2, 0.5, 4}
	c := Vec3{3, -1, 2}

	if a.Dot(b) != b.Dot(a) {
		t.Errorf("Dot not commutative: %f vs %f", a.Dot(b), b.Dot(a))
	}

	const s = 3
	lhs := a.Scale(s).Add(c).Dot(b)
	rhs := s*a.Dot(b) + c.Dot(b)
	if math32.Abs(lhs-rhs) > 1e-5 {
		t.Errorf("Dot not linear: %f vs %f", lhs, rhs)
	}
}

func TestVec3_Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	if got := x.Cross(y); got != (Vec3{0, 0, 1}) {
		t.Errorf("Expected x × y = z, got %v", got)
	}

	vectors := []Vec3{{1, 2, 3}, {-4, 0.25, 7}, {0, 0, 0}, {3, 3, 3}}
	for _, a := range vectors {
		if got := a.Cross(a); got.Len2() != 0 {
			t.Errorf("Expected %v × itself = 0, got %v", a, got)
		}
		for _, b := range vectors {
			if !approxVec(a.Cross(b), b.Cross(a).Neg(), 1e-6) {
				t.Errorf("Cross not anti-commutative for %v, %v", a, b)
			}
		}
	}
}

func TestVec3_Length(t *testing.T) {
	v := Vec3{3, 4, 12}
	if v.Len2() != 169 {
		t.Errorf("Expected Len2 169, got %f", v.Len2())
	}
	if v.Len() != 13 {
		t.Errorf("Expected Len 13, got %f", v.Len())
	}
}

func TestVec3_Normalize(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
	}{
		{"zero", Vec3{}},
		{"axis", Vec3{0, 0, -7}},
		{"small", Vec3{1e-3, 2e-3, -3e-3}},
		{"large", Vec3{1e4, -3e4, 2e4}},
		{"camera ray", Vec3{-0.35, 0.26, -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := tt.v
			v.Normalize()
			if tt.v.IsZero() {
				if !v.IsZero() {
					t.Errorf("Expected zero vector unchanged, got %v", v)
				}
				return
			}
			if math32.Abs(v.Len()-1) > 1e-6 {
				t.Errorf("Expected unit length, got %f", v.Len())
			}
			if v.Dot(tt.v) <= 0 {
				t.Errorf("Normalize flipped direction: %v -> %v", tt.v, v)
			}
			if tt.v.Normalized() != v {
				t.Errorf("Normalized() %v disagrees with Normalize() %v", tt.v.Normalized(), v)
			}
		})
	}
}

func TestClamp01(t *testing.T) {
	tests := []struct{ in, want float32 }{
		{-1, 0}, {0, 0}, {0.25, 0.25}, {1, 1}, {2, 1},
	}
	for _, tt := range tests {
		if got := Clamp01(tt.in); got != tt.want {
			t.Errorf("Clamp01(%f) = %f, want %f", tt.in, got, tt.want)
		}
	}
}
