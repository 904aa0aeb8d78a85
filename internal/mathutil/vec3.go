package mathutil

import "github.com/chewxy/math32"

// Vec3 is a 3-component single-precision vector (value type, stack-allocated).
// The same type carries points, directions and linear RGB colors.
type Vec3 [3]float32

// Splat returns a vector with all three components set to s.
func Splat(s float32) Vec3 {
	return Vec3{s, s, s}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul is the component-wise product, used for color modulation.
func (a Vec3) Mul(b Vec3) Vec3 {
	return Vec3{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

func (v Vec3) Neg() Vec3 {
	return Vec3{-v[0], -v[1], -v[2]}
}

func (a Vec3) Dot(b Vec3) float32 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

func (v Vec3) Len2() float32 {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

func (v Vec3) Len() float32 {
	return math32.Sqrt(v.Len2())
}

// Normalize scales v to unit length in place. A zero vector is left unchanged.
func (v *Vec3) Normalize() {
	n2 := v.Len2()
	if n2 > 0 {
		inv := 1 / math32.Sqrt(n2)
		v[0] *= inv
		v[1] *= inv
		v[2] *= inv
	}
}

// Normalized returns a unit-length copy of v (or v itself when zero).
func (v Vec3) Normalized() Vec3 {
	v.Normalize()
	return v
}

// IsZero reports whether all components are exactly zero.
func (v Vec3) IsZero() bool {
	return v[0] == 0 && v[1] == 0 && v[2] == 0
}
