package scene

import (
	"github.com/chewxy/math32"

	"ppm-raytracer/internal/mathutil"
)

// Sphere holds geometry and material for one sphere.
// Transparency and Reflectivity are carried for a future recursive tracer.
type Sphere struct {
	Center        mathutil.Vec3
	Radius        float32
	Radius2       float32 // Radius*Radius, cached by NewSphere
	SurfaceColor  mathutil.Vec3
	EmissionColor mathutil.Vec3
	Transparency  float32
	Reflectivity  float32
}

// NewSphere builds a sphere and caches its squared radius.
func NewSphere(center mathutil.Vec3, radius float32, surface, emission mathutil.Vec3, transparency, reflectivity float32) Sphere {
	return Sphere{
		Center:        center,
		Radius:        radius,
		Radius2:       radius * radius,
		SurfaceColor:  surface,
		EmissionColor: emission,
		Transparency:  transparency,
		Reflectivity:  reflectivity,
	}
}

// IsLight reports whether the sphere emits. Only the red channel is checked.
func (s *Sphere) IsLight() bool {
	return s.EmissionColor[0] > 0
}

// IntersectSphere tests a ray against a sphere using the geometric method.
// On a hit it returns both parametric distances t0 <= t1; either may be
// negative when the origin is inside the sphere. A sphere without area
// never hits.
func IntersectSphere(orig, dir, center mathutil.Vec3, radius2 float32) (t0, t1 float32, ok bool) {
	if radius2 <= 0 {
		return 0, 0, false
	}
	l := center.Sub(orig)
	tca := l.Dot(dir)
	if tca < 0 {
		return 0, 0, false
	}
	d2 := l.Dot(l) - tca*tca
	if d2 > radius2 {
		return 0, 0, false
	}
	thc := math32.Sqrt(radius2 - d2)
	return tca - thc, tca + thc, true
}
