package scene

import "ppm-raytracer/internal/mathutil"

// Kind tags the active member of a Primitive.
type Kind uint8

const (
	KindSphere Kind = iota
	KindTriangle
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindTriangle:
		return "triangle"
	}
	return "unknown"
}

// Primitive is a tagged variant over the supported shapes. Only the member
// selected by Kind is meaningful. Methods switch on Kind so the hit scan stays
// a plain loop over values.
type Primitive struct {
	Kind     Kind
	Sphere   Sphere
	Triangle Triangle
}

// SpherePrimitive wraps s.
func SpherePrimitive(s Sphere) Primitive {
	return Primitive{Kind: KindSphere, Sphere: s}
}

// TrianglePrimitive wraps t.
func TrianglePrimitive(t Triangle) Primitive {
	return Primitive{Kind: KindTriangle, Triangle: t}
}

// Intersect returns the nearest non-negative parametric distance along the ray.
// For spheres, t0 is used unless negative, in which case t1 is used.
func (p *Primitive) Intersect(orig, dir mathutil.Vec3) (float32, bool) {
	switch p.Kind {
	case KindSphere:
		t0, t1, ok := IntersectSphere(orig, dir, p.Sphere.Center, p.Sphere.Radius2)
		if !ok {
			return 0, false
		}
		if t0 < 0 {
			t0 = t1
		}
		if t0 < 0 {
			return 0, false
		}
		return t0, true
	case KindTriangle:
		tr := &p.Triangle
		return IntersectTriangle(orig, dir, tr.P0, tr.P1, tr.P2)
	}
	return 0, false
}

// Occludes reports the raw hit flag of the shape's intersection routine.
// Shadow feelers use it without any distance limit.
func (p *Primitive) Occludes(orig, dir mathutil.Vec3) bool {
	switch p.Kind {
	case KindSphere:
		_, _, ok := IntersectSphere(orig, dir, p.Sphere.Center, p.Sphere.Radius2)
		return ok
	case KindTriangle:
		tr := &p.Triangle
		_, ok := IntersectTriangle(orig, dir, tr.P0, tr.P1, tr.P2)
		return ok
	}
	return false
}

// Normal returns the unit surface normal at point hit.
// Normals are never flipped toward the viewer.
func (p *Primitive) Normal(hit mathutil.Vec3) mathutil.Vec3 {
	switch p.Kind {
	case KindSphere:
		return hit.Sub(p.Sphere.Center).Normalized()
	case KindTriangle:
		return p.Triangle.Normal().Normalized()
	}
	return mathutil.Zero
}

// Center is the sphere center, or the triangle centroid.
func (p *Primitive) Center() mathutil.Vec3 {
	if p.Kind == KindTriangle {
		return p.Triangle.Centroid()
	}
	return p.Sphere.Center
}

func (p *Primitive) Surface() mathutil.Vec3 {
	if p.Kind == KindTriangle {
		return p.Triangle.SurfaceColor
	}
	return p.Sphere.SurfaceColor
}

// Emission is zero for triangles.
func (p *Primitive) Emission() mathutil.Vec3 {
	if p.Kind == KindSphere {
		return p.Sphere.EmissionColor
	}
	return mathutil.Zero
}

// IsLight reports whether the primitive contributes direct light.
func (p *Primitive) IsLight() bool {
	return p.Kind == KindSphere && p.Sphere.IsLight()
}
