package scene

import "ppm-raytracer/internal/mathutil"

// Scene is an ordered list of primitives. Order only matters for ties
// between equal hit distances (lowest index wins). A Scene must not be
// modified once rendering has started.
type Scene struct {
	Name       string
	Primitives []Primitive
}

// New returns an empty scene with the given name.
func New(name string) *Scene {
	return &Scene{Name: name}
}

// AddSphere appends a sphere and returns the scene for chaining.
func (s *Scene) AddSphere(sp Sphere) *Scene {
	s.Primitives = append(s.Primitives, SpherePrimitive(sp))
	return s
}

// AddTriangle appends a triangle and returns the scene for chaining.
func (s *Scene) AddTriangle(v0, v1, v2, surface mathutil.Vec3) *Scene {
	s.Primitives = append(s.Primitives, TrianglePrimitive(Triangle{P0: v0, P1: v1, P2: v2, SurfaceColor: surface}))
	return s
}

// Lights returns the indices of emissive primitives, in scene order.
func (s *Scene) Lights() []int {
	var idx []int
	for i := range s.Primitives {
		if s.Primitives[i].IsLight() {
			idx = append(idx, i)
		}
	}
	return idx
}

// Len returns the number of primitives.
func (s *Scene) Len() int {
	return len(s.Primitives)
}
