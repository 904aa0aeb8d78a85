package scene

import "ppm-raytracer/internal/mathutil"

// Triangle holds three vertices and a surface color. Vertex order defines the
// outward normal (P1-P0) × (P2-P0).
type Triangle struct {
	P0, P1, P2   mathutil.Vec3
	SurfaceColor mathutil.Vec3
}

// Normal returns the unnormalized face normal.
func (t *Triangle) Normal() mathutil.Vec3 {
	return t.P1.Sub(t.P0).Cross(t.P2.Sub(t.P0))
}

// Centroid returns the average of the three vertices.
func (t *Triangle) Centroid() mathutil.Vec3 {
	return t.P0.Add(t.P1).Add(t.P2).Scale(1.0 / 3)
}

// IntersectTriangle intersects a ray with the plane of v0,v1,v2 and then runs
// an inside test against each edge. Rays parallel to the plane, and triangles
// with collinear vertices, never hit.
func IntersectTriangle(orig, dir, v0, v1, v2 mathutil.Vec3) (float32, bool) {
	n := v1.Sub(v0).Cross(v2.Sub(v0))

	nDotDir := n.Dot(dir)
	if nDotDir == 0 {
		return 0, false
	}

	t := (n.Dot(v0) - n.Dot(orig)) / nDotDir
	if t < 0 {
		return 0, false
	}

	p := orig.Add(dir.Scale(t))

	// Edge functions: P must lie on the inner side of every edge
	if n.Dot(v1.Sub(v0).Cross(p.Sub(v0))) < 0 {
		return 0, false
	}
	if n.Dot(v2.Sub(v1).Cross(p.Sub(v1))) < 0 {
		return 0, false
	}
	if n.Dot(v0.Sub(v2).Cross(p.Sub(v2))) < 0 {
		return 0, false
	}
	return t, true
}
