package raytrace

import (
	"ppm-raytracer/internal/mathutil"
	"ppm-raytracer/internal/scene"
)

const (
	// MaxRayDepth bounds recursion once reflection and refraction exist.
	// Trace accepts a depth but does not recurse yet.
	MaxRayDepth = 5

	// Bias offsets shadow feeler origins along the normal, in world units.
	Bias float32 = 1e-4
)

// Background is returned for rays that hit nothing. It is above 1 on purpose;
// the pixmap sink clamps it to white.
var Background = mathutil.Splat(2)

// Hit describes the nearest intersection along a ray.
type Hit struct {
	Index int     // primitive index in the scene
	T     float32 // parametric distance
}

// Nearest scans every primitive and returns the smallest non-negative t.
// Equal distances keep the lower index.
func Nearest(sc *scene.Scene, orig, dir mathutil.Vec3) (Hit, bool) {
	best := Hit{Index: -1, T: mathutil.Inf}
	for i := range sc.Primitives {
		t, ok := sc.Primitives[i].Intersect(orig, dir)
		if ok && t < best.T {
			best = Hit{Index: i, T: t}
		}
	}
	return best, best.Index >= 0
}

// Trace returns the radiance arriving at orig along the unit direction dir.
// depth is threaded through for a future recursive extension and does not
// change the result today.
func Trace(orig, dir mathutil.Vec3, sc *scene.Scene, depth int) mathutil.Vec3 {
	hit, ok := Nearest(sc, orig, dir)
	if !ok {
		return Background
	}

	prim := &sc.Primitives[hit.Index]
	p := orig.Add(dir.Scale(hit.T))
	n := prim.Normal(p)

	return directLight(sc, prim, p, n).Add(prim.Emission())
}
