package raytrace

import (
	"ppm-raytracer/internal/mathutil"
	"ppm-raytracer/internal/scene"
)

// directLight sums the Lambertian contribution of every emissive primitive
// visible from p. Visibility is a single shadow feeler toward the light
// center; any primitive other than the light that the feeler touches blocks
// the light entirely, wherever it lies along the feeler.
func directLight(sc *scene.Scene, surf *scene.Primitive, p, n mathutil.Vec3) mathutil.Vec3 {
	color := mathutil.Zero
	origin := p.Add(n.Scale(Bias))
	albedo := surf.Surface()

	for i := range sc.Primitives {
		light := &sc.Primitives[i]
		if !light.IsLight() {
			continue
		}

		l := light.Center().Sub(p)
		l.Normalize()

		if occluded(sc, i, origin, l) {
			continue
		}

		cosine := n.Dot(l)
		if cosine < 0 {
			cosine = 0
		}
		color = color.Add(albedo.Mul(light.Emission()).Scale(cosine))
	}
	return color
}

// occluded reports whether any primitive except the light at index skip
// intersects the feeler.
func occluded(sc *scene.Scene, skip int, orig, dir mathutil.Vec3) bool {
	for j := range sc.Primitives {
		if j == skip {
			continue
		}
		if sc.Primitives[j].Occludes(orig, dir) {
			return true
		}
	}
	return false
}
