package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"ppm-raytracer/internal/mathutil"
)

func TestIntersectTriangle(t *testing.T) {
	v0 := mathutil.Vec3{-1, -1, -5}
	v1 := mathutil.Vec3{1, -1, -5}
	v2 := mathutil.Vec3{0, 1, -5}

	tests := []struct {
		name      string
		orig      mathutil.Vec3
		dir       mathutil.Vec3
		shouldHit bool
		expectedT float32
	}{
		{
			name:      "camera ray through interior",
			orig:      mathutil.Vec3{0, 0, 0},
			dir:       mathutil.Vec3{0, 0, -1},
			shouldHit: true,
			expectedT: 5,
		},
		{
			name:      "offset origin",
			orig:      mathutil.Vec3{0.2, -0.3, 3},
			dir:       mathutil.Vec3{0, 0, -1},
			shouldHit: true,
			expectedT: 8,
		},
		{
			name:      "hit on edge",
			orig:      mathutil.Vec3{0, -1, 0},
			dir:       mathutil.Vec3{0, 0, -1},
			shouldHit: true,
			expectedT: 5,
		},
		{
			name:      "from behind",
			orig:      mathutil.Vec3{0, 0, -10},
			dir:       mathutil.Vec3{0, 0, 1},
			shouldHit: true,
			expectedT: 5,
		},
		{
			name: "outside triangle",
			orig: mathutil.Vec3{1, 1, 0},
			dir:  mathutil.Vec3{0, 0, -1},
		},
		{
			name: "parallel to plane",
			orig: mathutil.Vec3{0, 0, -5},
			dir:  mathutil.Vec3{1, 0, 0},
		},
		{
			name: "plane behind ray",
			orig: mathutil.Vec3{0, 0, 0},
			dir:  mathutil.Vec3{0, 0, 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := IntersectTriangle(tt.orig, tt.dir, v0, v1, v2)
			if ok != tt.shouldHit {
				t.Fatalf("Expected hit=%v, got hit=%v (t=%f)", tt.shouldHit, ok, got)
			}
			if tt.shouldHit && math32.Abs(got-tt.expectedT) > 1e-5 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, got)
			}
		})
	}
}

func TestIntersectTriangle_CentroidIsInside(t *testing.T) {
	triangles := []Triangle{
		{P0: mathutil.Vec3{-1, -1, -5}, P1: mathutil.Vec3{1, -1, -5}, P2: mathutil.Vec3{0, 1, -5}},
		{P0: mathutil.Vec3{-10, -4, -28}, P1: mathutil.Vec3{-4, -4, -28}, P2: mathutil.Vec3{-7, 2, -32}},
		{P0: mathutil.Vec3{2, 0, 0}, P1: mathutil.Vec3{0, 2, 0}, P2: mathutil.Vec3{0, 0, 2}},
	}

	for i, tr := range triangles {
		n := tr.Normal().Normalized()
		c := tr.Centroid()
		// Origin on the positive side of the plane, off the normal line
		orig := c.Add(n.Scale(6)).Add(tr.P1.Sub(tr.P0).Scale(0.3))
		dir := c.Sub(orig).Normalized()

		got, ok := IntersectTriangle(orig, dir, tr.P0, tr.P1, tr.P2)
		if !ok {
			t.Errorf("triangle %d: expected hit toward centroid", i)
			continue
		}
		p := orig.Add(dir.Scale(got))
		if p.Sub(c).Len() > 1e-4*c.Len()+1e-4 {
			t.Errorf("triangle %d: expected hit at centroid %v, got %v", i, c, p)
		}
	}
}

func TestIntersectTriangle_Degenerate(t *testing.T) {
	// Collinear vertices have a zero normal, so N·D is zero for every ray
	v0 := mathutil.Vec3{0, 0, -5}
	v1 := mathutil.Vec3{1, 1, -5}
	v2 := mathutil.Vec3{2, 2, -5}
	if got, ok := IntersectTriangle(mathutil.Vec3{}, mathutil.Vec3{0, 0, -1}, v0, v1, v2); ok {
		t.Errorf("Expected miss for collinear triangle, got t=%f", got)
	}
}

func TestTriangle_NormalAndCentroid(t *testing.T) {
	tr := Triangle{P0: mathutil.Vec3{-1, -1, -5}, P1: mathutil.Vec3{1, -1, -5}, P2: mathutil.Vec3{0, 1, -5}}
	if got := tr.Normal(); got != (mathutil.Vec3{0, 0, 4}) {
		t.Errorf("Expected normal (0,0,4), got %v", got)
	}
	c := tr.Centroid()
	want := mathutil.Vec3{0, -1.0 / 3, -5}
	if c.Sub(want).Len() > 1e-6 {
		t.Errorf("Expected centroid %v, got %v", want, c)
	}
}
