package raytrace

import (
	"github.com/chewxy/math32"

	"ppm-raytracer/internal/mathutil"
)

// Canonical image size and field of view.
const (
	DefaultWidth  = 640
	DefaultHeight = 480
	DefaultFOV    = 30
)

// Camera is a pinhole at the origin looking down -Z. Basis optionally rotates
// the generated directions; the identity keeps the canonical camera.
type Camera struct {
	Width  int
	Height int
	FOV    float32 // degrees, full vertical angle
	Basis  mathutil.Mat3
}

// NewCamera returns a camera with the identity basis.
func NewCamera(width, height int, fov float32) Camera {
	return Camera{
		Width:  width,
		Height: height,
		FOV:    fov,
		Basis:  mathutil.Mat3Identity(),
	}
}

// DefaultCamera is the canonical 640×480, 30° camera.
func DefaultCamera() Camera {
	return NewCamera(DefaultWidth, DefaultHeight, DefaultFOV)
}

// Angle returns tan(fov/2), the half-height of the image plane at z = -1.
func (c Camera) Angle() float32 {
	return math32.Tan(math32.Pi * 0.5 * c.FOV / 180)
}

// Aspect returns width/height.
func (c Camera) Aspect() float32 {
	return float32(c.Width) / float32(c.Height)
}

// Direction returns the unit primary ray direction through the center of
// pixel (x, y).
func (c Camera) Direction(x, y int) mathutil.Vec3 {
	angle := c.Angle()
	invWidth := 1 / float32(c.Width)
	invHeight := 1 / float32(c.Height)

	xx := (2*((float32(x)+0.5)*invWidth) - 1) * angle * c.Aspect()
	yy := (1 - 2*((float32(y)+0.5)*invHeight)) * angle
	dir := mathutil.Vec3{xx, yy, -1}
	dir.Normalize()

	if !c.Basis.IsIdentity() {
		dir = c.Basis.MulVec3(dir)
	}
	return dir
}

// Origin is the eye position.
func (c Camera) Origin() mathutil.Vec3 {
	return mathutil.Zero
}
