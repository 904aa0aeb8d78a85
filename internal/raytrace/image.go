package raytrace

import "ppm-raytracer/internal/mathutil"

// Image holds linear radiance per pixel as a flat row-major slice:
// row 0 is the top of the picture, pixels run left to right.
type Image struct {
	Width  int
	Height int
	Pix    []mathutil.Vec3 // len = Width*Height
}

// NewImage allocates a black image.
func NewImage(w, h int) *Image {
	return &Image{
		Width:  w,
		Height: h,
		Pix:    make([]mathutil.Vec3, w*h),
	}
}

// At returns the pixel at column x, row y.
func (im *Image) At(x, y int) mathutil.Vec3 {
	return im.Pix[y*im.Width+x]
}

// Set stores c at column x, row y.
func (im *Image) Set(x, y int, c mathutil.Vec3) {
	im.Pix[y*im.Width+x] = c
}

// Release drops the pixel buffer. Callers defer it right after Render so
// the buffer goes away even when the sink fails.
func (im *Image) Release() {
	im.Pix = nil
}
