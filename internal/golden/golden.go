// Package golden loads reference images and compares renders against them.
package golden

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ftrvxmtrx/tga"

	"ppm-raytracer/internal/pixmap"
)

// Load decodes a PPM, PNG, JPEG or TGA file into an NRGBA image.
// TGA has no signature, so it is chosen by the .tga extension; the other
// formats are recognized by their leading bytes.
func Load(path string) (*image.NRGBA, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("golden: read %s: %w", path, err)
	}

	decode, err := decoderFor(path, raw)
	if err != nil {
		return nil, err
	}

	img, err := decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("golden: decode %s: %w", path, err)
	}
	return toNRGBA(img), nil
}

func decoderFor(path string, raw []byte) (func(io.Reader) (image.Image, error), error) {
	switch {
	case bytes.HasPrefix(raw, []byte("P6")):
		return pixmap.Decode, nil
	case bytes.HasPrefix(raw, []byte("\x89PNG")):
		return png.Decode, nil
	case bytes.HasPrefix(raw, []byte{0xff, 0xd8}):
		return jpeg.Decode, nil
	case strings.EqualFold(filepath.Ext(path), ".tga"):
		return tga.Decode, nil
	}
	return nil, fmt.Errorf("golden: unknown image format: %s", path)
}

// toNRGBA converts any image to NRGBA with its origin at (0, 0).
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	if n, ok := src.(*image.NRGBA); ok && b.Min == (image.Point{}) {
		return n
	}
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	switch src.(type) {
	case *image.YCbCr, *image.Gray:
		draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	default:
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				c := color.NRGBAModel.Convert(src.At(b.Min.X+x, b.Min.Y+y)).(color.NRGBA)
				dst.SetNRGBA(x, y, c)
			}
		}
	}
	return dst
}

// Diff summarizes a per-channel comparison.
type Diff struct {
	Pixels     int
	Mismatched int   // pixels with any channel delta above tolerance
	MaxDelta   uint8 // largest channel delta seen
}

// Equal reports whether no pixel exceeded the tolerance.
func (d Diff) Equal() bool {
	return d.Mismatched == 0
}

// Compare checks two images channel by channel, ignoring alpha.
func Compare(a, b *image.NRGBA, tolerance uint8) (Diff, error) {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return Diff{}, fmt.Errorf("golden: size mismatch %dx%d vs %dx%d", ab.Dx(), ab.Dy(), bb.Dx(), bb.Dy())
	}

	d := Diff{Pixels: ab.Dx() * ab.Dy()}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			ia := a.PixOffset(ab.Min.X+x, ab.Min.Y+y)
			ib := b.PixOffset(bb.Min.X+x, bb.Min.Y+y)
			bad := false
			for c := 0; c < 3; c++ {
				delta := absDiff(a.Pix[ia+c], b.Pix[ib+c])
				if delta > d.MaxDelta {
					d.MaxDelta = delta
				}
				if delta > tolerance {
					bad = true
				}
			}
			if bad {
				d.Mismatched++
			}
		}
	}
	return d, nil
}

func absDiff(x, y uint8) uint8 {
	if x > y {
		return x - y
	}
	return y - x
}
