package golden

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"ppm-raytracer/internal/mathutil"
	"ppm-raytracer/internal/pixmap"
)

func TestLoad_PPM(t *testing.T) {
	pix := []mathutil.Vec3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}, {1, 1, 1}}
	path := filepath.Join(t.TempDir(), "ref.ppm")
	if err := pixmap.WriteFile(path, 2, 2, pix); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	d, err := Compare(img, pixmap.ToNRGBA(2, 2, pix), 0)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !d.Equal() {
		t.Errorf("Expected identical images, got %+v", d)
	}
}

func TestLoad_PNG(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 3, 2))
	for i := range src.Pix {
		src.Pix[i] = 255
	}
	src.SetRGBA(1, 1, color.RGBA{10, 20, 30, 255})

	path := filepath.Join(t.TempDir(), "ref.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	f.Close()

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 3 || img.Bounds().Dy() != 2 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	if got := img.NRGBAAt(1, 1); got != (color.NRGBA{10, 20, 30, 255}) {
		t.Errorf("Unexpected pixel %v", got)
	}
}

// tgaFixture is an uncompressed 24-bit truecolor TGA holding one row of
// pixels, stored as BGR, with a TGA 2.0 footer.
func tgaFixture(pixels []color.NRGBA) []byte {
	w := len(pixels)
	data := []byte{
		0, 0, 2, //                   no id, no color map, uncompressed truecolor
		0, 0, 0, 0, 0, //             color map spec
		0, 0, 0, 0, //                x, y origin
		byte(w), byte(w >> 8), 1, 0, // width, height
		24, 0, //                     bits per pixel, descriptor
	}
	for _, p := range pixels {
		data = append(data, p.B, p.G, p.R)
	}
	data = append(data, 0, 0, 0, 0, 0, 0, 0, 0)
	return append(data, "TRUEVISION-XFILE.\x00"...)
}

func TestLoad_TGA(t *testing.T) {
	want := []color.NRGBA{{200, 100, 50, 255}, {0, 10, 255, 255}}
	path := filepath.Join(t.TempDir(), "ref.tga")
	if err := os.WriteFile(path, tgaFixture(want), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := Load(path)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if img.Bounds().Dx() != 2 || img.Bounds().Dy() != 1 {
		t.Fatalf("Unexpected bounds %v", img.Bounds())
	}
	for x, c := range want {
		if got := img.NRGBAAt(x, 0); got != c {
			t.Errorf("pixel %d: expected %v, got %v", x, c, got)
		}
	}
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.ppm")); err == nil {
		t.Error("Expected error for missing file")
	}

	empty := filepath.Join(dir, "empty.ppm")
	if err := os.WriteFile(empty, nil, 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(empty); err == nil {
		t.Error("Expected error for empty file")
	}

	truncated := filepath.Join(dir, "truncated.ppm")
	if err := os.WriteFile(truncated, []byte("P6\n4 4\n255\n\x00\x00"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(truncated); err == nil {
		t.Error("Expected error for truncated pixmap")
	}
}

func TestCompare(t *testing.T) {
	base := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	for i := range base.Pix {
		base.Pix[i] = 100
	}

	tests := []struct {
		name           string
		edit           func(*image.NRGBA)
		tolerance      uint8
		wantMismatched int
		wantMax        uint8
	}{
		{"identical", func(*image.NRGBA) {}, 0, 0, 0},
		{"within tolerance", func(m *image.NRGBA) { m.Pix[0] = 102 }, 2, 0, 2},
		{"above tolerance", func(m *image.NRGBA) { m.Pix[0] = 103 }, 2, 1, 3},
		{"alpha ignored", func(m *image.NRGBA) { m.Pix[3] = 0 }, 0, 0, 0},
		{"two pixels", func(m *image.NRGBA) { m.Pix[1] = 90; m.Pix[6] = 150 }, 0, 2, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			other := image.NewNRGBA(base.Bounds())
			copy(other.Pix, base.Pix)
			tt.edit(other)

			d, err := Compare(base, other, tt.tolerance)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if d.Pixels != 4 {
				t.Errorf("Expected 4 pixels, got %d", d.Pixels)
			}
			if d.Mismatched != tt.wantMismatched {
				t.Errorf("Expected %d mismatched, got %d", tt.wantMismatched, d.Mismatched)
			}
			if d.MaxDelta != tt.wantMax {
				t.Errorf("Expected max delta %d, got %d", tt.wantMax, d.MaxDelta)
			}
		})
	}
}

func TestCompare_SizeMismatch(t *testing.T) {
	a := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	b := image.NewNRGBA(image.Rect(0, 0, 2, 3))
	if _, err := Compare(a, b, 0); err == nil {
		t.Error("Expected size mismatch error")
	}
}
