package pixmap

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"os"

	"ppm-raytracer/internal/mathutil"
)

// Quantize maps a linear channel value to a byte: floor(clamp(c, 0, 1) * 255).
// No gamma is applied.
func Quantize(c float32) uint8 {
	return uint8(mathutil.Clamp01(c) * 255)
}

// Encode writes a binary P6 pixmap: the header "P6\n<W> <H>\n255\n" followed by
// W*H RGB byte triples in row-major order, top row first.
func Encode(w io.Writer, width, height int, pix []mathutil.Vec3) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("pixmap: invalid size %dx%d", width, height)
	}
	if len(pix) != width*height {
		return fmt.Errorf("pixmap: %d pixels for a %dx%d image", len(pix), width, height)
	}

	if _, err := fmt.Fprintf(w, "P6\n%d %d\n255\n", width, height); err != nil {
		return fmt.Errorf("pixmap: write header: %w", err)
	}

	row := make([]byte, width*3)
	for y := 0; y < height; y++ {
		off := y * width
		for x := 0; x < width; x++ {
			c := pix[off+x]
			row[x*3] = Quantize(c[0])
			row[x*3+1] = Quantize(c[1])
			row[x*3+2] = Quantize(c[2])
		}
		if _, err := w.Write(row); err != nil {
			return fmt.Errorf("pixmap: write row %d: %w", y, err)
		}
	}
	return nil
}

// WriteFile creates or truncates path and writes the pixmap to it.
// The file is flushed and closed before WriteFile returns.
func WriteFile(path string, width, height int, pix []mathutil.Vec3) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("pixmap: create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("pixmap: close %s: %w", path, cerr)
		}
	}()

	bw := bufio.NewWriter(f)
	if err := Encode(bw, width, height, pix); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pixmap: flush %s: %w", path, err)
	}
	return nil
}

// ToNRGBA converts a linear buffer to an opaque 8-bit image using the same
// quantization as Encode.
func ToNRGBA(width, height int, pix []mathutil.Vec3) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := pix[y*width+x]
			i := img.PixOffset(x, y)
			img.Pix[i] = Quantize(c[0])
			img.Pix[i+1] = Quantize(c[1])
			img.Pix[i+2] = Quantize(c[2])
			img.Pix[i+3] = 255
		}
	}
	return img
}
