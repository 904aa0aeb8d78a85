package pixmap

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"
)

func init() {
	image.RegisterFormat("ppm", "P6", Decode, DecodeConfig)
}

// header holds the parsed P6 header. Only maxval 255 is supported.
type header struct {
	width, height int
}

// readToken returns the next whitespace-separated header token, skipping
// '#' comments that run to the end of the line.
func readToken(r *bufio.Reader) (string, error) {
	var tok []byte
	for {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(tok) > 0 {
				return string(tok), nil
			}
			return "", err
		}
		switch {
		case b == '#' && len(tok) == 0:
			if _, err := r.ReadString('\n'); err != nil {
				return "", err
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r':
			if len(tok) > 0 {
				// The single byte after maxval has been consumed here
				return string(tok), nil
			}
		default:
			tok = append(tok, b)
		}
	}
}

func readHeader(r *bufio.Reader) (header, error) {
	magic, err := readToken(r)
	if err != nil {
		return header{}, fmt.Errorf("pixmap: read magic: %w", err)
	}
	if magic != "P6" {
		return header{}, fmt.Errorf("pixmap: unsupported magic %q", magic)
	}

	var vals [3]int
	for i, name := range []string{"width", "height", "maxval"} {
		tok, err := readToken(r)
		if err != nil {
			return header{}, fmt.Errorf("pixmap: read %s: %w", name, err)
		}
		v, err := strconv.Atoi(tok)
		if err != nil || v <= 0 {
			return header{}, fmt.Errorf("pixmap: invalid %s %q", name, tok)
		}
		vals[i] = v
	}
	if vals[2] != 255 {
		return header{}, fmt.Errorf("pixmap: unsupported maxval %d", vals[2])
	}
	return header{width: vals[0], height: vals[1]}, nil
}

// DecodeConfig returns the dimensions of a P6 pixmap without reading pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	h, err := readHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.NRGBAModel, Width: h.width, Height: h.height}, nil
}

// Decode reads a P6 pixmap into an opaque NRGBA image.
func Decode(r io.Reader) (image.Image, error) {
	br := bufio.NewReader(r)
	h, err := readHeader(br)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rect(0, 0, h.width, h.height))
	row := make([]byte, h.width*3)
	for y := 0; y < h.height; y++ {
		if _, err := io.ReadFull(br, row); err != nil {
			return nil, fmt.Errorf("pixmap: read row %d: %w", y, err)
		}
		off := y * img.Stride
		for x := 0; x < h.width; x++ {
			img.Pix[off+x*4] = row[x*3]
			img.Pix[off+x*4+1] = row[x*3+1]
			img.Pix[off+x*4+2] = row[x*3+2]
			img.Pix[off+x*4+3] = 255
		}
	}
	return img, nil
}
