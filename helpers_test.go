package pixart

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	xbmp "golang.org/x/image/bmp"
)

// solidSprite returns a w×h sprite filled with c.
func solidSprite(w, h int, c Color) *Sprite {
	s := NewSprite(w, h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			s.Set(x, y, c)
		}
	}
	return s
}

// framedSprite returns a w×h sprite of bg with the rectangle r filled with fg.
func framedSprite(w, h int, bg, fg Color, r image.Rectangle) *Sprite {
	s := solidSprite(w, h, bg)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s.Set(x, y, fg)
		}
	}
	return s
}

// encodeBMP writes an opaque image as a 24 bpp BMP.
func encodeBMP(t testing.TB, s *Sprite) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, s.Width(), s.Height()))
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			c := s.ColorAt(x, y)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := xbmp.Encode(&buf, img); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}
	return buf.Bytes()
}

// pixelAt reads a pixel that the test knows is in bounds.
func pixelAt(t testing.TB, p *Pixmap, x, y int) Color {
	t.Helper()
	c, ok := p.Pixel(x, y)
	if !ok {
		t.Fatalf("Pixel(%d, %d) out of bounds", x, y)
	}
	return c
}
