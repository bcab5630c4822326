package pixart

import (
	"image"
	"image/color"
)

// Sprite is an owned RGBA8 image asset. The pixel layout matches Pixmap,
// but sprites are rebuilt at new sizes by every transform so they are kept
// as a separate type from the canvas.
//
// Sprites are treated as immutable once a transform has returned them.
type Sprite struct {
	width  int
	height int
	pix    []uint8
}

// NewSprite creates a fully transparent sprite.
// Negative dimensions are treated as zero.
func NewSprite(width, height int) *Sprite {
	width, height = max(width, 0), max(height, 0)
	return &Sprite{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// SpriteFromRGBA wraps an existing RGBA8 slice without copying.
// It returns nil when len(pix) != width*height*4.
func SpriteFromRGBA(width, height int, pix []uint8) *Sprite {
	if width < 0 || height < 0 || len(pix) != width*height*4 {
		return nil
	}
	return &Sprite{width: width, height: height, pix: pix}
}

// SpriteFromImage copies any image into a new sprite.
func SpriteFromImage(img image.Image) *Sprite {
	b := img.Bounds()
	s := NewSprite(b.Dx(), b.Dy())
	for y := 0; y < s.height; y++ {
		for x := 0; x < s.width; x++ {
			s.Set(x, y, FromColor(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return s
}

// Width returns the sprite width in pixels.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the sprite height in pixels.
func (s *Sprite) Height() int {
	return s.height
}

// Pix returns the raw RGBA8 pixel data.
func (s *Sprite) Pix() []uint8 {
	return s.pix
}

// ColorAt returns the color at (x, y), or Transparent when out of bounds.
func (s *Sprite) ColorAt(x, y int) Color {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Transparent
	}
	i := (y*s.width + x) * 4
	return Color{R: s.pix[i], G: s.pix[i+1], B: s.pix[i+2], A: s.pix[i+3]}
}

// Set writes c (alpha included) at (x, y). Out-of-bounds writes are ignored.
// Set is meant for building sprites; transforms never call it on their input.
func (s *Sprite) Set(x, y int, c Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	i := (y*s.width + x) * 4
	s.pix[i+0] = c.R
	s.pix[i+1] = c.G
	s.pix[i+2] = c.B
	s.pix[i+3] = c.A
}

// Clone creates a deep copy of the sprite.
func (s *Sprite) Clone() *Sprite {
	pix := make([]uint8, len(s.pix))
	copy(pix, s.pix)
	return &Sprite{width: s.width, height: s.height, pix: pix}
}

// ToImage copies the sprite into an image.NRGBA.
func (s *Sprite) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, s.width, s.height))
	copy(img.Pix, s.pix)
	return img
}

// At implements the image.Image interface.
func (s *Sprite) At(x, y int) color.Color {
	return s.ColorAt(x, y).NRGBA()
}

// Bounds implements the image.Image interface.
func (s *Sprite) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

// ColorModel implements the image.Image interface.
func (s *Sprite) ColorModel() color.Model {
	return color.NRGBAModel
}
