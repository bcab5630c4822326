package pixart

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
)

// Pixmap is an opaque-by-convention RGBA8 canvas.
// The data slice is row-major, top-down, and always exactly
// width*height*4 bytes long.
type Pixmap struct {
	width  int
	height int
	data   []uint8
}

// NewPixmap creates a zeroed (fully transparent) pixmap.
// Negative dimensions are treated as zero.
func NewPixmap(width, height int) *Pixmap {
	width, height = max(width, 0), max(height, 0)
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (RGBA8). Callers that received the pixmap
// as a published level must treat the slice as read-only.
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Pixel returns the color at (x, y) and whether the point is in bounds.
func (p *Pixmap) Pixel(x, y int) (Color, bool) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return Transparent, false
	}
	i := (y*p.width + x) * 4
	return Color{R: p.data[i], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}, true
}

// Clear fills the entire pixmap with c, alpha forced to 255.
func (p *Pixmap) Clear(c Color) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
	}
}

// Clone returns an independent copy of the pixmap.
func (p *Pixmap) Clone() *Pixmap {
	data := make([]uint8, len(p.data))
	copy(data, p.data)
	return &Pixmap{width: p.width, height: p.height, data: data}
}

// ToImage converts the pixmap to an image.NRGBA sharing no memory with p.
func (p *Pixmap) ToImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// FromImage creates a pixmap from an image.
func FromImage(img image.Image) *Pixmap {
	bounds := img.Bounds()
	pm := NewPixmap(bounds.Dx(), bounds.Dy())

	for y := 0; y < pm.height; y++ {
		for x := 0; x < pm.width; x++ {
			c := FromColor(img.At(bounds.Min.X+x, bounds.Min.Y+y))
			i := (y*pm.width + x) * 4
			pm.data[i+0] = c.R
			pm.data[i+1] = c.G
			pm.data[i+2] = c.B
			pm.data[i+3] = c.A
		}
	}

	return pm
}

// EncodePNG writes the pixmap as PNG.
func (p *Pixmap) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("pixart: encode PNG: %w", err)
	}
	return nil
}

// EncodeBMP writes the pixmap as BMP. Fully opaque pixmaps, such as
// generated levels, are written as 24 bpp bottom-up bitmaps.
func (p *Pixmap) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, p.ToImage()); err != nil {
		return fmt.Errorf("pixart: encode BMP: %w", err)
	}
	return nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	return saveFile(path, p.EncodePNG)
}

// SaveBMP saves the pixmap to a BMP file.
func (p *Pixmap) SaveBMP(path string) error {
	return saveFile(path, p.EncodeBMP)
}

func saveFile(path string, encode func(io.Writer) error) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("pixart: create file: %w", err)
	}

	if err := encode(f); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	c, _ := p.Pixel(x, y)
	return c.NRGBA()
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.NRGBAModel
}
