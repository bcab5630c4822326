package level

import "github.com/bvbgame/pixart"

// TextureIndex is the terrain dither hash. It returns 0..3.
func TextureIndex(x, y int) int {
	return (x ^ y) & 3
}

// ScatterIndex is a second hash, uncorrelated with TextureIndex, used to
// jitter foliage. It returns 0..7.
func ScatterIndex(x, y int) int {
	return (x*7 + y*13) & 7
}

// Palette holds the three shades of a dithered surface. TextureIndex
// values 0 and 1 pick the first two entries; 2 and 3 both pick the third,
// so the last shade dominates.
type Palette [3]pixart.Color

// At returns the palette shade for pixel (x, y).
func (pal Palette) At(x, y int) pixart.Color {
	switch TextureIndex(x, y) {
	case 0:
		return pal[0]
	case 1:
		return pal[1]
	default:
		return pal[2]
	}
}

// fillDither fills [x, x+w) × [y, y+h) with the dithered palette.
func fillDither(p *pixart.Pixmap, x, y, w, h int, pal Palette) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, p.Width()), min(y+h, p.Height())
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			p.Put(xx, yy, pal.At(xx, yy))
		}
	}
}
