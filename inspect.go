package pixart

import (
	"image"

	"github.com/cenkalti/dominantcolor"
)

// SpriteInfo summarizes a sprite for asset tooling.
type SpriteInfo struct {
	Width, Height int

	// Bounds is the box of pixels with alpha > 12. Visible is false when
	// there are none.
	Bounds  image.Rectangle
	Visible bool

	// Background and Threshold are what KeyBackground would use.
	Background Color
	Threshold  int

	// Dominant is the most prominent color of the sprite, or Transparent
	// for an empty sprite.
	Dominant Color
}

// Inspect reports size, alpha bounds, estimated background and dominant
// color of s. It does not modify s.
func Inspect(s *Sprite) SpriteInfo {
	info := SpriteInfo{Width: s.width, Height: s.height, Dominant: Transparent}
	info.Bounds, info.Visible = AlphaBounds(s)
	info.Background, info.Threshold = EstimateBackground(s)

	if s.width > 0 && s.height > 0 {
		if found := dominantcolor.FindWeight(s.ToImage(), 1); len(found) > 0 {
			info.Dominant = FromColor(found[0].RGBA)
		}
	}
	return info
}
