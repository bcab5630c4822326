package pixart

import "github.com/bvbgame/pixart/internal/blend"

// BlendPixel composites c over the pixel at (x, y) with straight alpha.
// Alpha 0 leaves the pixel untouched; otherwise the destination alpha
// becomes 255. Out-of-bounds coordinates are ignored.
func (p *Pixmap) BlendPixel(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	blend.Over(p.data[i:i+4], c.R, c.G, c.B, c.A)
}

// BlitCenterBottom draws s onto dst so that its horizontal center sits at
// anchorX+xOffset and its bottom edge at anchorY. Transparent source pixels
// are skipped and the sprite is clipped silently against dst.
func BlitCenterBottom(dst *Pixmap, s *Sprite, anchorX, anchorY, xOffset int) {
	if s == nil || s.width == 0 || s.height == 0 {
		return
	}
	left := anchorX + xOffset - s.width/2
	top := anchorY - s.height

	// Clip the sprite rectangle against the destination.
	x0, y0 := max(0, -left), max(0, -top)
	x1, y1 := min(s.width, dst.width-left), min(s.height, dst.height-top)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	for sy := y0; sy < y1; sy++ {
		src := s.pix[(sy*s.width+x0)*4 : (sy*s.width+x1)*4]
		d := ((top+sy)*dst.width + left + x0) * 4
		blend.OverSpan(dst.data[d:d+len(src)], src)
	}
}
