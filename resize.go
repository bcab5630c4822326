package pixart

// ResizeWidth returns the width ResizeNearest produces for a sprite of
// size w × h scaled to height target: the aspect-preserving width rounded
// half up to the nearest integer, at least 1. It computes
// (w*target + h/2) / h, not the truncating w*target / h, so a 6×4 sprite
// scaled to height 3 is 5 pixels wide rather than 4.
func ResizeWidth(w, h, target int) int {
	target = max(target, 1)
	if h <= 0 {
		return 1
	}
	return max(1, (w*target+h/2)/h)
}

// ResizeNearest scales s to the given height (minimum 1), preserving aspect
// ratio, with nearest-neighbor sampling: destination (x, y) reads source
// (x*w/W, y*h/H). The same input and height always give identical bytes.
// An empty sprite yields an empty sprite.
func ResizeNearest(s *Sprite, height int) *Sprite {
	height = max(height, 1)
	if s.width == 0 || s.height == 0 {
		return NewSprite(0, 0)
	}

	width := ResizeWidth(s.width, s.height, height)
	out := NewSprite(width, height)

	for y := 0; y < height; y++ {
		sy := y * s.height / height
		srcRow := s.pix[sy*s.width*4:]
		dstRow := out.pix[y*width*4:]
		for x := 0; x < width; x++ {
			sx := x * s.width / width
			copy(dstRow[x*4:x*4+4], srcRow[sx*4:sx*4+4])
		}
	}
	return out
}
