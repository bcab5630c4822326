package pixart

import "image"

// cropMinAlpha is the alpha above which a pixel counts as content.
const cropMinAlpha = 12

// AlphaBounds returns the smallest rectangle containing every pixel with
// alpha > 12. ok is false when there is no such pixel.
func AlphaBounds(s *Sprite) (r image.Rectangle, ok bool) {
	minX, minY := s.width, s.height
	maxX, maxY := -1, -1
	for y := 0; y < s.height; y++ {
		row := s.pix[y*s.width*4 : (y+1)*s.width*4]
		for x := 0; x < s.width; x++ {
			if row[x*4+3] <= cropMinAlpha {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < 0 {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1), true
}

// CropToAlpha returns a new sprite trimmed to AlphaBounds(s). It returns
// ErrCropEmpty rather than a zero-sized sprite when nothing is visible.
func CropToAlpha(s *Sprite) (*Sprite, error) {
	r, ok := AlphaBounds(s)
	if !ok {
		Logger().Debug("crop found no content", "width", s.width, "height", s.height)
		return nil, ErrCropEmpty
	}

	out := NewSprite(r.Dx(), r.Dy())
	rowBytes := r.Dx() * 4
	for y := 0; y < out.height; y++ {
		src := ((r.Min.Y+y)*s.width + r.Min.X) * 4
		copy(out.pix[y*rowBytes:(y+1)*rowBytes], s.pix[src:src+rowBytes])
	}

	Logger().Debug("sprite cropped", "bounds", r.String())
	return out, nil
}
