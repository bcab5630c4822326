package pixart

// Keying constants. The threshold window was tuned by hand against the
// game's character art and is kept exactly as tuned.
const (
	keySampleDivisor = 12
	keyThresholdMin  = 900
	keyThresholdMax  = 6400
	// Pixels below this alpha are already transparent and are left alone.
	keyMinAlpha = 8
)

// EstimateBackground samples the border of s and returns the estimated
// background color (opaque) and the squared-distance threshold KeyBackground
// uses. An empty sprite yields (Transparent, keyThresholdMin).
func EstimateBackground(s *Sprite) (Color, int) {
	w, h := s.width, s.height
	if w == 0 || h == 0 {
		return Transparent, keyThresholdMin
	}

	samples := borderSamples(s)

	var sr, sg, sb int
	for _, c := range samples {
		sr += int(c.R)
		sg += int(c.G)
		sb += int(c.B)
	}
	n := len(samples)
	bg := RGB(uint8(sr/n), uint8(sg/n), uint8(sb/n))

	spread := 0
	for _, c := range samples {
		spread = max(spread, c.DistSq(bg))
	}

	return bg, min(max(spread+keyThresholdMin, keyThresholdMin), keyThresholdMax)
}

// borderSamples walks all four edges with a stride of max(dim/12, 1).
func borderSamples(s *Sprite) []Color {
	w, h := s.width, s.height
	sx := max(w/keySampleDivisor, 1)
	sy := max(h/keySampleDivisor, 1)

	samples := make([]Color, 0, 2*(w/sx+h/sy+2))
	for x := 0; x < w; x += sx {
		samples = append(samples, s.ColorAt(x, 0), s.ColorAt(x, h-1))
	}
	for y := 0; y < h; y += sy {
		samples = append(samples, s.ColorAt(0, y), s.ColorAt(w-1, y))
	}
	return samples
}

// KeyBackground removes a flat background without being told its color.
// It estimates the background from the border, then clears the alpha of
// every pixel (alpha >= 8) within the threshold distance of it. RGB values
// are never changed. The result is a new sprite; s is not modified.
func KeyBackground(s *Sprite) *Sprite {
	out := s.Clone()
	if s.width == 0 || s.height == 0 {
		return out
	}

	bg, threshold := EstimateBackground(s)

	keyed := 0
	p := out.pix
	for i := 0; i < len(p); i += 4 {
		if p[i+3] < keyMinAlpha {
			continue
		}
		c := Color{R: p[i], G: p[i+1], B: p[i+2]}
		if c.DistSq(bg) <= threshold {
			p[i+3] = 0
			keyed++
		}
	}

	Logger().Debug("background keyed",
		"bg", [3]uint8{bg.R, bg.G, bg.B},
		"threshold", threshold,
		"keyed", keyed,
		"total", s.width*s.height)
	return out
}
