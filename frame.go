package pixart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bvbgame/pixart/internal/cache"
)

// Placement positions one sprite in a composed frame.
type Placement struct {
	// Sprite to draw. A nil sprite is skipped.
	Sprite *Sprite

	// AnchorX and AnchorY give the bottom-center point of the sprite.
	AnchorX, AnchorY int

	// XOffset shifts the sprite horizontally from its anchor.
	XOffset int

	// Scale multiplies the sprite height. Values <= 0 mean 1.
	Scale float64

	// Selected draws a selection ring under the sprite.
	Selected bool
}

// Composer overlays sprites onto copies of a level buffer. Scaled sprite
// variants are kept in a bounded LRU cache, so a Composer reused across
// frames only rescales a sprite when its scale changes.
//
// A Composer is safe for concurrent use.
type Composer struct {
	variants  *cache.Cache[variantKey, *Sprite]
	selection Color
	glow      Color
}

type variantKey struct {
	sprite *Sprite
	height int
}

// Selection ring shape.
const (
	ringGlowAlpha  = 144
	ringMinRadius  = 4
	ringGlowBlend  = 0.55
	ringFlattening = 3 // vertical radius is rx / ringFlattening
)

// NewComposer creates a Composer with the given options.
//
// Example:
//
//	c := pixart.NewComposer(pixart.WithCacheSize(128))
//	frame := c.Compose(levelMap, pixart.Placement{Sprite: hero, AnchorX: 144, AnchorY: 470})
func NewComposer(opts ...ComposerOption) *Composer {
	o := defaultComposerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Composer{
		variants:  cache.New[variantKey, *Sprite](o.cacheSize),
		selection: o.selection,
		glow:      glowShade(o.selection),
	}
}

// glowShade lightens c toward white in Lab space.
func glowShade(c Color) Color {
	base, _ := colorful.MakeColor(c.Opaque())
	r, g, b := base.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, ringGlowBlend).Clamped().RGB255()
	return Color{R: r, G: g, B: b, A: ringGlowAlpha}
}

// Compose returns a copy of level with every placement drawn in order.
// level itself is never modified.
func (c *Composer) Compose(level *Pixmap, placements ...Placement) *Pixmap {
	frame := level.Clone()
	for _, pl := range placements {
		if pl.Sprite == nil || pl.Sprite.width == 0 || pl.Sprite.height == 0 {
			continue
		}
		s := c.scaled(pl.Sprite, pl.Scale)
		if pl.Selected {
			c.drawSelection(frame, pl.AnchorX+pl.XOffset, pl.AnchorY, s.width)
		}
		BlitCenterBottom(frame, s, pl.AnchorX, pl.AnchorY, pl.XOffset)
	}
	return frame
}

// CacheStats is a snapshot of a Composer's scaled-variant cache.
type CacheStats struct {
	Variants  int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
	HitRate   float64
}

// CacheStats reports the variant cache counters. Unit-scale placements
// bypass the cache and are not counted.
func (c *Composer) CacheStats() CacheStats {
	s := c.variants.Stats()
	return CacheStats{
		Variants:  s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
		HitRate:   s.HitRate(),
	}
}

// scaled returns s resized by scale, reusing cached variants.
func (c *Composer) scaled(s *Sprite, scale float64) *Sprite {
	if scale <= 0 {
		scale = 1
	}
	h := max(int(math.Round(float64(s.height)*scale)), 1)
	if h == s.height {
		return s
	}
	return c.variants.GetOrCreate(variantKey{sprite: s, height: h}, func() *Sprite {
		Logger().Debug("sprite variant scaled", "from", s.height, "to", h)
		return ResizeNearest(s, h)
	})
}

// drawSelection draws a flattened ring centred on (cx, cy): a solid band
// in the selection color with a translucent glow just outside it.
func (c *Composer) drawSelection(dst *Pixmap, cx, cy, spriteWidth int) {
	rx := max(spriteWidth/2+2, ringMinRadius)
	blendEllipseBand(dst, cx, cy, rx+2, rx, c.glow)
	fillEllipseBand(dst, cx, cy, rx, rx-2, c.selection)
}

// inEllipse reports whether (dx, dy) lies inside the ellipse with
// horizontal radius rx and vertical radius rx/ringFlattening.
func inEllipse(dx, dy, rx int) bool {
	if rx <= 0 {
		return dx == 0 && dy == 0
	}
	ry := max(rx/ringFlattening, 1)
	return dx*dx*ry*ry+dy*dy*rx*rx <= rx*rx*ry*ry
}

func fillEllipseBand(dst *Pixmap, cx, cy, outer, inner int, col Color) {
	forEllipseBand(outer, inner, func(dx, dy int) { dst.Put(cx+dx, cy+dy, col) })
}

func blendEllipseBand(dst *Pixmap, cx, cy, outer, inner int, col Color) {
	forEllipseBand(outer, inner, func(dx, dy int) { dst.BlendPixel(cx+dx, cy+dy, col) })
}

// forEllipseBand visits every offset inside the outer ellipse but not
// strictly inside the inner one.
func forEllipseBand(outer, inner int, visit func(dx, dy int)) {
	ry := max(outer/ringFlattening, 1)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -outer; dx <= outer; dx++ {
			if !inEllipse(dx, dy, outer) {
				continue
			}
			if inner > 0 && inEllipse(dx, dy, inner-1) {
				continue
			}
			visit(dx, dy)
		}
	}
}

// ComposeFrame is a one-shot Compose with a default Composer.
func ComposeFrame(level *Pixmap, placements ...Placement) *Pixmap {
	return NewComposer().Compose(level, placements...)
}
