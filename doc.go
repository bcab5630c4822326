// Package pixart provides the pixel-art core of the Beyond vs Below client:
// a small rasterizer over flat RGBA8 buffers, a BMP decoder, and the sprite
// transforms that turn raw character art into trimmed, transparent sprites
// ready to be composited onto a generated level map.
//
// # Quick Start
//
//	import (
//	    "github.com/bvbgame/pixart"
//	    "github.com/bvbgame/pixart/level"
//	)
//
//	lvl := level.Generate(level.MOBA)
//
//	hero, err := pixart.LoadSprite(bmpBytes, pixart.WithTargetHeight(48))
//	if err != nil {
//	    hero = nil // render without the sprite
//	}
//
//	geo := level.NewGeometry(lvl.Width(), lvl.Height())
//	frame := pixart.ComposeFrame(lvl, pixart.Placement{
//	    Sprite:  hero,
//	    AnchorX: geo.BottomBase.X,
//	    AnchorY: geo.BottomBase.Y,
//	    Scale:   1,
//	})
//	_ = frame.SavePNG("frame.png")
//
// # Buffers
//
// [Pixmap] is the canvas type and [Sprite] the asset type. Both store
// straight (non-premultiplied) RGBA8, row-major and top-down, with
// len(data) == width*height*4. Every sprite transform ([KeyBackground],
// [CropToAlpha], [ResizeNearest]) returns a new Sprite and leaves its input
// untouched.
//
// # Drawing and blending
//
// The shape primitives on Pixmap ([Pixmap.Put], [Pixmap.FillRect],
// [Pixmap.RectOutline], [Pixmap.FillCircle], [Pixmap.FillRing]) are opaque
// overwrites and clip silently. Alpha blending happens only in
// [Pixmap.BlendPixel] and [BlitCenterBottom].
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//
// # Logging
//
// pixart is silent by default. Call [SetLogger] to receive debug records
// from the decoder, the sprite pipeline and the level generator.
package pixart
