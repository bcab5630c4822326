package pixart

import (
	"fmt"
	"os"
)

// LoadSprite turns raw BMP bytes into a game-ready sprite: decode, remove
// the flat background, crop to the visible pixels and optionally scale.
//
// Decode errors wrap ErrDecode; a sprite with nothing left after keying
// returns ErrCropEmpty. Callers typically log the error and draw nothing.
func LoadSprite(data []byte, opts ...PipelineOption) (*Sprite, error) {
	o := defaultPipelineOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s, err := DecodeBMP(data)
	if err != nil {
		return nil, err
	}
	if o.key {
		s = KeyBackground(s)
	}
	s, err = CropToAlpha(s)
	if err != nil {
		Logger().Debug("sprite crop failed", "error", err)
		return nil, err
	}
	if o.targetHeight > 0 {
		s = ResizeNearest(s, o.targetHeight)
	}

	Logger().Debug("sprite loaded", "width", s.width, "height", s.height)
	return s, nil
}

// LoadSpriteFile reads path and runs LoadSprite on its contents.
func LoadSpriteFile(path string, opts ...PipelineOption) (*Sprite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pixart: read sprite: %w", err)
	}
	return LoadSprite(data, opts...)
}
