package pixart

import (
	"fmt"

	"github.com/bvbgame/pixart/internal/bmp"
)

// DecodeBMP decodes a 24 bpp or 32 bpp BMP file into a new top-down sprite.
// data is only read. On failure the error wraps ErrDecode and one of the
// specific decode errors.
func DecodeBMP(data []byte) (*Sprite, error) {
	img, err := bmp.Decode(data)
	if err != nil {
		Logger().Debug("bmp decode failed", "bytes", len(data), "err", err)
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	Logger().Debug("bmp decoded", "width", img.Width, "height", img.Height)
	return &Sprite{width: img.Width, height: img.Height, pix: img.Pix}, nil
}
