package pixart

import (
	"errors"

	"github.com/bvbgame/pixart/internal/bmp"
)

// ErrDecode is wrapped by every error DecodeBMP returns. Callers usually
// treat it as "asset absent" and render without the sprite.
var ErrDecode = errors.New("pixart: decode BMP")

// Specific decode failures, usable with errors.Is alongside ErrDecode.
var (
	ErrInvalidSignature  = bmp.ErrSignature
	ErrUnsupportedHeader = bmp.ErrHeader
	ErrUnsupportedPlanes = bmp.ErrPlanes
	ErrUnsupportedDepth  = bmp.ErrUnsupported
	ErrInvalidDimensions = bmp.ErrDimensions
	ErrTruncated         = bmp.ErrTruncated
)

// ErrCropEmpty is returned by CropToAlpha when no pixel is opaque enough to
// count as content, typically because keying removed the whole sprite.
var ErrCropEmpty = errors.New("pixart: sprite has no visible pixels")
