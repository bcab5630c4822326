// Package bmp decodes Windows bitmap files into top-down RGBA8 pixels.
//
// Only the subset used by the game's character art is supported:
// uncompressed 24 bpp and 32 bpp images, the latter optionally with
// BI_BITFIELDS channel masks. Every read is bounds-checked against the
// source slice, which is never modified.
package bmp

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Decode errors. Every error returned by Decode is a *FormatError wrapping
// exactly one of these.
var (
	// ErrSignature is returned when the file does not start with "BM".
	ErrSignature = errors.New("bmp: invalid signature")

	// ErrHeader is returned when the DIB header is missing or smaller than
	// a BITMAPINFOHEADER.
	ErrHeader = errors.New("bmp: unsupported DIB header")

	// ErrPlanes is returned when the color plane count is not 1.
	ErrPlanes = errors.New("bmp: unsupported plane count")

	// ErrUnsupported is returned for bit depths other than 24 and 32 and for
	// compression methods that cannot be combined with the bit depth.
	ErrUnsupported = errors.New("bmp: unsupported bit depth or compression")

	// ErrDimensions is returned when width or height is zero.
	ErrDimensions = errors.New("bmp: invalid dimensions")

	// ErrTruncated is returned when the payload is shorter than the header
	// declares.
	ErrTruncated = errors.New("bmp: truncated data")
)

// FormatError describes why a byte stream could not be decoded.
type FormatError struct {
	Err    error // one of the sentinel errors above
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return e.Err.Error()
	}
	return e.Err.Error() + ": " + e.Detail
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

func formatErr(err error, format string, args ...any) *FormatError {
	return &FormatError{Err: err, Detail: fmt.Sprintf(format, args...)}
}

// Compression methods.
const (
	compressionRGB       = 0
	compressionBitfields = 3
)

// File layout offsets.
const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	// v3 header (56 bytes) is the first to carry an alpha mask.
	v3HeaderSize = 56

	offPixelData = 10
	offDIBSize   = 14
	offWidth     = 18
	offHeight    = 22
	offPlanes    = 26
	offBPP       = 28
	offCompress  = 30
	offMasks     = fileHeaderSize + infoHeaderSize
)

// Header holds the fields of the file and DIB headers that drive decoding.
type Header struct {
	PixelOffset uint32
	DIBSize     uint32
	Width       int32
	Height      int32
	Planes      uint16
	BitCount    uint16
	Compression uint32
}

// TopDown reports whether rows are stored top to bottom.
func (h Header) TopDown() bool {
	return h.Height < 0
}

// Size returns the absolute image dimensions.
func (h Header) Size() (width, height int) {
	return abs32(h.Width), abs32(h.Height)
}

// ParseHeader reads and validates the headers without touching pixel data.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < 2 || data[0] != 'B' || data[1] != 'M' {
		return h, &FormatError{Err: ErrSignature}
	}
	if len(data) < offDIBSize+4 {
		return h, formatErr(ErrHeader, "file header needs %d bytes, have %d", offDIBSize+4, len(data))
	}

	h.PixelOffset = binary.LittleEndian.Uint32(data[offPixelData:])
	h.DIBSize = binary.LittleEndian.Uint32(data[offDIBSize:])
	if h.DIBSize < infoHeaderSize {
		return h, formatErr(ErrHeader, "DIB header size %d < %d", h.DIBSize, infoHeaderSize)
	}
	if len(data) < fileHeaderSize+infoHeaderSize {
		return h, formatErr(ErrTruncated, "info header needs %d bytes, have %d", fileHeaderSize+infoHeaderSize, len(data))
	}

	h.Width = int32(binary.LittleEndian.Uint32(data[offWidth:]))
	h.Height = int32(binary.LittleEndian.Uint32(data[offHeight:]))
	h.Planes = binary.LittleEndian.Uint16(data[offPlanes:])
	h.BitCount = binary.LittleEndian.Uint16(data[offBPP:])
	h.Compression = binary.LittleEndian.Uint32(data[offCompress:])

	if h.Planes != 1 {
		return h, formatErr(ErrPlanes, "planes = %d", h.Planes)
	}
	if w, ht := h.Size(); w == 0 || ht == 0 {
		return h, formatErr(ErrDimensions, "%dx%d", w, ht)
	}

	switch h.BitCount {
	case 24:
		if h.Compression != compressionRGB {
			return h, formatErr(ErrUnsupported, "24 bpp with compression %d", h.Compression)
		}
	case 32:
		if h.Compression != compressionRGB && h.Compression != compressionBitfields {
			return h, formatErr(ErrUnsupported, "32 bpp with compression %d", h.Compression)
		}
	default:
		return h, formatErr(ErrUnsupported, "%d bpp", h.BitCount)
	}

	return h, nil
}

func abs32(v int32) int {
	// int64 keeps math.MinInt32 representable.
	n := int64(v)
	if n < 0 {
		n = -n
	}
	return int(n)
}
