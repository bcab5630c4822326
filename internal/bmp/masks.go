package bmp

import (
	"encoding/binary"
	"math/bits"
)

// Default channel masks for 32 bpp images without explicit BITFIELDS.
const (
	defaultRedMask   = 0x00FF0000
	defaultGreenMask = 0x0000FF00
	defaultBlueMask  = 0x000000FF
	defaultAlphaMask = 0xFF000000
)

// Masks are the packed-pixel bit masks of a 32 bpp image.
type Masks struct {
	R, G, B, A uint32
}

// DefaultMasks returns the BGRA layout used when a file carries no masks.
func DefaultMasks() Masks {
	return Masks{R: defaultRedMask, G: defaultGreenMask, B: defaultBlueMask, A: defaultAlphaMask}
}

// masksFor returns the masks that apply to h, reading them from data when
// the file declares BITFIELDS and its header is large enough to hold all four.
func masksFor(h Header, data []byte) (Masks, error) {
	if h.Compression != compressionBitfields || h.DIBSize < v3HeaderSize {
		return DefaultMasks(), nil
	}
	if len(data) < offMasks+16 {
		return Masks{}, formatErr(ErrTruncated, "channel masks need %d bytes, have %d", offMasks+16, len(data))
	}
	return Masks{
		R: binary.LittleEndian.Uint32(data[offMasks:]),
		G: binary.LittleEndian.Uint32(data[offMasks+4:]),
		B: binary.LittleEndian.Uint32(data[offMasks+8:]),
		A: binary.LittleEndian.Uint32(data[offMasks+12:]),
	}, nil
}

// channel holds a precomputed mask shift and range.
type channel struct {
	mask  uint32
	shift int
	max   uint32
}

func newChannel(mask uint32) channel {
	if mask == 0 {
		return channel{}
	}
	shift := bits.TrailingZeros32(mask)
	return channel{mask: mask, shift: shift, max: max(mask>>shift, 1)}
}

// extract scales the masked bits of px to 0..255. An absent channel reads
// as 255.
func (c channel) extract(px uint32) uint8 {
	if c.mask == 0 {
		return 255
	}
	v := (px & c.mask) >> c.shift
	return uint8(uint64(v) * 255 / uint64(c.max))
}

// Extract returns the 0..255 value of the channel selected by mask.
func Extract(px, mask uint32) uint8 {
	return newChannel(mask).extract(px)
}
