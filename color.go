package pixart

import (
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight-alpha RGBA8 color. A = 255 is opaque, 0 transparent.
type Color struct {
	R, G, B, A uint8
}

// RGB creates an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// NRGBA converts the color to the standard library's non-premultiplied type.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// Lighten adds d to each of R, G and B, saturating at 255.
func (c Color) Lighten(d uint8) Color {
	return Color{
		R: addSat(c.R, d),
		G: addSat(c.G, d),
		B: addSat(c.B, d),
		A: c.A,
	}
}

// Opaque returns c with alpha forced to 255.
func (c Color) Opaque() Color {
	c.A = 255
	return c
}

// DistSq returns the squared Euclidean distance between the RGB parts of two
// colors. Alpha is ignored.
func (c Color) DistSq(o Color) int {
	dr := int(c.R) - int(o.R)
	dg := int(c.G) - int(o.G)
	db := int(c.B) - int(o.B)
	return dr*dr + dg*dg + db*db
}

// FromColor converts any color.Color to a straight-alpha Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex parses a palette literal: "rgb", "rgba", "rrggbb" or "rrggbbaa",
// with or without a leading '#'. Any other length or a non-hex digit yields
// opaque black.
func Hex(s string) Color {
	s = strings.TrimPrefix(s, "#")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Black
	}

	switch len(s) {
	case 3:
		return RGB(nibble(v>>8), nibble(v>>4), nibble(v))
	case 4:
		return Color{R: nibble(v >> 12), G: nibble(v >> 8), B: nibble(v >> 4), A: nibble(v)}
	case 6:
		return RGB(uint8(v>>16), uint8(v>>8), uint8(v))
	case 8:
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
	}
	return Black
}

// nibble widens the low four bits of v to a full channel (0xf -> 0xff).
func nibble(v uint64) uint8 {
	return uint8(v&0xf) * 17
}

func addSat(v, d uint8) uint8 {
	s := uint16(v) + uint16(d)
	if s > 255 {
		return 255
	}
	return uint8(s)
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(255, 255, 255)
	Transparent = Color{}
)
