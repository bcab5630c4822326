// Package blend implements the straight-alpha "over" operator used to
// composite sprites onto opaque canvases.
//
// Source colors are non-premultiplied RGBA8. The destination is always
// treated as opaque, so its alpha is ignored on input and forced to 255 on
// output.
package blend

// Over composites the source color (sr, sg, sb, sa) onto the 4-byte RGBA
// pixel dst:
//
//	dst.c = (src.c*sa + dst.c*(255-sa)) / 255   for c in R, G, B
//	dst.a = 255
//
// A fully transparent source leaves dst untouched. dst must have len >= 4.
func Over(dst []byte, sr, sg, sb, sa byte) {
	if sa == 0 {
		return
	}
	_ = dst[3]
	if sa == 255 {
		dst[0], dst[1], dst[2], dst[3] = sr, sg, sb, 255
		return
	}
	dst[0] = mix(sr, dst[0], sa)
	dst[1] = mix(sg, dst[1], sa)
	dst[2] = mix(sb, dst[2], sa)
	dst[3] = 255
}

// OverSpan composites a run of source pixels onto a run of destination
// pixels of the same length. Both slices hold RGBA8 pixels; the shorter one
// bounds the span.
func OverSpan(dst, src []byte) {
	n := min(len(dst), len(src)) &^ 3
	for i := 0; i < n; i += 4 {
		Over(dst[i:i+4], src[i], src[i+1], src[i+2], src[i+3])
	}
}
