package blend

// div255 divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula. It is exact for 0 <= x <= 255*255,
// the full range of a sum of two 8-bit products whose weights add to 255.
func div255(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// mix returns (s*a + d*(255-a)) / 255, truncated.
func mix(s, d, a byte) byte {
	return byte(div255(uint16(s)*uint16(a) + uint16(d)*uint16(255-a)))
}
