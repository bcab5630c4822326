package bmp

import "encoding/binary"

// bmpSpec describes a synthetic bitmap for tests.
type bmpSpec struct {
	width, height int32 // height < 0 means top-down
	bpp           uint16
	compression   uint32
	dibSize       uint32
	planes        uint16
	masks         *Masks
	// pixel returns the packed little-endian bytes of (x, y) in output
	// (top-down) coordinates: 3 bytes B,G,R for 24 bpp, 4 bytes for 32 bpp.
	pixel func(x, y int) []byte
}

// build serializes s into a complete BMP file.
func (s bmpSpec) build() []byte {
	if s.dibSize == 0 {
		s.dibSize = infoHeaderSize
	}
	if s.planes == 0 {
		s.planes = 1
	}
	w := int(s.width)
	if w < 0 {
		w = -w
	}
	h := int(s.height)
	topDown := h < 0
	if topDown {
		h = -h
	}
	bpp := int(s.bpp) / 8
	stride := w * bpp
	if s.bpp == 24 {
		stride = (stride + 3) &^ 3
	}

	offset := fileHeaderSize + int(s.dibSize)
	// Without a pixel func only the headers are emitted, so absurd sizes
	// stay cheap to build.
	size := max(offset, offMasks+16)
	if s.pixel != nil {
		size = max(size, offset+stride*h)
	}
	buf := make([]byte, size)
	buf[0], buf[1] = 'B', 'M'
	binary.LittleEndian.PutUint32(buf[2:], uint32(len(buf)))
	binary.LittleEndian.PutUint32(buf[offPixelData:], uint32(offset))
	binary.LittleEndian.PutUint32(buf[offDIBSize:], s.dibSize)
	binary.LittleEndian.PutUint32(buf[offWidth:], uint32(s.width))
	binary.LittleEndian.PutUint32(buf[offHeight:], uint32(s.height))
	binary.LittleEndian.PutUint16(buf[offPlanes:], s.planes)
	binary.LittleEndian.PutUint16(buf[offBPP:], s.bpp)
	binary.LittleEndian.PutUint32(buf[offCompress:], s.compression)
	if s.masks != nil && s.dibSize >= v3HeaderSize {
		binary.LittleEndian.PutUint32(buf[offMasks:], s.masks.R)
		binary.LittleEndian.PutUint32(buf[offMasks+4:], s.masks.G)
		binary.LittleEndian.PutUint32(buf[offMasks+8:], s.masks.B)
		binary.LittleEndian.PutUint32(buf[offMasks+12:], s.masks.A)
	}

	if s.pixel == nil {
		return buf
	}
	for y := 0; y < h; y++ {
		fileRow := h - 1 - y
		if topDown {
			fileRow = y
		}
		row := buf[offset+fileRow*stride:]
		for x := 0; x < w; x++ {
			copy(row[x*bpp:], s.pixel(x, y))
		}
	}
	return buf
}

func bgr(r, g, b byte) []byte {
	return []byte{b, g, r}
}

func packed(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}
