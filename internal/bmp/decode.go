package bmp

import "encoding/binary"

// Image is a decoded bitmap: top-down, straight-alpha RGBA8.
type Image struct {
	Width  int
	Height int
	Pix    []byte // len == Width*Height*4
}

// Decode parses a complete BMP file. The input slice is only read.
func Decode(data []byte) (*Image, error) {
	h, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	width, height := h.Size()
	bpp := int64(h.BitCount) / 8

	stride := int64(width) * bpp
	if h.BitCount == 24 {
		stride = (stride + 3) &^ 3
	}

	start := int64(h.PixelOffset)
	if start < fileHeaderSize+infoHeaderSize {
		return nil, formatErr(ErrHeader, "pixel data offset %d overlaps headers", start)
	}
	// Divide instead of multiplying so huge declared sizes cannot overflow.
	avail := int64(len(data)) - start
	if avail < 0 || int64(height) > avail/stride {
		return nil, formatErr(ErrTruncated, "%d rows of %d bytes at offset %d exceed %d-byte file", height, stride, start, len(data))
	}
	end := start + stride*int64(height)

	img := &Image{Width: width, Height: height, Pix: make([]byte, width*height*4)}

	switch h.BitCount {
	case 24:
		decode24(img, data[start:end], int(stride), h.TopDown())
	case 32:
		m, err := masksFor(h, data)
		if err != nil {
			return nil, err
		}
		decode32(img, data[start:end], int(stride), h.TopDown(), m)
	}

	return img, nil
}

// srcRow maps an output row to its row index in the file.
func srcRow(y, height int, topDown bool) int {
	if topDown {
		return y
	}
	return height - 1 - y
}

func decode24(img *Image, px []byte, stride int, topDown bool) {
	for y := 0; y < img.Height; y++ {
		row := px[srcRow(y, img.Height, topDown)*stride:]
		out := img.Pix[y*img.Width*4:]
		for x := 0; x < img.Width; x++ {
			s := row[x*3 : x*3+3]
			d := out[x*4 : x*4+4]
			d[0] = s[2]
			d[1] = s[1]
			d[2] = s[0]
			d[3] = 255
		}
	}
}

func decode32(img *Image, px []byte, stride int, topDown bool, m Masks) {
	r, g, b, a := newChannel(m.R), newChannel(m.G), newChannel(m.B), newChannel(m.A)
	for y := 0; y < img.Height; y++ {
		row := px[srcRow(y, img.Height, topDown)*stride:]
		out := img.Pix[y*img.Width*4:]
		for x := 0; x < img.Width; x++ {
			v := binary.LittleEndian.Uint32(row[x*4:])
			d := out[x*4 : x*4+4]
			d[0] = r.extract(v)
			d[1] = g.extract(v)
			d[2] = b.extract(v)
			d[3] = a.extract(v)
		}
	}
}
