package pixart

import (
	"bytes"
	"errors"
	"testing"
)

func TestDecodeBMP(t *testing.T) {
	want := NewSprite(5, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 5; x++ {
			want.Set(x, y, RGB(uint8(x*40), uint8(y*80), 77))
		}
	}

	got, err := DecodeBMP(encodeBMP(t, want))
	if err != nil {
		t.Fatalf("DecodeBMP: %v", err)
	}
	if got.Width() != 5 || got.Height() != 3 {
		t.Fatalf("size = %d×%d, want 5×3", got.Width(), got.Height())
	}
	if !bytes.Equal(got.Pix(), want.Pix()) {
		t.Error("decoded pixels differ from the encoded image")
	}
}

func TestDecodeBMPErrors(t *testing.T) {
	valid := encodeBMP(t, solidSprite(4, 4, White))

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"empty", nil, ErrInvalidSignature},
		{"bad signature", append([]byte("XX"), valid[2:]...), ErrInvalidSignature},
		{"header only", valid[:30], ErrTruncated},
		{"truncated rows", valid[:len(valid)-4], ErrTruncated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := DecodeBMP(tt.data)
			if s != nil {
				t.Error("DecodeBMP returned a sprite on failure")
			}
			if !errors.Is(err, ErrDecode) {
				t.Errorf("error %v does not wrap ErrDecode", err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("error %v does not wrap %v", err, tt.want)
			}
		})
	}
}
