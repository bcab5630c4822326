package pixart

import (
	"errors"
	"image"
	"os"
	"path/filepath"
	"testing"
)

// heroBMP is a 24×32 opaque BMP: a 6×10 red figure on a flat green field.
func heroBMP(t testing.TB) []byte {
	t.Helper()
	s := framedSprite(24, 32, RGB(30, 200, 60), RGB(200, 40, 40), image.Rect(8, 12, 14, 22))
	return encodeBMP(t, s)
}

func TestLoadSprite(t *testing.T) {
	s, err := LoadSprite(heroBMP(t))
	if err != nil {
		t.Fatalf("LoadSprite: %v", err)
	}
	if s.Width() != 6 || s.Height() != 10 {
		t.Fatalf("size = %d×%d, want 6×10", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if got := s.ColorAt(x, y); got != RGB(200, 40, 40) {
				t.Fatalf("(%d, %d) = %v, want opaque figure color", x, y, got)
			}
		}
	}
}

func TestLoadSpriteOptions(t *testing.T) {
	tests := []struct {
		name         string
		opts         []PipelineOption
		wantW, wantH int
	}{
		{"default", nil, 6, 10},
		{"target height", []PipelineOption{WithTargetHeight(20)}, 12, 20},
		{"non-positive height ignored", []PipelineOption{WithTargetHeight(0)}, 6, 10},
		{"without keying", []PipelineOption{WithoutKeying()}, 24, 32},
		{"without keying resized", []PipelineOption{WithoutKeying(), WithTargetHeight(16)}, 12, 16},
	}
	data := heroBMP(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := LoadSprite(data, tt.opts...)
			if err != nil {
				t.Fatalf("LoadSprite: %v", err)
			}
			if s.Width() != tt.wantW || s.Height() != tt.wantH {
				t.Errorf("size = %d×%d, want %d×%d", s.Width(), s.Height(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestLoadSpriteErrors(t *testing.T) {
	if _, err := LoadSprite([]byte("not a bitmap")); !errors.Is(err, ErrDecode) {
		t.Errorf("garbage input error = %v, want ErrDecode", err)
	}

	// A flat image keys away entirely.
	flat := encodeBMP(t, solidSprite(8, 8, RGB(90, 90, 90)))
	if _, err := LoadSprite(flat); !errors.Is(err, ErrCropEmpty) {
		t.Errorf("flat input error = %v, want ErrCropEmpty", err)
	}
	if _, err := LoadSprite(flat, WithoutKeying()); err != nil {
		t.Errorf("flat input without keying: %v", err)
	}
}

func TestLoadSpriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hero.bmp")
	if err := os.WriteFile(path, heroBMP(t), 0o600); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSpriteFile(path, WithTargetHeight(5))
	if err != nil {
		t.Fatalf("LoadSpriteFile: %v", err)
	}
	if s.Height() != 5 || s.Width() != 3 {
		t.Errorf("size = %d×%d, want 3×5", s.Width(), s.Height())
	}

	_, err = LoadSpriteFile(filepath.Join(t.TempDir(), "missing.bmp"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file error = %v, want os.ErrNotExist", err)
	}
}

func BenchmarkLoadSprite(b *testing.B) {
	data := heroBMP(b)
	for b.Loop() {
		if _, err := LoadSprite(data, WithTargetHeight(48)); err != nil {
			b.Fatal(err)
		}
	}
}
