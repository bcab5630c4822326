package pixart

import (
	"bytes"
	"image"
	"testing"
)

func TestKeyBackgroundUniformBorder(t *testing.T) {
	bg := RGB(200, 200, 200)
	fg := RGB(20, 40, 60)
	s := framedSprite(16, 16, bg, fg, image.Rect(6, 6, 10, 10))
	before := bytes.Clone(s.Pix())

	out := KeyBackground(s)

	if !bytes.Equal(before, s.Pix()) {
		t.Error("KeyBackground modified its input")
	}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			got := out.ColorAt(x, y)
			inner := x >= 6 && x < 10 && y >= 6 && y < 10
			if inner && got.A != 255 {
				t.Errorf("center (%d, %d) alpha = %d, want 255", x, y, got.A)
			}
			if !inner && got.A != 0 {
				t.Errorf("background (%d, %d) alpha = %d, want 0", x, y, got.A)
			}
			// RGB is never touched.
			if want := s.ColorAt(x, y); got.R != want.R || got.G != want.G || got.B != want.B {
				t.Errorf("(%d, %d) RGB changed: %v -> %v", x, y, want, got)
			}
		}
	}
}

func TestKeyBackgroundLeavesFaintPixels(t *testing.T) {
	bg := RGB(90, 90, 90)
	s := solidSprite(8, 8, bg)
	faint := bg
	faint.A = keyMinAlpha - 1
	s.Set(3, 3, faint)

	out := KeyBackground(s)
	if got := out.ColorAt(3, 3).A; got != keyMinAlpha-1 {
		t.Errorf("faint pixel alpha = %d, want %d unchanged", got, keyMinAlpha-1)
	}
	if got := out.ColorAt(4, 4).A; got != 0 {
		t.Errorf("background pixel alpha = %d, want 0", got)
	}
}

func TestEstimateBackgroundThreshold(t *testing.T) {
	tests := []struct {
		name   string
		sprite *Sprite
		wantBg Color
		wantTh int
	}{
		{
			name:   "uniform",
			sprite: solidSprite(24, 24, RGB(30, 60, 90)),
			wantBg: RGB(30, 60, 90),
			wantTh: keyThresholdMin,
		},
		{
			name:   "empty",
			sprite: NewSprite(0, 0),
			wantBg: Transparent,
			wantTh: keyThresholdMin,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bg, th := EstimateBackground(tt.sprite)
			if bg != tt.wantBg || th != tt.wantTh {
				t.Errorf("EstimateBackground = (%v, %d), want (%v, %d)", bg, th, tt.wantBg, tt.wantTh)
			}
		})
	}
}

func TestEstimateBackgroundNoisyBorderIsCapped(t *testing.T) {
	// Alternate black and white along every edge.
	s := NewSprite(12, 12)
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if (x+y)&1 == 0 {
				s.Set(x, y, White)
			} else {
				s.Set(x, y, Black)
			}
		}
	}
	_, th := EstimateBackground(s)
	if th != keyThresholdMax {
		t.Errorf("threshold = %d, want cap %d", th, keyThresholdMax)
	}
}

func TestEstimateBackgroundSlightNoise(t *testing.T) {
	// A border of 100 and 110 grey: mean 105, spread 3*5² = 75.
	s := NewSprite(4, 4)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			v := uint8(100)
			if x&1 == 1 {
				v = 110
			}
			s.Set(x, y, RGB(v, v, v))
		}
	}
	bg, th := EstimateBackground(s)
	if bg != RGB(105, 105, 105) {
		t.Errorf("background = %v, want (105, 105, 105)", bg)
	}
	if th != keyThresholdMin+75 {
		t.Errorf("threshold = %d, want %d", th, keyThresholdMin+75)
	}
}

func BenchmarkKeyBackground(b *testing.B) {
	s := framedSprite(128, 128, RGB(250, 250, 250), RGB(40, 40, 80), image.Rect(32, 16, 96, 120))
	for b.Loop() {
		_ = KeyBackground(s)
	}
}
