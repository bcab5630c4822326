package main

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	xbmp "golang.org/x/image/bmp"

	"github.com/bvbgame/pixart"
)

// writeHero writes a 20×30 BMP with a 6×10 red figure on flat blue.
func writeHero(t *testing.T) string {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 20, 30))
	for y := 0; y < 30; y++ {
		for x := 0; x < 20; x++ {
			c := color.NRGBA{R: 40, G: 60, B: 220, A: 255}
			if x >= 7 && x < 13 && y >= 10 && y < 20 {
				c = color.NRGBA{R: 210, G: 50, B: 40, A: 255}
			}
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := xbmp.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "hero.bmp")
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunReport(t *testing.T) {
	var out bytes.Buffer
	if err := run(options{in: writeHero(t)}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	report := out.String()
	for _, want := range []string{
		"input:      20x30",
		"background: #283cdc (threshold 900)",
		"sprite:     6x10",
		"bounds:     (0,0)-(6,10)",
		"dominant:   #",
	} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestRunWritesSprite(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "hero.png")
	if err := run(options{in: writeHero(t), out: dst, height: 20}, &bytes.Buffer{}); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(dst)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 12 || b.Dy() != 20 {
		t.Errorf("saved sprite = %v, want 12×20", b)
	}
}

func TestRunNoKeyKeepsFullImage(t *testing.T) {
	var out bytes.Buffer
	if err := run(options{in: writeHero(t), noKey: true}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "sprite:     20x30") {
		t.Errorf("report = %s, want the uncropped size", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.bmp")
	if err := os.WriteFile(garbage, []byte("GIF89a"), 0o600); err != nil {
		t.Fatal(err)
	}

	if err := run(options{in: garbage}, &bytes.Buffer{}); !errors.Is(err, pixart.ErrDecode) {
		t.Errorf("garbage input error = %v, want ErrDecode", err)
	}
	if err := run(options{in: filepath.Join(dir, "missing.bmp")}, &bytes.Buffer{}); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing input error = %v, want os.ErrNotExist", err)
	}
	if err := run(options{in: writeHero(t), out: filepath.Join(dir, "x.tga")}, &bytes.Buffer{}); err == nil {
		t.Error("unsupported extension accepted")
	}
}
