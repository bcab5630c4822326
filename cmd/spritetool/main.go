// Command spritetool runs the sprite pipeline on a BMP file and reports
// what it found.
//
//	spritetool -in hero.bmp -height 48 -out hero.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bvbgame/pixart"
)

type options struct {
	in, out string
	height  int
	noKey   bool
}

func main() {
	var o options
	flag.StringVar(&o.in, "in", "", "input BMP file (required)")
	flag.StringVar(&o.out, "out", "", "write the processed sprite here (.png or .bmp)")
	flag.IntVar(&o.height, "height", 0, "scale the cropped sprite to this height")
	flag.BoolVar(&o.noKey, "nokey", false, "skip background keying")
	verbose := flag.Bool("v", false, "enable debug logging")
	flag.Parse()

	lvl := slog.LevelInfo
	if *verbose {
		lvl = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
	pixart.SetLogger(logger)

	if o.in == "" {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(o, os.Stdout); err != nil {
		if errors.Is(err, pixart.ErrDecode) || errors.Is(err, pixart.ErrCropEmpty) {
			logger.Warn("sprite unusable", "path", o.in, "err", err)
		} else {
			logger.Error("spritetool failed", "err", err)
		}
		os.Exit(1)
	}
}

func run(o options, stdout io.Writer) error {
	data, err := os.ReadFile(o.in)
	if err != nil {
		return err
	}

	raw, err := pixart.DecodeBMP(data)
	if err != nil {
		return err
	}
	before := pixart.Inspect(raw)

	opts := []pixart.PipelineOption{pixart.WithTargetHeight(o.height)}
	if o.noKey {
		opts = append(opts, pixart.WithoutKeying())
	}
	s, err := pixart.LoadSprite(data, opts...)
	if err != nil {
		return err
	}
	after := pixart.Inspect(s)

	fmt.Fprintf(stdout, "input:      %dx%d\n", before.Width, before.Height)
	fmt.Fprintf(stdout, "background: %s (threshold %d)\n", hex(before.Background), before.Threshold)
	fmt.Fprintf(stdout, "sprite:     %dx%d\n", after.Width, after.Height)
	fmt.Fprintf(stdout, "bounds:     %v\n", after.Bounds)
	fmt.Fprintf(stdout, "dominant:   %s\n", hex(after.Dominant))

	if o.out == "" {
		return nil
	}
	return save(pixart.FromImage(s), o.out)
}

func save(p *pixart.Pixmap, path string) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return p.SavePNG(path)
	case ".bmp":
		return p.SaveBMP(path)
	}
	return fmt.Errorf("unsupported output extension %q (want .png or .bmp)", filepath.Ext(path))
}

func hex(c pixart.Color) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
