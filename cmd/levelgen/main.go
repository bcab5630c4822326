// Command levelgen writes a generated level to a PNG or BMP file.
//
//	levelgen -layout moba -out arena.png
//	levelgen -layout parking -out lot.bmp -preview 72
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/bvbgame/pixart"
	"github.com/bvbgame/pixart/internal/ansi"
	"github.com/bvbgame/pixart/level"
)

func main() {
	var (
		layoutName = flag.String("layout", "parking", "level layout: parking or moba")
		output     = flag.String("out", "level.png", "output file (.png or .bmp)")
		preview    = flag.Int("preview", 0, "also print an ANSI preview this many columns wide")
		verbose    = flag.Bool("v", false, "enable debug logging")
	)
	flag.Parse()

	logger := newLogger(os.Stderr, *verbose)
	pixart.SetLogger(logger)

	if err := run(*layoutName, *output, *preview, os.Stdout); err != nil {
		logger.Error("levelgen failed", "err", err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	lvl := slog.LevelInfo
	if verbose {
		lvl = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func run(layoutName, output string, preview int, stdout io.Writer) error {
	layout, err := level.ParseLayout(layoutName)
	if err != nil {
		return err
	}

	save, err := saverFor(output)
	if err != nil {
		return err
	}

	levelMap := level.Generate(layout)
	if err := save(levelMap, output); err != nil {
		return err
	}
	pixart.Logger().Info("level saved", "layout", layout.String(), "path", output,
		"width", levelMap.Width(), "height", levelMap.Height())

	if preview > 0 {
		cols, rows := ansi.Fit(levelMap.Width(), levelMap.Height(), preview, levelMap.Height())
		if _, err := io.WriteString(stdout, ansi.Render(levelMap, cols, rows)); err != nil {
			return fmt.Errorf("write preview: %w", err)
		}
	}
	return nil
}

// saverFor picks the encoder from the file extension.
func saverFor(path string) (func(*pixart.Pixmap, string) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return (*pixart.Pixmap).SavePNG, nil
	case ".bmp":
		return (*pixart.Pixmap).SaveBMP, nil
	}
	return nil, fmt.Errorf("unsupported output extension %q (want .png or .bmp)", filepath.Ext(path))
}
