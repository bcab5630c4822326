// Package ansi renders pixmaps as 24-bit color terminal text.
//
// Each terminal cell shows two pixel rows with the upper half block '▀':
// the foreground is the top pixel, the background the bottom one. Since
// terminal cells are about twice as tall as wide, half-block pixels come
// out roughly square.
package ansi

import (
	"strconv"
	"strings"

	"github.com/bvbgame/pixart"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	halfBlock = '▀'

	// Newline ends every rendered row. Raw-mode terminals need the
	// carriage return.
	Newline = "\r\n"
)

// Home moves the cursor to the top-left corner.
func Home() string {
	return CSI + "H"
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// Fit returns the largest cell grid, at most cols × rows, that shows a
// w × h pixmap without distortion. Both results are at least 1.
func Fit(w, h, cols, rows int) (int, int) {
	if w <= 0 || h <= 0 || cols <= 0 || rows <= 0 {
		return 1, 1
	}
	// A cell is one pixel wide and two pixels tall.
	outCols := cols
	outRows := (h*cols + w) / (2 * w)
	if outRows > rows {
		outRows = rows
		outCols = (w*2*rows + h/2) / h
	}
	return max(min(outCols, cols), 1), max(outRows, 1)
}

// Render draws p into a grid of exactly cols × rows cells, sampling
// nearest-neighbour. Callers that want to keep the aspect ratio pass the
// result of Fit. Rows end with Newline and the output is reset after the
// last cell.
func Render(p *pixart.Pixmap, cols, rows int) string {
	if p.Width() == 0 || p.Height() == 0 || cols <= 0 || rows <= 0 {
		return ""
	}

	var sb strings.Builder
	sb.Grow(rows * (cols*8 + len(Reset) + len(Newline)))

	var fg, bg pixart.Color
	for cy := range rows {
		top := (2 * cy) * p.Height() / (2 * rows)
		bot := (2*cy + 1) * p.Height() / (2 * rows)
		for cx := range cols {
			sx := cx * p.Width() / cols
			t, _ := p.Pixel(sx, top)
			b, _ := p.Pixel(sx, bot)
			// The first cell of each row always writes both colors.
			if cx == 0 || t != fg || b != bg {
				writeCellSGR(&sb, t, b)
				fg, bg = t, b
			}
			sb.WriteRune(halfBlock)
		}
		sb.WriteString(Reset)
		sb.WriteString(Newline)
	}
	return sb.String()
}

// writeCellSGR writes one combined SGR sequence setting both colors.
func writeCellSGR(sb *strings.Builder, fg, bg pixart.Color) {
	sb.WriteString(CSI + "38;2;")
	writeRGB(sb, fg)
	sb.WriteString(";48;2;")
	writeRGB(sb, bg)
	sb.WriteByte('m')
}

func writeRGB(sb *strings.Builder, c pixart.Color) {
	sb.WriteString(strconv.Itoa(int(c.R)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.G)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(c.B)))
}
