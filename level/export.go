package level

import "github.com/bvbgame/pixart"

// Export publishes one generated level for repeated read-only access by a
// renderer. Init generates the buffer once; later calls are no-ops and the
// published buffer never changes.
//
// Init is not safe for concurrent use. Once it has returned, any number of
// goroutines may read through the accessors.
type Export struct {
	layout Layout
	level  *pixart.Pixmap
}

// NewExport returns an uninitialised export for layout.
func NewExport(layout Layout) *Export {
	return &Export{layout: layout}
}

// Init generates the level if it has not been generated yet.
func (e *Export) Init() {
	if e.level != nil {
		return
	}
	e.level = Generate(e.layout)
}

// Initialized reports whether Init has run.
func (e *Export) Initialized() bool {
	return e.level != nil
}

// Layout returns the exported layout.
func (e *Export) Layout() Layout {
	return e.layout
}

// Width returns the level width in pixels.
func (e *Export) Width() int {
	return Width
}

// Height returns the level height in pixels.
func (e *Export) Height() int {
	return Height
}

// Pixels returns the RGBA8 buffer, row-major and top-down, or nil before
// Init. The slice is shared and must not be modified.
func (e *Export) Pixels() []uint8 {
	if e.level == nil {
		return nil
	}
	return e.level.Data()
}

// Len returns len(Pixels()): Width*Height*4 after Init, 0 before.
func (e *Export) Len() int {
	return len(e.Pixels())
}

// Pixmap returns the published level, or nil before Init. Callers that need
// to draw on it should Clone it first.
func (e *Export) Pixmap() *pixart.Pixmap {
	return e.level
}
