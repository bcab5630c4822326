package level

import (
	"fmt"
	"strings"

	"github.com/bvbgame/pixart"
)

// Canvas size of every generated level.
const (
	Width  = 288
	Height = 512
)

// Layout selects which level Generate draws.
type Layout int

const (
	// ParkingLot is a mall parking lot: facade, curb, parking rows, cars.
	ParkingLot Layout = iota

	// MOBA is a three-lane arena with two opposing spawn bases.
	MOBA
)

// String returns the layout name accepted by ParseLayout.
func (l Layout) String() string {
	switch l {
	case ParkingLot:
		return "parking"
	case MOBA:
		return "moba"
	default:
		return fmt.Sprintf("Layout(%d)", int(l))
	}
}

// ParseLayout converts a layout name ("parking" or "moba") to a Layout.
func ParseLayout(s string) (Layout, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "parking", "parking-lot", "parkinglot":
		return ParkingLot, nil
	case "moba":
		return MOBA, nil
	}
	return 0, fmt.Errorf("level: unknown layout %q", s)
}

// Generate draws the level for layout onto a new Width×Height pixmap.
// Repeated calls with the same layout produce byte-identical buffers.
// Unknown layouts fall back to ParkingLot.
func Generate(layout Layout) *pixart.Pixmap {
	p := pixart.NewPixmap(Width, Height)
	switch layout {
	case MOBA:
		drawMOBA(p, NewGeometry(Width, Height))
	default:
		layout = ParkingLot
		drawParkingLot(p)
	}
	pixart.Logger().Debug("level generated", "layout", layout.String(), "width", Width, "height", Height)
	return p
}
