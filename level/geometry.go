package level

import "image"

// The arena was laid out on a 180×320 canvas. Geometry scales these
// reference values to the actual canvas.
const (
	refWidth  = 180
	refHeight = 320

	refBaseX        = 90
	refTopBaseY     = 34
	refBottomBaseY  = 286
	refBaseRadius   = 22
	refCoreRadius   = 10
	refLaneWidth    = 16
	refLeftLaneX    = 28
	refRightLaneX   = 152
	refIslandTop    = 70
	refIslandBottom = 250
	refTreeRadius   = 4
	refTreeSpacing  = 12
)

// Reference island spans, left and right of the mid lane.
var (
	refLeftIsland  = [2]int{42, 76}
	refRightIsland = [2]int{104, 138}
)

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Geometry holds the spawn and lane layout of the MOBA arena for one
// canvas size. Horizontal values scale with the width, vertical values
// with the height, and lengths such as radii with the smaller of the two.
type Geometry struct {
	Width, Height int

	// TopBase belongs to the blue team, BottomBase to the red team.
	TopBase, BottomBase Point

	BaseRadius int // outer plaza
	CoreRadius int // team-colored core

	LaneWidth int

	// Lane centre columns.
	LeftLaneX, MidLaneX, RightLaneX int

	// Median islands between the side lanes and the mid lane.
	LeftIsland, RightIsland image.Rectangle

	TreeRadius  int
	TreeSpacing int
}

// NewGeometry scales the reference arena to a w × h canvas. Sizes below 1
// are raised to 1.
func NewGeometry(w, h int) Geometry {
	w, h = max(w, 1), max(h, 1)
	sx := func(v int) int { return scale(v, w, refWidth) }
	sy := func(v int) int { return scale(v, h, refHeight) }
	sl := func(v int) int { return min(sx(v), sy(v)) }

	return Geometry{
		Width:       w,
		Height:      h,
		TopBase:     Point{X: sx(refBaseX), Y: sy(refTopBaseY)},
		BottomBase:  Point{X: sx(refBaseX), Y: sy(refBottomBaseY)},
		BaseRadius:  sl(refBaseRadius),
		CoreRadius:  sl(refCoreRadius),
		LaneWidth:   max(sl(refLaneWidth), 2),
		LeftLaneX:   sx(refLeftLaneX),
		MidLaneX:    sx(refBaseX),
		RightLaneX:  sx(refRightLaneX),
		LeftIsland:  image.Rect(sx(refLeftIsland[0]), sy(refIslandTop), sx(refLeftIsland[1]), sy(refIslandBottom)),
		RightIsland: image.Rect(sx(refRightIsland[0]), sy(refIslandTop), sx(refRightIsland[1]), sy(refIslandBottom)),
		TreeRadius:  max(sl(refTreeRadius), 1),
		TreeSpacing: max(sl(refTreeSpacing), 3),
	}
}

// scale maps v from a ref-sized axis to a size-sized one, rounding to the
// nearest pixel.
func scale(v, size, ref int) int {
	return (v*size + ref/2) / ref
}

// Bases returns the two spawn points, top then bottom.
func (g Geometry) Bases() [2]Point {
	return [2]Point{g.TopBase, g.BottomBase}
}

// LaneXs returns the lane centre columns, left to right.
func (g Geometry) LaneXs() [3]int {
	return [3]int{g.LeftLaneX, g.MidLaneX, g.RightLaneX}
}
