package level

import "github.com/bvbgame/pixart"

// direction is the way an arrow icon points.
type direction int

const (
	arrowUp direction = iota
	arrowDown
)

// drawArrow draws a solid arrow whose tip is at (cx, tipY). The head is a
// triangle size rows tall; the shaft below (or above) it is another size
// rows long.
func drawArrow(p *pixart.Pixmap, cx, tipY, size int, dir direction, c pixart.Color) {
	if size <= 0 {
		return
	}
	step := 1
	if dir == arrowDown {
		step = -1
	}

	for i := range size {
		p.FillRect(cx-i, tipY+step*i, 2*i+1, 1, c)
	}

	shaftW := max(size/3*2, 2)
	for i := range size {
		p.FillRect(cx-shaftW/2, tipY+step*(size+i), shaftW, 1, c)
	}
}

// Tree colors.
var (
	trunk       = pixart.Hex("#543a24")
	canopy      = pixart.Hex("#1c6030")
	canopyLight = pixart.Hex("#308446")
	canopyEdge  = pixart.Hex("#123e20")
)

// drawTree draws a round top-down tree of radius r centred on (cx, cy).
func drawTree(p *pixart.Pixmap, cx, cy, r int) {
	p.FillRect(cx-1, cy+r-1, 2, 3, trunk)
	p.FillCircle(cx, cy, r, canopyEdge)
	p.FillCircle(cx, cy, r-1, canopy)
	p.FillCircle(cx-r/3, cy-r/3, r/2, canopyLight)
}
