package level

import "github.com/bvbgame/pixart"

// Parking lot palette.
var (
	asphalt = Palette{
		pixart.Hex("#121a24"),
		pixart.Hex("#16202c"),
		pixart.Hex("#1c2836"),
	}
	lineWhite      = pixart.Hex("#d6e0e8")
	lineYellow     = pixart.Hex("#d6ba3e")
	curbGray       = pixart.Hex("#606a74")
	grassA         = pixart.Hex("#28703e")
	grassB         = pixart.Hex("#206236")
	building       = pixart.Hex("#ae987c")
	buildingShadow = pixart.Hex("#8a7662")
	buildingEdge   = pixart.Hex("#3e342c")
	window         = pixart.Hex("#203a54")
	windowEdge     = pixart.Hex("#101822")
	windowGlint    = pixart.Hex("#4a84b0")
	doorFrame      = pixart.Hex("#786e62")
	doorEdge       = pixart.Hex("#2c2620")
	doorGlass      = pixart.Hex("#141c28")
	carOutline     = pixart.Hex("#0a0e14")
	carGlass       = pixart.Hex("#2c5c80")
	tailLight      = pixart.Hex("#d2342c")
)

// Parking lot layout.
const (
	grassHeight = 20

	facadeHeight   = 88
	facadeShadow   = 10
	windowY        = 18
	windowW        = 20
	windowH        = 14
	windowStart    = 16
	windowPitch    = 28
	entranceW      = 68
	entranceY      = 46
	entranceH      = 34
	entranceInset  = 6
	curbHeight     = 16
	curbLineOffset = 6

	lotTop     = facadeHeight + 18
	lotBottom  = Height - 26
	rowHeight  = 52
	spotWidth  = 18
	rowMargin  = 10
	stallLen   = 18
	dashLen    = 8
	dashPitch  = 18
	laneMargin = 12

	carW = 14
	carH = 22

	cutoutW     = 40
	arrowSize   = 6
	cutoutInset = 2
)

// parkedCar is a car drawn at a fixed stall.
type parkedCar struct {
	x, y int
	body pixart.Color
}

var parkedCars = []parkedCar{
	{28, lotTop + 6, pixart.Hex("#c84038")},
	{64, lotTop + rowHeight - 26, pixart.Hex("#4880d2")},
	{200, lotTop + rowHeight + 6, pixart.Hex("#e8e8e8")},
	{176, lotTop + 2*rowHeight - 26, pixart.Hex("#58ce84")},
}

func drawParkingLot(p *pixart.Pixmap) {
	fillDither(p, 0, 0, Width, Height, asphalt)
	drawGrassBand(p)
	drawLotGates(p)
	drawFacade(p)

	// Sidewalk and curb line under the facade.
	p.FillRect(0, facadeHeight, Width, curbHeight, curbGray)
	p.FillRect(0, facadeHeight+curbLineOffset, Width, 2, lineYellow)

	rows := max((lotBottom-lotTop)/rowHeight, 1)
	for r := range rows {
		drawParkingRow(p, lotTop+r*rowHeight)
	}

	for _, c := range parkedCars {
		drawCar(p, c.x, c.y, c.body)
	}
}

// drawGrassBand draws the bottom border; its first and last rows alternate
// two shades.
func drawGrassBand(p *pixart.Pixmap) {
	top := Height - grassHeight
	p.FillRect(0, top, Width, grassHeight, grassA)
	for x := range Width {
		alt := grassA
		if x&1 == 0 {
			alt = grassB
		}
		p.Put(x, top, alt)
		p.Put(x, Height-1, alt)
	}
}

// drawLotGates cuts the entrance (left) and exit (right) driveways through
// the grass band and marks them with arrows.
func drawLotGates(p *pixart.Pixmap) {
	top := Height - grassHeight
	for i, cx := range [2]int{Width / 4, Width * 3 / 4} {
		x := cx - cutoutW/2
		p.FillRect(x-cutoutInset, top, cutoutW+2*cutoutInset, grassHeight, curbGray)
		fillDither(p, x, top, cutoutW, grassHeight, asphalt)

		tipY, dir := top+cutoutInset, arrowUp
		if i == 1 {
			tipY, dir = Height-1-cutoutInset, arrowDown
		}
		drawArrow(p, cx, tipY, arrowSize, dir, lineWhite)
	}
}

func drawFacade(p *pixart.Pixmap) {
	p.FillRect(0, 0, Width, facadeHeight, building)
	p.FillRect(0, facadeHeight-facadeShadow, Width, facadeShadow, buildingShadow)
	p.RectOutline(0, 0, Width, facadeHeight, buildingEdge)

	for wx := windowStart; wx < Width-24; wx += windowPitch {
		p.FillRect(wx, windowY, windowW, windowH, window)
		p.RectOutline(wx, windowY, windowW, windowH, windowEdge)
		p.FillRect(wx+2, windowY+2, 6, 2, windowGlint)
	}

	x := (Width - entranceW) / 2
	p.FillRect(x, entranceY, entranceW, entranceH, doorFrame)
	p.RectOutline(x, entranceY, entranceW, entranceH, doorEdge)
	p.FillRect(x+entranceInset, entranceY+entranceInset, entranceW-2*entranceInset, entranceH-8, doorGlass)
}

// drawParkingRow draws one double row of stalls starting at y0.
func drawParkingRow(p *pixart.Pixmap, y0 int) {
	p.FillRect(rowMargin, y0, Width-2*rowMargin, 2, lineWhite)
	p.FillRect(rowMargin, y0+rowHeight-2, Width-2*rowMargin, 2, lineWhite)

	laneY := y0 + rowHeight/2 - 1
	for dx := laneMargin; dx < Width-laneMargin; dx += dashPitch {
		p.FillRect(dx, laneY, dashLen, 2, lineYellow)
	}

	for sx := laneMargin; sx < Width-laneMargin; sx += spotWidth {
		p.FillRect(sx, y0+2, 2, stallLen, lineWhite)
		p.FillRect(sx, y0+rowHeight-20, 2, stallLen, lineWhite)
	}
}

// drawCar draws a 14×22 top-down car with its roof at y.
func drawCar(p *pixart.Pixmap, x, y int, body pixart.Color) {
	p.FillRect(x, y, carW, carH, body)
	p.RectOutline(x, y, carW, carH, carOutline)

	p.FillRect(x+2, y+2, carW-4, 3, body.Lighten(22))

	p.FillRect(x+2, y+6, carW-4, 4, carGlass)
	p.FillRect(x+2, y+carH-10, carW-4, 4, carGlass)

	p.Put(x+2, y+carH-2, tailLight)
	p.Put(x+carW-3, y+carH-2, tailLight)
}
