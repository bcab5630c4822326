package level

import (
	"image"

	"github.com/bvbgame/pixart"
)

// Arena palette.
var (
	jungle = Palette{
		pixart.Hex("#225234"),
		pixart.Hex("#1e4a2e"),
		pixart.Hex("#285c3a"),
	}
	jungleFleck = pixart.Hex("#346c42")
	dirt        = Palette{
		pixart.Hex("#786448"),
		pixart.Hex("#6e5c42"),
		pixart.Hex("#846e50"),
	}
	laneCurb   = pixart.Hex("#564a38")
	laneMarker = pixart.Hex("#dcc878")
	meadow     = Palette{
		pixart.Hex("#2e7844"),
		pixart.Hex("#286c3c"),
		pixart.Hex("#36864c"),
	}
	plaza     = pixart.Hex("#464652")
	plazaEdge = pixart.Hex("#2c2c36")
	gateWhite = pixart.Hex("#e8e8e8")
)

// team colors a spawn base.
type team struct {
	core, ring pixart.Color
}

var (
	blueTeam = team{core: pixart.Hex("#3460c4"), ring: pixart.Hex("#78a0f0")}
	redTeam  = team{core: pixart.Hex("#c43c34"), ring: pixart.Hex("#f08c78")}
)

const (
	curbWidth   = 2
	markerLen   = 6
	markerPitch = 12
	plazaRing   = 3
	coreRing    = 2
	gateGap     = 4
	gateSize    = 5
)

// corridor is one straight stretch of lane.
type corridor struct {
	r        image.Rectangle
	vertical bool
}

// corridors returns the lane network: left and right side lanes, the mid
// lane, and the connectors that join the side lanes through each base.
func corridors(g Geometry) []corridor {
	half := g.LaneWidth / 2
	top, bottom := g.TopBase.Y, g.BottomBase.Y
	vert := func(cx, y0, y1 int) corridor {
		return corridor{r: image.Rect(cx-half, y0, cx-half+g.LaneWidth, y1), vertical: true}
	}
	horiz := func(cy int) corridor {
		return corridor{r: image.Rect(g.LeftLaneX-half, cy-half, g.RightLaneX-half+g.LaneWidth, cy-half+g.LaneWidth)}
	}
	return []corridor{
		vert(g.LeftLaneX, top-half, bottom-half+g.LaneWidth),
		vert(g.MidLaneX, top, bottom),
		vert(g.RightLaneX, top-half, bottom-half+g.LaneWidth),
		horiz(top),
		horiz(bottom),
	}
}

func drawMOBA(p *pixart.Pixmap, g Geometry) {
	fillDither(p, 0, 0, g.Width, g.Height, jungle)
	scatterFlecks(p, image.Rect(0, 0, g.Width, g.Height), jungleFleck)

	lanes := corridors(g)
	// Curbs first so crossing lanes overwrite each other's edges.
	for _, c := range lanes {
		r := c.r
		p.FillRect(r.Min.X-curbWidth, r.Min.Y-curbWidth, r.Dx()+2*curbWidth, r.Dy()+2*curbWidth, laneCurb)
	}
	for _, c := range lanes {
		fillDither(p, c.r.Min.X, c.r.Min.Y, c.r.Dx(), c.r.Dy(), dirt)
	}
	for _, c := range lanes {
		drawLaneMarkers(p, c)
	}

	for _, isl := range [2]image.Rectangle{g.LeftIsland, g.RightIsland} {
		drawIsland(p, isl, g.TreeRadius, g.TreeSpacing)
	}

	drawBase(p, g.TopBase, g, blueTeam)
	drawBase(p, g.BottomBase, g, redTeam)

	// Gates point from each base toward the enemy along the mid lane.
	drawArrow(p, g.MidLaneX, g.TopBase.Y+g.BaseRadius+gateGap+gateSize*2, gateSize, arrowDown, gateWhite)
	drawArrow(p, g.MidLaneX, g.BottomBase.Y-g.BaseRadius-gateGap-gateSize*2, gateSize, arrowUp, gateWhite)
}

// scatterFlecks lightens the pixels of r picked by both hashes.
func scatterFlecks(p *pixart.Pixmap, r image.Rectangle, c pixart.Color) {
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			if ScatterIndex(x, y) == 0 && TextureIndex(x, y) == 0 {
				p.Put(x, y, c)
			}
		}
	}
}

// drawLaneMarkers dashes the centre line of c.
func drawLaneMarkers(p *pixart.Pixmap, c corridor) {
	r := c.r
	if c.vertical {
		cx := (r.Min.X + r.Max.X) / 2
		for y := r.Min.Y + markerLen; y < r.Max.Y-markerLen; y += markerPitch {
			p.FillRect(cx-1, y, 2, markerLen, laneMarker)
		}
		return
	}
	cy := (r.Min.Y + r.Max.Y) / 2
	for x := r.Min.X + markerLen; x < r.Max.X-markerLen; x += markerPitch {
		p.FillRect(x, cy-1, markerLen, 2, laneMarker)
	}
}

// drawIsland fills a median island with meadow and plants trees on a
// staggered grid. ScatterIndex thins the grid so rows do not look stamped.
func drawIsland(p *pixart.Pixmap, r image.Rectangle, radius, spacing int) {
	p.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), laneCurb)
	fillDither(p, r.Min.X+1, r.Min.Y+1, r.Dx()-2, r.Dy()-2, meadow)

	margin := radius + 2
	for row, ty := 0, r.Min.Y+margin; ty <= r.Max.Y-margin-2; row, ty = row+1, ty+spacing {
		offset := 0
		if row&1 == 1 {
			offset = spacing / 2
		}
		for tx := r.Min.X + margin + offset; tx <= r.Max.X-margin; tx += spacing {
			if ScatterIndex(tx, ty) == 3 {
				continue
			}
			drawTree(p, tx, ty, radius)
		}
	}
}

// drawBase draws a spawn plaza: stone disk, edge ring, team core.
func drawBase(p *pixart.Pixmap, c Point, g Geometry, t team) {
	p.FillCircle(c.X, c.Y, g.BaseRadius, plaza)
	p.FillRing(c.X, c.Y, g.BaseRadius, g.BaseRadius-plazaRing, plazaEdge)
	p.FillRing(c.X, c.Y, g.BaseRadius-plazaRing, g.BaseRadius-plazaRing-1, t.ring)

	p.FillCircle(c.X, c.Y, g.CoreRadius, t.core)
	p.FillRing(c.X, c.Y, g.CoreRadius, g.CoreRadius-coreRing, t.ring)
	p.FillCircle(c.X, c.Y, g.CoreRadius/3, t.core.Lighten(40))
}
