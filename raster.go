package pixart

// Put writes an opaque pixel at (x, y). Coordinates outside the pixmap,
// negative ones included, are ignored.
func (p *Pixmap) Put(x, y int, c Color) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 255
}

// FillRect fills [x, x+w) × [y, y+h). Non-positive extents draw nothing.
func (p *Pixmap) FillRect(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	// Clip up front so large off-canvas rectangles cost nothing.
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, p.width), min(y+h, p.height)
	for yy := y0; yy < y1; yy++ {
		for xx := x0; xx < x1; xx++ {
			p.Put(xx, yy, c)
		}
	}
}

// RectOutline draws the 1-pixel border of the rectangle at (x, y) with size
// w × h. Non-positive extents draw nothing.
func (p *Pixmap) RectOutline(x, y, w, h int, c Color) {
	if w <= 0 || h <= 0 {
		return
	}
	for xx := x; xx < x+w; xx++ {
		p.Put(xx, y, c)
		p.Put(xx, y+h-1, c)
	}
	for yy := y; yy < y+h; yy++ {
		p.Put(x, yy, c)
		p.Put(x+w-1, yy, c)
	}
}

// FillCircle draws the inclusive disk dx²+dy² ≤ r². A negative radius draws
// nothing; r = 0 draws the single center pixel.
func (p *Pixmap) FillCircle(cx, cy, r int, c Color) {
	if r < 0 {
		return
	}
	rr := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= rr {
				p.Put(cx+dx, cy+dy, c)
			}
		}
	}
}

// FillRing draws every point whose squared distance from (cx, cy) lies in
// [inner², outer²].
func (p *Pixmap) FillRing(cx, cy, outer, inner int, c Color) {
	if outer < 0 || inner > outer {
		return
	}
	inner = max(inner, 0)
	oo, ii := outer*outer, inner*inner
	for dy := -outer; dy <= outer; dy++ {
		for dx := -outer; dx <= outer; dx++ {
			d := dx*dx + dy*dy
			if d >= ii && d <= oo {
				p.Put(cx+dx, cy+dy, c)
			}
		}
	}
}
