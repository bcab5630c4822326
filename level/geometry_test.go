package level

import (
	"image"
	"testing"
)

func TestNewGeometryReference(t *testing.T) {
	g := NewGeometry(refWidth, refHeight)
	want := Geometry{
		Width:       180,
		Height:      320,
		TopBase:     Point{90, 34},
		BottomBase:  Point{90, 286},
		BaseRadius:  22,
		CoreRadius:  10,
		LaneWidth:   16,
		LeftLaneX:   28,
		MidLaneX:    90,
		RightLaneX:  152,
		LeftIsland:  image.Rect(42, 70, 76, 250),
		RightIsland: image.Rect(104, 70, 138, 250),
		TreeRadius:  4,
		TreeSpacing: 12,
	}
	if g != want {
		t.Errorf("NewGeometry(reference) =\n%+v\nwant\n%+v", g, want)
	}
}

func TestNewGeometryScalesLinearly(t *testing.T) {
	ref := NewGeometry(refWidth, refHeight)
	g := NewGeometry(2*refWidth, 2*refHeight)

	pairs := []struct {
		name      string
		got, base int
	}{
		{"top base x", g.TopBase.X, ref.TopBase.X},
		{"top base y", g.TopBase.Y, ref.TopBase.Y},
		{"bottom base y", g.BottomBase.Y, ref.BottomBase.Y},
		{"base radius", g.BaseRadius, ref.BaseRadius},
		{"core radius", g.CoreRadius, ref.CoreRadius},
		{"lane width", g.LaneWidth, ref.LaneWidth},
		{"left lane", g.LeftLaneX, ref.LeftLaneX},
		{"right lane", g.RightLaneX, ref.RightLaneX},
		{"island top", g.LeftIsland.Min.Y, ref.LeftIsland.Min.Y},
		{"island right", g.RightIsland.Max.X, ref.RightIsland.Max.X},
	}
	for _, p := range pairs {
		if p.got != 2*p.base {
			t.Errorf("%s = %d, want %d", p.name, p.got, 2*p.base)
		}
	}
}

func TestNewGeometryLevelCanvas(t *testing.T) {
	g := NewGeometry(Width, Height)

	if g.TopBase != (Point{144, 54}) || g.BottomBase != (Point{144, 458}) {
		t.Errorf("bases = %v / %v, want (144,54) / (144,458)", g.TopBase, g.BottomBase)
	}
	if g.BaseRadius != 35 || g.CoreRadius != 16 || g.LaneWidth != 26 {
		t.Errorf("radii/lane = %d/%d/%d, want 35/16/26", g.BaseRadius, g.CoreRadius, g.LaneWidth)
	}
	if got := g.LaneXs(); got != [3]int{45, 144, 243} {
		t.Errorf("LaneXs = %v, want [45 144 243]", got)
	}
	if g.LeftIsland != image.Rect(67, 112, 122, 400) {
		t.Errorf("LeftIsland = %v", g.LeftIsland)
	}
	if b := g.Bases(); b[0] != g.TopBase || b[1] != g.BottomBase {
		t.Errorf("Bases = %v", b)
	}
}

func TestNewGeometryNonUniform(t *testing.T) {
	// Lengths follow the smaller axis.
	g := NewGeometry(refWidth, 4*refHeight)
	if g.BaseRadius != refBaseRadius {
		t.Errorf("BaseRadius = %d, want %d", g.BaseRadius, refBaseRadius)
	}
	if g.TopBase.Y != 4*refTopBaseY {
		t.Errorf("TopBase.Y = %d, want %d", g.TopBase.Y, 4*refTopBaseY)
	}
}

func TestNewGeometryDegenerate(t *testing.T) {
	g := NewGeometry(0, -5)
	if g.Width != 1 || g.Height != 1 {
		t.Errorf("size = %d×%d, want 1×1", g.Width, g.Height)
	}
	if g.LaneWidth < 2 || g.TreeRadius < 1 || g.TreeSpacing < 3 {
		t.Errorf("minimums not applied: %+v", g)
	}
}
