package level

import (
	"bytes"
	"testing"
)

func TestExportInitIdempotent(t *testing.T) {
	e := NewExport(MOBA)
	if e.Initialized() || e.Pixels() != nil || e.Len() != 0 || e.Pixmap() != nil {
		t.Fatal("export is populated before Init")
	}

	e.Init()
	first := e.Pixels()
	if !e.Initialized() {
		t.Fatal("Initialized() = false after Init")
	}
	if e.Len() != e.Width()*e.Height()*4 {
		t.Errorf("Len() = %d, want %d", e.Len(), e.Width()*e.Height()*4)
	}

	e.Init()
	second := e.Pixels()
	if &first[0] != &second[0] {
		t.Error("second Init replaced the published buffer")
	}
	if !bytes.Equal(second, Generate(MOBA).Data()) {
		t.Error("exported buffer differs from Generate")
	}
}

func TestExportAccessors(t *testing.T) {
	e := NewExport(ParkingLot)
	e.Init()
	if e.Width() != Width || e.Height() != Height {
		t.Errorf("size = %d×%d, want %d×%d", e.Width(), e.Height(), Width, Height)
	}
	if e.Layout() != ParkingLot {
		t.Errorf("Layout() = %v, want parking", e.Layout())
	}
	if e.Pixmap().Width() != Width {
		t.Errorf("Pixmap().Width() = %d", e.Pixmap().Width())
	}
}
