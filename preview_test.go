package gradstops

import (
	"image/color"
	"testing"
)

func TestPreviewMatchesColor(t *testing.T) {
	m := NewModel()
	m.AddStop(0, Red)
	m.AddStop(0.5, Green)
	m.AddStop(1, Blue)

	const w, h = 64, 4
	img, err := m.Preview(w, h)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	if got := img.Bounds().Size(); got.X != w || got.Y != h {
		t.Fatalf("size = %v, want %dx%d", got, w, h)
	}
	for x := 0; x < w; x++ {
		want := m.Color(float64(x) / float64(w-1)).NRGBA()
		for y := 0; y < h; y++ {
			if got := img.NRGBAAt(x, y); got != want {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestPreviewEmptyModelIsGrayRamp(t *testing.T) {
	img, err := NewModel().Preview(256, 1)
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	for _, x := range []int{0, 128, 255} {
		got := img.NRGBAAt(x, 0)
		if got.R != got.G || got.G != got.B || got.A != 255 {
			t.Errorf("pixel %d = %v, want opaque gray", x, got)
		}
	}
	if img.NRGBAAt(0, 0).R != 0 || img.NRGBAAt(255, 0).R != 255 {
		t.Error("gray ramp should run from black to white")
	}
}

func TestPreviewInvalidSize(t *testing.T) {
	m := NewModel()
	for _, sz := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := m.Preview(sz[0], sz[1]); err == nil {
			t.Errorf("Preview(%d, %d) should fail", sz[0], sz[1])
		}
	}
}

func TestPreviewCheckerboardShowsThroughTransparency(t *testing.T) {
	m := NewModel()
	m.AddStop(0, Transparent)
	m.AddStop(1, Transparent)

	img, err := m.Preview(16, 16, WithCheckerboard(4))
	if err != nil {
		t.Fatalf("Preview() error = %v", err)
	}
	light := img.NRGBAAt(0, 0)
	dark := img.NRGBAAt(4, 0)
	if light == dark {
		t.Errorf("checkerboard cells should differ, both %v", light)
	}
	if light.A != 255 {
		t.Errorf("composited pixel alpha = %d, want 255", light.A)
	}
}

func TestPreviewLinearBlend(t *testing.T) {
	m := NewModel()
	m.AddStop(0, Black)
	m.AddStop(1, White)

	straight, err := m.Preview(3, 1)
	if err != nil {
		t.Fatal(err)
	}
	linear, err := m.Preview(3, 1, WithLinearBlend(true))
	if err != nil {
		t.Fatal(err)
	}
	if s, l := straight.NRGBAAt(1, 0).R, linear.NRGBAAt(1, 0).R; l <= s {
		t.Errorf("linear-light midpoint %d should be brighter than straight %d", l, s)
	}
	if linear.NRGBAAt(0, 0) != (color.NRGBA{A: 255}) || linear.NRGBAAt(2, 0) != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Error("linear preview endpoints should be exact")
	}
}

func TestPreviewMarkersAndLabels(t *testing.T) {
	m := NewModel()
	a := m.AddStop(0.25, Black)
	m.AddStop(0.75, White)
	m.SetCurrentStop(a)
	m.SelectStop(a, true)

	const w, h = 101, 40
	plain, err := m.Preview(w, h)
	if err != nil {
		t.Fatal(err)
	}
	marked, err := m.Preview(w, h, WithMarkers(true), WithLabels(10))
	if err != nil {
		t.Fatal(err)
	}

	// The current stop's tick spans the full height at x=25.
	if got := marked.NRGBAAt(25, h/2); got == plain.NRGBAAt(25, h/2) {
		t.Error("current stop marker not drawn")
	}
	// Labels put ink somewhere in the top rows.
	changed := false
	for y := 0; y < 12 && !changed; y++ {
		for x := 0; x < w; x++ {
			if x >= 24 && x <= 26 {
				continue
			}
			if marked.NRGBAAt(x, y) != plain.NRGBAAt(x, y) {
				changed = true
				break
			}
		}
	}
	if !changed {
		t.Error("labels not drawn")
	}
}

func TestPreviewSamplesScaled(t *testing.T) {
	m := NewModel()
	m.AddStop(0, Red)
	m.AddStop(1, Red)
	img, err := m.Preview(200, 2, WithSamples(16))
	if err != nil {
		t.Fatal(err)
	}
	want := Red.NRGBA()
	for _, x := range []int{0, 100, 199} {
		if got := img.NRGBAAt(x, 1); got != want {
			t.Errorf("pixel %d = %v, want %v", x, got, want)
		}
	}
}
