package gradstops

import "github.com/gogpu/gradstops/internal/color"

// Color returns the gradient color at pos.
//
// An empty model yields the gray (pos, pos, pos, 1), which editors use to
// preview an empty gradient. A stop exactly at pos yields its color. Between
// two stops each channel is interpolated linearly; outside the stop range the
// nearest end stop's color is returned unchanged.
func (m *Model) Color(pos float64) RGBA {
	lo, hi, t, ok := m.bracket(pos)
	if !ok {
		return RGBA{R: pos, G: pos, B: pos, A: 1}
	}
	if hi == nil {
		return lo.color
	}
	return lo.color.Lerp(hi.color, t)
}

// ColorLinear is like Color but blends in linear-light sRGB, which avoids the
// dark band that straight interpolation produces between saturated colors.
func (m *Model) ColorLinear(pos float64) RGBA {
	lo, hi, t, ok := m.bracket(pos)
	if !ok {
		return RGBA{R: pos, G: pos, B: pos, A: 1}
	}
	if hi == nil {
		return lo.color
	}
	return fromF32(color.LinearToSRGBColor(lerpLinear(lo.color, hi.color, t)))
}

// linearAt returns the linear-light color at pos, blending in linear space.
func (m *Model) linearAt(pos float64) color.ColorF32 {
	lo, hi, t, ok := m.bracket(pos)
	switch {
	case !ok:
		return color.SRGBToLinearColor(toF32(Gray(pos)))
	case hi == nil:
		return color.SRGBToLinearColor(toF32(lo.color))
	}
	return lerpLinear(lo.color, hi.color, t)
}

// bracket locates the stops around pos. hi is nil when a single stop
// decides the color (exact hit or outside the range); ok is false when the
// model is empty.
func (m *Model) bracket(pos float64) (lo, hi *Stop, t float64, ok bool) {
	n := len(m.order)
	if n == 0 {
		return nil, nil, 0, false
	}
	i, found := m.search(pos)
	switch {
	case found:
		return m.order[i], nil, 0, true
	case i == 0:
		return m.order[0], nil, 0, true
	case i >= n:
		return m.order[n-1], nil, 0, true
	}
	lo, hi = m.order[i-1], m.order[i]
	t = (pos - lo.position) / (hi.position - lo.position)
	return lo, hi, t, true
}

// lerpLinear converts both colors to linear light and interpolates them.
func lerpLinear(c1, c2 RGBA, t float64) color.ColorF32 {
	l1 := color.SRGBToLinearColor(toF32(c1))
	l2 := color.SRGBToLinearColor(toF32(c2))
	return color.Lerp(l1, l2, float32(t))
}

func toF32(c RGBA) color.ColorF32 {
	return color.ColorF32{R: float32(c.R), G: float32(c.G), B: float32(c.B), A: float32(c.A)}
}

func fromF32(c color.ColorF32) RGBA {
	return RGBA{R: float64(c.R), G: float64(c.G), B: float64(c.B), A: float64(c.A)}
}
