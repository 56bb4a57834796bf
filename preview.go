package gradstops

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"sync"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"

	icolor "github.com/gogpu/gradstops/internal/color"
)

// PreviewOption configures Model.Preview.
type PreviewOption func(*previewOptions)

type previewOptions struct {
	samples   int
	linear    bool
	checker   int
	markers   bool
	labels    bool
	labelSize float64
}

func defaultPreviewOptions() previewOptions {
	return previewOptions{labelSize: 10}
}

// WithSamples sets how many gradient samples are computed before the strip
// is scaled to the output width. Zero samples one per output column.
func WithSamples(n int) PreviewOption {
	return func(o *previewOptions) { o.samples = n }
}

// WithLinearBlend renders the gradient blended in linear-light sRGB
// (see Model.ColorLinear).
func WithLinearBlend(on bool) PreviewOption {
	return func(o *previewOptions) { o.linear = on }
}

// WithCheckerboard draws the gradient over a checkerboard of the given cell
// size so that translucent stops are visible. Zero disables it.
func WithCheckerboard(cell int) PreviewOption {
	return func(o *previewOptions) { o.checker = cell }
}

// WithMarkers draws a tick for every stop. Selected stops get a wider tick
// and the current stop spans the full height.
func WithMarkers(on bool) PreviewOption {
	return func(o *previewOptions) { o.markers = on }
}

// WithLabels prints each stop's position above its tick, in points.
func WithLabels(size float64) PreviewOption {
	return func(o *previewOptions) {
		o.labels = size > 0
		if size > 0 {
			o.labelSize = size
		}
	}
}

// Preview renders the gradient as a horizontal strip of width x height.
// Column x shows the color at x/(width-1).
func (m *Model) Preview(width, height int, opts ...PreviewOption) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("gradstops: invalid preview size %dx%d", width, height)
	}
	o := defaultPreviewOptions()
	for _, opt := range opts {
		opt(&o)
	}
	samples := o.samples
	if samples <= 0 {
		samples = width
	}

	strip := image.NewNRGBA(image.Rect(0, 0, samples, 1))
	for x := 0; x < samples; x++ {
		strip.SetNRGBA(x, 0, m.sample(samplePos(x, samples), o.linear))
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	op := xdraw.Src
	if o.checker > 0 {
		fillChecker(dst, o.checker)
		op = xdraw.Over
	}
	var scaler xdraw.Scaler = xdraw.ApproxBiLinear
	if samples == width {
		scaler = xdraw.NearestNeighbor
	}
	scaler.Scale(dst, dst.Bounds(), strip, strip.Bounds(), op, nil)

	if o.markers {
		m.drawMarkers(dst)
	}
	if o.labels {
		if err := m.drawLabels(dst, o.labelSize); err != nil {
			return nil, err
		}
	}
	Logger().Debug("gradstops: preview rendered", "width", width, "height", height, "samples", samples)
	return dst, nil
}

// samplePos maps column x of n to a position in [0, 1].
func samplePos(x, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(x) / float64(n-1)
}

func (m *Model) sample(pos float64, linear bool) color.NRGBA {
	if !linear {
		return m.Color(pos).NRGBA()
	}
	r, g, b, a := icolor.LinearToSRGB8Color(m.linearAt(pos))
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

var (
	checkerLight = image.NewUniform(color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff})
	checkerDark  = image.NewUniform(color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff})
)

func fillChecker(dst *image.NRGBA, cell int) {
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += cell {
		for x := b.Min.X; x < b.Max.X; x += cell {
			src := checkerLight
			if ((x/cell)+(y/cell))%2 == 1 {
				src = checkerDark
			}
			r := image.Rect(x, y, x+cell, y+cell).Intersect(b)
			xdraw.Draw(dst, r, src, image.Point{}, xdraw.Src)
		}
	}
}

// contrast picks black or white, whichever reads better over c.
func contrast(c RGBA) *image.Uniform {
	lum := 0.2126*c.R + 0.7152*c.G + 0.0722*c.B
	if c.A < 0.5 || lum > 0.5 {
		return image.NewUniform(color.Black)
	}
	return image.NewUniform(color.White)
}

func (m *Model) drawMarkers(dst *image.NRGBA) {
	b := dst.Bounds()
	w, h := b.Dx(), b.Dy()
	for _, s := range m.order {
		x := int(s.position*float64(w-1) + 0.5)
		top := h - max(h/4, 1)
		if s == m.current {
			top = 0
		}
		half := 0
		if m.IsSelected(s) {
			half = 1
		}
		r := image.Rect(x-half, top, x+half+1, h).Intersect(b)
		xdraw.Draw(dst, r, contrast(s.color), image.Point{}, xdraw.Src)
	}
}

var (
	labelFontOnce sync.Once
	labelFont     *opentype.Font
	labelFontErr  error
)

func parsedLabelFont() (*opentype.Font, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = opentype.Parse(goregular.TTF)
	})
	return labelFont, labelFontErr
}

func (m *Model) drawLabels(dst *image.NRGBA, size float64) error {
	f, err := parsedLabelFont()
	if err != nil {
		return fmt.Errorf("gradstops: parse label font: %w", err)
	}
	face, err := opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return fmt.Errorf("gradstops: create label face: %w", err)
	}
	defer func() {
		_ = face.Close()
	}()

	b := dst.Bounds()
	w := b.Dx()
	ascent := face.Metrics().Ascent
	for _, s := range m.order {
		text := strconv.FormatFloat(s.position, 'f', -1, 64)
		adv := font.MeasureString(face, text)
		x := fixed.I(int(s.position*float64(w-1) + 0.5))
		x -= adv / 2
		x = min(max(x, 0), fixed.I(w)-adv)
		d := &font.Drawer{
			Dst:  dst,
			Src:  contrast(s.color),
			Face: face,
			Dot:  fixed.Point26_6{X: x, Y: ascent + fixed.I(1)},
		}
		d.DrawString(text)
	}
	return nil
}
