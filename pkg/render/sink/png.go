package sink

import (
	"bytes"
	"image/png"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"

	"github.com/tkoehlen/axisgen/pkg/errors"
	"github.com/tkoehlen/axisgen/pkg/icon"
	"github.com/tkoehlen/axisgen/pkg/palette"
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale      float64
	background string
}

// WithScale multiplies the output resolution (2.0 doubles both dimensions).
// Stroke widths, dash lengths and label sizes scale along with the geometry.
func WithScale(s float64) PNGOption {
	return func(r *pngRenderer) { r.scale = s }
}

// WithPNGBackground fills the canvas with a solid color instead of leaving
// it transparent.
func WithPNGBackground(color string) PNGOption {
	return func(r *pngRenderer) { r.background = color }
}

// RenderPNG rasterizes a scene into PNG bytes. The background is transparent
// unless overridden.
func RenderPNG(s *icon.Scene, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1.0}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidSize, "png scale %v must be positive", r.scale)
	}

	dc := gg.NewContext(int(float64(s.Width)*r.scale), int(float64(s.Height)*r.scale))
	if r.background != "" {
		bg, err := palette.ParseHex(r.background)
		if err != nil {
			return nil, err
		}
		dc.SetColor(bg)
		dc.Clear()
	}

	if err := r.paint(dc, s); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, dc.Image()); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodePNG, err, "encoding %dx%d canvas", s.Width, s.Height)
	}
	return buf.Bytes(), nil
}

// paint draws the scene in its canonical order: polygons, lines, markers,
// labels.
func (r *pngRenderer) paint(dc *gg.Context, s *icon.Scene) error {
	for _, p := range s.Polygons {
		if err := r.setColor(dc, p.Fill, p.Opacity); err != nil {
			return err
		}
		for i, pt := range p.Points {
			if i == 0 {
				dc.MoveTo(pt.X*r.scale, pt.Y*r.scale)
			} else {
				dc.LineTo(pt.X*r.scale, pt.Y*r.scale)
			}
		}
		dc.ClosePath()
		dc.Fill()
	}

	for _, l := range s.Lines {
		if err := r.setColor(dc, l.Color, l.Opacity); err != nil {
			return err
		}
		dc.SetLineWidth(l.Width * r.scale)
		dc.SetLineCap(gg.LineCapRound)
		dash := make([]float64, len(l.Dash))
		for i, d := range l.Dash {
			dash[i] = d * r.scale
		}
		dc.SetDash(dash...)
		dc.DrawLine(l.From.X*r.scale, l.From.Y*r.scale, l.To.X*r.scale, l.To.Y*r.scale)
		dc.Stroke()
	}
	dc.SetDash()

	for _, m := range s.Markers {
		if err := r.setColor(dc, m.Color, m.Opacity); err != nil {
			return err
		}
		dc.DrawCircle(m.At.X*r.scale, m.At.Y*r.scale, m.Radius*r.scale)
		dc.Fill()
	}

	for _, l := range s.Labels {
		face, err := labelFace(l.Size * r.scale)
		if err != nil {
			return err
		}
		dc.SetFontFace(face)
		if err := r.setColor(dc, l.Color, l.Opacity); err != nil {
			return err
		}
		dc.DrawStringAnchored(l.Text, l.At.X*r.scale, l.At.Y*r.scale, 0.5, 0.5)
	}
	return nil
}

func (r *pngRenderer) setColor(dc *gg.Context, hex string, alpha float64) error {
	c, err := palette.ParseHex(hex)
	if err != nil {
		return err
	}
	dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, alpha)
	return nil
}

// Labels use the bold face of the Go font family, embedded via
// golang.org/x/image/font/gofont so rendering needs no font files on disk.
var (
	labelFontOnce sync.Once
	labelFont     *truetype.Font
	labelFontErr  error
)

func labelFace(points float64) (font.Face, error) {
	labelFontOnce.Do(func() {
		labelFont, labelFontErr = truetype.Parse(gobold.TTF)
	})
	if labelFontErr != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, labelFontErr, "parsing embedded label font")
	}
	return truetype.NewFace(labelFont, &truetype.Options{Size: points}), nil
}
