// Package icon builds 3D coordinate-axis icons as format-independent scenes.
//
// A scene is the projected 2D form of one icon: colored axis arrows with
// labels and an origin marker, plus optional guide lines and one optional
// shaded parallelogram. Scenes carry no pixels and no markup; the sinks in
// pkg/render/sink serialize the same scene to SVG or PNG, which keeps the two
// outputs geometrically identical by construction.
package icon

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tkoehlen/axisgen/pkg/geom"
)

// Point is a pixel coordinate, y growing downward.
type Point struct {
	X, Y float64
}

// Line is a stroked segment. A nil Dash means solid.
type Line struct {
	From, To Point
	Color    string
	Width    float64
	Opacity  float64
	Dash     []float64
}

// Polygon is a filled shape without a stroke of its own.
type Polygon struct {
	Points  []Point
	Fill    string
	Opacity float64
}

// Label is a piece of bold centered text.
type Label struct {
	At      Point
	Text    string
	Color   string
	Size    float64
	Opacity float64
}

// Marker is a filled dot.
type Marker struct {
	At      Point
	Radius  float64
	Color   string
	Opacity float64
}

// Scene is one icon ready for serialization. Sinks must paint the slices in
// declaration order: polygons first, then lines, markers and labels.
type Scene struct {
	Width, Height int

	Polygons []Polygon
	Lines    []Line
	Markers  []Marker
	Labels   []Label
}

// Build projects the icon described by o into a 2D scene.
func Build(o Options) (*Scene, error) {
	o = o.withDefaults()
	if err := o.validate(); err != nil {
		return nil, err
	}
	em, err := ParseEmphasis(string(o.Emphasis))
	if err != nil {
		return nil, err
	}
	o.Emphasis = em

	b := &builder{
		opts:  o,
		cam:   geom.NewIconCamera(float64(o.Width), float64(o.Height)),
		scale: math.Min(float64(o.Width), float64(o.Height)) / DefaultSize,
		scene: &Scene{Width: o.Width, Height: o.Height},
	}

	b.axes()
	b.origin()
	b.guides()
	b.parallelogram()
	return b.scene, nil
}

// builder accumulates primitives for one scene.
type builder struct {
	opts  Options
	cam   *geom.Camera
	scale float64 // stroke/font scale factor relative to a 400px canvas
	scene *Scene
}

// project maps a world point to a scene point.
func (b *builder) project(v mgl64.Vec3) Point {
	p := b.cam.Project(v)
	return Point{X: p.X(), Y: p.Y()}
}

// line appends a stroked segment between two world points. Widths and dash
// lengths are given in 400px-canvas units and scaled to the viewport.
func (b *builder) line(from, to mgl64.Vec3, color string, width, opacity float64, dash []float64) {
	b.scene.Lines = append(b.scene.Lines, Line{
		From:    b.project(from),
		To:      b.project(to),
		Color:   color,
		Width:   width * b.scale,
		Opacity: opacity,
		Dash:    b.dash(dash),
	})
}

// dash scales a dash pattern to the viewport, keeping nil nil.
func (b *builder) dash(pattern []float64) []float64 {
	if pattern == nil {
		return nil
	}
	scaled := make([]float64, len(pattern))
	for i, v := range pattern {
		scaled[i] = v * b.scale
	}
	return scaled
}

// axes draws the three arrows and their labels with per-axis opacity.
func (b *builder) axes() {
	ax, ay, az := b.opts.Emphasis.Alphas(*b.opts.DimAlpha)
	pal := b.opts.Palette

	b.arrow(mgl64.Vec3{1, 0, 0}, "X", pal.AxisX, ax)
	b.arrow(mgl64.Vec3{0, 1, 0}, "Y", pal.AxisY, ay)
	b.arrow(mgl64.Vec3{0, 0, 1}, "Z", pal.AxisZ, az)
}

// arrow draws one axis: shaft past the unit point, a two-stroke head, and the
// bold label just beyond the tip.
func (b *builder) arrow(dir mgl64.Vec3, label, color string, alpha float64) {
	tip := dir.Mul(arrowOvershoot)
	b.line(mgl64.Vec3{}, tip, color, axisLineWidth, alpha, nil)

	// The head is drawn in screen space so its size is viewport-relative,
	// not foreshortened by the projection.
	tip2 := b.project(tip)
	base2 := b.project(mgl64.Vec3{})
	dx, dy := tip2.X-base2.X, tip2.Y-base2.Y
	norm := math.Hypot(dx, dy)
	if norm > 0 {
		dx, dy = dx/norm, dy/norm
		spread := arrowHeadAngle * math.Pi / 180
		length := arrowHeadLength * b.scale
		for _, sign := range []float64{1, -1} {
			sin, cos := math.Sincos(spread * sign)
			// Rotate the reversed shaft direction by ±spread.
			hx := -dx*cos + dy*sin
			hy := -dx*sin - dy*cos
			b.scene.Lines = append(b.scene.Lines, Line{
				From:    tip2,
				To:      Point{X: tip2.X + hx*length, Y: tip2.Y + hy*length},
				Color:   color,
				Width:   axisLineWidth * b.scale,
				Opacity: alpha,
			})
		}
	}

	b.scene.Labels = append(b.scene.Labels, Label{
		At:      b.project(dir.Mul(arrowOvershoot * labelOffset)),
		Text:    label,
		Color:   color,
		Size:    labelFontSize * b.scale,
		Opacity: alpha,
	})
}

// origin draws the black dot at (0,0,0).
func (b *builder) origin() {
	b.scene.Markers = append(b.scene.Markers, Marker{
		At:      b.project(mgl64.Vec3{}),
		Radius:  originRadius * b.scale,
		Color:   b.opts.Palette.Origin,
		Opacity: originOpacity,
	})
}

// guides draws the solid main guide, any derived dashed face-diagonal lines,
// and the caller's extra segments in the auxiliary style. Extra segments
// render even without a main guide, using the default guide styling.
func (b *builder) guides() {
	g := b.opts.Guide
	if g != nil {
		mainDash := []float64(nil)
		if g.MainDashed {
			mainDash = dashPattern
		}
		b.line(mgl64.Vec3{}, g.Target, g.Color, g.MainWidth, *g.MainOpacity, mainDash)

		for _, seg := range DeriveAuxGuides(g.Target) {
			b.line(seg.From, seg.To, g.Color, g.AuxWidth, *g.AuxOpacity, dashPattern)
		}
	}

	if len(b.opts.ExtraGuides) == 0 {
		return
	}
	style := Guide{}.withDefaults()
	if g != nil {
		style = *g
	}
	for _, seg := range b.opts.ExtraGuides {
		b.line(seg.From, seg.To, style.Color, style.AuxWidth, *style.AuxOpacity, dashPattern)
	}
}

// parallelogram draws the translucent face and its dashed border.
func (b *builder) parallelogram() {
	p := b.opts.Parallelogram
	if p == nil {
		return
	}

	o, a, bb, d := p.vertices()
	b.scene.Polygons = append(b.scene.Polygons, Polygon{
		Points:  []Point{b.project(o), b.project(a), b.project(bb), b.project(d)},
		Fill:    p.FillColor,
		Opacity: *p.FillOpacity,
	})

	for _, e := range p.strokedEdges() {
		b.line(e.From, e.To, p.EdgeColor, p.EdgeWidth, *p.EdgeOpacity, dashPattern)
	}
}
