package sink

import (
	"bytes"
	"encoding/xml"
	"fmt"

	"github.com/tkoehlen/axisgen/pkg/icon"
)

// labelFontFamily matches the bold sans face used by the PNG sink closely
// enough that labels land in the same spot in both outputs.
const labelFontFamily = "'Go', 'Helvetica Neue', Helvetica, Arial, sans-serif"

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
}

// WithSVGBackground fills the canvas with a solid color instead of leaving
// it transparent.
func WithSVGBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

// RenderSVG serializes a scene as standalone SVG markup. The background is
// transparent unless overridden.
func RenderSVG(s *icon.Scene, opts ...SVGOption) []byte {
	var r svgRenderer
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n",
		s.Width, s.Height, s.Width, s.Height)

	if r.background != "" {
		fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(r.background))
	}

	for _, p := range s.Polygons {
		renderPolygon(&buf, p)
	}
	for _, l := range s.Lines {
		renderLine(&buf, l)
	}
	for _, m := range s.Markers {
		fmt.Fprintf(&buf, `  <circle cx="%.2f" cy="%.2f" r="%.2f" fill="%s" fill-opacity="%s"/>`+"\n",
			m.At.X, m.At.Y, m.Radius, escapeXML(m.Color), opacity(m.Opacity))
	}
	for _, l := range s.Labels {
		fmt.Fprintf(&buf, `  <text x="%.2f" y="%.2f" fill="%s" fill-opacity="%s" font-size="%.2f" font-weight="bold" font-family=%q text-anchor="middle" dominant-baseline="central">%s</text>`+"\n",
			l.At.X, l.At.Y, escapeXML(l.Color), opacity(l.Opacity), l.Size, labelFontFamily, escapeXML(l.Text))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderPolygon(buf *bytes.Buffer, p icon.Polygon) {
	buf.WriteString(`  <polygon points="`)
	for i, pt := range p.Points {
		if i > 0 {
			buf.WriteByte(' ')
		}
		fmt.Fprintf(buf, "%.2f,%.2f", pt.X, pt.Y)
	}
	fmt.Fprintf(buf, `" fill="%s" fill-opacity="%s" stroke="none"/>`+"\n", escapeXML(p.Fill), opacity(p.Opacity))
}

func renderLine(buf *bytes.Buffer, l icon.Line) {
	fmt.Fprintf(buf, `  <line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="%.2f" stroke-opacity="%s" stroke-linecap="round"`,
		l.From.X, l.From.Y, l.To.X, l.To.Y, escapeXML(l.Color), l.Width, opacity(l.Opacity))
	if len(l.Dash) > 0 {
		buf.WriteString(` stroke-dasharray="`)
		for i, d := range l.Dash {
			if i > 0 {
				buf.WriteByte(' ')
			}
			fmt.Fprintf(buf, "%.2f", d)
		}
		buf.WriteByte('"')
	}
	buf.WriteString("/>\n")
}

// opacity formats an opacity value, trimming the common 1.0 case.
func opacity(v float64) string {
	if v >= 1 {
		return "1"
	}
	return fmt.Sprintf("%.2f", v)
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
