// Package grid composes previously rendered icons into one reference sheet.
//
// The composer lays a fixed ordered list of raster icons into a 4x4 grid on a
// light-gray background. Tiles that cannot be loaded leave their slot blank
// instead of failing the composite, so a partial icon set still produces a
// usable sheet. Both a PNG and an SVG composite are supported; the SVG embeds
// the tile rasters as base64 data URIs.
package grid

import (
	"bytes"
	"encoding/base64"
	"encoding/xml"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/disintegration/imaging"

	"github.com/tkoehlen/axisgen/pkg/errors"
	"github.com/tkoehlen/axisgen/pkg/palette"
)

// BaseName is the composite's output base name.
const BaseName = "axis_reference_grid"

// Grid shape. The 13 stock tiles fill rows one through four with the last
// three cells left blank.
const (
	Columns = 4
	Rows    = 4

	defaultCellSize = 300
	// paddingRatio is the blank border inside each cell, per side.
	paddingRatio = 0.04
)

// DefaultTiles returns the base names of the 13 stock icons in sheet order:
// the focus row, the face-diagonal row, the plane row, and the composite
// plane row.
func DefaultTiles() []string {
	return []string{
		"axis_focus_x", "axis_focus_y", "axis_focus_z", "axis_diag_111",
		"axis_dim_011", "axis_dim_101", "axis_dim_110",
		"axis_plane_001_010", "axis_plane_010_100", "axis_plane_100_001",
		"axis_plane_011_100", "axis_plane_101_010", "axis_plane_110_001",
	}
}

// Composer tiles rendered icons from Dir into composite images.
type Composer struct {
	Dir        string      // directory holding <name>.png tiles
	CellSize   int         // square cell edge in pixels, default 300
	Background string      // background color, default from palette
	Logger     *log.Logger // optional; log.Default() when nil
}

func (c *Composer) cellSize() int {
	if c.CellSize > 0 {
		return c.CellSize
	}
	return defaultCellSize
}

func (c *Composer) background() string {
	if c.Background != "" {
		return c.Background
	}
	return palette.Default().Background
}

func (c *Composer) logger() *log.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return log.Default()
}

// cellRect returns the inner placement box for tile index i.
func (c *Composer) cellRect(i int) image.Rectangle {
	cell := c.cellSize()
	pad := int(float64(cell) * paddingRatio)
	col, row := i%Columns, i/Columns
	x0, y0 := col*cell+pad, row*cell+pad
	return image.Rect(x0, y0, x0+cell-2*pad, y0+cell-2*pad)
}

// ComposePNG renders the raster composite. Tiles that fail to load are
// skipped with a debug log and their slot stays blank.
func (c *Composer) ComposePNG(tiles []string) ([]byte, error) {
	bg, err := palette.ParseHex(c.background())
	if err != nil {
		return nil, err
	}

	cell := c.cellSize()
	canvas := imaging.New(Columns*cell, Rows*cell, bg)

	for i, name := range tiles {
		if i >= Columns*Rows {
			break
		}
		path := filepath.Join(c.Dir, name+".png")
		img, err := imaging.Open(path)
		if err != nil {
			c.logger().Debugf("Skipping tile %s: %v", path, err)
			continue
		}
		box := c.cellRect(i)
		fitted := imaging.Fit(img, box.Dx(), box.Dy(), imaging.Lanczos)
		offset := image.Pt(
			box.Min.X+(box.Dx()-fitted.Bounds().Dx())/2,
			box.Min.Y+(box.Dy()-fitted.Bounds().Dy())/2,
		)
		canvas = imaging.Paste(canvas, fitted, offset)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.PNG); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEncodePNG, err, "encoding composite")
	}
	return buf.Bytes(), nil
}

// ComposeSVG renders the vector composite. Each tile raster is embedded as a
// base64 data URI so the sheet stays self-contained. Missing tiles leave
// their slot blank, matching ComposePNG.
func (c *Composer) ComposeSVG(tiles []string) ([]byte, error) {
	if _, err := palette.ParseHex(c.background()); err != nil {
		return nil, err
	}

	cell := c.cellSize()
	w, h := Columns*cell, Rows*cell

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`+"\n", w, h, w, h)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", escapeXML(c.background()))

	for i, name := range tiles {
		if i >= Columns*Rows {
			break
		}
		path := filepath.Join(c.Dir, name+".png")
		data, err := os.ReadFile(path)
		if err != nil {
			c.logger().Debugf("Skipping tile %s: %v", path, err)
			continue
		}
		if _, err := png.DecodeConfig(bytes.NewReader(data)); err != nil {
			c.logger().Debugf("Skipping tile %s: %v", path, err)
			continue
		}
		box := c.cellRect(i)
		fmt.Fprintf(&buf, `  <image x="%d" y="%d" width="%d" height="%d" preserveAspectRatio="xMidYMid meet" href="data:image/png;base64,%s"/>`+"\n",
			box.Min.X, box.Min.Y, box.Dx(), box.Dy(), base64.StdEncoding.EncodeToString(data))
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes(), nil
}

func escapeXML(s string) string {
	var buf bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}
