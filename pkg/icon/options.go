package icon

import (
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/tkoehlen/axisgen/pkg/errors"
	"github.com/tkoehlen/axisgen/pkg/palette"
)

// Drawing defaults shared by every icon. Sizes are expressed for a 400x400
// canvas and scale linearly with the smaller viewport dimension.
const (
	DefaultSize = 400

	arrowOvershoot = 1.15 // arrow length past the unit point
	labelOffset    = 1.08 // label position as a multiple of the arrow length

	axisLineWidth    = 3.0
	labelFontSize    = 16.0
	originRadius     = 4.0
	originOpacity    = 0.8
	arrowHeadLength  = 12.0
	arrowHeadAngle   = 25.0 // degrees between shaft and each head stroke
	defaultGuideLine = "#222222"

	defaultMainWidth   = 3.0
	defaultAuxWidth    = 2.2
	defaultMainOpacity = 1.0
	defaultAuxOpacity  = 0.6

	defaultFillColor   = "#fff6b3"
	defaultFillOpacity = 0.35
	defaultEdgeColor   = "#b8860b"
	defaultEdgeWidth   = 2.2
	defaultEdgeOpacity = 0.6
)

// dashPattern is the on/off stroke pattern for all dashed lines, in pixels
// on a 400x400 canvas.
var dashPattern = []float64{6, 4}

// Emphasis selects which axes are drawn at full opacity. Axes outside the
// selection are drawn at the configured dim opacity.
type Emphasis string

// Valid emphasis selectors. The zero value draws everything fully opaque.
const (
	EmphasizeAll Emphasis = ""
	EmphasizeX   Emphasis = "x"
	EmphasizeY   Emphasis = "y"
	EmphasizeZ   Emphasis = "z"
	DimAll       Emphasis = "all_dim"
)

// ParseEmphasis normalizes a selector string. Beyond the canonical values it
// accepts "all" as an alias for the empty all-opaque selector, and "dim_all"
// and "none" as aliases for DimAll.
func ParseEmphasis(s string) (Emphasis, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return EmphasizeAll, nil
	case "x":
		return EmphasizeX, nil
	case "y":
		return EmphasizeY, nil
	case "z":
		return EmphasizeZ, nil
	case "all_dim", "dim_all", "none":
		return DimAll, nil
	default:
		return "", errors.New(errors.ErrCodeInvalidSelector, "unknown axis selector: %q (must be x, y, z, all_dim or empty)", s)
	}
}

// Alphas returns the opacity for the X, Y and Z axes given the dim opacity.
func (e Emphasis) Alphas(dim float64) (x, y, z float64) {
	switch e {
	case EmphasizeAll:
		return 1, 1, 1
	case DimAll:
		return dim, dim, dim
	case EmphasizeX:
		return 1, dim, dim
	case EmphasizeY:
		return dim, 1, dim
	case EmphasizeZ:
		return dim, dim, 1
	default:
		// Unnormalized selectors are rejected by Build before this runs.
		return 1, 1, 1
	}
}

// Segment is a straight line between two points in axis-unit space.
type Segment struct {
	From, To mgl64.Vec3
}

// Guide describes a projection or diagonal indicator: one solid line from the
// origin to Target plus dashed auxiliary lines derived from the target's
// coordinates (see DeriveAuxGuides).
type Guide struct {
	Target mgl64.Vec3

	Color       string   // defaults to a near-black gray
	MainWidth   float64  // solid line width, default 3.0
	AuxWidth    float64  // dashed line width, default 2.2
	MainOpacity *float64 // nil means 1.0; 0 is fully transparent
	AuxOpacity  *float64 // nil means 0.6
	MainDashed  bool     // draw the main line dashed instead of solid
}

// withDefaults fills zero-value styling fields.
func (g Guide) withDefaults() Guide {
	if g.Color == "" {
		g.Color = defaultGuideLine
	}
	if g.MainWidth == 0 {
		g.MainWidth = defaultMainWidth
	}
	if g.AuxWidth == 0 {
		g.AuxWidth = defaultAuxWidth
	}
	g.MainOpacity = orOpacity(g.MainOpacity, defaultMainOpacity)
	g.AuxOpacity = orOpacity(g.AuxOpacity, defaultAuxOpacity)
	return g
}

// orOpacity returns p unless it is nil, in which case it points at v. Opacity
// fields are pointers so that an explicit 0 stays distinct from unset.
func orOpacity(p *float64, v float64) *float64 {
	if p != nil {
		return p
	}
	return &v
}

// Parallelogram is the quadrilateral spanned by edge vectors V1 and V2 from
// the origin, with vertices origin, V1, V1+V2, V2. The interior is filled
// translucently and the border is stroked with dashes, except for edges that
// coincide with a drawn axis arrow (suppressed unless KeepAxisEdges is set).
type Parallelogram struct {
	V1, V2 mgl64.Vec3

	FillColor   string   // default pale yellow
	FillOpacity *float64 // nil means 0.35; 0 is fully transparent
	EdgeColor   string   // default dark goldenrod
	EdgeWidth   float64  // default 2.2
	EdgeOpacity *float64 // nil means 0.6

	// KeepAxisEdges strokes origin-to-unit-point edges even though they lie
	// exactly on an axis arrow.
	KeepAxisEdges bool
}

// withDefaults fills zero-value styling fields.
func (p Parallelogram) withDefaults() Parallelogram {
	if p.FillColor == "" {
		p.FillColor = defaultFillColor
	}
	p.FillOpacity = orOpacity(p.FillOpacity, defaultFillOpacity)
	if p.EdgeColor == "" {
		p.EdgeColor = defaultEdgeColor
	}
	if p.EdgeWidth == 0 {
		p.EdgeWidth = defaultEdgeWidth
	}
	p.EdgeOpacity = orOpacity(p.EdgeOpacity, defaultEdgeOpacity)
	return p
}

// Options configures a single icon rendering. The zero value produces the
// standard 400x400 icon with all axes at full opacity.
type Options struct {
	Width  int // canvas width in pixels, default 400
	Height int // canvas height in pixels, default 400

	Emphasis Emphasis // which axes stay fully opaque
	DimAlpha *float64 // opacity for de-emphasized axes; nil means the palette default

	Palette palette.Palette // zero value means palette.Default()

	Guide         *Guide         // optional guide lines
	Parallelogram *Parallelogram // optional shaded face
	ExtraGuides   []Segment      // extra dashed segments, drawn with the guide's auxiliary style
}

// withDefaults fills zero-value fields and normalizes nested specs.
func (o Options) withDefaults() Options {
	if o.Width == 0 {
		o.Width = DefaultSize
	}
	if o.Height == 0 {
		o.Height = DefaultSize
	}
	if (o.Palette == palette.Palette{}) {
		o.Palette = palette.Default()
	}
	o.DimAlpha = orOpacity(o.DimAlpha, o.Palette.DimAlpha)
	if o.Guide != nil {
		g := o.Guide.withDefaults()
		o.Guide = &g
	}
	if o.Parallelogram != nil {
		p := o.Parallelogram.withDefaults()
		o.Parallelogram = &p
	}
	return o
}

// validate rejects options that cannot produce a well-formed scene.
func (o Options) validate() error {
	if o.Width < 0 || o.Height < 0 {
		return errors.New(errors.ErrCodeInvalidSize, "canvas size %dx%d must be positive", o.Width, o.Height)
	}
	if _, err := ParseEmphasis(string(o.Emphasis)); err != nil {
		return err
	}
	if o.DimAlpha != nil && (*o.DimAlpha < 0 || *o.DimAlpha > 1) {
		return errors.New(errors.ErrCodeInvalidPalette, "dim alpha %v must be within [0, 1]", *o.DimAlpha)
	}
	if err := o.Palette.Validate(); err != nil {
		return err
	}
	if o.Guide != nil {
		if _, err := palette.ParseHex(o.Guide.Color); err != nil {
			return err
		}
	}
	if o.Parallelogram != nil {
		if _, err := palette.ParseHex(o.Parallelogram.FillColor); err != nil {
			return err
		}
		if _, err := palette.ParseHex(o.Parallelogram.EdgeColor); err != nil {
			return err
		}
	}
	return nil
}
