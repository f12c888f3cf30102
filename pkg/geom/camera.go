// Package geom provides the 3D camera used to project axis-icon geometry
// onto a 2D canvas.
//
// The camera mimics a CAD-style orientation triad view: the viewer sits
// slightly above the horizon (elevation 24 degrees) and to the front-right of
// the unit cube (azimuth -35 degrees), with +Z up and a mild perspective.
// World coordinates live in axis units; screen coordinates are pixels with
// the origin in the top-left corner and y growing downward.
package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Framing constants shared by every icon. The box extends a little past the
// arrow overshoot so tips and labels never clip.
const (
	BoxMin = -0.1
	BoxMax = 1.35

	defaultElevation = 24.0  // degrees above the xy-plane
	defaultAzimuth   = -35.0 // degrees around +Z, counterclockwise from +X
	defaultFOV       = 30.0  // vertical field of view, degrees

	// distanceMargin backs the eye off slightly beyond the minimum distance
	// at which the bounding sphere fills the field of view.
	distanceMargin = 1.1
)

// Camera projects world-space points into a pixel viewport.
type Camera struct {
	Elevation float64 // degrees above the xy-plane
	Azimuth   float64 // degrees around +Z, counterclockwise from +X
	FOV       float64 // vertical field of view in degrees
	Width     float64 // viewport width in pixels
	Height    float64 // viewport height in pixels

	mvp mgl64.Mat4
}

// NewIconCamera returns the standard icon camera for the given viewport size.
func NewIconCamera(width, height float64) *Camera {
	c := &Camera{
		Elevation: defaultElevation,
		Azimuth:   defaultAzimuth,
		FOV:       defaultFOV,
		Width:     width,
		Height:    height,
	}
	c.rebuild()
	return c
}

// rebuild computes the view-projection matrix from the camera parameters.
func (c *Camera) rebuild() {
	center := mgl64.Vec3{(BoxMin + BoxMax) / 2, (BoxMin + BoxMax) / 2, (BoxMin + BoxMax) / 2}
	halfDiag := (BoxMax - BoxMin) / 2 * math.Sqrt(3)

	fov := mgl64.DegToRad(c.FOV)
	dist := halfDiag / math.Tan(fov/2) * distanceMargin

	el := mgl64.DegToRad(c.Elevation)
	az := mgl64.DegToRad(c.Azimuth)
	dir := mgl64.Vec3{
		math.Cos(el) * math.Cos(az),
		math.Cos(el) * math.Sin(az),
		math.Sin(el),
	}
	eye := center.Add(dir.Mul(dist))

	view := mgl64.LookAtV(eye, center, mgl64.Vec3{0, 0, 1})
	proj := mgl64.Perspective(fov, c.Width/c.Height, 0.1, dist*4)
	c.mvp = proj.Mul4(view)
}

// Project maps a world-space point to pixel coordinates.
func (c *Camera) Project(p mgl64.Vec3) mgl64.Vec2 {
	clip := c.mvp.Mul4x1(p.Vec4(1))
	ndcX := clip.X() / clip.W()
	ndcY := clip.Y() / clip.W()
	return mgl64.Vec2{
		(ndcX + 1) / 2 * c.Width,
		(1 - ndcY) / 2 * c.Height,
	}
}

// ProjectSegment maps both endpoints of a world-space segment.
func (c *Camera) ProjectSegment(from, to mgl64.Vec3) (mgl64.Vec2, mgl64.Vec2) {
	return c.Project(from), c.Project(to)
}
