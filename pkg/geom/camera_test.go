package geom

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func TestProjectStaysInViewport(t *testing.T) {
	c := NewIconCamera(400, 400)

	// Every point the icons ever draw, including arrow tips and the far
	// corner of the unit cube.
	points := []mgl64.Vec3{
		{0, 0, 0},
		{1.15, 0, 0}, {0, 1.15, 0}, {0, 0, 1.15},
		{1, 1, 0}, {1, 0, 1}, {0, 1, 1},
		{1, 1, 1},
	}
	for _, p := range points {
		got := c.Project(p)
		if got.X() < 0 || got.X() > 400 || got.Y() < 0 || got.Y() > 400 {
			t.Errorf("Project(%v) = %v, outside 400x400 viewport", p, got)
		}
	}
}

func TestProjectOrientation(t *testing.T) {
	c := NewIconCamera(400, 400)

	origin := c.Project(mgl64.Vec3{0, 0, 0})
	x := c.Project(mgl64.Vec3{1, 0, 0})
	y := c.Project(mgl64.Vec3{0, 1, 0})
	z := c.Project(mgl64.Vec3{0, 0, 1})

	// +Z points up on screen (smaller pixel y).
	if z.Y() >= origin.Y() {
		t.Errorf("Z unit point y = %v, want above origin y = %v", z.Y(), origin.Y())
	}
	// The viewer sits above the horizon, so the X unit point drops below
	// the origin while X and Y both extend to the right.
	if x.Y() <= origin.Y() {
		t.Errorf("X unit point y = %v, want below origin y = %v", x.Y(), origin.Y())
	}
	if x.X() <= origin.X() || y.X() <= origin.X() {
		t.Errorf("X (%v) and Y (%v) unit points should sit right of the origin (%v)", x, y, origin)
	}
}

func TestProjectScalesWithViewport(t *testing.T) {
	small := NewIconCamera(400, 400)
	large := NewIconCamera(800, 800)

	p := mgl64.Vec3{1, 1, 0}
	ps := small.Project(p)
	pl := large.Project(p)

	if !mgl64.FloatEqualThreshold(pl.X(), ps.X()*2, 1e-9) ||
		!mgl64.FloatEqualThreshold(pl.Y(), ps.Y()*2, 1e-9) {
		t.Errorf("doubling the viewport should double pixel coordinates: %v vs %v", ps, pl)
	}
}

func TestProjectSegment(t *testing.T) {
	c := NewIconCamera(400, 400)
	from, to := c.ProjectSegment(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1})

	if from == to {
		t.Error("distinct world points projected to the same pixel")
	}
	if from != c.Project(mgl64.Vec3{0, 0, 0}) {
		t.Error("ProjectSegment disagrees with Project for the start point")
	}
}
