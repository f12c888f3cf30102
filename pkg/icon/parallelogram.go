package icon

import "github.com/go-gl/mathgl/mgl64"

// vertices returns the four corners of the parallelogram in drawing order.
func (p Parallelogram) vertices() (o, a, b, d mgl64.Vec3) {
	o = mgl64.Vec3{}
	a = p.V1
	d = p.V2
	b = p.V1.Add(p.V2)
	return o, a, b, d
}

// isUnitAxisPoint reports whether v is exactly one of the three unit axis
// points. The comparison uses exact equality; only edges that literally run
// from the origin to a unit point duplicate a drawn axis arrow.
func isUnitAxisPoint(v mgl64.Vec3) bool {
	return v == mgl64.Vec3{1, 0, 0} || v == mgl64.Vec3{0, 1, 0} || v == mgl64.Vec3{0, 0, 1}
}

// strokedEdges returns the border segments that should be stroked. Edges
// between the origin and a unit axis point coincide with an axis arrow and
// are skipped unless KeepAxisEdges is set.
func (p Parallelogram) strokedEdges() []Segment {
	o, a, b, d := p.vertices()
	edges := []Segment{
		{From: o, To: a},
		{From: a, To: b},
		{From: b, To: d},
		{From: d, To: o},
	}
	if p.KeepAxisEdges {
		return edges
	}

	kept := edges[:0]
	for _, e := range edges {
		onAxis := (e.From == mgl64.Vec3{} && isUnitAxisPoint(e.To)) ||
			(e.To == mgl64.Vec3{} && isUnitAxisPoint(e.From))
		if !onAxis {
			kept = append(kept, e)
		}
	}
	return kept
}
