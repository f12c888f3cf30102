package icon

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// unitTol is the tolerance used when classifying guide-target coordinates
// as exactly 0 or exactly 1.
const unitTol = 1e-9

// DeriveAuxGuides returns the automatically derived dashed segments for a
// guide target. When exactly two of the target's coordinates equal 1 and the
// remaining one equals 0 (a face diagonal such as (1,1,0)), it returns one
// segment from each corresponding unit axis point to the target. Any other
// target yields no segments.
func DeriveAuxGuides(target mgl64.Vec3) []Segment {
	var ones, zeros []int
	for i := 0; i < 3; i++ {
		switch {
		case math.Abs(target[i]-1) < unitTol:
			ones = append(ones, i)
		case math.Abs(target[i]) < unitTol:
			zeros = append(zeros, i)
		}
	}
	if len(ones) != 2 || len(zeros) != 1 {
		return nil
	}

	segs := make([]Segment, 0, 2)
	for _, axis := range ones {
		var from mgl64.Vec3
		from[axis] = 1
		segs = append(segs, Segment{From: from, To: target})
	}
	return segs
}
