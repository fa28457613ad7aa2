package engine

import "github.com/vovakirdan/tui-platformer/internal/core"

// Intersects reports whether box a moving at velA and box b moving at velB
// touch at any time within the next dt seconds.
//
// Boxes that already overlap always intersect. Otherwise the sweep is done
// in a's frame of reference with the relative velocity velB - velA: for each
// axis the interval of time during which the projections overlap is
// intersected with [0, dt]. The boxes collide iff the intervals of both axes
// share at least one instant.
func Intersects(a core.AABB, velA core.Vec2, b core.AABB, velB core.Vec2, dt float64) bool {
	if a.Overlaps(b) {
		return true
	}

	rel := velB.Sub(velA)
	tFirst, tLast := 0.0, dt

	if !sweepAxis(a.Min.X, a.Max.X, b.Min.X, b.Max.X, rel.X, &tFirst, &tLast) {
		return false
	}
	if !sweepAxis(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y, rel.Y, &tFirst, &tLast) {
		return false
	}
	return tFirst <= tLast
}

// sweepAxis narrows [tFirst, tLast] to the times at which [bMin, bMax],
// moving at v, overlaps the fixed [aMin, aMax]. It returns false when the
// projections can never overlap.
func sweepAxis(aMin, aMax, bMin, bMax, v float64, tFirst, tLast *float64) bool {
	switch {
	case v < 0:
		if aMin > bMax { // b is left of a and moving away
			return false
		}
		if aMax < bMin {
			*tFirst = max((aMax-bMin)/v, *tFirst)
		}
		if aMin < bMax {
			*tLast = min((aMin-bMax)/v, *tLast)
		}
	case v > 0:
		if aMax < bMin { // b is right of a and moving away
			return false
		}
		if aMin > bMax {
			*tFirst = max((aMin-bMax)/v, *tFirst)
		}
		if aMax > bMin {
			*tLast = min((aMax-bMin)/v, *tLast)
		}
	default:
		if aMax < bMin || aMin > bMax {
			return false
		}
	}
	return *tFirst <= *tLast
}
