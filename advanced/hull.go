package advanced

import (
	"math"
	"sort"
)

// Convex hull by angular sort and a stack scan (Graham scan).
//
// The leftmost point is the pivot (the first one wins a tie). The rest are
// swept counterclockwise around it, starting from straight below. Each point
// pops the top of the hull for as long as it would make the hull turn
// clockwise, then is pushed. Only strict clockwise turns pop, so points lying
// on a hull edge are kept.
//
// Points at the same angle from the pivot are taken nearest first.
//
// Fewer than three points have no hull.
func (ps PointSet) ConvexHull() (Polygon, bool) {
	if len(ps) < 3 {
		return Polygon{}, false
	}

	pivotIndex := 0
	for i, p := range ps {
		if p.X < ps[pivotIndex].X {
			pivotIndex = i
		}
	}
	pivot := ps[pivotIndex]

	sorted := make([]Point, 0, len(ps)-1)
	sorted = append(sorted, ps[:pivotIndex]...)
	sorted = append(sorted, ps[pivotIndex+1:]...)
	sort.SliceStable(sorted, func(i, j int) bool {
		thetaI := sweepAngle(pivot, sorted[i])
		thetaJ := sweepAngle(pivot, sorted[j])
		if thetaI != thetaJ {
			return thetaI < thetaJ
		}
		return pivot.Distance(sorted[i]) < pivot.Distance(sorted[j])
	})

	hull := make(PointStack, 0, len(ps))
	hull.Push(pivot)
	hull.Push(sorted[0])
	for _, p := range sorted[1:] {
		for hull.Len() > 1 && hull.PeekBelow().RightTurn(hull.Peek(), p) {
			hull.Pop()
		}
		hull.Push(p)
	}
	return hull.Polygon(), true
}

// Angle of the pivot as seen from p, normalized into [0, 2π). Since the pivot
// is leftmost, this only ranges over [π/2, 3π/2], and increases as p moves
// counterclockwise around the pivot.
func sweepAngle(pivot, p Point) float64 {
	theta := p.ThetaTo(pivot)
	if theta < 0 {
		theta += 2 * math.Pi
	}
	return theta
}
