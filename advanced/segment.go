package advanced

import (
	"math"

	"github.com/golang/geo/r2"
)

// The implicit line through both endpoints.
func (s Segment) ToLine() Line {
	return Line{
		A: s.P1.Y - s.P2.Y,
		B: s.P2.X - s.P1.X,
		C: s.P1.X*s.P2.Y - s.P2.X*s.P1.Y,
	}
}

// Ray from P1 through P2.
func (s Segment) ToRay() Ray {
	return Ray{Origin: s.P1, Theta: s.P1.ThetaTo(s.P2)}
}

// Axis aligned bounding box of the segment.
func (s Segment) Bounds() r2.Rect {
	return r2.RectFromPoints(s.P1.r2(), s.P2.r2())
}

// Segments intersect when each one's endpoints lie strictly on opposite sides
// of the other. This is a pure orientation test, so collinear overlaps are not
// detected, and an endpoint touching the other segment only counts from one
// side.
func (s Segment) Intersects(other Segment) bool {
	return s.P1.LeftTurn(other.P1, other.P2) != s.P2.LeftTurn(other.P1, other.P2) &&
		other.P1.LeftTurn(s.P1, s.P2) != other.P2.LeftTurn(s.P1, s.P2)
}

func (s Segment) Intersection(other Segment) (Point, bool) {
	if !s.Intersects(other) {
		return Point{}, false
	}
	return s.ToLine().Intersection(other.ToLine())
}

// Intersect the line through this segment with l, keeping the result only if
// it falls inside the segment's bounding box. This is what to use when l came
// from a ray or another unbounded source, so there is nothing to straddle.
func (s Segment) LineIntersection(l Line) (Point, bool) {
	p, ok := s.ToLine().Intersection(l)
	if !ok {
		return Point{}, false
	}
	if !s.Bounds().ExpandedByMargin(Epsilon).ContainsPoint(p.r2()) {
		return Point{}, false
	}
	return p, true
}

// Solve p = P1 + (P2-P1)*t separately on each axis, and accept p if both
// solutions agree within Tolerance and t is in [0, 1]. When the segment has no
// extent along an axis, that axis cannot be solved, so p must simply match the
// segment's coordinate there and the other axis decides t.
func (s Segment) ContainsPoint(p Point) bool {
	dx := s.P2.X - s.P1.X
	dy := s.P2.Y - s.P1.Y

	var t float64
	switch {
	case dx == 0 && dy == 0:
		return s.P1.Equals(p)
	case dx == 0:
		if math.Abs(p.X-s.P1.X) >= Tolerance {
			return false
		}
		t = (p.Y - s.P1.Y) / dy
	case dy == 0:
		if math.Abs(p.Y-s.P1.Y) >= Tolerance {
			return false
		}
		t = (p.X - s.P1.X) / dx
	default:
		t = (p.X - s.P1.X) / dx
		ty := (p.Y - s.P1.Y) / dy
		if math.Abs(t-ty) >= Tolerance {
			return false
		}
	}
	return t >= 0 && t <= 1
}

// All crossings of this segment with the polygon's edges.
func (s Segment) PolygonIntersections(poly Polygon) []Point {
	var result []Point
	for _, edge := range poly.Edges() {
		if p, ok := edge.Intersection(s); ok {
			result = append(result, p)
		}
	}
	return result
}

func (s Segment) Length() float64 {
	return s.P1.Distance(s.P2)
}
