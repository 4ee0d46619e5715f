package advanced

import "math"

func (r Ray) direction() Vector {
	return Vector{X: math.Cos(r.Theta), Y: math.Sin(r.Theta)}
}

// The infinite line the ray lies on.
func (r Ray) ToLine() Line {
	return Segment{r.Origin, r.Origin.Add(r.direction())}.ToLine()
}

// Parameter of p along the ray, assuming p is on the ray's line. The axis the
// ray moves fastest along is used, so a vertical or horizontal ray never
// divides by zero.
func (r Ray) parameter(p Point) float64 {
	d := r.direction()
	if math.Abs(d.X) >= math.Abs(d.Y) {
		return (p.X - r.Origin.X) / d.X
	}
	return (p.Y - r.Origin.Y) / d.Y
}

// Where the ray hits the segment, if it does. Hits on the line behind the
// origin are rejected.
func (r Ray) SegmentIntersection(s Segment) (Point, bool) {
	p, ok := s.LineIntersection(r.ToLine())
	if !ok {
		return Point{}, false
	}
	if r.parameter(p) < -Epsilon {
		return Point{}, false
	}
	return p, true
}

// Every point where the ray hits the polygon's boundary, in edge order.
func (r Ray) PolygonIntersections(poly Polygon) []Point {
	var result []Point
	for _, edge := range poly.Edges() {
		if p, ok := r.SegmentIntersection(edge); ok {
			result = append(result, p)
		}
	}
	return result
}
