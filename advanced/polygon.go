package advanced

import (
	"github.com/golang/geo/r2"
)

// Build a polygon from its vertices. The slice is copied.
func NewPolygon(points ...Point) Polygon {
	return Polygon{points: append([]Point(nil), points...)}
}

// Copy of the vertex list.
func (poly Polygon) Points() []Point {
	return append([]Point(nil), poly.points...)
}

func (poly Polygon) Len() int {
	return len(poly.points)
}

func (poly Polygon) Vertex(i int) Point {
	return poly.points[CircularIndex(i, len(poly.points))]
}

// Boundary segments, from each vertex to the next, wrapping around.
func (poly Polygon) Edges() []Segment {
	edges := make([]Segment, len(poly.points))
	for i, p := range poly.points {
		edges[i] = Segment{p, poly.points[CircularIndex(i+1, len(poly.points))]}
	}
	return edges
}

// Crossings of s with the polygon's edges, using the straddle test.
func (poly Polygon) SegmentIntersections(s Segment) []Point {
	var result []Point
	for _, edge := range poly.Edges() {
		if p, ok := edge.Intersection(s); ok {
			result = append(result, p)
		}
	}
	return result
}

// Crossings of the infinite line l with the polygon's edges, each clamped to
// its own edge.
func (poly Polygon) LineIntersections(l Line) []Point {
	var result []Point
	for _, edge := range poly.Edges() {
		if p, ok := edge.LineIntersection(l); ok {
			result = append(result, p)
		}
	}
	return result
}

// Even-odd point in polygon test. A vertical line is cast through p and its
// crossings with the edges above p are counted.
//
// An edge only counts when it spans p's x coordinate half open, with its left
// end at or left of p and its right end strictly right of it (or the mirror
// image). Vertical edges therefore never count, and a vertex the line passes
// through is counted once, by one of its two edges. One consequence is that
// points on a left side boundary are inside and points on a right side
// boundary are outside.
//
// A nil point is an unpositioned query and is never contained.
func (poly Polygon) ContainsPoint(p *Point) bool {
	if p == nil {
		return false
	}
	vertical := Segment{*p, Point{X: p.X, Y: p.Y + 1}}.ToLine()
	crossingCount := 0
	for _, edge := range poly.Edges() {
		if (edge.P1.X > p.X) == (edge.P2.X > p.X) {
			continue
		}
		crossing, ok := edge.LineIntersection(vertical)
		if ok && crossing.Y > p.Y {
			crossingCount++
		}
	}
	return crossingCount%2 == 1
}

// Shoelace area. Positive for counterclockwise polygons.
func (poly Polygon) SignedArea() float64 {
	var sum float64
	for _, edge := range poly.Edges() {
		sum += edge.P1.Cross(edge.P2)
	}
	return sum / 2
}

func (poly Polygon) IsCCW() bool {
	return poly.SignedArea() > 0
}

func (poly Polygon) IsCW() bool {
	return poly.SignedArea() < 0
}

func (poly Polygon) Reverse() Polygon {
	newPoly := Polygon{points: make([]Point, 0, len(poly.points))}
	for i := len(poly.points) - 1; i >= 0; i-- {
		newPoly.points = append(newPoly.points, poly.points[i])
	}
	return newPoly
}

func (poly Polygon) Bounds() r2.Rect {
	bounds := r2.EmptyRect()
	for _, p := range poly.points {
		bounds = bounds.AddPoint(p.r2())
	}
	return bounds
}

// Number of vertices that were synthesized rather than taken from the input.
func (poly Polygon) SteinerCount() int {
	count := 0
	for _, p := range poly.points {
		if p.IsSteiner {
			count++
		}
	}
	return count
}

// Polygons marshal as their vertex list.
func (poly Polygon) MarshalYAML() (interface{}, error) {
	return poly.points, nil
}
