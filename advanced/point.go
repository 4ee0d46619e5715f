package advanced

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/logrusorgru/aurora"
	"github.com/osuushi/sightline/internal/dbg"
)

func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

func (p Point) Subtract(q Point) Point {
	return p.Add(q.ScalarMult(-1))
}

func (p Point) ScalarMult(scalar float64) Point {
	return Point{X: p.X * scalar, Y: p.Y * scalar}
}

func (p Point) Dot(q Point) float64 {
	return p.X*q.X + p.Y*q.Y
}

// 2D cross product. Positive when q is counterclockwise from p.
func (p Point) Cross(q Point) float64 {
	return p.X*q.Y - q.X*p.Y
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// Bearing from p towards q, in (-π, π].
func (p Point) ThetaTo(q Point) float64 {
	return math.Atan2(q.Y-p.Y, q.X-p.X)
}

// Turns are measured with the y axis pointing up. Walking p -> p2 -> p3, the
// sign of the cross product of the two edges decides the turn. Collinear
// points are neither a left nor a right turn.
func (p Point) turn(p2, p3 Point) float64 {
	return p2.Subtract(p).Cross(p3.Subtract(p2))
}

// Counterclockwise turn at p2.
func (p Point) LeftTurn(p2, p3 Point) bool {
	return p.turn(p2, p3) > 0
}

// Clockwise turn at p2.
func (p Point) RightTurn(p2, p3 Point) bool {
	return p.turn(p2, p3) < 0
}

// Coordinates agree within Tolerance. IsSteiner is ignored.
func (p Point) Equals(q Point) bool {
	return math.Abs(p.X-q.X) < Tolerance && math.Abs(p.Y-q.Y) < Tolerance
}

// Report whether q is visible from p inside poly: either the segment p->q
// crosses no edge at all, or the crossing nearest to p is q itself.
func (p Point) CanSee(q Point, poly Polygon) bool {
	crossings := Segment{p, q}.PolygonIntersections(poly)
	if len(crossings) == 0 {
		return true
	}
	nearest := crossings[0]
	for _, crossing := range crossings[1:] {
		if p.Distance(crossing) < p.Distance(nearest) {
			nearest = crossing
		}
	}
	return nearest.Distance(q) < SightTolerance
}

func (p Point) r2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

func (p Point) String() string {
	if p.IsSteiner {
		return fmt.Sprintf("(%g, %g)*", p.X, p.Y)
	}
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Readable, coloured name for the point. Steiner points are red and input
// vertices green, so they stand out when dumping a visibility polygon.
func (p Point) DbgName() string {
	key := Point{X: p.X, Y: p.Y}
	name := dbg.Name(key)
	if p.IsSteiner {
		return aurora.Red(name).String()
	}
	return aurora.Green(name).String()
}
