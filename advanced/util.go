package advanced

import "math"

// Agreement required between the x and y parametrizations when deciding
// whether a point lies on a segment.
const Tolerance = 0.001

// How close the first boundary crossing must be to a target for the target to
// count as visible.
const SightTolerance = 0.005

// Slack used when clamping intersections to a segment's bounding box, so that
// crossings computed exactly at a vertex are not lost to rounding.
const Epsilon = 1e-9

// To compensate for imprecision in floats, equality is tolerance based.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func (s *PointStack) Push(p Point) {
	*s = append(*s, p)
}

// Pop the top point. Popping an empty stack gives the zero point.
func (s *PointStack) Pop() Point {
	if len(*s) == 0 {
		return Point{}
	}
	p := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return p
}

func (s *PointStack) Peek() Point {
	if len(*s) == 0 {
		return Point{}
	}
	return (*s)[len(*s)-1]
}

// The point just below the top of the stack.
func (s *PointStack) PeekBelow() Point {
	if len(*s) < 2 {
		return Point{}
	}
	return (*s)[len(*s)-2]
}

func (s *PointStack) Len() int {
	return len(*s)
}

func (s *PointStack) Empty() bool {
	return len(*s) == 0
}

// Freeze the stack, bottom to top, into a polygon. The stack may keep being
// used afterwards without affecting the polygon.
func (s *PointStack) Polygon() Polygon {
	return NewPolygon(*s...)
}
