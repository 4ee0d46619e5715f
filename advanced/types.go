package advanced

// Points are plain values. Every arithmetic operation returns a new point, so
// points can be shared freely between polygons, segments and results.
//
// IsSteiner marks points that were synthesized by the visibility sweep rather
// than taken from the input. It is carried along for callers, but it never
// takes part in arithmetic or equality.
type Point struct {
	X         float64 `yaml:"x"`
	Y         float64 `yaml:"y"`
	IsSteiner bool    `yaml:"steiner,omitempty"`
}

// Free vectors share the point representation.
type Vector = Point

// Implicit line A*x + B*y + C = 0. Lines are only ever derived from segments
// and rays.
type Line struct {
	A, B, C float64
}

// Segments are directed. Direction only matters for ToRay; intersection and
// containment are symmetric.
type Segment struct {
	P1, P2 Point
}

// Ray starting at Origin, heading Theta radians counterclockwise from the
// positive x axis.
type Ray struct {
	Origin Point
	Theta  float64
}

// Polygons are an ordered ring of vertices, with an implicit closing edge from
// the last vertex back to the first. The vertex list is not exported, so a
// polygon cannot be changed once built; algorithms that grow a polygon do so
// on a PointStack and convert at the end.
//
// Nothing checks that a polygon is simple. Results for self intersecting
// polygons are undefined.
type Polygon struct {
	points []Point
}

type PolygonList []Polygon

// Unordered collection of points, as handed to the convex hull.
type PointSet []Point

type PointStack []Point
