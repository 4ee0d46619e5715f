// Visibility polygons and related 2D geometry for Go.
//
// Given a simple polygon and a point inside it, this package finds the region
// of the polygon visible from that point, introducing Steiner points where
// sightlines graze the boundary. It also provides convex hulls and even-odd
// point in polygon tests. The primitives underneath (points, lines, segments,
// rays) live in the advanced package.
package sightline

import (
	"github.com/osuushi/sightline/advanced"
	"github.com/pkg/errors"
)

type Point = advanced.Point
type Segment = advanced.Segment
type Polygon = advanced.Polygon

var (
	ErrTooFewPoints     = errors.New("at least 3 points are required")
	ErrViewpointOutside = errors.New("viewpoint is not inside the polygon")
)

// Convex hull of the points, counterclockwise from the leftmost point.
func ConvexHull(points ...Point) (*Polygon, error) {
	hull, ok := advanced.PointSet(points).ConvexHull()
	if !ok {
		return nil, errors.Wrapf(ErrTooFewPoints, "convex hull of %d points", len(points))
	}
	return &hull, nil
}

// Compute the region of the polygon visible from viewpoint.
//
// The polygon must be simple, and its first vertex must be visible from the
// viewpoint. Either winding is accepted; the result is always
// counterclockwise. Repeated consecutive vertices are ignored. Vertices that
// did not come from the input have IsSteiner set.
//
// A polygon that breaks these rules in a way the sweep notices gives an error
// wrapping an advanced.GeometryError.
func VisibilityPolygon(vertices []Point, viewpoint Point) (result *Polygon, err error) {
	defer func() {
		recoveredErr := advanced.HandleGeometryPanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = errors.Wrap(recoveredErr, "visibility sweep failed")
		}
	}()
	if len(vertices) < 3 {
		return nil, errors.Wrapf(ErrTooFewPoints, "polygon with %d vertices", len(vertices))
	}
	visible, ok := advanced.NewPolygon(vertices...).VisibleFrom(&viewpoint)
	if !ok {
		return nil, errors.Wrapf(ErrViewpointOutside, "viewpoint %v", viewpoint)
	}
	return &visible, nil
}

// Even-odd containment. A nil point is never contained.
func Contains(vertices []Point, p *Point) bool {
	return advanced.NewPolygon(vertices...).ContainsPoint(p)
}

// Count the triangles, over every triple of the given points, that contain p.
func CountContaining(points []Point, p *Point) int {
	count := 0
	for i := range points {
		for j := i + 1; j < len(points); j++ {
			for k := j + 1; k < len(points); k++ {
				if Contains([]Point{points[i], points[j], points[k]}, p) {
					count++
				}
			}
		}
	}
	return count
}
