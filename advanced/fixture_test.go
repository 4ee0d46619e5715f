package advanced

import (
	"embed"
	"log"
	"math"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/JoshVarga/svgparser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// This file parses the svg fixtures and outputs polygons. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW Polygon. If anything goes
// wrong, it exits.
//
// Coordinates are taken as is, with y pointing up. The fixtures are written
// so that vertex 0 is visible from the viewpoints the tests use.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) Polygon {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{X: x, Y: y})
	}
	result := NewPolygon(points...)

	// Ensure that the polygon is CCW
	if result.IsCW() {
		result = result.Reverse()
	}
	return result
}

// Some ad hoc code specified fixtures

func UnitSquare(size float64) Polygon {
	return NewPolygon(
		Point{X: 0, Y: 0},
		Point{X: size, Y: 0},
		Point{X: size, Y: size},
		Point{X: 0, Y: size},
	)
}

func RegularPolygon(n int, radius float64, center Point) Polygon {
	points := make([]Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		points = append(points, Point{X: center.X + radius*math.Cos(angle), Y: center.Y + radius*math.Sin(angle)})
	}
	return NewPolygon(points...)
}

// Star with its first vertex on an outer point. Every vertex is visible from
// the center.
func SimpleStar() Polygon {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return NewPolygon(points...)
}

// Helpers

// Draw the polygons when SIGHTLINE_DBG_DRAW is set.
func dbgDrawIfRequested(t *testing.T, list PolygonList) {
	if os.Getenv("SIGHTLINE_DBG_DRAW") == "" {
		return
	}
	t.Logf("drew %s", list.dbgDraw(40))
}

func distanceToSegment(p Point, s Segment) float64 {
	d := s.P2.Subtract(s.P1)
	lengthSq := d.Dot(d)
	if lengthSq == 0 {
		return p.Distance(s.P1)
	}
	t := math.Max(0, math.Min(1, p.Subtract(s.P1).Dot(d)/lengthSq))
	return p.Distance(s.P1.Add(d.ScalarMult(t)))
}

func distanceToBoundary(p Point, poly Polygon) float64 {
	distance := math.Inf(1)
	for _, edge := range poly.Edges() {
		distance = math.Min(distance, distanceToSegment(p, edge))
	}
	return distance
}

// Check a visibility polygon by sampling it on a grid. Every sample that is
// clearly inside the visibility polygon must be inside the source polygon and
// be able to see the viewpoint. Every sample clearly inside the source polygon
// that can see the viewpoint must be inside the visibility polygon.
//
// Samples close to either boundary are skipped, since those are exactly where
// tolerance decides the answer.
func validateVisibilityBySampling(t *testing.T, poly Polygon, viewpoint Point, visible Polygon) {
	const margin = 0.05
	bounds := poly.Bounds()
	step := math.Max(bounds.X.Length(), bounds.Y.Length()) / 40
	// Offset the grid so samples don't line up with vertices
	for y := bounds.Y.Lo + step*0.37; y < bounds.Y.Hi; y += step {
		for x := bounds.X.Lo + step*0.61; x < bounds.X.Hi; x += step {
			p := Point{X: x, Y: y}
			if distanceToBoundary(p, visible) < margin || distanceToBoundary(p, poly) < margin {
				continue
			}
			if visible.ContainsPoint(&p) {
				assert.True(t, poly.ContainsPoint(&p), "visible point %v is outside the polygon", p)
				assert.True(t, viewpoint.CanSee(p, poly), "point %v in the visibility polygon cannot be seen", p)
			} else if poly.ContainsPoint(&p) {
				assert.False(t, viewpoint.CanSee(p, poly), "point %v can be seen but is not in the visibility polygon", p)
			}
		}
	}
}

// Every vertex of a visibility polygon lies on the source polygon's boundary,
// and every vertex that is not a Steiner point is one of the source vertices.
func assertVerticesOnBoundary(t *testing.T, poly Polygon, visible Polygon) {
	for _, v := range visible.Points() {
		onBoundary := false
		for _, edge := range poly.Edges() {
			if edge.ContainsPoint(v) {
				onBoundary = true
				break
			}
		}
		assert.True(t, onBoundary, "vertex %v is not on the polygon boundary", v)
		if !v.IsSteiner {
			require.Contains(t, poly.Points(), v, "vertex %v is neither an input vertex nor a Steiner point", v)
		}
	}
}
