package main

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/osuushi/sightline"
	"github.com/osuushi/sightline/advanced"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"
	"gopkg.in/yaml.v3"
)

// Demo of the geometry queries. Input on stdin should be newline separated
// points in the form "x y". A blank line ends the polygon; anything after it is
// ignored. Results are written to stdout as YAML.
//
// Modes:
//
//   hull           convex hull of the points
//   contains       whether (x, y) is inside the polygon
//   visibility     region of the polygon visible from (x, y)
//   intersections  where a ray from (x, y) at angle theta hits the polygon
//   triangles      how many triangles over all triples of the points contain (x, y)
var (
	app    = kingpin.New("sightline", "Visibility polygons, convex hulls and containment for 2D points.")
	mode   = app.Flag("mode", "Query to run.").Default("visibility").Enum("hull", "contains", "visibility", "intersections", "triangles")
	queryX = app.Flag("x", "Query point x coordinate.").Float64()
	queryY = app.Flag("y", "Query point y coordinate.").Float64()
	theta  = app.Flag("theta", "Ray direction in radians, for intersections.").Float64()
	dump   = app.Flag("dump", "Print readable names of the resulting vertices to stderr.").Bool()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	points, err := readPoints(os.Stdin)
	if err != nil {
		log.Fatalf("Could not read points: %v", err)
	}
	query := sightline.Point{X: *queryX, Y: *queryY}

	var result interface{}
	var vertices []sightline.Point
	switch *mode {
	case "hull":
		hull, err := sightline.ConvexHull(points...)
		if err != nil {
			log.Fatalf("Could not compute hull: %v", err)
		}
		result = hull
		vertices = hull.Points()
	case "contains":
		result = map[string]bool{"contains": sightline.Contains(points, &query)}
	case "visibility":
		visible, err := sightline.VisibilityPolygon(points, query)
		if err != nil {
			log.Fatalf("Could not compute visibility polygon: %v", err)
		}
		result = visible
		vertices = visible.Points()
	case "intersections":
		ray := advanced.Ray{Origin: query, Theta: *theta}
		hits := ray.PolygonIntersections(advanced.NewPolygon(points...))
		result = hits
		vertices = hits
	case "triangles":
		result = map[string]int{"triangles": sightline.CountContaining(points, &query)}
	}

	if *dump {
		for _, v := range vertices {
			fmt.Fprintf(os.Stderr, "%s %v\n", v.DbgName(), v)
		}
	}

	out, err := yaml.Marshal(result)
	if err != nil {
		log.Fatalf("Could not encode result: %v", err)
	}
	fmt.Print(string(out))
}

func readPoints(in io.Reader) ([]sightline.Point, error) {
	points := []sightline.Point{}
	// Scan lines
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(points) > 0 {
				break
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, scanner.Err()
}

func parsePoint(line string) (sightline.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return sightline.Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return sightline.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return sightline.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return sightline.Point{X: x, Y: y}, nil
}
