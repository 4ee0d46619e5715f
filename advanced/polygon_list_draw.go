package advanced

import (
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
)

// This is for debugging purposes only

// Padding around the shapes, in pixels
const dbgDrawPadding = 20

// Draw the polygons to a PNG in the temp directory and print it to the
// terminal (iTerm only). Each polygon is drawn translucent over the previous
// ones, so a visibility polygon drawn after its source polygon shows up as a
// brighter region. Steiner points are marked in red.
func (pl PolygonList) dbgDraw(scale float64) string {
	var minX, minY, maxX, maxY float64
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	for _, poly := range pl {
		bounds := poly.Bounds()
		if bounds.IsEmpty() {
			continue
		}
		minX = math.Min(minX, bounds.X.Lo)
		minY = math.Min(minY, bounds.Y.Lo)
		maxX = math.Max(maxX, bounds.X.Hi)
		maxY = math.Max(maxY, bounds.Y.Hi)
	}
	if math.IsInf(minX, 1) {
		return ""
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + dbgDrawPadding*2
	height := int(scale*(maxY-minY)) + dbgDrawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(dbgDrawPadding, dbgDrawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	for _, poly := range pl {
		if poly.Len() == 0 {
			continue
		}
		c.MoveTo(poly.points[0].X, poly.points[0].Y)
		for _, p := range poly.points[1:] {
			c.LineTo(p.X, p.Y)
		}
		c.ClosePath()
		c.SetRGBA(0, 0.5, 0, 0.5)
		c.FillPreserve()
		c.SetRGB(0, 1, 1)
		c.Stroke()
	}

	c.SetRGB(1, 0, 0)
	for _, poly := range pl {
		for _, p := range poly.points {
			if p.IsSteiner {
				c.DrawCircle(p.X, p.Y, 4/scale)
				c.Fill()
			}
		}
	}

	path := filepath.Join(os.TempDir(), "polygon_list.png")
	c.SavePNG(path)
	imgcat.CatFile(path, os.Stdout)
	return path
}
