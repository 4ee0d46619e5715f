package advanced

// Compute the part of the polygon visible from viewpoint: the star shaped
// region of every point joined to the viewpoint by a sightline that stays
// inside the polygon.
//
// The boundary is swept from vertex 0, which must itself be visible, keeping
// the visible chain on a stack. Each vertex that continues counterclockwise
// around the viewpoint is pushed. Otherwise the boundary has turned back, and
// one of two things happened:
//
//   - Upward backtrack: the boundary disappeared behind the top of the stack.
//     Vertices are skipped until an edge comes back out across the sightline
//     through the old top, and that crossing is pushed as a Steiner point.
//   - Downward backtrack: the boundary came in front of the chain. The
//     sightline through the new vertex is cut against the chain from the top
//     down, popping whatever it hides, and the cut point is pushed as a
//     Steiner point followed by the vertex.
//
// The sweep finishes by closing the ring back to vertex 0 the same way, so a
// tail of the boundary that passed behind the first edge is cut off at the
// sightline through vertex 0.
//
// Consecutive vertices that are equal within Tolerance are treated as one. A
// clockwise polygon is walked in reverse from vertex 0, so the result is
// always counterclockwise. A viewpoint that is nil or outside the polygon has
// no visibility polygon.
//
// Panics with a GeometryError if a downward backtrack exhausts the chain, or
// if the boundary is still hidden when it returns to vertex 0. Neither can
// happen for a simple polygon whose vertex 0 is visible. Use
// HandleGeometryPanicRecover to turn the panic into an error.
func (poly Polygon) VisibleFrom(viewpoint *Point) (Polygon, bool) {
	if !poly.ContainsPoint(viewpoint) {
		return Polygon{}, false
	}
	p := *viewpoint

	vertices := distinctRing(poly.points)
	n := len(vertices)
	if n < 3 {
		return Polygon{}, false
	}
	if poly.IsCW() {
		// Walk backwards, keeping vertex 0 first
		reversed := make([]Point, 0, n)
		reversed = append(reversed, vertices[0])
		for i := n - 1; i > 0; i-- {
			reversed = append(reversed, vertices[i])
		}
		vertices = reversed
	}

	stack := make(PointStack, 0, n)
	stack.Push(vertices[0])

	// While the boundary is hidden behind the stack, this is the last visible
	// vertex it went behind.
	var occluder *Point

	for i := 1; i < n; i++ {
		v := vertices[i]

		if occluder == nil {
			top := stack.Peek()
			if p.LeftTurn(top, v) {
				stack.Push(v)
				continue
			}

			if stack.Len() >= 2 && !stack.PeekBelow().RightTurn(top, v) {
				downwardBacktrack(&stack, p, v)
				continue
			}

			occluder = &top
		}

		// Upward backtrack: look for the edge leaving v to reemerge across the
		// sightline through the occluder
		edge := Segment{v, vertices[CircularIndex(i+1, n)]}
		if steiner, ok := sightlineHit(p, *occluder, edge); ok {
			steiner.IsSteiner = true
			stack.Push(steiner)
			occluder = nil
		}
	}
	if occluder != nil {
		fatalf("boundary was still hidden behind %v when it returned to %v", *occluder, vertices[0])
	}

	// Close the ring. Coming back to vertex 0 clockwise means the tail of the
	// boundary went behind the first edge, and vertex 0 is in front of it.
	if p.RightTurn(stack.Peek(), vertices[0]) {
		downwardBacktrack(&stack, p, vertices[0])
		stack.Pop()
	}
	return stack.Polygon(), true
}

// Copy of the ring without zero length edges: each vertex equal to the one
// before it is dropped, and so are trailing vertices equal to the first.
func distinctRing(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if len(result) > 0 && p.Equals(result[len(result)-1]) {
			continue
		}
		result = append(result, p)
	}
	for len(result) > 1 && result[len(result)-1].Equals(result[0]) {
		result = result[:len(result)-1]
	}
	return result
}

// Pop the chain until the sightline from p through v lands on the segment
// between the top two points, then replace the top with the landing point and
// push v.
func downwardBacktrack(stack *PointStack, p, v Point) {
	for {
		if stack.Len() < 2 {
			fatalf("sightline through %v never met the visible chain", v)
		}
		chainSegment := Segment{stack.Peek(), stack.PeekBelow()}
		if steiner, ok := sightlineHit(p, v, chainSegment); ok {
			steiner.IsSteiner = true
			stack.Pop()
			stack.Push(steiner)
			stack.Push(v)
			return
		}
		stack.Pop()
	}
}

// Cast a sightline from p through target and report where it crosses s, if
// the crossing is no nearer to p than target is.
func sightlineHit(p, target Point, s Segment) (Point, bool) {
	hit, ok := Segment{p, target}.ToRay().SegmentIntersection(s)
	if !ok {
		return Point{}, false
	}
	if p.Distance(hit) < p.Distance(target)-Tolerance {
		return Point{}, false
	}
	return hit, true
}
