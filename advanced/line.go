package advanced

// Intersect two lines by solving the 2x2 system of their implicit forms.
// Parallel lines have no intersection, and neither do identical lines: a zero
// determinant is all we look at.
func (l Line) Intersection(other Line) (Point, bool) {
	det := l.A*other.B - l.B*other.A
	if det == 0 {
		return Point{}, false
	}
	return Point{
		X: (l.B*other.C - l.C*other.B) / det,
		Y: (l.C*other.A - l.A*other.C) / det,
	}, true
}
