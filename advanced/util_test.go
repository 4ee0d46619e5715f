package advanced

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCircularIndex(t *testing.T) {
	assert.Equal(t, 0, CircularIndex(0, 4))
	assert.Equal(t, 3, CircularIndex(3, 4))
	assert.Equal(t, 0, CircularIndex(4, 4))
	assert.Equal(t, 3, CircularIndex(-1, 4))
	assert.Equal(t, 1, CircularIndex(-7, 4))
}

func TestEqual(t *testing.T) {
	assert.True(t, Equal(0.1+0.2, 0.3))
	assert.False(t, Equal(0.1, 0.1001))
}

func TestPointStack(t *testing.T) {
	var s PointStack
	assert.True(t, s.Empty())
	assert.Equal(t, Point{}, s.Peek())
	assert.Equal(t, Point{}, s.Pop())

	s.Push(Point{X: 1})
	assert.Equal(t, Point{}, s.PeekBelow())
	s.Push(Point{X: 2})
	s.Push(Point{X: 3})
	assert.Equal(t, 3, s.Len())
	assert.Equal(t, Point{X: 3}, s.Peek())
	assert.Equal(t, Point{X: 2}, s.PeekBelow())

	poly := s.Polygon()
	assert.Equal(t, Point{X: 3}, s.Pop())
	assert.Equal(t, Point{X: 2}, s.Peek())
	assert.False(t, s.Empty())

	// The polygon is unaffected by later stack operations
	s.Push(Point{X: 10})
	assert.Equal(t, []Point{{X: 1}, {X: 2}, {X: 3}}, poly.Points())
}
