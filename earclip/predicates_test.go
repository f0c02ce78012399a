package earclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ring builds a small arena containing one ccw ring from the given
// points and returns the arena plus the index of each point in order.
func ring(pts [][2]float64) (*Arena, []uint32) {
	a := newArena(len(pts))
	idx := make([]uint32, len(pts))
	last := nullIdx
	for i, p := range pts {
		last = a.Insert(uint32(i), p[0], p[1], last)
		idx[i] = last
	}
	return a, idx
}

func TestAIsSignedDoubleArea(t *testing.T) {
	a, v := ring([][2]float64{{0, 0}, {1, 0}, {0, 1}})
	// ccw triangle: A should be negative (per this package's sign
	// convention: negative means ccw).
	assert.Less(t, a.A(v[0], v[1], v[2]), 0.0)
	assert.Equal(t, -1.0, a.A(v[0], v[1], v[2]))
}

func TestAColinearIsZero(t *testing.T) {
	a, v := ring([][2]float64{{0, 0}, {1, 0}, {2, 0}})
	assert.Equal(t, 0.0, a.A(v[0], v[1], v[2]))
}

func TestEquals(t *testing.T) {
	a, v := ring([][2]float64{{1, 1}, {1, 1}, {2, 2}})
	assert.True(t, a.equals(v[0], v[1]))
	assert.False(t, a.equals(v[0], v[2]))
}

func TestPointInTriangle(t *testing.T) {
	tests := []struct {
		name     string
		px, py   float64
		expected bool
	}{
		{"center", 0.25, 0.25, true},
		{"vertex", 0, 0, true},
		{"on edge", 0.5, 0, true},
		{"outside", 2, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := pointInTriangle(0, 0, 1, 0, 0, 1, tt.px, tt.py)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestReflex(t *testing.T) {
	// ccw convex square: no vertex should be reflex.
	a, v := ring([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	for _, idx := range v {
		assert.False(t, a.reflex(idx))
	}
}

func TestReflexOnNotch(t *testing.T) {
	// an ccw L-shape has exactly one reflex vertex, at the notch.
	a, v := ring([][2]float64{
		{0, 0}, {2, 0}, {2, 1}, {1, 1}, {1, 2}, {0, 2},
	})
	reflexCount := 0
	for _, idx := range v {
		if a.reflex(idx) {
			reflexCount++
		}
	}
	assert.Equal(t, 1, reflexCount)
}

func TestPseudoIntersectsCrossing(t *testing.T) {
	a, v := ring([][2]float64{{0, 0}, {1, 1}, {0, 1}, {1, 0}})
	// segment (v0,v1) is (0,0)-(1,1); segment (v2,v3) is (0,1)-(1,0): they cross.
	assert.True(t, a.pseudoIntersects(v[0], v[1], v[2], v[3]))
}

func TestPseudoIntersectsSharedEndpointOnly(t *testing.T) {
	a, v := ring([][2]float64{{0, 0}, {1, 0}, {2, 0}})
	// (v0,v1) and (v1,v2) touch only at v1, no interior crossing.
	assert.False(t, a.pseudoIntersects(v[0], v[1], v[1], v[2]))
}

func TestMiddleInsideUnitSquare(t *testing.T) {
	a, v := ring([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	// diagonal from v0 to v2 passes through the square's interior.
	assert.True(t, a.middleInside(v[0], v[2]))
}
