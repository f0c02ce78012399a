package earclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSpliceSplitsSingleRingIntoTwo(t *testing.T) {
	// a ccw hexagon-ish ring; bridge opposite corners.
	a, v := ring([][2]float64{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {1, 1}, {0, 1}})

	d := splice(a, v[0], v[3])

	// walking from v[0] must now stay within a sub-ring not containing d.
	seen := map[uint32]bool{}
	p := v[0]
	for {
		seen[p] = true
		p = a.Next(p)
		if p == v[0] {
			break
		}
	}
	assert.False(t, seen[d], "splice did not separate the ring at the bridge")
	assert.True(t, seen[v[3]], "bridge target must remain reachable from av's side")
}

func TestSpliceClonesPreserveSource(t *testing.T) {
	a, v := ring([][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
	d := splice(a, v[0], v[2])
	assert.Equal(t, a.Src(v[2]), a.Src(d))
	assert.Equal(t, a.X(v[2]), a.X(d))
	assert.Equal(t, a.Y(v[2]), a.Y(d))
}
