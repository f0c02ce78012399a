package earclip

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftmost(t *testing.T) {
	a, v := ring([][2]float64{{5, 0}, {0, 5}, {10, 10}})
	assert.Equal(t, v[1], leftmost(a, v[0]))
}

func TestFindHoleBridgeFromSquare(t *testing.T) {
	outer, ov := ring([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})
	hole := outer.Insert(100, 5, 5, nullIdx)

	bridge := findHoleBridge(outer, hole, ov[0])
	assert.NotEqual(t, nullIdx, bridge)

	isOuterVertex := false
	for _, v := range ov {
		if v == bridge {
			isOuterVertex = true
		}
	}
	assert.True(t, isOuterVertex, "bridge must land on an outer-ring vertex")
}

func TestEliminateHolesSquareWithHole(t *testing.T) {
	outer, ov := ring([][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}})

	holeStart := outer.Insert(100, 3, 3, nullIdx)
	h2 := outer.Insert(101, 3, 7, holeStart)
	h3 := outer.Insert(102, 7, 7, h2)
	_ = outer.Insert(103, 7, 3, h3)

	ctx := NewBuildContext(false)
	merged := eliminateHoles(ctx, outer, []uint32{holeStart}, ov[0])
	assert.NotEqual(t, nullIdx, merged)

	// the merged ring must contain both outer and hole vertices.
	count := 0
	outer.eachRing(merged, func(uint32) { count++ })
	assert.GreaterOrEqual(t, count, 8) // 4 outer + 4 hole + 2 bridge duplicates
}
