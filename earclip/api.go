package earclip

import (
	"math"

	"github.com/aurelien-rainone/assertgo"
	"github.com/aurelien-rainone/gobj"
)

// Triangulate is the package's default entry point: it triangulates
// data (flat (x,y) pairs) with the given hole-start vertex indices
// using default Config and a disabled BuildContext. dim must be 2; any
// other value yields an empty result, never an error.
func Triangulate(data []float64, holeIndices []int32, dim int) ([]uint32, error) {
	return TriangulateCtx(nil, Config{}, data, holeIndices, dim)
}

// TriangulateCtx is the configurable entry point, following
// recast.BuildPolyMesh's ctx-first, Config-second build convention
// (recast.BuildPolyMesh(ctx, cset, cfg, ...)). A nil ctx triangulates
// silently. The error return exists for API symmetry with that
// convention; the engine never aborts on ill-posed input, so it is
// always nil — a partial or empty triangle list is returned instead of
// an error.
func TriangulateCtx(ctx *BuildContext, cfg Config, data []float64, holeIndices []int32, d int) ([]uint32, error) {
	if ctx == nil {
		ctx = NewBuildContext(false)
	}
	triangles := make([]uint32, 0)

	if d != dim {
		ctx.Warningf("Triangulate: dim=%d unsupported, only dim=2 is accepted", d)
		return triangles, nil
	}

	hasHoles := len(holeIndices) > 0
	outerEnd := len(data)
	if hasHoles {
		outerEnd = int(holeIndices[0]) * d
	}

	ctx.StartTimer(TimerTotal)
	defer ctx.StopTimer(TimerTotal)

	a := newArena(len(data) / d)

	ctx.StartTimer(TimerLoadContours)
	outerStart := loadContour(a, data, 0, outerEnd, d, true)
	ctx.StopTimer(TimerLoadContours)

	if outerStart == nullIdx {
		ctx.Warningf("Triangulate: empty outer contour")
		return triangles, nil
	}

	if hasHoles {
		ctx.StartTimer(TimerEliminateHoles)
		holeStarts := make([]uint32, 0, len(holeIndices))
		for i, hi := range holeIndices {
			start := int(hi) * d
			end := len(data)
			if i < len(holeIndices)-1 {
				end = int(holeIndices[i+1]) * d
			}
			if hs := loadContour(a, data, start, end, d, false); hs != nullIdx {
				holeStarts = append(holeStarts, hs)
			}
		}
		outerStart = eliminateHoles(ctx, a, holeStarts, outerStart)
		ctx.StopTimer(TimerEliminateHoles)
	}

	assert.True(outerStart != nullIdx, "Triangulate: outer ring vanished during hole elimination")

	if cfg.DebugDump {
		ctx.DumpLog("earclip: ring after hole elimination\n%s", a.DumpRing(outerStart))
	}

	minX, minY, maxX, maxY := bbox(a, outerStart)
	inv := invSize(minX, minY, maxX, maxY)
	if !cfg.useZOrder(len(data) / d) {
		inv = 0
	}

	ctx.StartTimer(TimerEarClip)
	earcutLinked(ctx, a, outerStart, func(x, y, z uint32) {
		triangles = append(triangles, a.Src(x)/uint32(d), a.Src(y)/uint32(d), a.Src(z)/uint32(d))
	}, minX, minY, inv, 0)
	ctx.StopTimer(TimerEarClip)

	if cfg.DebugDump {
		ctx.DumpLog("earclip: triangulated %d vertices into %d triangle(s)", len(data)/d, len(triangles)/3)
	}
	return triangles, nil
}

// Flatten converts nested ring coordinates (outer ring first, holes
// after) into the flat (x,y) array plus hole-start vertex indices that
// Triangulate expects.
//
// Mirrors the flattening job recast/inputgeom.go's InputGeom performs
// when loading an OBJ mesh into the flat vertex/index arrays the
// recast build pipeline consumes.
func Flatten(rings [][][2]float64) (data []float64, holeIndices []int32) {
	if len(rings) > 1 {
		holeIndices = make([]int32, 0, len(rings)-1)
	}
	for i, ring := range rings {
		if i > 0 {
			holeIndices = append(holeIndices, int32(len(data)/dim))
		}
		for _, pt := range ring {
			data = append(data, pt[0], pt[1])
		}
	}
	return data, holeIndices
}

// Unflatten is the inverse of Flatten: it splits a flat (x,y)
// array back into nested per-ring coordinates using the hole-start
// vertex indices.
func Unflatten(data []float64, holeIndices []int32) [][][2]float64 {
	starts := append([]int32{0}, holeIndices...)
	rings := make([][][2]float64, len(starts))
	for i := range starts {
		start := int(starts[i]) * dim
		end := len(data)
		if i < len(starts)-1 {
			end = int(starts[i+1]) * dim
		}
		ring := make([][2]float64, 0, (end-start)/dim)
		for j := start; j < end; j += dim {
			ring = append(ring, [2]float64{data[j], data[j+1]})
		}
		rings[i] = ring
	}
	return rings
}

// Deviation measures triangulation correctness: the absolute relative
// difference between the total triangle area and the polygon's area
// (outer contour minus holes). It returns 0 when both areas are 0.
func Deviation(data []float64, holeIndices []int32, d int, triangles []uint32) float64 {
	hasHoles := len(holeIndices) > 0
	outerEnd := len(data)
	if hasHoles {
		outerEnd = int(holeIndices[0]) * d
	}

	polygonArea := math.Abs(signedArea(data, 0, outerEnd, d))
	if hasHoles {
		for i, hi := range holeIndices {
			start := int(hi) * d
			end := len(data)
			if i < len(holeIndices)-1 {
				end = int(holeIndices[i+1]) * d
			}
			polygonArea -= math.Abs(signedArea(data, start, end, d))
		}
	}

	var trianglesArea float64
	for i := 0; i+3 <= len(triangles); i += 3 {
		x := int(triangles[i]) * d
		y := int(triangles[i+1]) * d
		z := int(triangles[i+2]) * d
		trianglesArea += math.Abs(
			(data[x]-data[z])*(data[y+1]-data[x+1]) -
				(data[x]-data[y])*(data[z+1]-data[x+1]))
	}

	if polygonArea == 0 && trianglesArea == 0 {
		return 0
	}
	if polygonArea == 0 {
		return math.Inf(1)
	}
	return math.Abs((trianglesArea - polygonArea) / polygonArea)
}

// BBox returns the axis-aligned bounding box of data, the same bbox the
// z-order indexer computes internally, exposed for callers doing
// spatial pre-filtering ahead of a Triangulate call.
func BBox(data []float64, holeIndices []int32, d int) gobj.AABB {
	bb := gobj.NewAABB()
	bb.MinZ, bb.MaxZ = 0, 0
	if d != dim || len(data) == 0 {
		return bb
	}
	for i := 0; i < len(data); i += d {
		x, y := data[i], data[i+1]
		if x < bb.MinX {
			bb.MinX = x
		}
		if x > bb.MaxX {
			bb.MaxX = x
		}
		if y < bb.MinY {
			bb.MinY = y
		}
		if y > bb.MaxY {
			bb.MaxY = y
		}
	}
	return bb
}
