// Package earclip triangulates a simple polygon, optionally with holes,
// into a flat list of triangle vertex indices.
//
// The pipeline is:
//
//  - Load the outer contour and each hole contour into a circular,
//    doubly-linked ring of vertices living in a single arena (Arena).
//  - Bridge each hole into the outer ring (eliminateHoles), reducing the
//    problem to one ring.
//  - Optionally index the ring along a Morton z-order curve, to prune ear
//    candidates in better than linear time (indexCurve).
//  - Walk the ring clipping ears (earcutLinked), falling back through a
//    colinear/duplicate filter, a local self-intersection cure, and a
//    diagonal split whenever a full sweep produces no ear.
//
// Triangulate and TriangulateCtx are the package's entry points; Flatten,
// Unflatten, Deviation and BBox are collaborators for callers working with
// nested ring coordinates instead of the flat representation.
package earclip
