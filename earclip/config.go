package earclip

// Config specifies tunables for a triangulation build. The zero Config
// is valid and selects the engine's default behaviour.
type Config struct {
	// ZOrderThreshold is the vertex count above which the z-order index
	// is built before ear clipping starts. 0 selects the package
	// default (zOrderThreshold). A negative value disables the z-order
	// fast path unconditionally, forcing the linear ear test on every
	// input; this makes the N<=80 fast-path cutoff a runtime tunable
	// instead of a hardcoded behaviour.
	ZOrderThreshold int

	// DebugDump, when true, has TriangulateCtx dump the merged ring
	// right after hole elimination (the last point where it is a
	// single intact cycle) and a triangle-count summary after ear
	// clipping finishes.
	DebugDump bool
}

func (cfg Config) zOrderThreshold() int {
	if cfg.ZOrderThreshold == 0 {
		return zOrderThreshold
	}
	return cfg.ZOrderThreshold
}

// useZOrder reports whether the z-order fast path should be attempted
// for a polygon with n total vertices (outer ring plus holes).
func (cfg Config) useZOrder(n int) bool {
	if cfg.ZOrderThreshold < 0 {
		return false
	}
	return n > cfg.zOrderThreshold()
}
