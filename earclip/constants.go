package earclip

// nullIdx marks the absence of a ring, z-chain, or hole-queue neighbour.
// Every arena read through prev/next/zprev/znext must tolerate it.
const nullIdx uint32 = ^uint32(0)

// dim is the only coordinate dimensionality this engine accepts; the
// entry points return an empty triangulation for any other value.
const dim = 2

// zOrderThreshold is the default vertex count above which the z-order
// index is built. Config.ZOrderThreshold overrides it; a zero Config
// (the package default) uses this value, a negative one disables the
// fast path unconditionally.
const zOrderThreshold = 80
