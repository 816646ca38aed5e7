// Package fixture synthesizes the buffers scene ingestion, binning, and
// per-path tiling would otherwise produce (all out of scope for this
// core, per spec ch.1), so tests and the demo command have something
// concrete to feed the coarse and fine rasterizers.
//
// It supports only axis-aligned solid-color rectangles and straight
// polyline strokes — enough to exercise fill, stroke, overlap ordering,
// and multi-bin dispatch — using the same per-tile vertical-edge winding
// convention the fine rasterizer's fillPath implements, simplified from
// the general DDA tile-walk a real per-path tiler performs (out of scope
// for this core).
package fixture
