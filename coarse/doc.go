// Package coarse implements the coarse rasterizer: for each screen-space
// bin, it streams the bin's draw-object references through a fixed-size
// window, fans each draw object out across the tiles it covers, and
// writes a per-tile PTCL command stream (spec ch.4.1).
//
// There is no real GPU here, so "workgroup" and "lane" are simulated: one
// bin is processed by a single sequential pass (matching how this
// module's reference codebase ports GPU kernels to CPU), and independent
// bins are farmed out across a worker pool. This preserves every ordering
// invariant the spec requires, because lanes within one bin never
// actually race in this implementation.
package coarse
