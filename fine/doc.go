// Package fine implements the fine rasterizer: for each tile, it
// interprets the tile's PTCL command stream and produces anti-aliased
// pixels, composited in a premultiplied accumulator and written out as
// un-premultiplied packed RGBA (spec ch.4.2).
//
// Each tile is processed independently; a workgroup's lanes are
// simulated as a plain nested loop over the tile's TileWidth x TileWidth
// pixels, PixelsPerThread at a time, matching how this module's
// reference codebase ports GPU kernels to CPU.
package fine
