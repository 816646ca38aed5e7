// Package rastercore implements the coarse and fine rasterizer kernels of
// a GPU-resident 2D vector-graphics pipeline's rasterization core, ported
// to run as an ordinary CPU library.
//
// # Architecture
//
//	              +------------------+
//	              |      gpucore     |
//	              |     (Pipeline)    |
//	              +--------+---------+
//	                       |
//	         +-------------+-------------+
//	         |                           |
//	+--------v--------+          +-------v--------+
//	|      coarse      |          |      fine      |
//	|  bin -> PTCL     |--------->|  PTCL -> pixels |
//	+------------------+  ptcl    +-----------------+
//
// The coarse rasterizer streams each bin's draw-object references through
// a fixed-size window, fans each draw object out to the tiles it covers,
// and emits a per-tile command list (PTCL). The fine rasterizer interprets
// each tile's PTCL and produces anti-aliased pixel coverage.
//
// # Scope
//
// Scene ingestion, binning, and per-path tiling are external collaborators:
// this module only consumes the buffers they produce (see package
// scenebuf) and the internal/fixture package synthesizes them for tests
// and the demo command.
//
// # Logging
//
// rastercore is silent by default. Call [SetLogger] to enable structured
// logging across the coarse, fine, and gpucore packages.
package rastercore
