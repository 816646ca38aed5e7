// Package ptcl implements the Per-Tile Command List: the dynamically
// growable command stream the coarse rasterizer writes and the fine
// rasterizer reads (spec ch.3, "PTCL buffer", and ch.4.3).
//
// The buffer is split into a statically partitioned region (one
// PTCLInitialAlloc-word block per tile) and a bump-allocated dynamic
// region of PTCLIncrement-word blocks. A Cursor tracks one tile's current
// write position and transparently emits a CmdJump and hops to a fresh
// block when the current one is about to overflow.
package ptcl
