// Package scenebuf defines the shared buffer layouts that flow between the
// coarse and fine rasterizers: the fixed dispatch-geometry constants, the
// scene/draw-object descriptors written by upstream binning and tiling, and
// the output framebuffer. The PTCL command tags live in package ptcl.
//
// Nothing in this package performs any rasterization; it is the wire format,
// analogous to a GPU shader's struct declarations and bind-group layout.
// scenebuf has no dependencies of its own, so both coarse and fine (and the
// host orchestration in gpucore) can depend on it without a cycle.
package scenebuf
