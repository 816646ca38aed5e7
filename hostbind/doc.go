// Package hostbind describes, but does not perform, the WebGPU-style
// bind-group layouts a real backend would need to drive the coarse and
// fine dispatches (spec ch.6.1, "Bind-group layout contract"). Buffer
// allocation, device binding, and dispatch orchestration stay out of
// scope for this core (spec ch.1's Non-goals); this package exists so a
// host integration has a typed starting point instead of reverse
// engineering binding indices from the kernels' source.
//
// It is modeled on the reference codebase's
// internal/gpu/vello_compute.go, which builds []gputypes.BindGroupLayoutEntry
// and []gputypes.BindGroupEntry tables per compute stage from the same
// @group(0) @binding(N) WGSL annotations the shaders in internal/shaders
// declare.
package hostbind
