// Package gpucore orchestrates the coarse and fine rasterization stages
// behind a single Pipeline, the CPU-side equivalent of the two compute
// dispatches a real GPU backend would submit back to back.
//
// # Pipeline position
//
//	Inputs (scene ingestion, binning, tiling — not implemented here)
//	        |
//	        v
//	  coarse.Rasterize   -- writes ptcl.Buffer
//	        |
//	        v
//	    fine.Run          -- reads ptcl.Buffer, writes scenebuf.Framebuffer
//
// Pipeline owns the PTCL buffer and an optional internal/parallel
// WorkerPool, both reused across Render calls so a caller driving an
// animation loop isn't reallocating per frame.
//
// # Resource management
//
// This core never touches a GPU device; it is deliberately host-only.
// The wire contracts a real backend would bind buffers against (Config,
// Scene, PTCL, the output framebuffer) are described, not executed, by
// the sibling hostbind package.
package gpucore
