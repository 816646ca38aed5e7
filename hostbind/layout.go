package hostbind

import "github.com/gogpu/gputypes"

// Binding indices for the coarse stage, matching @group(0) @binding(N) in
// internal/shaders/coarse.wgsl.
const (
	CoarseBindingConfig     uint32 = 0
	CoarseBindingScene      uint32 = 1
	CoarseBindingDrawMonoid uint32 = 2
	CoarseBindingInfo       uint32 = 3
	CoarseBindingPaths      uint32 = 4
	CoarseBindingBinHeaders uint32 = 5
	CoarseBindingBinData    uint32 = 6
	CoarseBindingTiles      uint32 = 7
	CoarseBindingPTCL       uint32 = 8
	CoarseBindingBump       uint32 = 9
)

// Binding indices for the fine stage, matching @group(0) @binding(N) in
// internal/shaders/fine.wgsl.
const (
	FineBindingConfig   uint32 = 0
	FineBindingPTCL     uint32 = 1
	FineBindingTiles    uint32 = 2
	FineBindingSegments uint32 = 3
	FineBindingOutput   uint32 = 4
)

func uniform(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageCompute,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
	}
}

func storageRO(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageCompute,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeReadOnlyStorage},
	}
}

func storageRW(binding uint32) gputypes.BindGroupLayoutEntry {
	return gputypes.BindGroupLayoutEntry{
		Binding:    binding,
		Visibility: gputypes.ShaderStageCompute,
		Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeStorage},
	}
}

// CoarseLayout returns the bind-group layout entries for the coarse
// dispatch (spec ch.6, "Input buffers" and "Input/output").
func CoarseLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		uniform(CoarseBindingConfig),
		storageRO(CoarseBindingScene),
		storageRO(CoarseBindingDrawMonoid),
		storageRO(CoarseBindingInfo),
		storageRO(CoarseBindingPaths),
		storageRO(CoarseBindingBinHeaders),
		storageRO(CoarseBindingBinData),
		storageRO(CoarseBindingTiles),
		storageRW(CoarseBindingPTCL),
		storageRW(CoarseBindingBump),
	}
}

// FineLayout returns the bind-group layout entries for the fine dispatch
// (spec ch.6, "Input buffers" and "Fine-only output").
func FineLayout() []gputypes.BindGroupLayoutEntry {
	return []gputypes.BindGroupLayoutEntry{
		uniform(FineBindingConfig),
		storageRO(FineBindingPTCL),
		storageRO(FineBindingTiles),
		storageRO(FineBindingSegments),
		storageRW(FineBindingOutput),
	}
}
