package hostbind

import "github.com/gogpu/gputypes"

// Handle is a backend-native buffer handle, the same uintptr shape
// hal.Buffer.NativeHandle() returns in the reference codebase. hostbind
// never allocates or owns buffers; callers own the handles and pass them
// here only to describe a bind group.
type Handle uintptr

func entry(binding uint32, h Handle, size uint64) gputypes.BindGroupEntry {
	return gputypes.BindGroupEntry{
		Binding: binding,
		Resource: gputypes.BufferBinding{
			Buffer: uintptr(h),
			Offset: 0,
			Size:   size, // 0 = entire buffer
		},
	}
}

// CoarseBuffers names the backend buffer handles the coarse bind group
// needs, one per CoarseLayout entry.
type CoarseBuffers struct {
	Config     Handle
	Scene      Handle
	DrawMonoid Handle
	Info       Handle
	Paths      Handle
	BinHeaders Handle
	BinData    Handle
	Tiles      Handle
	PTCL       Handle
	Bump       Handle
}

// CoarseEntries returns the bind-group entries for a coarse dispatch
// bound against bufs.
func CoarseEntries(bufs CoarseBuffers) []gputypes.BindGroupEntry {
	return []gputypes.BindGroupEntry{
		entry(CoarseBindingConfig, bufs.Config, 0),
		entry(CoarseBindingScene, bufs.Scene, 0),
		entry(CoarseBindingDrawMonoid, bufs.DrawMonoid, 0),
		entry(CoarseBindingInfo, bufs.Info, 0),
		entry(CoarseBindingPaths, bufs.Paths, 0),
		entry(CoarseBindingBinHeaders, bufs.BinHeaders, 0),
		entry(CoarseBindingBinData, bufs.BinData, 0),
		entry(CoarseBindingTiles, bufs.Tiles, 0),
		entry(CoarseBindingPTCL, bufs.PTCL, 0),
		entry(CoarseBindingBump, bufs.Bump, 0),
	}
}

// FineBuffers names the backend buffer handles the fine bind group needs,
// one per FineLayout entry.
type FineBuffers struct {
	Config   Handle
	PTCL     Handle
	Tiles    Handle
	Segments Handle
	Output   Handle
}

// FineEntries returns the bind-group entries for a fine dispatch bound
// against bufs.
func FineEntries(bufs FineBuffers) []gputypes.BindGroupEntry {
	return []gputypes.BindGroupEntry{
		entry(FineBindingConfig, bufs.Config, 0),
		entry(FineBindingPTCL, bufs.PTCL, 0),
		entry(FineBindingTiles, bufs.Tiles, 0),
		entry(FineBindingSegments, bufs.Segments, 0),
		entry(FineBindingOutput, bufs.Output, 0),
	}
}
