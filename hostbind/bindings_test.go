package hostbind_test

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/rastercore/hostbind"
)

func TestCoarseLayoutMatchesBindingCount(t *testing.T) {
	layout := hostbind.CoarseLayout()
	if len(layout) != 10 {
		t.Fatalf("len(CoarseLayout()) = %d, want 10", len(layout))
	}
	for i, e := range layout {
		if e.Binding != uint32(i) {
			t.Fatalf("entry %d has Binding %d, want %d", i, e.Binding, i)
		}
		if e.Visibility != gputypes.ShaderStageCompute {
			t.Fatalf("entry %d Visibility = %v, want ShaderStageCompute", i, e.Visibility)
		}
	}
	if layout[0].Buffer.Type != gputypes.BufferBindingTypeUniform {
		t.Fatalf("config binding should be a uniform buffer")
	}
	if layout[hostbind.CoarseBindingPTCL].Buffer.Type != gputypes.BufferBindingTypeStorage {
		t.Fatalf("ptcl binding should be read-write storage")
	}
	if layout[hostbind.CoarseBindingScene].Buffer.Type != gputypes.BufferBindingTypeReadOnlyStorage {
		t.Fatalf("scene binding should be read-only storage")
	}
}

func TestFineLayoutMatchesBindingCount(t *testing.T) {
	layout := hostbind.FineLayout()
	if len(layout) != 5 {
		t.Fatalf("len(FineLayout()) = %d, want 5", len(layout))
	}
	if layout[hostbind.FineBindingOutput].Buffer.Type != gputypes.BufferBindingTypeStorage {
		t.Fatalf("output binding should be read-write storage")
	}
}

func TestCoarseEntriesPreserveBindingOrder(t *testing.T) {
	bufs := hostbind.CoarseBuffers{
		Config: 1, Scene: 2, DrawMonoid: 3, Info: 4, Paths: 5,
		BinHeaders: 6, BinData: 7, Tiles: 8, PTCL: 9, Bump: 10,
	}
	entries := hostbind.CoarseEntries(bufs)
	if len(entries) != len(hostbind.CoarseLayout()) {
		t.Fatalf("CoarseEntries length %d does not match CoarseLayout length %d", len(entries), len(hostbind.CoarseLayout()))
	}
	for i, e := range entries {
		if e.Binding != uint32(i) {
			t.Fatalf("entry %d has Binding %d, want %d", i, e.Binding, i)
		}
	}
	ptcl := entries[hostbind.CoarseBindingPTCL].Resource.(gputypes.BufferBinding)
	if ptcl.Buffer != 9 {
		t.Fatalf("ptcl entry Buffer = %v, want 9", ptcl.Buffer)
	}
}
