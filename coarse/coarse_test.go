package coarse_test

import (
	"testing"

	"github.com/gogpu/rastercore/coarse"
	"github.com/gogpu/rastercore/fine"
	"github.com/gogpu/rastercore/internal/fixture"
	"github.com/gogpu/rastercore/ptcl"
	"github.com/gogpu/rastercore/scenebuf"
)

// render is the coarse->PTCL->fine pipeline minus gpucore's orchestration,
// used directly so these tests exercise coarse.Rasterize and fine.Run
// without gpucore's Pipeline in between.
func render(t *testing.T, b *fixture.Builder) *scenebuf.Framebuffer {
	t.Helper()
	in := b.Build()
	buf := ptcl.NewBuffer(in.Config.WidthInTiles, in.Config.HeightInTiles, 1<<16)
	coarse.Rasterize(in, buf, nil)
	fb := scenebuf.NewFramebuffer(in.Config.WidthInTiles, in.Config.HeightInTiles)
	if err := fine.Run(in.Config, buf, b.Segments(), fb, nil); err != nil {
		t.Fatalf("fine.Run() error = %v", err)
	}
	return fb
}

func TestEmptySceneIsTransparentBlack(t *testing.T) {
	b := fixture.NewBuilder(2, 2)
	fb := render(t, b)
	for i, p := range fb.Pixels {
		if p != 0 {
			t.Fatalf("pixel %d = %#x, want 0", i, p)
		}
	}
}

func TestSingleTileAlignedSolidFill(t *testing.T) {
	b := fixture.NewBuilder(1, 1)
	b.AddSolidRect(0, 0, scenebuf.TileWidth, scenebuf.TileWidth, 0xFFFFFFFF)
	fb := render(t, b)
	for i, p := range fb.Pixels {
		if p != 0xFFFFFFFF {
			t.Fatalf("pixel %d = %#x, want 0xffffffff", i, p)
		}
	}
}

func TestPartialRectangleLeavesOutsidePixelsUntouched(t *testing.T) {
	b := fixture.NewBuilder(1, 1)
	b.AddSolidRect(0, 0, 8, 8, 0xFFFFFFFF)
	fb := render(t, b)
	if fb.At(0, 0) != 0xFFFFFFFF {
		t.Fatalf("inside pixel = %#x, want opaque white", fb.At(0, 0))
	}
	if fb.At(7, 7) != 0xFFFFFFFF {
		t.Fatalf("inside pixel (7,7) = %#x, want opaque white", fb.At(7, 7))
	}
	if fb.At(8, 0) != 0 {
		t.Fatalf("outside pixel (8,0) = %#x, want transparent black", fb.At(8, 0))
	}
	if fb.At(0, 8) != 0 {
		t.Fatalf("outside pixel (0,8) = %#x, want transparent black", fb.At(0, 8))
	}
}

func TestMultiTileWideRectangleFillsInteriorTilesSolid(t *testing.T) {
	b := fixture.NewBuilder(3, 1)
	b.AddSolidRect(0, 0, 3*scenebuf.TileWidth, scenebuf.TileWidth, 0xFF00FF00)
	fb := render(t, b)
	for i, p := range fb.Pixels {
		if p != 0xFF00FF00 {
			t.Fatalf("pixel %d = %#x, want 0xff00ff00", i, p)
		}
	}
}

func TestDrawObjectOrderingMatters(t *testing.T) {
	buildAndGet := func(first, second uint32) uint32 {
		b := fixture.NewBuilder(1, 1)
		b.AddSolidRect(0, 0, scenebuf.TileWidth, scenebuf.TileWidth, first)
		b.AddSolidRect(0, 0, scenebuf.TileWidth, scenebuf.TileWidth, second)
		fb := render(t, b)
		return fb.At(0, 0)
	}
	ab := buildAndGet(0x800000FF, 0x80FF0000) // translucent red then translucent blue
	ba := buildAndGet(0x80FF0000, 0x800000FF)
	if ab == ba {
		t.Fatalf("draw order should affect the composited color, got %#x for both orders", ab)
	}
}

func TestBinBoundaryStraddlingRectangle(t *testing.T) {
	// A rectangle spanning two bins (a bin is NTileX x NTileY tiles wide)
	// must still render as one contiguous solid fill.
	b := fixture.NewBuilder(scenebuf.NTileX+4, 4)
	x0 := float32((scenebuf.NTileX - 2) * scenebuf.TileWidth)
	x1 := float32((scenebuf.NTileX + 2) * scenebuf.TileWidth)
	b.AddSolidRect(x0, 0, x1, 4*scenebuf.TileWidth, 0xFFFF00FF)
	fb := render(t, b)

	inside := []struct{ x, y int }{
		{int(x0), 0},
		{int(x1) - 1, 0},
		{int(x0), 4*scenebuf.TileWidth - 1},
	}
	for _, p := range inside {
		if got := fb.At(p.x, p.y); got != 0xFFFF00FF {
			t.Fatalf("pixel (%d,%d) = %#x, want 0xffff00ff", p.x, p.y, got)
		}
	}
	if got := fb.At(int(x0)-1, 0); got != 0 {
		t.Fatalf("pixel left of rect = %#x, want transparent black", got)
	}
	if got := fb.At(int(x1), 0); got != 0 {
		t.Fatalf("pixel right of rect = %#x, want transparent black", got)
	}
}

func TestManyOverlappingFillsForcesPTCLOverflow(t *testing.T) {
	b := fixture.NewBuilder(1, 1)
	for i := 0; i < 2000; i++ {
		b.AddSolidRect(0, 0, scenebuf.TileWidth, scenebuf.TileWidth, 0x01000000+uint32(i%256))
	}
	in := b.Build()
	buf := ptcl.NewBuffer(in.Config.WidthInTiles, in.Config.HeightInTiles, 1<<20)
	coarse.Rasterize(in, buf, nil)
	if buf.Bump().Overflowed() {
		t.Fatalf("bump allocator overflowed with a generously sized dynamic region")
	}
	if buf.Bump().Used() == 0 {
		t.Fatalf("expected 2000 overlapping fills to spill into the dynamic region")
	}

	fb := scenebuf.NewFramebuffer(in.Config.WidthInTiles, in.Config.HeightInTiles)
	if err := fine.Run(in.Config, buf, b.Segments(), fb, nil); err != nil {
		t.Fatalf("fine.Run() error = %v", err)
	}
	// Last draw object's color (alpha 0x01, opaque-ish after 2000 layers)
	// should dominate the final pixel; just assert we got a finite result.
	if fb.Pixels[0] == 0 {
		t.Fatalf("expected a nonzero composited pixel after 2000 overlapping fills")
	}
}
