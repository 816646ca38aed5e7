package fine

import (
	"testing"

	"github.com/gogpu/rastercore/ptcl"
	"github.com/gogpu/rastercore/scenebuf"
)

func TestSolidOpaqueWhiteFillsTile(t *testing.T) {
	buf := ptcl.NewBuffer(1, 1, 256)
	cur := buf.NewCursor(0)
	cur.WritePath(scenebuf.Tile{Backdrop: 1}, -1)
	cur.WriteColor(0xFFFFFFFF)
	cur.Finish()

	fb := scenebuf.NewFramebuffer(1, 1)
	if err := Run(scenebuf.Config{WidthInTiles: 1, HeightInTiles: 1}, buf, nil, fb, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i, p := range fb.Pixels {
		if p != 0xFFFFFFFF {
			t.Fatalf("pixel %d = %#x, want 0xffffffff", i, p)
		}
	}
}

func TestEmptySceneProducesTransparentBlack(t *testing.T) {
	buf := ptcl.NewBuffer(2, 2, 256)
	for ty := 0; ty < 2; ty++ {
		for tx := 0; tx < 2; tx++ {
			buf.NewCursor(ty*2 + tx).Finish()
		}
	}
	fb := scenebuf.NewFramebuffer(2, 2)
	if err := Run(scenebuf.Config{WidthInTiles: 2, HeightInTiles: 2}, buf, nil, fb, nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	for i, p := range fb.Pixels {
		if p != 0 {
			t.Fatalf("pixel %d = %#x, want 0", i, p)
		}
	}
}

func TestDrawObjectOrderingMatters(t *testing.T) {
	red := uint32(0x800000FF)  // word 0xAABBGGRR: A=0x80, R=0xFF
	blue := uint32(0x80FF0000) // word 0xAABBGGRR: A=0x80, B=0xFF

	buildResult := func(first, second uint32) uint32 {
		buf := ptcl.NewBuffer(1, 1, 256)
		cur := buf.NewCursor(0)
		cur.WritePath(scenebuf.Tile{Backdrop: 1}, -1)
		cur.WriteColor(first)
		cur.WritePath(scenebuf.Tile{Backdrop: 1}, -1)
		cur.WriteColor(second)
		cur.Finish()

		fb := scenebuf.NewFramebuffer(1, 1)
		if err := Run(scenebuf.Config{WidthInTiles: 1, HeightInTiles: 1}, buf, nil, fb, nil); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return fb.Pixels[0]
	}

	ab := buildResult(red, blue)
	ba := buildResult(blue, red)
	if ab == ba {
		t.Fatalf("expected draw order to affect the composited color, got %#x for both orders", ab)
	}
}

func TestUnknownTagAborts(t *testing.T) {
	buf := ptcl.NewBuffer(1, 1, 256)
	buf.Words()[0] = 9999 // not a valid tag
	fb := scenebuf.NewFramebuffer(1, 1)
	err := Run(scenebuf.Config{WidthInTiles: 1, HeightInTiles: 1}, buf, nil, fb, nil)
	if err != ErrUnknownTag {
		t.Fatalf("Run() error = %v, want ErrUnknownTag", err)
	}
}

func TestFillPathTileAlignedRectangleIsFullyCovered(t *testing.T) {
	// A single segment pair forming a 16x16 tile-aligned rectangle from
	// x=0 to x=16: left edge winding +1 (down), right edge winding -1 (up).
	segs := scenebuf.Segments{
		{}, // sentinel
		{OriginX: 0, OriginY: 0, DeltaX: 0, DeltaY: 16, Next: 0},
	}
	area := fillPath(segs, 1, 0, 0, 8)
	for i, a := range area {
		if a < 0.999 || a > 1.001 {
			t.Fatalf("area[%d] = %v, want ~1", i, a)
		}
	}
}

func TestStrokeDiagonalCoverage(t *testing.T) {
	segs := scenebuf.Segments{
		{},
		{OriginX: 0, OriginY: 0, DeltaX: 16, DeltaY: 16, Next: 0},
	}
	onDiagonal := strokePath(segs, 1, 0.5, 0, 0)
	offDiagonal := strokePath(segs, 1, 0.5, 8, 8)
	if onDiagonal[0] <= offDiagonal[3] {
		t.Fatalf("expected coverage on the diagonal (%v) to exceed far-off-diagonal coverage (%v)", onDiagonal[0], offDiagonal[3])
	}
}
