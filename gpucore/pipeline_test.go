package gpucore_test

import (
	"errors"
	"testing"

	"github.com/gogpu/rastercore/gpucore"
	"github.com/gogpu/rastercore/internal/fixture"
	"github.com/gogpu/rastercore/scenebuf"
)

func TestRenderSolidFill(t *testing.T) {
	b := fixture.NewBuilder(1, 1)
	b.AddSolidRect(0, 0, scenebuf.TileWidth, scenebuf.TileWidth, 0xFFFFFFFF)
	in := b.Build()

	p, err := gpucore.NewPipeline(gpucore.Config{WidthInTiles: 1, HeightInTiles: 1})
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	defer p.Close()

	fb, stats, err := p.Render(in, b.Segments())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if stats.PTCLOverflowed {
		t.Fatalf("unexpected PTCL overflow")
	}
	for i, px := range fb.Pixels {
		if px != 0xFFFFFFFF {
			t.Fatalf("pixel %d = %#x, want 0xffffffff", i, px)
		}
	}
}

func TestRenderRejectsMismatchedGrid(t *testing.T) {
	p, err := gpucore.NewPipeline(gpucore.Config{WidthInTiles: 2, HeightInTiles: 2})
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	defer p.Close()

	b := fixture.NewBuilder(1, 1)
	if _, _, err := p.Render(b.Build(), b.Segments()); err == nil {
		t.Fatalf("expected an error for a mismatched tile grid")
	}
}

func TestRenderAfterCloseFails(t *testing.T) {
	p, err := gpucore.NewPipeline(gpucore.Config{WidthInTiles: 1, HeightInTiles: 1})
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	p.Close()

	b := fixture.NewBuilder(1, 1)
	if _, _, err := p.Render(b.Build(), b.Segments()); err == nil {
		t.Fatalf("expected Render to fail after Close")
	}
}

func TestNewPipelineRejectsEmptyGrid(t *testing.T) {
	_, err := gpucore.NewPipeline(gpucore.Config{})
	if err == nil {
		t.Fatalf("expected an error for a zero-sized tile grid")
	}
	if !errors.Is(err, gpucore.ErrInvalidConfig) {
		t.Fatalf("error = %v, want wrapping gpucore.ErrInvalidConfig", err)
	}
}

func TestRenderWithWorkerPool(t *testing.T) {
	b := fixture.NewBuilder(4, 4)
	b.AddSolidRect(0, 0, 4*scenebuf.TileWidth, 4*scenebuf.TileWidth, 0xFF112233)
	in := b.Build()

	p, err := gpucore.NewPipeline(gpucore.Config{WidthInTiles: 4, HeightInTiles: 4, Workers: 4})
	if err != nil {
		t.Fatalf("NewPipeline() error = %v", err)
	}
	defer p.Close()

	fb, _, err := p.Render(in, b.Segments())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for i, px := range fb.Pixels {
		if px != 0xFF112233 {
			t.Fatalf("pixel %d = %#x, want 0xff112233", i, px)
		}
	}
}
