package gpucore

import (
	"fmt"
	"sync"
	"time"

	"github.com/gogpu/rastercore/coarse"
	"github.com/gogpu/rastercore/fine"
	"github.com/gogpu/rastercore/internal/parallel"
	"github.com/gogpu/rastercore/ptcl"
	"github.com/gogpu/rastercore/scenebuf"
)

// Pipeline orchestrates one tile grid's worth of coarse and fine
// rasterization (spec ch.1, "Pipeline position"). It owns the PTCL
// buffer and, optionally, a worker pool shared across Render calls.
type Pipeline struct {
	mu sync.Mutex

	cfg  Config
	buf  *ptcl.Buffer
	pool *parallel.WorkerPool

	closed bool
}

// NewPipeline creates a Pipeline for the given Config.
func NewPipeline(cfg Config) (*Pipeline, error) {
	if cfg.WidthInTiles <= 0 || cfg.HeightInTiles <= 0 {
		return nil, fmt.Errorf("%w: tile grid %dx%d", ErrInvalidConfig, cfg.WidthInTiles, cfg.HeightInTiles)
	}
	cfg = cfg.withDefaults()

	p := &Pipeline{
		cfg: cfg,
		buf: ptcl.NewBuffer(cfg.WidthInTiles, cfg.HeightInTiles, cfg.DynamicPTCLWords),
	}
	if cfg.Workers > 0 {
		p.pool = parallel.NewWorkerPool(cfg.Workers)
	}
	return p, nil
}

// Config returns a copy of the pipeline's configuration.
func (p *Pipeline) Config() Config {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cfg
}

// Render runs one coarse dispatch followed by one fine dispatch over in
// and segments, producing a fresh framebuffer (spec ch.5, "Dispatch
// contract"). The PTCL buffer and its bump allocator are reset first, so
// a Pipeline can be reused across frames without reallocating it.
func (p *Pipeline) Render(in coarse.Inputs, segments scenebuf.Segments) (*scenebuf.Framebuffer, *PipelineStats, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil, nil, fmt.Errorf("gpucore: pipeline is closed")
	}
	if in.Config.WidthInTiles != p.cfg.WidthInTiles || in.Config.HeightInTiles != p.cfg.HeightInTiles {
		return nil, nil, fmt.Errorf("gpucore: input tile grid %dx%d does not match pipeline grid %dx%d",
			in.Config.WidthInTiles, in.Config.HeightInTiles, p.cfg.WidthInTiles, p.cfg.HeightInTiles)
	}

	start := time.Now()
	p.buf.Reset()

	coarseStart := time.Now()
	coarse.Rasterize(in, p.buf, p.pool)
	coarseElapsed := time.Since(coarseStart)

	fb := scenebuf.NewFramebuffer(p.cfg.WidthInTiles, p.cfg.HeightInTiles)

	fineStart := time.Now()
	if err := fine.Run(in.Config, p.buf, segments, fb, p.pool); err != nil {
		return nil, nil, fmt.Errorf("gpucore: fine rasterization failed: %w", err)
	}
	fineElapsed := time.Since(fineStart)

	stats := &PipelineStats{
		TileCount:      p.cfg.WidthInTiles * p.cfg.HeightInTiles,
		BinCount:       in.NBins(),
		PTCLWordsUsed:  p.buf.Bump().Used(),
		PTCLOverflowed: p.buf.Bump().Overflowed(),
		CoarseTimeNS:   coarseElapsed.Nanoseconds(),
		FineTimeNS:     fineElapsed.Nanoseconds(),
		TotalTimeNS:    time.Since(start).Nanoseconds(),
	}
	if stats.PTCLOverflowed {
		slogger().Warn("gpucore: PTCL dynamic region overflowed", "words_used", stats.PTCLWordsUsed, "err", p.buf.OverflowErr())
	}
	return fb, stats, nil
}

// Close releases the pipeline's worker pool, if it has one. A closed
// Pipeline's Render calls return an error.
func (p *Pipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return
	}
	p.closed = true
	if p.pool != nil {
		p.pool.Close()
	}
}
