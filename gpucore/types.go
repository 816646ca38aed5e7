package gpucore

import "errors"

// ErrInvalidConfig is returned by NewPipeline when a Config fails
// validation (spec ch.2.1, "Errors").
var ErrInvalidConfig = errors.New("gpucore: invalid config")

// Config configures a Pipeline (spec ch.5, "Dispatch contract").
type Config struct {
	// WidthInTiles and HeightInTiles size the tile grid.
	WidthInTiles  int
	HeightInTiles int

	// DynamicPTCLWords sizes the PTCL buffer's bump-allocated dynamic
	// region. If 0, defaults to DefaultDynamicPTCLWords.
	DynamicPTCLWords int

	// Workers is how many goroutines coarse and fine dispatch bins and
	// tiles across. If 0 or negative, the pipeline runs every bin/tile
	// sequentially on the calling goroutine (no worker pool).
	Workers int
}

// DefaultDynamicPTCLWords is the dynamic PTCL region size used when a
// Config doesn't specify one: enough bump-allocated headroom for a
// modestly complex scene without forcing every caller to size it by hand.
const DefaultDynamicPTCLWords = 1 << 16

func (c Config) withDefaults() Config {
	if c.DynamicPTCLWords <= 0 {
		c.DynamicPTCLWords = DefaultDynamicPTCLWords
	}
	return c
}

// PipelineStats reports per-stage timing for one Render call (mirrors the
// reference pipeline's execution-stats idiom).
type PipelineStats struct {
	// TileCount is the number of tiles in the dispatch.
	TileCount int

	// BinCount is the number of bins the coarse rasterizer dispatched
	// across.
	BinCount int

	// PTCLWordsUsed is the number of words consumed in the PTCL buffer's
	// dynamic region.
	PTCLWordsUsed uint32

	// PTCLOverflowed reports whether the dynamic region was exhausted
	// during this render (spec ch.7, "PTCL buffer overflow").
	PTCLOverflowed bool

	// CoarseTimeNS is the time spent in the coarse stage (nanoseconds).
	CoarseTimeNS int64

	// FineTimeNS is the time spent in the fine stage (nanoseconds).
	FineTimeNS int64

	// TotalTimeNS is the total execution time (nanoseconds).
	TotalTimeNS int64
}
