package coarse

import "github.com/gogpu/rastercore/scenebuf"

// Inputs bundles the upstream, read-only buffers the coarse rasterizer
// consumes (spec ch.3 and ch.6, "Input buffers"). These are produced by
// scene ingestion, binning, and per-path tiling, none of which this
// module implements; internal/fixture synthesizes them for tests.
type Inputs struct {
	Config      scenebuf.Config
	Scene       scenebuf.Scene
	DrawMonoids []scenebuf.DrawMonoid
	Info        scenebuf.Info
	BinHeaders  scenebuf.BinHeaders
	BinData     scenebuf.BinData
	Paths       []scenebuf.Path
	Tiles       scenebuf.Tiles
}

// NPartitions returns the number of NTile-sized draw-object partitions
// the upstream binning pass produced.
func (in Inputs) NPartitions() int { return scenebuf.NPartitions(in.Config.NDrawObj) }

// WidthInBins and HeightInBins report the bin-grid dimensions for this
// dispatch.
func (in Inputs) WidthInBins() int  { return in.Config.WidthInBins() }
func (in Inputs) HeightInBins() int { return in.Config.HeightInBins() }

// NBins returns the total number of bins.
func (in Inputs) NBins() int { return in.WidthInBins() * in.HeightInBins() }
