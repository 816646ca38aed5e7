package coarse

import (
	"math/bits"

	"github.com/gogpu/rastercore/internal/parallel"
	"github.com/gogpu/rastercore/ptcl"
	"github.com/gogpu/rastercore/scenebuf"
)

// Rasterize runs the coarse rasterizer over every bin in the grid
// described by in.Config, writing each tile's command stream into buf
// (spec ch.4.1). buf must already be sized for in.Config's tile grid
// (see ptcl.NewBuffer) and its bump allocator reset (spec ch.6,
// "Dispatch contract").
//
// If pool is non-nil, independent bins are dispatched across it,
// mirroring "one workgroup per bin" as "one task per bin, run by a
// pool" (spec ch.5.1). A nil pool runs bins sequentially.
func Rasterize(in Inputs, buf *ptcl.Buffer, pool *parallel.WorkerPool) {
	widthInBins, heightInBins := in.WidthInBins(), in.HeightInBins()
	slogger().Debug("coarse dispatch", "width_in_bins", widthInBins, "height_in_bins", heightInBins, "n_drawobj", in.Config.NDrawObj)

	tasks := make([]func(), 0, widthInBins*heightInBins)
	for by := 0; by < heightInBins; by++ {
		for bx := 0; bx < widthInBins; bx++ {
			bx, by := bx, by
			tasks = append(tasks, func() { processBin(in, buf, bx, by) })
		}
	}

	if pool == nil {
		for _, t := range tasks {
			t()
		}
		return
	}
	pool.ExecuteAll(tasks)
}

// binState holds one bin's workgroup-scratchpad equivalent: the streaming
// window's merge counters and, across windows, the per-tile PTCL
// cursors (spec ch.4.1, "Local PTCL cursor state" and "Streaming window
// loop").
type binState struct {
	in          Inputs
	binX, binY  int
	binIx       int
	binTileX    int
	binTileY    int
	nPartitions int

	partitionIx int
	readyIx     int
	rdIx        int
	wrIx        int

	// window holds draw-object indices merged so far, in ascending
	// global draw-object order; window[rdIx:wrIx] is the currently
	// readable slice (spec calls this sh_drawobj_ix).
	window []int

	cursors [scenebuf.NTile]*ptcl.Cursor
}

func processBin(in Inputs, buf *ptcl.Buffer, binX, binY int) {
	widthInBins := in.WidthInBins()
	s := &binState{
		in:          in,
		binX:        binX,
		binY:        binY,
		binIx:       binY*widthInBins + binX,
		binTileX:    binX * scenebuf.NTileX,
		binTileY:    binY * scenebuf.NTileY,
		nPartitions: in.NPartitions(),
	}
	for l := 0; l < scenebuf.NTile; l++ {
		tx := s.binTileX + l%scenebuf.NTileX
		ty := s.binTileY + l/scenebuf.NTileX
		if tx >= in.Config.WidthInTiles || ty >= in.Config.HeightInTiles {
			continue // partial bin at the grid edge; no such tile
		}
		s.cursors[l] = buf.NewCursor(in.Config.TileIndex(tx, ty))
	}

	for s.rdIx < s.readyIx || s.partitionIx < s.nPartitions {
		s.refill()
		s.processWindow()
		s.rdIx = s.wrIx
	}

	for l := 0; l < scenebuf.NTile; l++ {
		if s.cursors[l] != nil {
			s.cursors[l].Finish()
		}
	}
}

// refill grows the streaming window until it holds NTile draw-object
// refs or the bin's partitions are exhausted (spec ch.4.1, "Refill
// sub-loop").
func (s *binState) refill() {
	nBins := s.in.NBins()
	for s.wrIx-s.rdIx < scenebuf.NTile && (s.readyIx > s.wrIx || s.partitionIx < s.nPartitions) {
		if s.readyIx == s.wrIx && s.partitionIx < s.nPartitions {
			batch := scenebuf.WGSizeCoarse
			if remaining := s.nPartitions - s.partitionIx; remaining < batch {
				batch = remaining
			}
			for i := 0; i < batch; i++ {
				p := s.partitionIx + i
				h := s.in.BinHeaders.Header(nBins, p, s.binIx)
				for j := uint32(0); j < h.ElementCount; j++ {
					s.window = append(s.window, int(s.in.BinData[h.ChunkOffset+j]))
				}
			}
			s.readyIx = len(s.window)
			s.partitionIx += scenebuf.WGSizeCoarse
		}
		s.wrIx = s.readyIx
		if s.wrIx-s.rdIx > scenebuf.NTile {
			s.wrIx = s.rdIx + scenebuf.NTile
		}
	}
}

// elemGeometry is one draw object's bin-relative tile footprint, computed
// once per window (spec ch.4.1, "Per-window tile fan-out").
type elemGeometry struct {
	stride, width, x0, y0, base, tileCount int
	drawobjIx                              int
	valid                                  bool
}

// processWindow fans the current window's draw objects out to the tiles
// they cover, scatters a per-tile bitmap of which draw objects touch
// which tile, and emits PTCL commands in ascending draw-object order
// (spec ch.4.1, "Bitmap scatter" and "Per-tile command emission").
func (s *binState) processWindow() {
	window := s.window[s.rdIx:s.wrIx]
	n := len(window)
	if n == 0 {
		return
	}

	cfg := s.in.Config
	geo := make([]elemGeometry, n)
	tileCounts := make([]uint32, n)

	for elIx, drawobjIx := range window {
		tag := s.in.Scene.DrawTag(cfg, drawobjIx)
		if tag != scenebuf.DrawTagColor {
			continue // only solid-color fill/stroke is implemented
		}
		dm := s.in.DrawMonoids[drawobjIx]
		path := s.in.Paths[dm.PathIx]

		x0 := clamp(path.X0-s.binTileX, 0, scenebuf.NTileX)
		y0 := clamp(path.Y0-s.binTileY, 0, scenebuf.NTileY)
		x1 := clamp(path.X1-s.binTileX, 0, scenebuf.NTileX)
		y1 := clamp(path.Y1-s.binTileY, 0, scenebuf.NTileY)
		width := x1 - x0
		height := y1 - y0
		if width <= 0 || height <= 0 {
			continue
		}

		dx := path.X0 - s.binTileX
		dy := path.Y0 - s.binTileY
		base := path.Tiles - (dy*path.Stride() + dx)

		geo[elIx] = elemGeometry{
			stride:     path.Stride(),
			width:      width,
			x0:         x0,
			y0:         y0,
			base:       base,
			tileCount:  width * height,
			drawobjIx:  drawobjIx,
			valid:      true,
		}
		tileCounts[elIx] = uint32(geo[elIx].tileCount)
	}

	prefix := inclusivePrefixSum(tileCounts)
	total := uint32(0)
	if n > 0 {
		total = prefix[n-1]
	}

	var bitmaps [scenebuf.NSlice][scenebuf.NTile]uint32
	for ix := uint32(0); ix < total; ix++ {
		elIx := findBucket(prefix, ix)
		g := geo[elIx]
		var base uint32
		if elIx > 0 {
			base = prefix[elIx-1]
		}
		seqIx := int(ix - base)
		x := g.x0 + seqIx%g.width
		y := g.y0 + seqIx/g.width
		tileGlobal := g.base + g.stride*y + x
		if tileGlobal < 0 || tileGlobal >= len(s.in.Tiles) {
			continue
		}
		if s.in.Tiles[tileGlobal].Empty() {
			continue
		}
		localTile := y*scenebuf.NTileX + x
		bitmaps[elIx/32][localTile] |= 1 << uint(elIx&31)
	}

	for l := 0; l < scenebuf.NTile; l++ {
		cur := s.cursors[l]
		if cur == nil {
			continue
		}
		tx := l % scenebuf.NTileX
		ty := l / scenebuf.NTileX
		for slice := 0; slice < scenebuf.NSlice; slice++ {
			word := bitmaps[slice][l]
			for word != 0 {
				bit := bits.TrailingZeros32(word)
				word &^= 1 << uint(bit)
				elIx := slice*32 + bit
				g := geo[elIx]
				if !g.valid {
					continue
				}
				dm := s.in.DrawMonoids[g.drawobjIx]
				tileGlobal := g.base + g.stride*ty + tx
				tile := s.in.Tiles[tileGlobal]
				linewidth := s.in.Info.LineWidth(dm)
				cur.WritePath(tile, linewidth)
				cur.WriteColor(s.in.Scene.ColorRGBA(cfg, dm))
			}
		}
	}
}

func clamp(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
