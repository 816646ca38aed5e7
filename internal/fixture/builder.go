package fixture

import (
	"math"

	"github.com/gogpu/rastercore/coarse"
	"github.com/gogpu/rastercore/scenebuf"
)

// noYEdgeCorrection is a YEdge value large enough that fillPath's
// half-open vertical-edge term (spec ch.4.2) always clamps to zero
// within a single tile. The closed rectangles this builder emits encode
// their full extent as explicit paired left/right edges, so they never
// need that correction term; real (non-axis-aligned) tilers rely on it
// for edges that terminate mid-tile, which this fixture does not
// attempt to reproduce.
const noYEdgeCorrection = float32(scenebuf.TileWidth + 1)

// Builder accumulates draw objects into the buffers coarse.Inputs needs,
// standing in for the scene-ingestion/binning/tiling stages this core
// does not implement.
type Builder struct {
	widthInTiles, heightInTiles int

	tiles    scenebuf.Tiles
	segments scenebuf.Segments // index 0 is the reserved "no segment" sentinel

	paths       []scenebuf.Path
	drawMonoids []scenebuf.DrawMonoid
	tags        []uint32
	data        []uint32
	info        []uint32
}

// NewBuilder creates a Builder for a widthInTiles x heightInTiles tile
// grid.
func NewBuilder(widthInTiles, heightInTiles int) *Builder {
	return &Builder{
		widthInTiles:  widthInTiles,
		heightInTiles: heightInTiles,
		tiles:         make(scenebuf.Tiles, widthInTiles*heightInTiles),
		segments:      make(scenebuf.Segments, 1), // sentinel at index 0
	}
}

// AddSolidRect adds an axis-aligned solid-color fill covering pixel
// rectangle [x0,y0,x1,y1) with the given packed RGBA, represented as a
// left (downward) and right (upward) vertical edge per spec ch.4.2's
// analytic area convention, clipped into each tile they pass through.
func (b *Builder) AddSolidRect(x0, y0, x1, y1 float32, rgba uint32) {
	b.addPath(x0, y0, x1, y1, rgba, -1)
}

// AddStrokeRect adds a rectangle outline as four independent stroked line
// segments (top, right, bottom, left), each its own draw object sharing
// rgba/linewidth. A fill's vertical-edge-only representation can't stand
// in for a stroke: fillPath's winding sum only needs the two vertical
// sides, but strokePath measures distance to whatever segment it is
// given, so the two horizontal sides have to be emitted explicitly too.
func (b *Builder) AddStrokeRect(x0, y0, x1, y1 float32, rgba uint32, linewidth float32) {
	b.AddStrokeLine(x0, y0, x1, y0, rgba, linewidth) // top
	b.AddStrokeLine(x1, y0, x1, y1, rgba, linewidth) // right
	b.AddStrokeLine(x1, y1, x0, y1, rgba, linewidth) // bottom
	b.AddStrokeLine(x0, y1, x0, y0, rgba, linewidth) // left
}

// AddStrokeLine adds a single straight stroked line segment from (x0,y0)
// to (x1,y1), covering every tile the segment's bounding box (inflated by
// its half-width) overlaps. Each covered tile gets its own copy of the
// segment translated into that tile's local coordinate space, mirroring
// AddSolidRect's per-tile segment placement; Delta is translation
// invariant so it is copied unchanged (spec ch.4.2, "distance-field
// stroke").
func (b *Builder) AddStrokeLine(x0, y0, x1, y1 float32, rgba uint32, linewidth float32) {
	halfWidth := linewidth * 0.5
	margin := float32(math.Ceil(float64(halfWidth))) + 1

	left := minf(x0, x1) - margin
	right := maxf(x0, x1) + margin
	top := minf(y0, y1) - margin
	bottom := maxf(y0, y1) + margin

	tileX0 := int(math.Floor(float64(left) / scenebuf.TileWidth))
	tileY0 := int(math.Floor(float64(top) / scenebuf.TileWidth))
	tileX1 := int(math.Ceil(float64(right) / scenebuf.TileWidth))
	tileY1 := int(math.Ceil(float64(bottom) / scenebuf.TileWidth))

	pathIx := len(b.paths)
	basePath := scenebuf.Path{X0: tileX0, Y0: tileY0, X1: tileX1, Y1: tileY1}
	stride := basePath.Stride()
	height := tileY1 - tileY0
	ownTilesBase := len(b.tiles)
	ownTiles := make(scenebuf.Tiles, stride*height)
	basePath.Tiles = ownTilesBase

	for ty := tileY0; ty < tileY1; ty++ {
		for tx := tileX0; tx < tileX1; tx++ {
			tilePixelX := float32(tx * scenebuf.TileWidth)
			tilePixelY := float32(ty * scenebuf.TileWidth)

			seg := b.appendSegment(scenebuf.Segment{
				OriginX: x0 - tilePixelX,
				OriginY: y0 - tilePixelY,
				DeltaX:  x1 - x0,
				DeltaY:  y1 - y0,
				YEdge:   noYEdgeCorrection,
				Next:    0,
			})

			localIx := (ty-tileY0)*stride + (tx - tileX0)
			ownTiles[localIx] = scenebuf.Tile{Segments: seg}
		}
	}
	b.tiles = append(b.tiles, ownTiles...)
	b.paths = append(b.paths, basePath)

	drawobjIx := len(b.drawMonoids)
	b.drawMonoids = append(b.drawMonoids, scenebuf.DrawMonoid{
		PathIx:      pathIx,
		SceneOffset: drawobjIx,
		InfoOffset:  drawobjIx,
	})
	b.tags = append(b.tags, uint32(scenebuf.DrawTagColor))
	b.data = append(b.data, rgba)
	b.info = append(b.info, mathFloat32bits(linewidth))
}

func (b *Builder) addPath(x0, y0, x1, y1 float32, rgba uint32, linewidth float32) {
	tileX0 := int(math.Floor(float64(x0) / scenebuf.TileWidth))
	tileY0 := int(math.Floor(float64(y0) / scenebuf.TileWidth))
	tileX1 := int(math.Ceil(float64(x1) / scenebuf.TileWidth))
	tileY1 := int(math.Ceil(float64(y1) / scenebuf.TileWidth))

	pathIx := len(b.paths)
	basePath := scenebuf.Path{X0: tileX0, Y0: tileY0, X1: tileX1, Y1: tileY1}
	// Paths address their own rectangle through a dedicated tile-grid
	// base plus stride, per spec ch.3; give each path its own private
	// tile rectangle rather than reusing a shared global grid slot, so
	// multiple overlapping paths never clobber each other's Tile state.
	// Path.Tiles is the base for local index (y-Y0)*Stride()+(x-X0), so
	// it is simply where this path's own tiles start in the global array.
	stride := basePath.Stride()
	height := tileY1 - tileY0
	ownTilesBase := len(b.tiles)
	ownTiles := make(scenebuf.Tiles, stride*height)
	basePath.Tiles = ownTilesBase

	for ty := tileY0; ty < tileY1; ty++ {
		for tx := tileX0; tx < tileX1; tx++ {
			tilePixelX := float32(tx * scenebuf.TileWidth)
			tilePixelY := float32(ty * scenebuf.TileWidth)

			localTop := maxf(y0, tilePixelY) - tilePixelY
			localBottom := minf(y1, tilePixelY+scenebuf.TileWidth) - tilePixelY
			h := localBottom - localTop
			if h <= 0 {
				continue
			}

			hasLeft := tilePixelX <= x0 && x0 < tilePixelX+scenebuf.TileWidth
			hasRight := tilePixelX < x1 && x1 <= tilePixelX+scenebuf.TileWidth

			var head int32
			if hasLeft {
				head = b.appendSegment(scenebuf.Segment{
					OriginX: x0 - tilePixelX,
					OriginY: localTop,
					DeltaX:  0,
					DeltaY:  h,
					YEdge:   noYEdgeCorrection,
					Next:    head,
				})
			}
			if hasRight {
				head = b.appendSegment(scenebuf.Segment{
					OriginX: x1 - tilePixelX,
					OriginY: localBottom,
					DeltaX:  0,
					DeltaY:  -h,
					YEdge:   noYEdgeCorrection,
					Next:    head,
				})
			}

			localIx := (ty-tileY0)*stride + (tx - tileX0)
			if head != 0 {
				// A tile holding only the right edge starts inside the
				// rectangle: the left edge's -1 winding carries in as backdrop.
				var backdrop int32
				if !hasLeft && x0 < tilePixelX {
					backdrop = -1
				}
				ownTiles[localIx] = scenebuf.Tile{Segments: head, Backdrop: backdrop}
			} else {
				ownTiles[localIx] = scenebuf.Tile{Backdrop: 1}
			}
		}
	}
	b.tiles = append(b.tiles, ownTiles...)
	b.paths = append(b.paths, basePath)

	drawobjIx := len(b.drawMonoids)
	b.drawMonoids = append(b.drawMonoids, scenebuf.DrawMonoid{
		PathIx:      pathIx,
		SceneOffset: drawobjIx,
		InfoOffset:  drawobjIx,
	})
	b.tags = append(b.tags, uint32(scenebuf.DrawTagColor))
	b.data = append(b.data, rgba)
	b.info = append(b.info, mathFloat32bits(linewidth))
}

func (b *Builder) appendSegment(s scenebuf.Segment) int32 {
	ix := int32(len(b.segments))
	b.segments = append(b.segments, s)
	return ix
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func mathFloat32bits(f float32) uint32 {
	return math.Float32bits(f)
}

// Build assembles the accumulated draw objects into coarse.Inputs, binning
// every draw object into every bin its tile bbox overlaps and grouping
// them into NTile-sized partitions (scenebuf.BinHeader's invariant: the
// same one coarse.processBin's refill loop assumes via
// scenebuf.NPartitions), so scenes with more than NTile draw objects bin
// correctly instead of collapsing everything into a single partition.
func (b *Builder) Build() coarse.Inputs {
	cfg := scenebuf.Config{
		WidthInTiles:  b.widthInTiles,
		HeightInTiles: b.heightInTiles,
		NDrawObj:      len(b.drawMonoids),
		DrawTagBase:   0,
		DrawDataBase:  len(b.tags),
	}

	widthInBins, heightInBins := scenebuf.DimsInTiles(b.widthInTiles, b.heightInTiles)
	nBins := widthInBins * heightInBins
	nPartitions := scenebuf.NPartitions(len(b.drawMonoids))

	// buckets[p][bin] collects this partition's draw-object refs for this
	// bin, in ascending draw-object order (required so BinData preserves
	// order within a partition, per scenebuf.BinHeader's doc comment).
	buckets := make([][][]uint32, nPartitions)
	for p := range buckets {
		buckets[p] = make([][]uint32, nBins)
	}

	for drawobjIx, dm := range b.drawMonoids {
		partition := drawobjIx / scenebuf.NTile
		path := b.paths[dm.PathIx]
		binX0 := path.X0 / scenebuf.NTileX
		binY0 := path.Y0 / scenebuf.NTileY
		binX1 := (path.X1 - 1) / scenebuf.NTileX
		binY1 := (path.Y1 - 1) / scenebuf.NTileY
		for by := binY0; by <= binY1; by++ {
			for bx := binX0; bx <= binX1; bx++ {
				bin := by*widthInBins + bx
				if bin < 0 || bin >= nBins {
					continue
				}
				buckets[partition][bin] = append(buckets[partition][bin], uint32(drawobjIx))
			}
		}
	}

	binData := make(scenebuf.BinData, 0)
	headers := make(scenebuf.BinHeaders, nPartitions*nBins)
	for p := 0; p < nPartitions; p++ {
		for bin := 0; bin < nBins; bin++ {
			refs := buckets[p][bin]
			headers[p*nBins+bin] = scenebuf.BinHeader{
				ElementCount: uint32(len(refs)),
				ChunkOffset:  uint32(len(binData)),
			}
			binData = append(binData, refs...)
		}
	}

	scene := make(scenebuf.Scene, 0, len(b.tags)+len(b.data))
	scene = append(scene, b.tags...)
	scene = append(scene, b.data...)

	return coarse.Inputs{
		Config:      cfg,
		Scene:       scene,
		DrawMonoids: b.drawMonoids,
		Info:        scenebuf.Info(b.info),
		BinHeaders:  headers,
		BinData:     binData,
		Paths:       b.paths,
		Tiles:       b.tiles,
	}
}

// Segments returns the global segment pool backing every path this
// builder produced; callers pass it to fine.Run.
func (b *Builder) Segments() scenebuf.Segments { return b.segments }
