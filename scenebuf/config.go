package scenebuf

// Config is the read-only dispatch configuration shared by both kernels
// (spec ch.3, "Config"). It is produced upstream (scene ingestion/binning)
// and only ever read by coarse and fine.
type Config struct {
	// WidthInTiles and HeightInTiles size the global tile grid.
	WidthInTiles  int
	HeightInTiles int

	// NDrawObj is the total number of draw objects in the scene.
	NDrawObj int

	// DrawTagBase is the word offset into Scene where per-draw-object
	// draw tags begin; draw object i's tag is at Scene[DrawTagBase+i].
	DrawTagBase int

	// DrawDataBase is the word offset into Scene where per-draw-object
	// auxiliary data begins, addressed relative to DrawMonoid.SceneOffset.
	DrawDataBase int
}

// WidthInBins and HeightInBins report the bin-grid dimensions for this
// config, rounding up partial bins at the edges.
func (c Config) WidthInBins() int {
	w, _ := DimsInTiles(c.WidthInTiles, c.HeightInTiles)
	return w
}

func (c Config) HeightInBins() int {
	_, h := DimsInTiles(c.WidthInTiles, c.HeightInTiles)
	return h
}

// StaticPTCLEnd is the word offset where the dynamic (bump-allocated)
// region of the PTCL buffer begins: one PTCLInitialAlloc-word block per
// tile in the grid.
func (c Config) StaticPTCLEnd() int {
	return c.WidthInTiles * c.HeightInTiles * PTCLInitialAlloc
}

// TileIndex returns the global tile index for tile coordinates (x, y).
func (c Config) TileIndex(x, y int) int {
	return y*c.WidthInTiles + x
}
