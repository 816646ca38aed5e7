package scenebuf

// Dispatch geometry constants, fixed at compile time (spec ch.3).
const (
	// TileWidth is the side length, in pixels, of one tile. Tiles are square.
	TileWidth = 16

	// NTileX and NTileY are the bin dimensions in tiles: a bin is a
	// NTileX x NTileY block of tiles and is the coarse rasterizer's unit
	// of workgroup.
	NTileX = 16
	NTileY = 16

	// NTile is the number of tiles per bin (NTileX * NTileY), and also the
	// coarse workgroup size: one lane per tile.
	NTile = NTileX * NTileY

	// WGSizeCoarse is the coarse workgroup size in lanes.
	WGSizeCoarse = NTile

	// NSlice is the number of 32-bit bitmap words needed to cover one
	// window of WGSizeCoarse draw objects (WGSizeCoarse / 32).
	NSlice = WGSizeCoarse / 32

	// PixelsPerThread is the number of horizontal pixels one fine lane
	// processes; the fine workgroup is (PixelsPerThread, TileWidth) lanes
	// covering one TileWidth x TileWidth tile.
	PixelsPerThread = 4

	// PTCLInitialAlloc is the size, in words, of each tile's statically
	// reserved PTCL block.
	PTCLInitialAlloc = 64

	// PTCLIncrement is the size, in words, of each dynamically
	// bump-allocated PTCL block.
	PTCLIncrement = 256

	// PTCLHeadroom is the number of words reserved at the tail of every
	// block so a terminating CMD_JUMP always fits without a further
	// overflow check.
	PTCLHeadroom = 2
)

// TileCoord is a tile position in the global tile grid (not bin-local).
type TileCoord struct {
	X, Y int
}

// BinCoord is a bin position in the global bin grid.
type BinCoord struct {
	X, Y int
}

// DimsInTiles returns the number of bins spanned by a grid of the given
// size in tiles, rounding up.
func DimsInTiles(widthInTiles, heightInTiles int) (widthInBins, heightInBins int) {
	widthInBins = (widthInTiles + NTileX - 1) / NTileX
	heightInBins = (heightInTiles + NTileY - 1) / NTileY
	return
}
