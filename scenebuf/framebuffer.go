package scenebuf

// Framebuffer is the fine rasterizer's output: one packed 0xAABBGGRR word
// per pixel, row-major, row stride WidthInTiles*TileWidth (spec ch.3,
// "Framebuffer").
type Framebuffer struct {
	Pixels []uint32
	Width  int
	Height int
}

// NewFramebuffer allocates a zeroed framebuffer sized for a tile grid of
// widthInTiles x heightInTiles tiles.
func NewFramebuffer(widthInTiles, heightInTiles int) *Framebuffer {
	w := widthInTiles * TileWidth
	h := heightInTiles * TileWidth
	return &Framebuffer{
		Pixels: make([]uint32, w*h),
		Width:  w,
		Height: h,
	}
}

// Set writes the pixel at (x, y) if it is within bounds.
func (f *Framebuffer) Set(x, y int, v uint32) {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return
	}
	f.Pixels[y*f.Width+x] = v
}

// At returns the pixel at (x, y), or 0 if out of bounds.
func (f *Framebuffer) At(x, y int) uint32 {
	if x < 0 || y < 0 || x >= f.Width || y >= f.Height {
		return 0
	}
	return f.Pixels[y*f.Width+x]
}
