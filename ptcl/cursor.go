package ptcl

import (
	"math"

	"github.com/gogpu/rastercore/scenebuf"
)

// Cursor is a coarse lane's local write state for one tile's PTCL stream
// (spec ch.4.1, "Local PTCL cursor state"). It is not safe for concurrent
// use; each tile has exactly one Cursor, owned by whichever coarse worker
// is processing that tile's bin.
type Cursor struct {
	buf       *Buffer
	tileIx    int
	offset    int
	limit     int
	overflowed bool
}

// NewCursor starts a write cursor for tileIx at its statically reserved
// block.
func (b *Buffer) NewCursor(tileIx int) *Cursor {
	start := tileIx * scenebuf.PTCLInitialAlloc
	return &Cursor{
		buf:    b,
		tileIx: tileIx,
		offset: start,
		limit:  start + scenebuf.PTCLInitialAlloc - scenebuf.PTCLHeadroom,
	}
}

// Offset returns the cursor's current absolute write position, mainly for
// tests.
func (c *Cursor) Offset() int { return c.offset }

// Overflowed reports whether this cursor ever failed to grow into the
// dynamic region (the buffer's bump allocator was exhausted).
func (c *Cursor) Overflowed() bool { return c.overflowed }

// allocCmd reserves size words at the cursor's current position, jumping
// to a fresh dynamic block first if the current block cannot hold them
// (spec ch.4.1, "alloc_cmd").
func (c *Cursor) allocCmd(size int) {
	if c.offset+size < c.limit {
		return
	}
	relOffset, ok := c.buf.bump.Alloc(uint32(scenebuf.PTCLIncrement))
	if !ok {
		c.overflowed = true
		// Stay put: WritePath/WriteColor write nothing once the cursor has
		// overflowed, and Finish terminates the stream with CmdEnd at the
		// current position, so fine never reads out of bounds.
		return
	}
	newOffset := c.buf.staticEnd + int(relOffset)
	c.buf.write(c.offset, CmdJump)
	c.buf.write(c.offset+1, uint32(newOffset))
	c.offset = newOffset
	c.limit = newOffset + scenebuf.PTCLIncrement - scenebuf.PTCLHeadroom
}

// WritePath emits the command driving this tile's coverage computation
// for the draw object currently being processed (spec ch.4.1,
// "write_path"): CmdFill/CmdSolid for a fill (linewidth < 0), or
// CmdStroke for a stroke. alloc_cmd(3) is reserved unconditionally before
// the tag dispatch so every branch fits, even though CmdSolid only needs
// one word.
func (c *Cursor) WritePath(tile scenebuf.Tile, linewidth float32) {
	c.allocCmd(3)
	if c.overflowed {
		return
	}
	switch {
	case linewidth < 0:
		if tile.Segments != 0 {
			c.buf.write(c.offset, CmdFill)
			c.buf.write(c.offset+1, uint32(tile.Segments))
			c.buf.write(c.offset+2, uint32(tile.Backdrop))
			c.offset += widthFill
		} else {
			c.buf.write(c.offset, CmdSolid)
			c.offset += widthSolid
		}
	default:
		c.buf.write(c.offset, CmdStroke)
		c.buf.write(c.offset+1, uint32(tile.Segments))
		c.buf.write(c.offset+2, math.Float32bits(0.5*linewidth))
		c.offset += widthStroke
	}
}

// WriteColor emits CmdColor for the draw object's packed RGBA (spec
// ch.4.1, "write_color").
func (c *Cursor) WriteColor(rgba uint32) {
	c.allocCmd(2)
	if c.overflowed {
		return
	}
	c.buf.write(c.offset, CmdColor)
	c.buf.write(c.offset+1, rgba)
	c.offset += widthColor
}

// Finish terminates the tile's stream with CmdEnd. Headroom guarantees
// there is always at least one free word at c.offset.
func (c *Cursor) Finish() {
	c.buf.write(c.offset, CmdEnd)
}
