package ptcl

import "math"

// FillPayload is CmdFill's decoded payload.
type FillPayload struct {
	SegPtr   int32
	Backdrop int32
}

// StrokePayload is CmdStroke's decoded payload.
type StrokePayload struct {
	SegPtr    int32
	HalfWidth float32
}

// ColorPayload is CmdColor's decoded payload.
type ColorPayload struct {
	RGBA uint32
}

// ReadTag reads the tag word at cmdIx.
func (b *Buffer) ReadTag(cmdIx int) uint32 { return b.read(cmdIx) }

// ReadFill decodes a CmdFill payload starting at cmdIx (the tag word).
func (b *Buffer) ReadFill(cmdIx int) FillPayload {
	return FillPayload{
		SegPtr:   int32(b.read(cmdIx + 1)),
		Backdrop: int32(b.read(cmdIx + 2)),
	}
}

// ReadStroke decodes a CmdStroke payload starting at cmdIx.
func (b *Buffer) ReadStroke(cmdIx int) StrokePayload {
	return StrokePayload{
		SegPtr:    int32(b.read(cmdIx + 1)),
		HalfWidth: math.Float32frombits(b.read(cmdIx + 2)),
	}
}

// ReadColor decodes a CmdColor payload starting at cmdIx.
func (b *Buffer) ReadColor(cmdIx int) ColorPayload {
	return ColorPayload{RGBA: b.read(cmdIx + 1)}
}

// ReadJump decodes a CmdJump payload starting at cmdIx, returning the
// absolute word offset to continue reading at.
func (b *Buffer) ReadJump(cmdIx int) int {
	return int(b.read(cmdIx + 1))
}
