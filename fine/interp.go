package fine

import (
	"github.com/gogpu/rastercore/ptcl"
	"github.com/gogpu/rastercore/scenebuf"
)

// interpretLane runs one lane's command-stream interpreter for the
// PixelsPerThread pixels at tile-local origin (laneX, laneY), starting at
// tile tileIx's statically reserved PTCL block (spec ch.4.2, "Interpreter
// loop"). It returns the finished, un-premultiplied, packed pixel colors.
//
// CmdFill/CmdStroke/CmdSolid set the lanes' current coverage (`area`);
// CmdColor reads that coverage to composite a color into the running
// accumulator. This mirrors the PTCL contract directly: a fill/stroke/
// solid command is always immediately followed by exactly one color
// command in this core (no gradients, images, or clip layers).
func interpretLane(buf *ptcl.Buffer, segments scenebuf.Segments, tileIx, laneX, laneY int) ([scenebuf.PixelsPerThread]uint32, error) {
	var acc [scenebuf.PixelsPerThread]rgba
	var area [scenebuf.PixelsPerThread]float32
	cmdIx := tileIx * scenebuf.PTCLInitialAlloc

	for steps := 0; ; steps++ {
		if steps > 1<<20 {
			return [scenebuf.PixelsPerThread]uint32{}, ErrMalformedPTCL
		}
		if cmdIx < 0 || cmdIx >= buf.Len() {
			return [scenebuf.PixelsPerThread]uint32{}, ErrMalformedPTCL
		}

		switch tag := buf.ReadTag(cmdIx); tag {
		case ptcl.CmdEnd:
			var out [scenebuf.PixelsPerThread]uint32
			for i := range out {
				out[i] = packPixel(acc[i])
			}
			return out, nil

		case ptcl.CmdFill:
			p := buf.ReadFill(cmdIx)
			area = fillPath(segments, p.SegPtr, p.Backdrop, laneX, laneY)
			cmdIx += 3

		case ptcl.CmdStroke:
			p := buf.ReadStroke(cmdIx)
			area = strokePath(segments, p.SegPtr, p.HalfWidth, laneX, laneY)
			cmdIx += 3

		case ptcl.CmdSolid:
			for i := range area {
				area[i] = 1.0
			}
			cmdIx += 1

		case ptcl.CmdColor:
			p := buf.ReadColor(cmdIx)
			color := unpackColor(p.RGBA)
			for i := range acc {
				acc[i] = compositeColor(acc[i], color, area[i])
			}
			cmdIx += 2

		case ptcl.CmdJump:
			cmdIx = buf.ReadJump(cmdIx)

		default:
			return [scenebuf.PixelsPerThread]uint32{}, ErrUnknownTag
		}
	}
}
