package fine

import "github.com/gogpu/rastercore/internal/rmath"

// unpremultiplyEpsilon avoids a divide-by-zero when unpremultiplying a
// fully transparent pixel (spec ch.4.2, "On CMD_END").
const unpremultiplyEpsilon = 1e-6

// rgba is a premultiplied color accumulator, (R, G, B, A) each in [0,1]
// conceptually (values may temporarily exceed 1 before clamping at pack
// time, matching the shader's unclamped float math).
type rgba [4]float32

// unpackColor reads a CMD_COLOR payload word (0xAABBGGRR packed,
// little-endian byte order R,G,B,A) into a straight-alpha (R,G,B,A)
// vector normalized to [0,1] (spec ch.4.2, "unpack as 8-bit normalized
// and swizzle bytes as .wzyx").
func unpackColor(word uint32) rgba {
	return rgba{
		float32(word&0xFF) / 255,
		float32((word>>8)&0xFF) / 255,
		float32((word>>16)&0xFF) / 255,
		float32((word>>24)&0xFF) / 255,
	}
}

// compositeColor applies one CMD_COLOR command's source-over blend for a
// single pixel lane (spec ch.4.2): scale the unpacked color by the
// computed coverage, then blend over the running premultiplied
// accumulator.
func compositeColor(dst rgba, color rgba, area float32) rgba {
	fg := rgba{color[0] * area, color[1] * area, color[2] * area, color[3] * area}
	inv := 1 - fg[3]
	return rgba{
		dst[0]*inv + fg[0],
		dst[1]*inv + fg[1],
		dst[2]*inv + fg[2],
		dst[3]*inv + fg[3],
	}
}

// packPixel un-premultiplies and quantizes a finished pixel to a packed
// 0xAABBGGRR word (spec ch.4.2, "On CMD_END").
func packPixel(c rgba) uint32 {
	a := c[3]
	inv := 1 / (a + unpremultiplyEpsilon)
	r := quantize(c[0] * inv)
	g := quantize(c[1] * inv)
	b := quantize(c[2] * inv)
	av := quantize(a)
	return uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(av)<<24
}

func quantize(x float32) uint8 {
	x = rmath.Clamp32(x, 0, 1)
	return uint8(x*255 + 0.5)
}
