package fine

import (
	"github.com/gogpu/rastercore/internal/rmath"
	"github.com/gogpu/rastercore/scenebuf"
)

// degenerateEpsilon guards stroke_path's 1/(delta.delta) against
// division by zero for a zero-length segment (spec ch.7, "Degenerate
// segments").
const degenerateEpsilon = 1e-12

// fillPath computes analytic exact-area, non-zero-winding coverage for
// PixelsPerThread pixels starting at tile-local origin (x0, y) (spec
// ch.4.2, "fill_path — analytic exact-area coverage").
func fillPath(segments scenebuf.Segments, head int32, backdrop int32, x0, y int) [scenebuf.PixelsPerThread]float32 {
	var area [scenebuf.PixelsPerThread]float32
	for i := range area {
		area[i] = float32(backdrop)
	}

	segments.Walk(head, func(seg scenebuf.Segment) {
		yy := seg.OriginY - float32(y)
		y0 := rmath.Clamp32(yy, 0, 1)
		y1 := rmath.Clamp32(yy+seg.DeltaY, 0, 1)
		dy := y0 - y1
		if dy != 0 {
			t0 := (y0 - yy) / seg.DeltaY
			t1 := (y1 - yy) / seg.DeltaY
			sx0 := (seg.OriginX - float32(x0)) + t0*seg.DeltaX
			sx1 := (seg.OriginX - float32(x0)) + t1*seg.DeltaX
			xmin0 := rmath.Min32(sx0, sx1)
			xmax0 := rmath.Max32(sx0, sx1)

			for i := range area {
				xmin := rmath.Min32(xmin0-float32(i), 1) - 1e-6
				xmax := xmax0 - float32(i)
				b := rmath.Min32(xmax, 1)
				c := rmath.Max32(b, 0)
				d := rmath.Max32(xmin, 0)
				a := (b + 0.5*(d*d-c*c) - xmin) / (xmax - xmin)
				area[i] += a * dy
			}
		}

		yEdge := rmath.Signum32(seg.DeltaX) * rmath.Clamp32(float32(y)-seg.YEdge+1, 0, 1)
		for i := range area {
			area[i] += yEdge
		}
	})

	for i := range area {
		area[i] = rmath.Abs32(area[i])
	}
	return area
}

// strokePath computes distance-to-polyline stroke coverage for
// PixelsPerThread pixels starting at tile-local origin (x0, y) (spec
// ch.4.2, "stroke_path — distance-to-polyline stroke").
func strokePath(segments scenebuf.Segments, head int32, halfWidth float32, x0, y int) [scenebuf.PixelsPerThread]float32 {
	var df [scenebuf.PixelsPerThread]float32
	for i := range df {
		df[i] = 1e9
	}

	segments.Walk(head, func(seg scenebuf.Segment) {
		delta := rmath.Vec2{X: seg.DeltaX, Y: seg.DeltaY}
		denom := delta.Dot(delta) + degenerateEpsilon
		scale := 1 / denom
		origin := rmath.Vec2{X: seg.OriginX, Y: seg.OriginY}
		dpos0 := rmath.Vec2{X: float32(x0) + 0.5, Y: float32(y) + 0.5}.Sub(origin)

		for i := range df {
			dpos := dpos0.Add(rmath.Vec2{X: float32(i), Y: 0})
			t := rmath.Clamp32(dpos.Dot(delta)*scale, 0, 1)
			d := rmath.Vec2{X: delta.X*t - dpos.X, Y: delta.Y*t - dpos.Y}.Length()
			df[i] = rmath.Min32(df[i], d)
		}
	})

	var area [scenebuf.PixelsPerThread]float32
	for i := range area {
		area[i] = rmath.Clamp32(halfWidth+0.5-df[i], 0, 1)
	}
	return area
}
