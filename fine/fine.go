package fine

import (
	"github.com/gogpu/rastercore/internal/parallel"
	"github.com/gogpu/rastercore/ptcl"
	"github.com/gogpu/rastercore/scenebuf"
)

// Run interprets every tile's PTCL command stream and writes its
// TileWidth x TileWidth pixels into fb (spec ch.4.2). It is the fine
// rasterizer's dispatch entry point, one workgroup per tile.
//
// If pool is non-nil, tiles are processed across it; a nil pool runs
// tiles sequentially. The first error encountered (from any tile) is
// returned once all dispatched work has finished.
func Run(cfg scenebuf.Config, buf *ptcl.Buffer, segments scenebuf.Segments, fb *scenebuf.Framebuffer, pool *parallel.WorkerPool) error {
	slogger().Debug("fine dispatch", "width_in_tiles", cfg.WidthInTiles, "height_in_tiles", cfg.HeightInTiles)

	errs := make([]error, cfg.WidthInTiles*cfg.HeightInTiles)
	tasks := make([]func(), 0, len(errs))

	for ty := 0; ty < cfg.HeightInTiles; ty++ {
		for tx := 0; tx < cfg.WidthInTiles; tx++ {
			tx, ty := tx, ty
			tileIx := cfg.TileIndex(tx, ty)
			tasks = append(tasks, func() {
				errs[tileIx] = runTile(buf, segments, fb, tileIx, tx, ty)
			})
		}
	}

	if pool == nil {
		for _, t := range tasks {
			t()
		}
	} else {
		pool.ExecuteAll(tasks)
	}

	for _, err := range errs {
		if err != nil {
			slogger().Warn("fine: malformed PTCL", "error", err)
			return err
		}
	}
	return nil
}

func runTile(buf *ptcl.Buffer, segments scenebuf.Segments, fb *scenebuf.Framebuffer, tileIx, tx, ty int) error {
	originX := tx * scenebuf.TileWidth
	originY := ty * scenebuf.TileWidth

	for row := 0; row < scenebuf.TileWidth; row++ {
		for lane := 0; lane < scenebuf.TileWidth/scenebuf.PixelsPerThread; lane++ {
			laneX := lane * scenebuf.PixelsPerThread
			pixels, err := interpretLane(buf, segments, tileIx, laneX, row)
			if err != nil {
				return err
			}
			for i, v := range pixels {
				fb.Set(originX+laneX+i, originY+row, v)
			}
		}
	}
	return nil
}
