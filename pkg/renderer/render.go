package renderer

import (
	"context"
	"fmt"
	"time"
)

// Render casts one primary ray per pixel and returns the finished framebuffer.
// The scene must not be modified until Render returns.
func (rt *Raytracer) Render(ctx context.Context) (*Framebuffer, RenderStats, error) {
	camera := rt.scene.GetCamera()
	if camera == nil {
		return nil, RenderStats{}, fmt.Errorf("scene has no camera")
	}
	config := camera.Config()
	if config.Width <= 0 || config.Height <= 0 {
		return nil, RenderStats{}, fmt.Errorf("invalid image size %dx%d", config.Width, config.Height)
	}

	fb := NewFramebuffer(config.Width, config.Height)
	pool := NewWorkerPool(rt.config.NumWorkers)
	tiles := NewTileGrid(config.Width, config.Height, rt.config.TileSize)

	tileRenderer := NewTileRenderer(rt, camera)

	start := time.Now()
	completed, err := pool.Run(ctx, tiles, func(tile *Tile) {
		tileRenderer.RenderTile(tile, fb)
	})

	stats := RenderStats{
		TotalPixels:   config.Width * config.Height,
		TilesRendered: completed,
		NumWorkers:    pool.GetNumWorkers(),
		Elapsed:       time.Since(start),
	}
	if err != nil {
		return nil, stats, fmt.Errorf("render cancelled after %d/%d tiles: %w", completed, len(tiles), err)
	}

	if rt.logger != nil {
		rt.logger.Printf("Rendered %dx%d in %v (%d tiles, %d workers, %s shadows)\n",
			config.Width, config.Height, stats.Elapsed, completed, stats.NumWorkers, rt.config.Shadows.Name())
	}
	return fb, stats, nil
}
