package renderer

import (
	"context"
	"image"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// WorkerPool renders tiles in parallel with a fixed number of workers
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run calls render once per tile across the pool and returns how many tiles completed.
// Tiles not yet started when ctx is cancelled are skipped.
func (wp *WorkerPool) Run(ctx context.Context, tiles []*Tile, render func(*Tile)) (int, error) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	var completed atomic.Int64
	for _, tile := range tiles {
		if gctx.Err() != nil {
			break
		}
		tile := tile
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			render(tile)
			completed.Add(1)
			return nil
		})
	}

	err := g.Wait()
	done := int(completed.Load())
	if err == nil && done < len(tiles) {
		err = ctx.Err()
	}
	return done, err
}
