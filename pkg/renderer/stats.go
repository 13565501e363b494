package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels   int           // Total number of pixels rendered
	TilesRendered int           // Number of tiles completed
	NumWorkers    int           // Workers used
	Elapsed       time.Duration // Wall-clock render time
}

// PixelsPerSecond returns the render throughput
func (s RenderStats) PixelsPerSecond() float64 {
	if s.Elapsed <= 0 {
		return 0
	}
	return float64(s.TotalPixels) / s.Elapsed.Seconds()
}
