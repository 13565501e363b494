package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"

	"github.com/df07/go-box-raycaster/pkg/geometry"
	"github.com/df07/go-box-raycaster/pkg/lights"
	"github.com/df07/go-box-raycaster/pkg/loaders"
	"github.com/df07/go-box-raycaster/pkg/renderer"
	"github.com/df07/go-box-raycaster/pkg/scene"
)

// sunStep is how far the sun moves along its orbit between animation frames
const sunStep = 0.05

// glogLogger routes renderer logging to glog
type glogLogger struct{}

func (glogLogger) Printf(format string, args ...interface{}) {
	glog.InfoDepth(1, fmt.Sprintf(strings.TrimSuffix(format, "\n"), args...))
}

type options struct {
	sceneID  string
	width    int
	height   int
	workers  int
	tileSize int
	maxDepth int
	shadows  string
	assets   string
	frames   int
	output   string
}

func main() {
	var opts options
	flag.StringVar(&opts.sceneID, "scene", "diorama", "Scene to render (see -list)")
	flag.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	flag.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	flag.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = CPU count)")
	flag.IntVar(&opts.tileSize, "tile", 32, "Tile size in pixels")
	flag.IntVar(&opts.maxDepth, "depth", renderer.MaxRecursionDepth, "Maximum reflection/refraction depth (1-3)")
	flag.StringVar(&opts.shadows, "shadows", "opacity", "Shadow policy: 'opacity' or 'falloff'")
	flag.StringVar(&opts.assets, "assets", "assets", "Directory holding scene textures")
	flag.IntVar(&opts.frames, "frames", 1, "Number of frames; more than one orbits the sun into an animated GIF")
	flag.StringVar(&opts.output, "out", "", "Output file (default output/<scene>/render.png or .gif)")
	list := flag.Bool("list", false, "List available scenes and exit")
	logToConsole()
	flag.Parse()
	defer glog.Flush()

	if *list {
		for _, info := range scene.ListScenes() {
			fmt.Printf("  %-16s %s\n", info.ID, info.Description)
		}
		return
	}

	if err := run(context.Background(), opts); err != nil {
		glog.Exitf("Render failed: %v", err)
	}
}

// logToConsole makes glog print progress to stderr by default.
// Passing -logtostderr=false restores glog's log files.
func logToConsole() {
	if err := flag.Set("logtostderr", "true"); err != nil {
		glog.Warningf("Could not enable console logging: %v", err)
	}
}

func run(ctx context.Context, opts options) error {
	s, err := createScene(opts.sceneID, opts.assets, opts.width, opts.height)
	if err != nil {
		return err
	}

	if opts.maxDepth < 1 || opts.maxDepth > renderer.MaxRecursionDepth {
		return fmt.Errorf("depth %d out of range 1-%d", opts.maxDepth, renderer.MaxRecursionDepth)
	}

	policy, err := lights.ParseShadowPolicy(opts.shadows)
	if err != nil {
		return err
	}
	config := renderer.Config{
		MaxDepth:   opts.maxDepth,
		NumWorkers: opts.workers,
		TileSize:   opts.tileSize,
		Shadows:    policy,
	}

	output := opts.output
	if output == "" {
		ext := ".png"
		if opts.frames > 1 {
			ext = ".gif"
		}
		output = filepath.Join("output", opts.sceneID, "render"+ext)
	}
	if err := os.MkdirAll(filepath.Dir(output), 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	frames, err := renderFrames(ctx, s, config, max(1, opts.frames))
	if err != nil {
		return err
	}

	if len(frames) == 1 {
		err = loaders.SavePNG(output, frames[0])
	} else {
		err = loaders.SaveAnimatedGIF(output, frames, 5)
	}
	if err != nil {
		return err
	}
	glog.Infof("Render saved as %s", output)
	return nil
}

// createScene builds and validates a built-in scene, loading its textures from assets when it uses any
func createScene(id, assets string, width, height int) (*scene.Scene, error) {
	info, ok := scene.LookupScene(id)
	if !ok {
		return nil, fmt.Errorf("unknown scene %q (use -list to see available scenes)", id)
	}

	var textures scene.TextureSet
	if info.Textured {
		var problems []error
		textures, problems = loaders.LoadTextureSet(assets, scene.TextureNames)
		for _, p := range problems {
			glog.Warningf("Using fallback color: %v", p)
		}
	}

	s, err := scene.CreateScene(id, textures, geometry.CameraConfig{Width: width, Height: height})
	if err != nil {
		return nil, err
	}

	warnings, err := s.Validate()
	if err != nil {
		return nil, fmt.Errorf("scene %q is invalid: %w", id, err)
	}
	for _, w := range warnings {
		glog.Warningf("Scene %s: %s", id, w)
	}
	return s, nil
}

// renderFrames renders count frames, moving the sun along its orbit between them
func renderFrames(ctx context.Context, s *scene.Scene, config renderer.Config, count int) ([]image.Image, error) {
	frames := make([]image.Image, 0, count)
	t := 0.0
	for i := 0; i < count; i++ {
		if count > 1 {
			s.OrbitSun(t)
			t += sunStep
		}

		rt := renderer.NewRaytracer(s, config)
		rt.SetLogger(glogLogger{})
		fb, _, err := rt.Render(ctx)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		frames = append(frames, fb.ToImage())
	}
	return frames, nil
}
