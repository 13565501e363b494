package loaders

import (
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // JPEG decoder
	_ "image/png"  // PNG decoder
	"io/fs"
	"os"
	"path/filepath"

	"github.com/df07/go-box-raycaster/pkg/core"
	"github.com/df07/go-box-raycaster/pkg/material"
)

// textureExtensions are tried in order when looking a texture up by name
var textureExtensions = []string{".png", ".jpg", ".jpeg"}

// LoadTexture loads a PNG or JPEG image as a texture with channels in [0, 1]
func LoadTexture(filename string) (*material.ImageTexture, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	defer file.Close()

	// Decode image (auto-detects PNG/JPEG from file header)
	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", filename, err)
	}

	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	pixels := make([]core.Vec3, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535], convert to [0, 1]
			pixels[y*width+x] = core.NewVec3(
				float64(r)/65535.0,
				float64(g)/65535.0,
				float64(b)/65535.0,
			)
		}
	}

	return material.NewImageTexture(width, height, pixels), nil
}

// LoadTextureSet loads each named texture from dir, trying .png, .jpg and .jpeg in turn.
// Textures that cannot be loaded are left out of the set and reported in the returned
// errors; materials using them fall back to their solid color.
func LoadTextureSet(dir string, names []string) (map[string]*material.ImageTexture, []error) {
	textures := make(map[string]*material.ImageTexture, len(names))
	var problems []error

	for _, name := range names {
		path, err := findTexture(dir, name)
		if err != nil {
			problems = append(problems, err)
			continue
		}
		tex, err := LoadTexture(path)
		if err != nil {
			problems = append(problems, fmt.Errorf("texture %q: %w", name, err))
			continue
		}
		textures[name] = tex
	}

	return textures, problems
}

func findTexture(dir, name string) (string, error) {
	for _, ext := range textureExtensions {
		path := filepath.Join(dir, name+ext)
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("texture %q: %w", name, err)
		}
	}
	return "", fmt.Errorf("texture %q: no image found in %s", name, dir)
}
