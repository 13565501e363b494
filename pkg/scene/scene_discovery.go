package scene

import (
	"fmt"
	"sort"

	"github.com/df07/go-box-raycaster/pkg/geometry"
)

// SceneInfo describes a built-in scene
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	DisplayName string `json:"displayName"` // UI display name
	Description string `json:"description"` // Optional description
	Textured    bool   `json:"textured"`    // Whether the scene uses a TextureSet
}

type builder func(textures TextureSet, overrides ...geometry.CameraConfig) *Scene

type registration struct {
	info  SceneInfo
	build builder
}

var builtinScenes = map[string]registration{
	"single-box": {
		info: SceneInfo{ID: "single-box", DisplayName: "Single Box", Description: "One box lit from above, seen from above"},
		build: func(_ TextureSet, overrides ...geometry.CameraConfig) *Scene {
			return NewSingleBoxScene(overrides...)
		},
	},
	"stacked-shadow": {
		info: SceneInfo{ID: "stacked-shadow", DisplayName: "Stacked Shadow", Description: "Stacked boxes casting a hard shadow on a distant wall"},
		build: func(_ TextureSet, overrides ...geometry.CameraConfig) *Scene {
			return NewStackedShadowScene(overrides...)
		},
	},
	"glass": {
		info: SceneInfo{ID: "glass", DisplayName: "Glass and Mirror", Description: "Reflection, refraction and an emissive block"},
		build: func(_ TextureSet, overrides ...geometry.CameraConfig) *Scene {
			return NewGlassScene(overrides...)
		},
	},
	"diorama": {
		info:  SceneInfo{ID: "diorama", DisplayName: "Diorama", Description: "Textured block world with an orbiting sun", Textured: true},
		build: NewDioramaScene,
	},
}

// ListScenes returns the built-in scenes sorted by ID
func ListScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtinScenes))
	for _, r := range builtinScenes {
		scenes = append(scenes, r.info)
	}
	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].ID < scenes[j].ID
	})
	return scenes
}

// CreateScene builds the built-in scene with the given ID
func CreateScene(id string, textures TextureSet, cameraOverrides ...geometry.CameraConfig) (*Scene, error) {
	r, ok := builtinScenes[id]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q", id)
	}
	return r.build(textures, cameraOverrides...), nil
}

// LookupScene returns the description of the built-in scene with the given ID
func LookupScene(id string) (SceneInfo, bool) {
	r, ok := builtinScenes[id]
	return r.info, ok
}
