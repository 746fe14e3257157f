package sampler

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ivlev/svg2pptx/internal/model"
)

// sceneFile is the on-disk YAML layout for exported scene sequences.
type sceneFile struct {
	Version string                 `yaml:"version"`
	Scenes  []model.AnimationScene `yaml:"scenes"`
}

const sceneFileVersion = "1.0"

// WriteScenes writes a sampled scene sequence to a YAML file for
// offline inspection.
func WriteScenes(scenes []*model.AnimationScene, path string) error {
	file := sceneFile{Version: sceneFileVersion}
	for _, s := range scenes {
		file.Scenes = append(file.Scenes, *s)
	}
	data, err := yaml.Marshal(&file)
	if err != nil {
		return fmt.Errorf("encoding scenes: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ReadScenes reads a scene sequence previously written by WriteScenes.
func ReadScenes(path string) ([]*model.AnimationScene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file sceneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decoding scenes: %w", err)
	}
	out := make([]*model.AnimationScene, len(file.Scenes))
	for i := range file.Scenes {
		out[i] = &file.Scenes[i]
	}
	return out, nil
}
