package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileFormat is the on-disk layout of a catalog override.
type fileFormat struct {
	Version      string        `yaml:"version"`
	Quests       []Quest       `yaml:"quests"`
	Achievements []Achievement `yaml:"achievements"`
}

// Load reads a YAML catalog from path. When the file has no achievements
// section the built-in achievements are used.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if len(f.Achievements) == 0 {
		f.Achievements = builtinAchievements
	}
	return New(f.Version, f.Quests, f.Achievements)
}

// Resolve returns the catalog at path, or the built-in one when path is empty.
func Resolve(path string) (*Catalog, error) {
	if path == "" {
		return Builtin(), nil
	}
	return Load(path)
}
