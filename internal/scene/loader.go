package scene

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demoYAML []byte

// Load reads and builds a scene from a YAML file. An empty path loads
// the embedded demo scene.
func Load(path string) (*Scene, error) {
	if path == "" {
		return Demo(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene %s: %w", path, err)
	}

	sc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load scene %s: %w", path, err)
	}
	return sc, nil
}

// Parse builds a scene from raw YAML.
func Parse(data []byte) (*Scene, error) {
	var def sceneDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return build(def)
}

// Demo returns the embedded demo scene. The embedded file is validated
// by the package tests, so a parse failure here means a broken build.
func Demo() *Scene {
	sc, err := Parse(demoYAML)
	if err != nil {
		panic(fmt.Sprintf("scene: embedded demo scene is invalid: %v", err))
	}
	return sc
}
