package main

import (
	"io/ioutil"

	"gopkg.in/yaml.v2"
)

// Settings holds the CLI-level knobs that aren't part of the mesh
// algorithm itself, grounded on the teacher's sample settings files: a
// small YAML-loadable struct with documented defaults rather than a web
// of flags.
type Settings struct {
	// Epsilon overrides the convexity tolerance used by the merge engine.
	// Zero means "use the package default".
	Epsilon float64 `yaml:"epsilon"`
	// EmitOBJ additionally writes a triangulated Wavefront .obj of the
	// merged mesh next to the input file (FILE.mesh.obj), for visual
	// inspection.
	EmitOBJ bool `yaml:"emit_obj"`
}

// NewSettings returns the default Settings.
func NewSettings() *Settings {
	return &Settings{
		Epsilon: 1e-8,
		EmitOBJ: false,
	}
}

func loadSettings(path string) (*Settings, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := NewSettings()
	if err := yaml.Unmarshal(buf, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Settings) writeTo(path string) error {
	buf, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return ioutil.WriteFile(path, buf, 0644)
}
