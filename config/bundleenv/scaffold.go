package bundleenv

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// bundleFile represents the structure of a generated databricks.yml.
type bundleFile struct {
	Bundle  bundleSection           `yaml:"bundle"`
	Targets map[string]targetConfig `yaml:"targets"`
}

type bundleSection struct {
	Name string `yaml:"name"`
}

type targetConfig struct {
	Mode    string `yaml:"mode"`
	Default bool   `yaml:"default,omitempty"`
}

// InitialBundleYAML generates the initial databricks.yml content for a new
// demo project as YAML bytes, with a single default development target.
// The generated YAML uses 2-space indentation.
func InitialBundleYAML(name string) ([]byte, error) {
	bundle := bundleFile{
		Bundle: bundleSection{Name: name},
		Targets: map[string]targetConfig{
			"dev": {Mode: "development", Default: true},
		},
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&bundle); err != nil {
		return nil, fmt.Errorf("encoding bundle definition: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}

	return []byte(buf.String()), nil
}
