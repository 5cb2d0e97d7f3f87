package sharedcfg

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// InitialBarYAML generates the default bar.yml content as YAML bytes.
// The generated YAML uses 2-space indentation.
func InitialBarYAML() ([]byte, error) {
	defaultConfig := Bar{
		BarTest: BarTest{FooTest: "zoo"},
	}

	var buf strings.Builder
	encoder := yaml.NewEncoder(&buf)
	encoder.SetIndent(2)
	if err := encoder.Encode(&defaultConfig); err != nil {
		return nil, fmt.Errorf("encoding default config: %w", err)
	}
	if err := encoder.Close(); err != nil {
		return nil, fmt.Errorf("closing yaml encoder: %w", err)
	}

	return []byte(buf.String()), nil
}

// InitialDataJSON generates the default data.json content as JSON bytes.
func InitialDataJSON() ([]byte, error) {
	defaultData := []string{"Lorem", "Ipsum", "Dolor", "Sit", "Amet"}

	data, err := json.MarshalIndent(defaultData, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding default data: %w", err)
	}

	return append(data, '\n'), nil
}
