package sharedcfg

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// File names within the shared configuration directory.
const (
	BarFileName  = "bar.yml"
	DataFileName = "data.json"
)

// Error sentinels for the loader failure modes, matchable via errors.Is.
var (
	// ErrConfigMissing means the expected configuration file is absent.
	ErrConfigMissing = errors.New("configuration file missing")
	// ErrConfigParse means the file exists but is not valid YAML/JSON.
	ErrConfigParse = errors.New("configuration file invalid")
)

// readConfigFile reads <dir>/<name> and returns its path and contents.
// Go source bytes are decoded as UTF-8 by the callers' decoders.
func readConfigFile(dir, name string) (string, []byte, error) {
	path := filepath.Join(dir, name)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return path, nil, fmt.Errorf("%w: %s", ErrConfigMissing, path)
		}
		return path, nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return path, data, nil
}

// LoadBar reads bar.yml from the given shared configuration directory and
// returns the deserialized Bar. Every call re-reads the file.
func LoadBar(dir string) (*Bar, error) {
	path, data, err := readConfigFile(dir, BarFileName)
	if err != nil {
		return nil, err
	}

	var cfg Bar
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	return &cfg, nil
}

// LoadBarMap reads bar.yml from the given shared configuration directory and
// returns the raw mapping unchanged, with no schema coercion.
func LoadBarMap(dir string) (map[string]any, error) {
	path, data, err := readConfigFile(dir, BarFileName)
	if err != nil {
		return nil, err
	}

	var cfg map[string]any
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	return cfg, nil
}

// LoadData reads data.json from the given shared configuration directory and
// returns the ordered list of strings it holds.
func LoadData(dir string) ([]string, error) {
	path, data, err := readConfigFile(dir, DataFileName)
	if err != nil {
		return nil, err
	}

	var items []string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConfigParse, path, err)
	}

	return items, nil
}
