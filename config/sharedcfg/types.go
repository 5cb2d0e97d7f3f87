// Package sharedcfg reads the shared common-framework configuration files
// consumed by the demo project: bar.yml (YAML) and data.json (JSON).
// This package performs no validation beyond decoding; semantic checks on
// the contents are handled by callers.
package sharedcfg

// Bar is the root structure of bar.yml.
type Bar struct {
	BarTest BarTest `yaml:"bar_test"`
}

// BarTest holds the demo settings under the bar_test key.
type BarTest struct {
	FooTest string `yaml:"foo_test"`
}
