// Package bundleenv resolves the directory layout of a Databricks Asset
// Bundle demo project. It detects whether the process runs from the original
// local source tree or from a deployed bundle tree, and exposes the project
// directories as an immutable Env value that callers pass down explicitly.
package bundleenv

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Marker names that distinguish execution modes. The local marker is the
// bundle definition file present only in the original source tree; the
// bundle marker is the deployment state directory materialized next to the
// synced sources of a deployed bundle.
const (
	LocalMarkerName  = "databricks.yml"
	BundleMarkerName = ".bundle"
)

// Directory names within the resolved layout.
const (
	ResourcesDirName       = "resources"
	TestsDirName           = "tests"
	CommonFrameworkDirName = "common_framework"
	SharedConfigDirName    = "config"
)

// ErrNoProjectRoot is returned by Resolve when no ancestor of the start
// directory carries either execution mode marker.
var ErrNoProjectRoot = errors.New("project root not found")

// ExecutionMode indicates which layout the process is running from.
type ExecutionMode int

const (
	// ModeLocal means the original local source tree (databricks.yml present).
	ModeLocal ExecutionMode = iota
	// ModeBundle means a deployed bundle tree (.bundle/ present).
	ModeBundle
)

func (m ExecutionMode) String() string {
	switch m {
	case ModeLocal:
		return "local"
	case ModeBundle:
		return "bundle"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Env holds the resolved project root and execution mode. Values never
// change after construction; derived directories are computed from
// ProjectRoot on each call and are therefore always consistent with it.
type Env struct {
	ProjectRoot string        // Absolute path of the demo project directory
	Mode        ExecutionMode // Layout the root was detected under
}

// Probe reports whether dir is a project root, and under which mode.
// A custom Probe can be injected via WithProbe for deterministic tests.
type Probe func(dir string) (ExecutionMode, bool)

type options struct {
	probe Probe
}

// Option configures Resolve.
type Option func(*options)

// WithProbe replaces the default marker-file detection.
func WithProbe(p Probe) Option {
	return func(o *options) { o.probe = p }
}

// Resolve searches upward from workDir for a project root and returns the
// resolved Env.
//
// At each directory the local marker is tested before the bundle marker, so
// a directory carrying both resolves to ModeLocal (the original source
// layout wins over a deployed mirror). The first ancestor carrying any
// marker becomes the project root. If no ancestor carries a marker, the
// error wraps ErrNoProjectRoot and names the attempted locations.
func Resolve(workDir string, opts ...Option) (*Env, error) {
	o := options{probe: markerProbe}
	for _, opt := range opts {
		opt(&o)
	}

	absDir, err := filepath.Abs(workDir)
	if err != nil {
		return nil, fmt.Errorf("resolving start directory: %w", err)
	}
	absDir = filepath.Clean(absDir)

	current := absDir
	for {
		if mode, ok := o.probe(current); ok {
			return &Env{ProjectRoot: current, Mode: mode}, nil
		}
		parent := filepath.Dir(current)
		if parent == current {
			// Reached filesystem root without finding a marker
			return nil, fmt.Errorf("%w: no %s file or %s directory in ancestors of %q",
				ErrNoProjectRoot, LocalMarkerName, BundleMarkerName, absDir)
		}
		current = parent
	}
}

// markerProbe is the default mode detection: databricks.yml (file) marks a
// local source root, .bundle (directory) marks a deployed bundle root.
func markerProbe(dir string) (ExecutionMode, bool) {
	if info, err := os.Stat(filepath.Join(dir, LocalMarkerName)); err == nil && !info.IsDir() {
		return ModeLocal, true
	}
	if info, err := os.Stat(filepath.Join(dir, BundleMarkerName)); err == nil && info.IsDir() {
		return ModeBundle, true
	}
	return 0, false
}

// Resources returns the project resources directory.
func (e *Env) Resources() string {
	return filepath.Join(e.ProjectRoot, ResourcesDirName)
}

// Tests returns the project tests directory.
func (e *Env) Tests() string {
	return filepath.Join(e.ProjectRoot, TestsDirName)
}

// CommonFramework returns the sibling shared framework directory.
func (e *Env) CommonFramework() string {
	return filepath.Join(filepath.Dir(e.ProjectRoot), CommonFrameworkDirName)
}

// SharedConfig returns the shared configuration directory inside the
// common framework.
func (e *Env) SharedConfig() string {
	return filepath.Join(e.CommonFramework(), SharedConfigDirName)
}

var (
	defaultOnce sync.Once
	defaultEnv  *Env
	defaultErr  error
)

// Default resolves the Env from the current working directory once per
// process and returns the cached result on every subsequent call. Callers
// that can thread an Env explicitly should prefer Resolve.
func Default() (*Env, error) {
	defaultOnce.Do(func() {
		wd, err := os.Getwd()
		if err != nil {
			defaultErr = fmt.Errorf("getting working directory: %w", err)
			return
		}
		defaultEnv, defaultErr = Resolve(wd)
	})
	return defaultEnv, defaultErr
}
