package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hoshisato/dabops/config/bundleenv"
	"github.com/hoshisato/dabops/config/sharedcfg"
)

// chdir changes into dir for the duration of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getting working directory: %v", err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(oldWd); err != nil {
			t.Errorf("restoring working directory: %v", err)
		}
	})
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("changing to directory %q: %v", dir, err)
	}
}

func TestInitCommand(t *testing.T) {
	tests := []struct {
		name          string
		existingFiles map[string]string // path relative to project dir -> content
		forceFlag     bool
		wantErr       bool
		wantErrMsg    string
	}{
		{
			name:          "new_directory",
			existingFiles: nil,
			forceFlag:     false,
			wantErr:       false,
		},
		{
			name: "existing_bundle_no_force",
			existingFiles: map[string]string{
				"databricks.yml": "bundle:\n  name: old\n",
			},
			forceFlag:  false,
			wantErr:    true,
			wantErrMsg: "already exists",
		},
		{
			name: "existing_bundle_with_force",
			existingFiles: map[string]string{
				"databricks.yml": "bundle:\n  name: old\n",
			},
			forceFlag: true,
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			projectDir := filepath.Join(tmpDir, "dab_demo")
			if err := os.MkdirAll(projectDir, 0755); err != nil {
				t.Fatalf("creating project directory: %v", err)
			}

			for relPath, content := range tt.existingFiles {
				fullPath := filepath.Join(projectDir, relPath)
				if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
					t.Fatalf("creating parent directory: %v", err)
				}
				if err := os.WriteFile(fullPath, []byte(content), 0644); err != nil {
					t.Fatalf("creating existing file: %v", err)
				}
			}

			chdir(t, projectDir)

			cmd := newCmdInit()
			cmd.SetOut(&bytes.Buffer{})
			err := runInit(cmd, tt.forceFlag, "")

			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErrMsg)
				}
				if tt.wantErrMsg != "" && !strings.Contains(err.Error(), tt.wantErrMsg) {
					t.Fatalf("error = %v, want message containing %q", err, tt.wantErrMsg)
				}
				return
			}
			if err != nil {
				t.Fatalf("runInit() error: %v", err)
			}

			// The scaffold must resolve as a local project
			env, err := bundleenv.Resolve(projectDir)
			if err != nil {
				t.Fatalf("Resolve() after init error: %v", err)
			}
			if env.Mode != bundleenv.ModeLocal {
				t.Errorf("Mode = %s, want %s", env.Mode, bundleenv.ModeLocal)
			}
			for _, d := range []string{env.Resources(), env.Tests(), env.SharedConfig()} {
				info, err := os.Stat(d)
				if err != nil || !info.IsDir() {
					t.Errorf("expected directory %q after init (err: %v)", d, err)
				}
			}

			// Generated databricks.yml carries the derived bundle name
			data, err := os.ReadFile(filepath.Join(projectDir, bundleenv.LocalMarkerName))
			if err != nil {
				t.Fatalf("reading generated databricks.yml: %v", err)
			}
			var bundle struct {
				Bundle struct {
					Name string `yaml:"name"`
				} `yaml:"bundle"`
			}
			if err := yaml.Unmarshal(data, &bundle); err != nil {
				t.Fatalf("generated databricks.yml does not parse: %v", err)
			}
			if bundle.Bundle.Name != "dab_demo" {
				t.Errorf("bundle name = %q, want %q", bundle.Bundle.Name, "dab_demo")
			}

			// Generated shared config round-trips through the loaders
			cfg, err := sharedcfg.LoadBar(env.SharedConfig())
			if err != nil {
				t.Fatalf("LoadBar() after init error: %v", err)
			}
			if cfg.BarTest.FooTest != "zoo" {
				t.Errorf("foo_test = %q, want %q", cfg.BarTest.FooTest, "zoo")
			}
			items, err := sharedcfg.LoadData(env.SharedConfig())
			if err != nil {
				t.Fatalf("LoadData() after init error: %v", err)
			}
			if len(items) != 5 || items[0] != "Lorem" {
				t.Errorf("LoadData() = %v", items)
			}
		})
	}
}

func TestInitKeepsExistingSharedConfig(t *testing.T) {
	tmpDir := t.TempDir()
	projectDir := filepath.Join(tmpDir, "dab_demo")
	sharedDir := filepath.Join(tmpDir, "common_framework", "config")
	for _, d := range []string{projectDir, sharedDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatalf("creating directory %q: %v", d, err)
		}
	}
	custom := "bar_test:\n  foo_test: custom\n"
	if err := os.WriteFile(filepath.Join(sharedDir, sharedcfg.BarFileName), []byte(custom), 0644); err != nil {
		t.Fatalf("writing existing bar.yml: %v", err)
	}

	chdir(t, projectDir)

	cmd := newCmdInit()
	cmd.SetOut(&bytes.Buffer{})
	if err := runInit(cmd, false, ""); err != nil {
		t.Fatalf("runInit() error: %v", err)
	}

	cfg, err := sharedcfg.LoadBar(sharedDir)
	if err != nil {
		t.Fatalf("LoadBar() error: %v", err)
	}
	if cfg.BarTest.FooTest != "custom" {
		t.Errorf("foo_test = %q, existing shared config must be kept", cfg.BarTest.FooTest)
	}
}
