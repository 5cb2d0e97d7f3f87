package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hoshisato/dabops/config/bundleenv"
	"github.com/hoshisato/dabops/config/sharedcfg"
	"github.com/hoshisato/dabops/internal/naming"
)

func newCmdInit() *cobra.Command {
	var forceFlag bool
	var nameFlag string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize a demo project layout",
		Long: `Initialize a demo project layout in the current directory.

The init command creates:
  - databricks.yml with a default development target
  - resources/ and tests/ directories
  - ../common_framework/config/ with default bar.yml and data.json

If -C is specified and the directory does not exist, it will be created
recursively (including parent directories). This is init-specific behavior;
other commands will error if the -C directory does not exist.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, forceFlag, nameFlag)
		},
	}

	cmd.Flags().BoolVarP(&forceFlag, "force", "f", false, "Overwrite existing files")
	cmd.Flags().StringVar(&nameFlag, "name", "", "Bundle name (default: derived from the directory name)")
	return cmd
}

func runInit(cmd *cobra.Command, forceFlag bool, name string) error {
	// Handle -C flag manually for init command (PersistentPreRunE skips init)
	var dir string
	if cmd.Flags().Changed("chdir") {
		dir, _ = cmd.Flags().GetString("chdir")
	} else if cmd.Parent() != nil && cmd.Parent().PersistentFlags().Changed("chdir") {
		dir, _ = cmd.Parent().PersistentFlags().GetString("chdir")
	}

	if dir != "" {
		// Create the directory if it doesn't exist (init-specific behavior)
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %q: %w", dir, err)
		}
		if err := os.Chdir(dir); err != nil {
			return fmt.Errorf("changing directory to %q: %w", dir, err)
		}
	}

	// Get working directory (after -C flag processing)
	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	if name == "" {
		name = naming.DefaultBundleName(workDir)
	}
	if err := naming.ValidateBundleName(name); err != nil {
		return err
	}

	// Define paths
	bundlePath := filepath.Join(workDir, bundleenv.LocalMarkerName)
	resourcesDir := filepath.Join(workDir, bundleenv.ResourcesDirName)
	testsDir := filepath.Join(workDir, bundleenv.TestsDirName)
	sharedDir := filepath.Join(filepath.Dir(workDir), bundleenv.CommonFrameworkDirName, bundleenv.SharedConfigDirName)

	// Check if databricks.yml already exists
	if !forceFlag {
		if _, err := os.Stat(bundlePath); err == nil {
			return fmt.Errorf("%s already exists (use -f to overwrite)", bundlePath)
		}
	}

	for _, d := range []string{resourcesDir, testsDir, sharedDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			return fmt.Errorf("creating %s directory: %w", d, err)
		}
	}

	// Generate databricks.yml content
	bundleData, err := bundleenv.InitialBundleYAML(name)
	if err != nil {
		return fmt.Errorf("generating bundle definition: %w", err)
	}
	if err := os.WriteFile(bundlePath, bundleData, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", bundlePath, err)
	}

	// Shared config files are kept when they already exist, unless forced
	writeSharedFile := func(path string, generate func() ([]byte, error)) error {
		if !forceFlag {
			if _, err := os.Stat(path); err == nil {
				return nil
			}
		}
		data, err := generate()
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		return nil
	}
	barPath := filepath.Join(sharedDir, sharedcfg.BarFileName)
	dataPath := filepath.Join(sharedDir, sharedcfg.DataFileName)
	if err := writeSharedFile(barPath, sharedcfg.InitialBarYAML); err != nil {
		return err
	}
	if err := writeSharedFile(dataPath, sharedcfg.InitialDataJSON); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Initialized bundle %s in %s\n", name, workDir)
	fmt.Fprintf(out, "Created:\n")
	fmt.Fprintf(out, "  - %s\n", bundlePath)
	fmt.Fprintf(out, "  - %s/\n", resourcesDir)
	fmt.Fprintf(out, "  - %s/\n", testsDir)
	fmt.Fprintf(out, "  - %s\n", barPath)
	fmt.Fprintf(out, "  - %s\n", dataPath)

	return nil
}
