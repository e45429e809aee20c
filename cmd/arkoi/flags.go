package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"arkoi/internal/diagfmt"
	"arkoi/internal/driver"
)

// sharedOptions collects the persistent flags every subcommand
// interprets the same way.
type sharedOptions struct {
	maxDiagnostics int
	maxErrors      uint
	pathMode       diagfmt.PathMode
}

func readSharedOptions(cmd *cobra.Command) (sharedOptions, error) {
	flags := cmd.Root().PersistentFlags()

	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return sharedOptions{}, fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	maxErrors, err := flags.GetUint("max-errors")
	if err != nil {
		return sharedOptions{}, fmt.Errorf("failed to get max-errors flag: %w", err)
	}
	fullPath, err := flags.GetBool("fullpath")
	if err != nil {
		return sharedOptions{}, fmt.Errorf("failed to get fullpath flag: %w", err)
	}

	pathMode := diagfmt.PathModeBasename
	if fullPath {
		pathMode = diagfmt.PathModeFull
	}

	return sharedOptions{
		maxDiagnostics: maxDiagnostics,
		maxErrors:      maxErrors,
		pathMode:       pathMode,
	}, nil
}

func (o sharedOptions) driverOptions() driver.Options {
	return driver.Options{
		MaxDiagnostics: o.maxDiagnostics,
		MaxErrors:      o.maxErrors,
	}
}

// errDiagnostics makes the process exit non-zero without cobra
// repeating what the diagnostics already said.
func errDiagnostics(cmd *cobra.Command) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	return fmt.Errorf("")
}
