package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arkoi/internal/diagfmt"
	"arkoi/internal/driver"
	"arkoi/internal/project"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.ark|directory>",
	Short: "Run the full front end over arkoi sources",
	Long:  `Check lexes, parses, resolves and type checks a single arkoi file or every *.ark file under a directory`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("disk-cache", false, "reuse cached results for unchanged files")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer stopProfiling()

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}
	useCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	shared, err := readSharedOptions(cmd)
	if err != nil {
		return err
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", path, err)
	}
	if info.IsDir() {
		return checkDir(cmd, path, format, jobs, useCache, withNotes, shared)
	}
	return checkFile(cmd, path, format, withNotes, shared)
}

func checkFile(cmd *cobra.Command, path, format string, withNotes bool, shared sharedOptions) error {
	result, err := driver.Compile(path, shared.driverOptions())
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	if err := renderResult(cmd, result, format, withNotes, shared); err != nil {
		return err
	}
	if format == "pretty" {
		detail := path
		if !result.OK() {
			detail = fmt.Sprintf("%s stopped at %s with %d error(s)", path, result.Failed, result.Bag.ErrorCount())
		}
		printSummary(os.Stdout, useColor(cmd, os.Stdout), result.OK(), detail)
	}
	if !result.OK() {
		return errDiagnostics(cmd)
	}
	return nil
}

func checkDir(cmd *cobra.Command, dir, format string, jobs int, useCache, withNotes bool, shared sharedOptions) error {
	opts := shared.driverOptions()

	// Manifest settings fill in whatever the flags left at defaults.
	if manifest, found, err := project.Discover(dir); err != nil {
		return err
	} else if found {
		if jobs == 0 {
			jobs = manifest.Config.Build.Jobs
		}
		if !cmd.Root().PersistentFlags().Changed("max-errors") && manifest.Config.Build.MaxErrors > 0 {
			opts.MaxErrors = manifest.Config.Build.MaxErrors
		}
		if !cmd.Root().PersistentFlags().Changed("max-diagnostics") && manifest.Config.Build.MaxDiagnostics > 0 {
			opts.MaxDiagnostics = manifest.Config.Build.MaxDiagnostics
		}
	}

	var cache *driver.DiskCache
	if useCache {
		var err error
		cache, err = driver.OpenDiskCache("arkoi")
		if err != nil {
			return fmt.Errorf("failed to open disk cache: %w", err)
		}
	}

	results, err := driver.CompileDir(cmd.Context(), dir, opts, jobs, cache)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	failed := 0
	cached := 0
	for _, r := range results {
		if r.CacheHit {
			cached++
		}
		if !r.Result.OK() {
			failed++
		}
		if err := renderResult(cmd, r.Result, format, withNotes, shared); err != nil {
			return err
		}
	}

	if format == "pretty" {
		detail := fmt.Sprintf("%d file(s)", len(results))
		if cached > 0 {
			detail += fmt.Sprintf(", %d cached", cached)
		}
		if failed > 0 {
			detail += fmt.Sprintf(", %d failed", failed)
		}
		printSummary(os.Stdout, useColor(cmd, os.Stdout), failed == 0, detail)
	}
	if failed > 0 {
		return errDiagnostics(cmd)
	}
	return nil
}

func renderResult(cmd *cobra.Command, result *driver.Result, format string, withNotes bool, shared sharedOptions) error {
	switch format {
	case "pretty":
		if result.Bag.Len() == 0 {
			return nil
		}
		opts := diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			PathMode:  shared.pathMode,
			ShowNotes: withNotes,
		}
		return diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts)
	case "json":
		opts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         shared.pathMode,
			Max:              shared.maxDiagnostics,
			IncludeNotes:     withNotes,
		}
		return diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, opts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
