package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arkoi/internal/diagfmt"
	"arkoi/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] file.ark",
	Short: "Parse an arkoi source file",
	Long:  `Parse builds the syntax tree of an arkoi source file and reports syntax errors`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	filePath := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	shared, err := readSharedOptions(cmd)
	if err != nil {
		return err
	}

	result, err := driver.Parse(filePath, shared.maxDiagnostics)
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	switch format {
	case "pretty":
		if result.Bag.Len() > 0 {
			opts := diagfmt.PrettyOpts{
				Color:    useColor(cmd, os.Stderr),
				PathMode: shared.pathMode,
			}
			if err := diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, opts); err != nil {
				return err
			}
		}
		items := 0
		if result.Builder != nil {
			items = len(result.Builder.Files.Get(result.FileID).Items)
		}
		ok := !result.Bag.HasErrors()
		detail := fmt.Sprintf("%d top-level declaration(s)", items)
		if !ok {
			detail = fmt.Sprintf("%d error(s)", result.Bag.ErrorCount())
		}
		printSummary(os.Stdout, useColor(cmd, os.Stdout), ok, detail)
	case "json":
		opts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         shared.pathMode,
			Max:              shared.maxDiagnostics,
		}
		if err := diagfmt.JSON(os.Stdout, result.Bag, result.FileSet, opts); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if result.Bag.HasErrors() {
		return errDiagnostics(cmd)
	}
	return nil
}
