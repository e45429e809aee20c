package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"arkoi/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the on-disk result cache",
	RunE:  runClean,
}

func runClean(cmd *cobra.Command, args []string) error {
	cache, err := driver.OpenDiskCache("arkoi")
	if err != nil {
		return fmt.Errorf("failed to open disk cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to drop disk cache: %w", err)
	}
	printSummary(os.Stdout, useColor(cmd, os.Stdout), true, "cache dropped")
	return nil
}
