package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	okStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	failStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	dimStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// printSummary writes the closing status line of a command. The
// detail part stays uncolored so the line survives plain terminals.
func printSummary(w io.Writer, colored, ok bool, detail string) {
	status := "ok"
	if !ok {
		status = "fail"
	}
	if colored {
		if ok {
			status = okStyle.Render(status)
		} else {
			status = failStyle.Render(status)
		}
		detail = dimStyle.Render(detail)
	}
	fmt.Fprintf(w, "%s: %s\n", status, detail)
}
