package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"arkoi/internal/diag"
	"arkoi/internal/source"
)

// Pretty formats diagnostics for a terminal. It walks bag.Items() in
// order (call bag.Sort() beforehand for stable output) and prints, per
// diagnostic:
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//	  <line> | <source line>
//	         |        ^~~~ <label message>
//
// followed by secondary labels and free-text notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) error {
	primary := d.Primary()
	start, _ := fs.Resolve(primary)

	head := fmt.Sprintf("%s:%d:%d: %s %s: %s",
		displayPath(fs, primary.File, opts.PathMode),
		start.Line, start.Col,
		severityText(d.Severity, opts.Color),
		d.Code.ID(), d.Message)
	if _, err := fmt.Fprintln(w, head); err != nil {
		return err
	}

	for _, label := range d.Labels {
		if err := prettyLabel(w, label, fs, opts); err != nil {
			return err
		}
	}
	if opts.ShowNotes {
		for _, note := range d.Notes {
			if _, err := fmt.Fprintf(w, "  = note: %s\n", note); err != nil {
				return err
			}
		}
	}
	return nil
}

func prettyLabel(w io.Writer, label diag.Label, fs *source.FileSet, opts PrettyOpts) error {
	file := fs.Get(label.Span.File)
	if file == nil {
		return nil
	}
	start, end := fs.Resolve(label.Span)
	line := file.GetLine(start.Line)
	line = strings.TrimRight(line, "\n")

	if _, err := fmt.Fprintf(w, "%5d | %s\n", start.Line, line); err != nil {
		return err
	}

	// Underline only the portion on the first line; a multiline span
	// runs to the end of it.
	startCol := int(start.Col)
	endCol := int(end.Col)
	if end.Line != start.Line || endCol < startCol {
		endCol = len(line) + 1
	}
	prefix, marked := sliceCols(line, startCol, endCol)
	pad := strings.Repeat(" ", runewidth.StringWidth(prefix))
	width := runewidth.StringWidth(marked)
	caret := "^"
	if width > 1 {
		caret += strings.Repeat("~", width-1)
	}
	if opts.Color {
		caret = color.New(color.FgRed, color.Bold).Sprint(caret)
	}
	marker := "      | " + pad + caret
	if label.Msg != "" {
		marker += " " + label.Msg
	}
	_, err := fmt.Fprintln(w, marker)
	return err
}

// sliceCols splits a line at 1-based byte columns into the text before
// the span and the spanned text.
func sliceCols(line string, startCol, endCol int) (prefix, marked string) {
	if startCol < 1 {
		startCol = 1
	}
	if startCol > len(line)+1 {
		startCol = len(line) + 1
	}
	if endCol < startCol {
		endCol = startCol
	}
	if endCol > len(line)+1 {
		endCol = len(line) + 1
	}
	return line[:startCol-1], line[startCol-1 : endCol-1]
}

func displayPath(fs *source.FileSet, id source.FileID, mode PathMode) string {
	file := fs.Get(id)
	if file == nil {
		return "<unknown>"
	}
	if mode == PathModeBasename {
		return filepath.Base(file.Path)
	}
	return file.Path
}

func severityText(sev diag.Severity, colored bool) string {
	text := sev.String()
	if !colored {
		return text
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(text)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(text)
	case diag.SevBug:
		return color.New(color.FgMagenta, color.Bold).Sprint(text)
	default:
		return color.New(color.FgCyan).Sprint(text)
	}
}
