package lexer

import (
	"fmt"

	"arkoi/internal/diag"
	"arkoi/internal/source"
)

// Options configure one lexer instance.
type Options struct {
	// Reporter may be nil: errors are then dropped, but lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, format string, args ...any) {
	lx.errors++
	if lx.opts.Reporter == nil {
		return
	}
	diag.ReportError(lx.opts.Reporter, code, sp, fmt.Sprintf(format, args...)).Emit()
}
