package diag

import (
	"fmt"

	"arkoi/internal/source"
)

// Label anchors a diagnostic to a source range, optionally with its own
// message ("expected ';' after this expression").
type Label struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one structured report. Labels are ordered and the first one
// is the primary location; Notes are free-text context lines without spans.
// A diagnostic is immutable after construction.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Labels   []Label
	Notes    []string
}

// Primary returns the span of the first label, or a zero span if the
// diagnostic has no labels (EOF reports).
func (d Diagnostic) Primary() source.Span {
	if len(d.Labels) == 0 {
		return source.Span{}
	}
	return d.Labels[0].Span
}

// CheckLabels verifies the construction invariant: no two labels of one
// diagnostic may have intersecting spans.
func (d Diagnostic) CheckLabels() error {
	for i := 0; i < len(d.Labels); i++ {
		for j := i + 1; j < len(d.Labels); j++ {
			a, b := d.Labels[i].Span, d.Labels[j].Span
			if a.Intersects(b) {
				return fmt.Errorf("overlapping labels %s and %s in %s", a, b, d.Code.ID())
			}
		}
	}
	return nil
}

// WithLabel returns a copy with one more label appended.
func (d Diagnostic) WithLabel(sp source.Span, msg string) Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Msg: msg})
	return d
}

// WithNote returns a copy with a free-text note appended.
func (d Diagnostic) WithNote(msg string) Diagnostic {
	d.Notes = append(d.Notes, msg)
	return d
}

// New builds a diagnostic with a single primary label.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Labels:   []Label{{Span: primary}},
	}
}

// NewError is a shortcut for New with SevError.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}
