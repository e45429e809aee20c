package diag

import (
	"arkoi/internal/source"
)

// ReportBuilder accumulates diagnostic details before emitting to a Reporter.
type ReportBuilder struct {
	reporter Reporter
	diag     Diagnostic
	emitted  bool
}

// NewReportBuilder constructs a builder bound to a Reporter. The primary
// span becomes the first label.
func NewReportBuilder(r Reporter, sev Severity, code Code, primary source.Span, msg string) *ReportBuilder {
	return &ReportBuilder{
		reporter: r,
		diag:     New(sev, code, primary, msg),
	}
}

// ReportError is a shortcut for SevError diagnostics.
func ReportError(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevError, code, primary, msg)
}

// ReportWarning is a shortcut for SevWarning diagnostics.
func ReportWarning(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevWarning, code, primary, msg)
}

// ReportBug is a shortcut for SevBug diagnostics (violated pipeline
// invariants).
func ReportBug(r Reporter, code Code, primary source.Span, msg string) *ReportBuilder {
	return NewReportBuilder(r, SevBug, code, primary, msg)
}

// WithPrimaryMsg sets the message of the primary label.
func (b *ReportBuilder) WithPrimaryMsg(msg string) *ReportBuilder {
	if b == nil || len(b.diag.Labels) == 0 {
		return b
	}
	b.diag.Labels[0].Msg = msg
	return b
}

// WithLabel appends a secondary label.
func (b *ReportBuilder) WithLabel(sp source.Span, msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithLabel(sp, msg)
	return b
}

// WithNote appends a free-text note.
func (b *ReportBuilder) WithNote(msg string) *ReportBuilder {
	if b == nil {
		return nil
	}
	b.diag = b.diag.WithNote(msg)
	return b
}

// Emit validates the label invariant and sends the diagnostic to the
// underlying reporter exactly once. Overlapping labels are a defect in the
// reporting call site, so Emit panics rather than producing a malformed
// report.
func (b *ReportBuilder) Emit() {
	if b == nil || b.emitted {
		return
	}
	if err := b.diag.CheckLabels(); err != nil {
		panic(err)
	}
	if b.reporter != nil {
		b.reporter.Report(b.diag)
	}
	b.emitted = true
}

// Diagnostic returns the accumulated diagnostic without emitting.
func (b *ReportBuilder) Diagnostic() Diagnostic {
	if b == nil {
		return Diagnostic{}
	}
	return b.diag
}
