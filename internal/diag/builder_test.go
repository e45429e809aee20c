package diag

import (
	"strings"
	"testing"

	"arkoi/internal/source"
)

func TestBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(10)
	b := ReportError(BagReporter{Bag: bag}, SynUnexpectedToken, source.Span{File: 0, Start: 1, End: 2}, "didn't expect ';'")
	b.Emit()
	b.Emit()
	if bag.Len() != 1 {
		t.Fatalf("len = %d, want 1", bag.Len())
	}
	d := bag.Items()[0]
	if d.Severity != SevError || d.Code != SynUnexpectedToken {
		t.Errorf("unexpected diagnostic %+v", d)
	}
}

func TestBuilderLabelsAndNotes(t *testing.T) {
	bag := NewBag(10)
	ReportError(BagReporter{Bag: bag}, ResNameAlreadyUsed, source.Span{Start: 10, End: 13}, "the name 'x' is already used").
		WithLabel(source.Span{Start: 0, End: 3}, "first declared here").
		WithNote("rename one of the declarations").
		Emit()

	d := bag.Items()[0]
	if len(d.Labels) != 2 {
		t.Fatalf("labels = %d, want 2", len(d.Labels))
	}
	if d.Primary() != (source.Span{Start: 10, End: 13}) {
		t.Errorf("primary = %v", d.Primary())
	}
	if len(d.Notes) != 1 || !strings.Contains(d.Notes[0], "rename") {
		t.Errorf("notes = %v", d.Notes)
	}
}

func TestBuilderPanicsOnOverlappingLabels(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for overlapping labels")
		}
	}()
	ReportError(NopReporter{}, SynUnexpectedToken, source.Span{Start: 0, End: 5}, "msg").
		WithLabel(source.Span{Start: 3, End: 8}, "overlaps the primary").
		Emit()
}

func TestCheckLabelsAllowsTouchingSpans(t *testing.T) {
	d := New(SevError, SynUnexpectedToken, source.Span{Start: 0, End: 5}, "msg").
		WithLabel(source.Span{Start: 5, End: 9}, "adjacent")
	if err := d.CheckLabels(); err != nil {
		t.Errorf("adjacent labels should be legal: %v", err)
	}
}

func TestReportBugSeverity(t *testing.T) {
	bag := NewBag(10)
	ReportBug(BagReporter{Bag: bag}, TypeMissingSymbol, source.Span{}, "symbol vanished").Emit()
	if got := bag.Items()[0].Severity; got != SevBug {
		t.Errorf("severity = %v, want bug", got)
	}
}

func TestNilBagReporterDiscards(t *testing.T) {
	r := BagReporter{}
	r.Report(New(SevError, LexBadNumber, source.Span{}, "msg"))
	// No panic is the assertion.
}
