package diag

import (
	"testing"

	"arkoi/internal/source"
)

func mkDiag(code Code, sev Severity, file source.FileID, start, end uint32) Diagnostic {
	return New(sev, code, source.Span{File: file, Start: start, End: end}, "test")
}

func TestBagCap(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(mkDiag(LexUnexpectedChar, SevError, 0, 0, 1)) {
		t.Fatal("first add rejected")
	}
	if !bag.Add(mkDiag(LexUnexpectedChar, SevError, 0, 1, 2)) {
		t.Fatal("second add rejected")
	}
	if bag.Add(mkDiag(LexUnexpectedChar, SevError, 0, 2, 3)) {
		t.Fatal("third add should hit the cap")
	}
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
}

func TestBagZeroMaxIsUncapped(t *testing.T) {
	bag := NewBag(0)
	for i := uint32(0); i < 100; i++ {
		if !bag.Add(mkDiag(LexUnexpectedChar, SevError, 0, i, i+1)) {
			t.Fatalf("add %d rejected", i)
		}
	}
	if bag.Len() != 100 {
		t.Fatalf("len = %d, want 100", bag.Len())
	}
}

func TestBagExtremeCaps(t *testing.T) {
	// A negative cap is treated as uncapped rather than panicking in make.
	bag := NewBag(-1)
	if !bag.Add(mkDiag(LexUnexpectedChar, SevError, 0, 0, 1)) {
		t.Fatal("add rejected on negative cap")
	}
	if bag.Cap() != 0 {
		t.Fatalf("Cap = %d, want 0", bag.Cap())
	}

	// Caps above 65535 must survive intact.
	big := NewBag(1 << 17)
	if big.Cap() != 1<<17 {
		t.Fatalf("Cap = %d, want %d", big.Cap(), 1<<17)
	}
	if !big.Add(mkDiag(LexUnexpectedChar, SevError, 0, 0, 1)) {
		t.Fatal("add rejected on large cap")
	}
}

func TestBagCounts(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(LexUnexpectedChar, SevError, 0, 0, 1))
	bag.Add(mkDiag(LexUnexpectedChar, SevWarning, 0, 1, 2))
	bag.Add(mkDiag(TypeMissingSymbol, SevBug, 0, 2, 3))

	if !bag.HasErrors() {
		t.Error("expected HasErrors")
	}
	// Bugs count as errors: they fail the stage too.
	if got := bag.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount = %d, want 2", got)
	}
	if got := bag.WarningCount(); got != 1 {
		t.Errorf("WarningCount = %d, want 1", got)
	}
}

func TestBagSort(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 1, 5, 6))
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 0, 9, 10))
	bag.Add(mkDiag(SynUnexpectedEOF, SevError, 0, 2, 3))
	bag.Sort()

	items := bag.Items()
	if items[0].Primary().Start != 2 || items[1].Primary().Start != 9 {
		t.Errorf("wrong in-file order: %v, %v", items[0].Primary(), items[1].Primary())
	}
	if items[2].Primary().File != 1 {
		t.Errorf("expected file 1 last, got %v", items[2].Primary())
	}
}

func TestBagSortSeverityBreaksTies(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SynUnexpectedToken, SevWarning, 0, 4, 5))
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 0, 4, 5))
	bag.Sort()
	if bag.Items()[0].Severity != SevError {
		t.Error("expected the error before the warning at the same span")
	}
}

func TestBagDedup(t *testing.T) {
	bag := NewBag(10)
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 0, 4, 5))
	bag.Add(mkDiag(SynUnexpectedToken, SevError, 0, 4, 5))
	bag.Add(mkDiag(SynUnexpectedEOF, SevError, 0, 4, 5))
	bag.Dedup()
	if bag.Len() != 2 {
		t.Fatalf("len = %d, want 2", bag.Len())
	}
}

func TestBagMerge(t *testing.T) {
	a := NewBag(1)
	a.Add(mkDiag(LexUnexpectedChar, SevError, 0, 0, 1))
	b := NewBag(1)
	b.Add(mkDiag(LexBadNumber, SevError, 0, 1, 2))

	a.Merge(b)
	if a.Len() != 2 {
		t.Fatalf("len = %d, want 2", a.Len())
	}
}
