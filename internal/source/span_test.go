package source

import "testing"

func TestSpanCover(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want Span
	}{
		{"disjoint", Span{File: 1, Start: 0, End: 3}, Span{File: 1, Start: 10, End: 12}, Span{File: 1, Start: 0, End: 12}},
		{"nested", Span{File: 1, Start: 0, End: 20}, Span{File: 1, Start: 5, End: 8}, Span{File: 1, Start: 0, End: 20}},
		{"overlap", Span{File: 1, Start: 3, End: 9}, Span{File: 1, Start: 6, End: 14}, Span{File: 1, Start: 3, End: 14}},
		{"reversed", Span{File: 1, Start: 10, End: 12}, Span{File: 1, Start: 0, End: 3}, Span{File: 1, Start: 0, End: 12}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Cover(tt.b)
			if got != tt.want {
				t.Errorf("Cover(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpanCoverOtherFile(t *testing.T) {
	// Spans from different files cannot combine; the receiver wins.
	sp := Span{File: 1, Start: 4, End: 9}
	if got := sp.Cover(Span{File: 2, Start: 0, End: 100}); got != sp {
		t.Errorf("cross-file cover changed %v to %v", sp, got)
	}
}

func TestSpanIntersects(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"overlap", Span{File: 1, Start: 0, End: 5}, Span{File: 1, Start: 3, End: 8}, true},
		{"touching", Span{File: 1, Start: 0, End: 5}, Span{File: 1, Start: 5, End: 8}, false},
		{"disjoint", Span{File: 1, Start: 0, End: 5}, Span{File: 1, Start: 6, End: 8}, false},
		{"other file", Span{File: 1, Start: 0, End: 5}, Span{File: 2, Start: 3, End: 8}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Intersects(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestSpanContains(t *testing.T) {
	sp := Span{File: 1, Start: 2, End: 6}
	if !sp.Contains(2) || !sp.Contains(5) {
		t.Error("expected offsets 2 and 5 inside [2,6)")
	}
	if sp.Contains(1) || sp.Contains(6) {
		t.Error("expected offsets 1 and 6 outside [2,6)")
	}
}

func TestSpanLen(t *testing.T) {
	if got := (Span{Start: 3, End: 9}).Len(); got != 6 {
		t.Errorf("Len = %d, want 6", got)
	}
	if !(Span{Start: 4, End: 4}).Empty() {
		t.Error("expected zero-length span to be empty")
	}
}
