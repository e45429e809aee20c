package source

import (
	"testing"
)

func TestToLineCol(t *testing.T) {
	content := []byte("let a;\nlet bb;\n\nlet c;")
	lineIdx := buildLineIndex(content)

	tests := []struct {
		name string
		off  uint32
		want LineCol
	}{
		{"file start", 0, LineCol{Line: 1, Col: 1}},
		{"mid first line", 4, LineCol{Line: 1, Col: 5}},
		{"newline belongs to its line", 6, LineCol{Line: 1, Col: 7}},
		{"second line start", 7, LineCol{Line: 2, Col: 1}},
		{"mid second line", 11, LineCol{Line: 2, Col: 5}},
		{"empty line", 15, LineCol{Line: 3, Col: 1}},
		{"last line", 16, LineCol{Line: 4, Col: 1}},
		{"past last newline", 21, LineCol{Line: 4, Col: 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toLineCol(lineIdx, tt.off); got != tt.want {
				t.Errorf("toLineCol(%d) = %v, want %v", tt.off, got, tt.want)
			}
		})
	}
}

func TestToLineColSingleLine(t *testing.T) {
	lineIdx := buildLineIndex([]byte("let a;"))
	if got := toLineCol(lineIdx, 4); got != (LineCol{Line: 1, Col: 5}) {
		t.Errorf("got %v", got)
	}
}

func TestAddVirtualAssignsSequentialIDs(t *testing.T) {
	fs := NewFileSet()
	a := fs.AddVirtual("a.ark", []byte("let a;"))
	b := fs.AddVirtual("b.ark", []byte("let b;"))
	if a == b {
		t.Fatalf("expected distinct IDs, got %v twice", a)
	}
	if fs.Len() != 2 {
		t.Fatalf("expected 2 files, got %d", fs.Len())
	}
	if fs.Get(b).Path != "b.ark" {
		t.Errorf("unexpected path %q", fs.Get(b).Path)
	}
	if !fs.Get(a).IsVirtual() {
		t.Error("expected virtual flag")
	}
}

func TestRepeatedPathGetsFreshID(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("same.ark", []byte("let a;"))
	second := fs.AddVirtual("same.ark", []byte("let b;"))
	if first == second {
		t.Fatal("expected a fresh ID for the repeated path")
	}
	f, ok := fs.GetByPath("same.ark")
	if !ok || f.ID != second {
		t.Errorf("index should point at the latest version, got %v", f)
	}
}

func TestSnippet(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.ark", []byte("let answer = 42;"))
	got := fs.Snippet(Span{File: id, Start: 4, End: 10})
	if got != "answer" {
		t.Errorf("Snippet = %q, want %q", got, "answer")
	}
	// Out-of-range ends clamp instead of panicking.
	if got := fs.Snippet(Span{File: id, Start: 4, End: 999}); got != "answer = 42;" {
		t.Errorf("clamped Snippet = %q", got)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.ark", []byte("let a;\nlet bb;"))
	start, end := fs.Resolve(Span{File: id, Start: 7, End: 13})
	if start != (LineCol{Line: 2, Col: 1}) {
		t.Errorf("start = %v", start)
	}
	if end != (LineCol{Line: 2, Col: 7}) {
		t.Errorf("end = %v", end)
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.ark", []byte("first\nsecond\nthird"))
	f := fs.Get(id)
	tests := []struct {
		line uint32
		want string
	}{
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{0, ""},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc\n"))
	if !changed {
		t.Fatal("expected a change")
	}
	if string(out) != "a\nb\rc\n" {
		t.Errorf("got %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain\n"))
	if changed {
		t.Error("expected no change without \\r")
	}
	if string(out) != "plain\n" {
		t.Errorf("got %q", out)
	}
}

func TestRemoveBOM(t *testing.T) {
	out, had := removeBOM([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	if !had || string(out) != "hi" {
		t.Errorf("got %q, had=%v", out, had)
	}
	out, had = removeBOM([]byte("hi"))
	if had || string(out) != "hi" {
		t.Errorf("got %q, had=%v", out, had)
	}
}
