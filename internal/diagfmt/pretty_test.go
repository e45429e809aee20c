package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"arkoi/internal/diag"
	"arkoi/internal/source"
)

func testFixture() (*diag.Bag, *source.FileSet) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("dir/test.ark", []byte("let answer @u32 = wrong;\nlet other @u8;"))

	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.ResSymbolNotFound,
		source.Span{File: id, Start: 18, End: 23},
		"the symbol 'wrong' was not found").
		WithNote("declare it before use"))
	return bag, fs
}

func TestPrettyHeader(t *testing.T) {
	bag, fs := testFixture()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeBasename}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if !strings.HasPrefix(out, "test.ark:1:19: error ARK3001: the symbol 'wrong' was not found\n") {
		t.Errorf("header:\n%s", out)
	}
}

func TestPrettyFullPath(t *testing.T) {
	bag, fs := testFixture()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{PathMode: PathModeFull}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "dir/test.ark:1:19:") {
		t.Errorf("output:\n%s", buf.String())
	}
}

func TestPrettyGutterAndCarets(t *testing.T) {
	bag, fs := testFixture()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(buf.String(), "\n")
	if len(lines) < 3 {
		t.Fatalf("output too short:\n%s", buf.String())
	}
	if lines[1] != "    1 | let answer @u32 = wrong;" {
		t.Errorf("gutter line: %q", lines[1])
	}
	wantCaret := "      | " + strings.Repeat(" ", 18) + "^~~~~"
	if lines[2] != wantCaret {
		t.Errorf("caret line: %q, want %q", lines[2], wantCaret)
	}
}

func TestPrettyNotesGated(t *testing.T) {
	bag, fs := testFixture()

	var without bytes.Buffer
	if err := Pretty(&without, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(without.String(), "note:") {
		t.Error("notes printed without ShowNotes")
	}

	var with bytes.Buffer
	if err := Pretty(&with, bag, fs, PrettyOpts{ShowNotes: true}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(with.String(), "= note: declare it before use") {
		t.Errorf("missing note:\n%s", with.String())
	}
}

func TestPrettySecondaryLabel(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.ark", []byte("let x @u8;\nlet x @u8;"))

	bag := diag.NewBag(0)
	bag.Add(diag.New(diag.SevError, diag.ResNameAlreadyUsed,
		source.Span{File: id, Start: 15, End: 16},
		"the name 'x' is already used").
		WithLabel(source.Span{File: id, Start: 4, End: 5}, "first declared here"))

	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "first declared here") {
		t.Errorf("missing secondary label:\n%s", out)
	}
	if !strings.Contains(out, "    2 | let x @u8;") {
		t.Errorf("missing primary gutter line:\n%s", out)
	}
	if !strings.Contains(out, "    1 | let x @u8;") {
		t.Errorf("missing secondary gutter line:\n%s", out)
	}
}

func TestJSONShape(t *testing.T) {
	bag, fs := testFixture()
	var buf bytes.Buffer
	err := JSON(&buf, bag, fs, JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	})
	if err != nil {
		t.Fatal(err)
	}

	var out DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "error" || d.Code != "ARK3001" {
		t.Errorf("got %+v", d)
	}
	if len(d.Labels) != 1 {
		t.Fatalf("labels = %d", len(d.Labels))
	}
	loc := d.Labels[0].Location
	if loc.File != "test.ark" || loc.StartByte != 18 || loc.EndByte != 23 {
		t.Errorf("location = %+v", loc)
	}
	if loc.StartLine != 1 || loc.StartCol != 19 {
		t.Errorf("position = %+v", loc)
	}
	if len(d.Notes) != 1 {
		t.Errorf("notes = %v", d.Notes)
	}
}

func TestJSONMaxCapsOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("t.ark", []byte("abc"))
	bag := diag.NewBag(0)
	for i := uint32(0); i < 5; i++ {
		bag.Add(diag.New(diag.SevError, diag.LexUnexpectedChar,
			source.Span{File: id, Start: i, End: i + 1}, "x"))
	}

	out := BuildDiagnosticsOutput(bag, fs, JSONOpts{Max: 2})
	if out.Count != 2 || len(out.Diagnostics) != 2 {
		t.Errorf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
}
