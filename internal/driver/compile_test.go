package driver

import (
	"os"
	"path/filepath"
	"testing"

	"arkoi/internal/diag"
)

func TestCompileSourceClean(t *testing.T) {
	src := `
let answer @u32 = 42;

fun add(a @u8, b @u8) @u8 {
	return a + b;
}
`
	res := CompileSource("clean.ark", []byte(src), Options{})
	if !res.OK() {
		t.Fatalf("expected success, failed at %s: %v", res.Failed, res.Bag.Items())
	}
	if res.Bag.Len() != 0 {
		t.Errorf("expected an empty bag, got %v", res.Bag.Items())
	}
	if res.Symbols == nil || res.Sema == nil || res.Types == nil {
		t.Error("expected every stage artifact on success")
	}
	if len(res.Sema.ExprTypes) == 0 {
		t.Error("expected computed expression types")
	}
}

func TestStageGatingLex(t *testing.T) {
	res := CompileSource("bad.ark", []byte("let x @u8 = #;"), Options{})
	if res.Failed != StageLex {
		t.Fatalf("failed stage = %s, want lex", res.Failed)
	}
	// The parser never ran: no syntax diagnostics may appear.
	for _, d := range res.Bag.Items() {
		if d.Code >= 2000 {
			t.Errorf("later-stage diagnostic leaked past the lex gate: %v", d)
		}
	}
	if res.Builder != nil {
		t.Error("no AST should be built for a file that does not lex")
	}
}

func TestStageGatingParse(t *testing.T) {
	res := CompileSource("bad.ark", []byte("let x = undeclared;"), Options{})
	if res.Failed != StageParse {
		t.Fatalf("failed stage = %s, want parse", res.Failed)
	}
	for _, d := range res.Bag.Items() {
		if d.Code < 2000 || d.Code >= 3000 {
			t.Errorf("non-syntax diagnostic in a parse failure: %v", d)
		}
	}
	if res.Symbols != nil {
		t.Error("resolution must not run after a failed parse")
	}
}

func TestStageGatingResolve(t *testing.T) {
	res := CompileSource("bad.ark", []byte("let x @u8 = missing;"), Options{})
	if res.Failed != StageResolve {
		t.Fatalf("failed stage = %s, want resolve", res.Failed)
	}
	for _, d := range res.Bag.Items() {
		if d.Code < 3000 || d.Code >= 4000 {
			t.Errorf("non-resolution diagnostic in a resolve failure: %v", d)
		}
	}
	if res.Sema != nil {
		t.Error("type checking must not run after failed resolution")
	}
}

func TestStageGatingCheck(t *testing.T) {
	res := CompileSource("bad.ark", []byte("let x @bool = 1;"), Options{})
	if res.Failed != StageCheck {
		t.Fatalf("failed stage = %s, want check", res.Failed)
	}
	for _, d := range res.Bag.Items() {
		if d.Code < 4000 {
			t.Errorf("earlier-stage diagnostic in a check failure: %v", d)
		}
	}
}

func TestMaxDiagnosticsCapsBag(t *testing.T) {
	src := "let a @u8 = m1;\nlet b @u8 = m2;\nlet c @u8 = m3;"
	res := CompileSource("bad.ark", []byte(src), Options{MaxDiagnostics: 2})
	if res.Failed != StageResolve {
		t.Fatalf("failed stage = %s", res.Failed)
	}
	if res.Bag.Len() != 2 {
		t.Errorf("bag len = %d, want the cap of 2", res.Bag.Len())
	}
	// The stage still counts every error, reported or not.
	if res.Symbols.Errors != 3 {
		t.Errorf("resolution errors = %d, want 3", res.Symbols.Errors)
	}
}

func TestMaxErrorsBudget(t *testing.T) {
	src := "let a @u8 = m1;\nlet b @u8 = m2;\nlet c @u8 = m3;"
	res := CompileSource("bad.ark", []byte(src), Options{MaxErrors: 1})
	if res.Failed != StageResolve {
		t.Fatalf("failed stage = %s", res.Failed)
	}
	if res.Bag.Len() != 1 {
		t.Errorf("bag len = %d, want 1 under a budget of 1", res.Bag.Len())
	}
}

func TestCompileReadsDisk(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ok.ark")
	if err := os.WriteFile(path, []byte("let x @u8 = 1;"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := Compile(path, Options{})
	if err != nil {
		t.Fatal(err)
	}
	if !res.OK() {
		t.Fatalf("failed at %s: %v", res.Failed, res.Bag.Items())
	}
}

func TestCompileMissingFile(t *testing.T) {
	if _, err := Compile(filepath.Join(t.TempDir(), "nope.ark"), Options{}); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestStageString(t *testing.T) {
	tests := []struct {
		stage Stage
		want  string
	}{
		{StageNone, "none"},
		{StageLex, "lex"},
		{StageParse, "parse"},
		{StageResolve, "resolve"},
		{StageCheck, "check"},
	}
	for _, tt := range tests {
		if got := tt.stage.String(); got != tt.want {
			t.Errorf("Stage(%d).String() = %q, want %q", tt.stage, got, tt.want)
		}
	}
}

func TestBugSeverityFailsCheckStage(t *testing.T) {
	// A bug diagnostic is still a failed stage.
	src := "let x @bool = 1;"
	res := CompileSource("bad.ark", []byte(src), Options{})
	if res.Failed == StageNone {
		t.Fatal("expected failure")
	}
	if !res.Bag.HasErrors() {
		t.Error("expected errors in the bag")
	}
	for _, d := range res.Bag.Items() {
		if d.Severity < diag.SevError {
			t.Errorf("unexpected sub-error severity: %v", d)
		}
	}
}
