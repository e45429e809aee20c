package lexer

import (
	"testing"

	"arkoi/internal/source"
)

func cursorFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.ark", []byte(content))
	return fs.Get(id)
}

func TestCursorSequentialReading(t *testing.T) {
	c := NewCursor(cursorFile("ab"))

	if c.EOF() {
		t.Error("expected not EOF at start")
	}
	if got := c.Peek(); got != 'a' {
		t.Errorf("Peek = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'a' {
		t.Errorf("Bump = %q, want 'a'", got)
	}
	if got := c.Bump(); got != 'b' {
		t.Errorf("Bump = %q, want 'b'", got)
	}
	if !c.EOF() {
		t.Error("expected EOF after last byte")
	}
	if got := c.Peek(); got != 0 {
		t.Errorf("Peek at EOF = %q, want 0", got)
	}
	if got := c.Bump(); got != 0 {
		t.Errorf("Bump at EOF = %q, want 0", got)
	}
}

func TestCursorPeek2(t *testing.T) {
	c := NewCursor(cursorFile("abc"))

	b0, b1, ok := c.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 = (%q, %q, %v), want ('a', 'b', true)", b0, b1, ok)
	}

	c.Bump()
	b0, b1, ok = c.Peek2()
	if !ok || b0 != 'b' || b1 != 'c' {
		t.Errorf("Peek2 = (%q, %q, %v), want ('b', 'c', true)", b0, b1, ok)
	}

	c.Bump()
	if _, _, ok := c.Peek2(); ok {
		t.Error("expected Peek2 to fail with one byte left")
	}
}

func TestCursorEat(t *testing.T) {
	c := NewCursor(cursorFile("a1"))

	if c.Eat('x') {
		t.Error("Eat('x') must not consume 'a'")
	}
	if !c.Eat('a') {
		t.Error("expected Eat('a') to consume")
	}
	if got := c.Peek(); got != '1' {
		t.Errorf("Peek after Eat = %q, want '1'", got)
	}
}

func TestCursorEatWhileAndSpanFrom(t *testing.T) {
	c := NewCursor(cursorFile("123abc"))

	m := c.Mark()
	c.EatWhile(isDec)
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Errorf("span = %d..%d, want 0..3", sp.Start, sp.End)
	}
	if got := c.Peek(); got != 'a' {
		t.Errorf("Peek after digits = %q, want 'a'", got)
	}

	c.Reset(m)
	if got := c.Peek(); got != '1' {
		t.Errorf("Peek after Reset = %q, want '1'", got)
	}
}
