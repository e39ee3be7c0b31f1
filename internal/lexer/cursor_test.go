package lexer

import (
	"testing"

	"oath/internal/source"
)

func TestCursorTracksPositions(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("c.oath", []byte("ab\ncd")))
	c := NewCursor(f)

	m := c.Mark()
	c.BumpN(2)
	if got := c.SpanFrom(m); got != source.FromStartLen(f.ID, source.Pos(0, 0), 2) {
		t.Fatalf("span %v", got)
	}
	c.Bump() // '\n'
	if c.Pos != source.Pos(1, 0) {
		t.Fatalf("newline must move to the next line, got %v", c.Pos)
	}
	if !c.Eat('c') || c.Eat('x') {
		t.Fatalf("Eat mismatch")
	}
	c.Reset(m)
	if c.Off != 0 || c.Pos != source.Pos(0, 0) {
		t.Fatalf("reset failed: %d %v", c.Off, c.Pos)
	}
	for !c.EOF() {
		c.Bump()
	}
	if c.Bump() != 0 || c.Peek() != 0 {
		t.Fatalf("reads past EOF must return 0")
	}
	if c.Pos != f.PositionAt(c.Off) {
		t.Fatalf("cursor position %v disagrees with file %v", c.Pos, f.PositionAt(c.Off))
	}
}
