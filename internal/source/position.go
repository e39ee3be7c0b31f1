package source

import "fmt"

// Position is a zero-based line/column pair. Columns count bytes.
type Position struct {
	Line uint32
	Col  uint32
}

// Pos is a shorthand constructor.
func Pos(line, col uint32) Position {
	return Position{Line: line, Col: col}
}

// Compare orders positions lexicographically by (Line, Col).
func (p Position) Compare(o Position) int {
	switch {
	case p.Line < o.Line:
		return -1
	case p.Line > o.Line:
		return 1
	case p.Col < o.Col:
		return -1
	case p.Col > o.Col:
		return 1
	}
	return 0
}

func (p Position) Less(o Position) bool { return p.Compare(o) < 0 }

// Advance returns the position n columns to the right on the same line.
func (p Position) Advance(n uint32) Position {
	return Position{Line: p.Line, Col: p.Col + n}
}

// LineCol converts to a 1-based human position.
func (p Position) LineCol() LineCol {
	return LineCol{Line: p.Line + 1, Col: p.Col + 1}
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

func minPos(a, b Position) Position {
	if b.Less(a) {
		return b
	}
	return a
}

func maxPos(a, b Position) Position {
	if a.Less(b) {
		return b
	}
	return a
}
