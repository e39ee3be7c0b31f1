package parser

import (
	"oath/internal/source"
	"oath/internal/token"
)

// Stream is the token source of a parser scope.
type Stream interface {
	Next() (token.Tree, bool)
	PeekIsEmpty() bool
	EndOfFileSpan() source.Span
}

// groupStream reads the children of a group; its end sentinel is the close delimiter.
type groupStream struct {
	trees []token.Tree
	pos   int
	end   source.Span
}

func newGroupStream(g *token.Group) *groupStream {
	return &groupStream{trees: g.Trees, end: g.Close}
}

func (s *groupStream) Next() (token.Tree, bool) {
	if s.pos >= len(s.trees) {
		return token.Tree{}, false
	}
	t := s.trees[s.pos]
	s.pos++
	return t, true
}

func (s *groupStream) PeekIsEmpty() bool { return s.pos >= len(s.trees) }

func (s *groupStream) EndOfFileSpan() source.Span { return s.end }

// Trees builds a stream over already nested trees.
func Trees(trees []token.Tree, end source.Span) Stream {
	return &groupStream{trees: trees, end: end}
}
