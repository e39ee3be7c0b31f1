// Package ast holds the oath syntax tree and the grammar that builds it.
//
// Every production is a stateless rule type implementing parser.Rule; nodes own
// their children and are not modified after parsing. Each node embeds Node,
// whose span is the join of every token the node consumed.
package ast

import (
	"oath/internal/parser"
	"oath/internal/source"
)

// Node carries the span shared by every syntax node.
type Node struct {
	Loc source.Span
}

func (n Node) Span() source.Span { return n.Loc }

func at(p *parser.Parser, m parser.Mark) Node {
	return Node{Loc: p.SpanSince(m)}
}

// Parse parses a whole unit. It never fails: malformed input yields garbage
// items and diagnostics in the parser's context.
func Parse(p *parser.Parser) *SyntaxTree {
	tree, _ := SyntaxTreeRule{}.Parse(p)
	return tree
}

// SyntaxTree is the root: top-level items plus anything left unparsed.
type SyntaxTree struct {
	Node
	Items     []*Item
	Leftovers *parser.Skipped
}

type SyntaxTreeRule struct{}

func (SyntaxTreeRule) Desc() string { return "a file" }

func (SyntaxTreeRule) Detect(*parser.Parser) bool { return true }

func (SyntaxTreeRule) Parse(p *parser.Parser) (*SyntaxTree, parser.Exit) {
	m := p.Mark()
	var items []*Item
	for {
		batch, exit := parser.Many[*Item](p, ItemRule{})
		items = append(items, batch...)
		if !exit.IsCut() || p.IsEmpty() {
			break
		}
		// у файла нет объемлющей группы: пропускаем до начала следующего элемента
		gm := p.Mark()
		skipped := parser.SkipGarbage[*Item](p, ItemRule{})
		items = append(items, &Item{Node: at(p, gm), Garbage: &skipped})
	}
	tree := &SyntaxTree{Items: items, Leftovers: parser.TakeLeftovers(p)}
	tree.Node = at(p, m)
	return tree, parser.Complete
}
