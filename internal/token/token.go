package token

import (
	"oath/internal/source"
)

// Literal is the payload of a TreeLiteral. Raw holds the source text without
// the suffix; for Str and Char it excludes the quotes and keeps escapes as written.
type Literal struct {
	Kind   LitKind
	Raw    string
	Suffix source.StrID // NoStrID when absent
}

// Group is a delimited sequence of trees.
type Group struct {
	Delim Delimiter
	Open  source.Span
	Close source.Span // zero-width at EOF when the group was never closed
	Trees []Tree
}

// Tree is one token tree: a leaf token or a delimited group.
type Tree struct {
	Kind    TreeKind
	Span    source.Span
	Ident   source.StrID // TreeIdent
	Keyword Keyword      // TreeKeyword
	Punct   Punct        // TreePunct
	Lit     Literal      // TreeLiteral
	Group   *Group       // TreeGroup
}

func NewIdent(id source.StrID, sp source.Span) Tree {
	return Tree{Kind: TreeIdent, Span: sp, Ident: id}
}

func NewKeyword(kw Keyword, sp source.Span) Tree {
	return Tree{Kind: TreeKeyword, Span: sp, Keyword: kw}
}

func NewPunct(p Punct, sp source.Span) Tree {
	return Tree{Kind: TreePunct, Span: sp, Punct: p}
}

func NewLiteral(lit Literal, sp source.Span) Tree {
	return Tree{Kind: TreeLiteral, Span: sp, Lit: lit}
}

// NewGroup builds a group tree spanning from the open through the close delimiter.
func NewGroup(g *Group) Tree {
	return Tree{Kind: TreeGroup, Span: g.Open.Join(g.Close), Group: g}
}

// IsIdent reports whether the tree is an identifier.
func (t Tree) IsIdent() bool { return t.Kind == TreeIdent }

// IsKeyword reports whether the tree is the keyword kw.
func (t Tree) IsKeyword(kw Keyword) bool {
	return t.Kind == TreeKeyword && t.Keyword == kw
}

// IsPunct reports whether the tree is the punct p.
func (t Tree) IsPunct(p Punct) bool {
	return t.Kind == TreePunct && t.Punct == p
}

// IsGroup reports whether the tree is a group with delimiter d.
func (t Tree) IsGroup(d Delimiter) bool {
	return t.Kind == TreeGroup && t.Group != nil && t.Group.Delim == d
}

// IsLiteral reports whether the tree is a literal of any kind.
func (t Tree) IsLiteral() bool { return t.Kind == TreeLiteral }

// Describe renders the tree for "found ..." style messages.
func (t Tree) Describe() string {
	switch t.Kind {
	case TreeGroup:
		if t.Group != nil {
			return "`" + t.Group.Delim.Open() + "`"
		}
	case TreeIdent:
		return "an ident"
	case TreeKeyword:
		return "`" + t.Keyword.String() + "`"
	case TreePunct:
		return "`" + t.Punct.String() + "`"
	case TreeLiteral:
		return "a literal"
	}
	return "a token"
}

// Count returns the number of leaf tokens in the tree, delimiters included.
func (t Tree) Count() int {
	if t.Kind != TreeGroup || t.Group == nil {
		return 1
	}
	n := 2
	for _, child := range t.Group.Trees {
		n += child.Count()
	}
	return n
}
