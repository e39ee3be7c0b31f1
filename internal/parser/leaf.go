package parser

import (
	"oath/internal/highlight"
	"oath/internal/source"
	"oath/internal/token"
)

// Ident is a consumed identifier.
type Ident struct {
	Name source.StrID
	Loc  source.Span
}

func (i Ident) Span() source.Span { return i.Loc }

func (i Ident) Highlight(h highlight.Highlighter, c highlight.Color) {
	if h != nil {
		h.Highlight(i.Loc, c)
	}
}

// Tok is a consumed keyword or punct.
type Tok struct {
	Loc source.Span
}

func (t Tok) Span() source.Span { return t.Loc }

func (t Tok) Highlight(h highlight.Highlighter, c highlight.Color) {
	if h != nil {
		h.Highlight(t.Loc, c)
	}
}

// Lit is a consumed literal.
type Lit struct {
	token.Literal
	Loc source.Span
}

func (l Lit) Span() source.Span { return l.Loc }

// KeywordRule matches one keyword.
type KeywordRule struct{ Kw token.Keyword }

func Keyword(kw token.Keyword) KeywordRule { return KeywordRule{Kw: kw} }

func (r KeywordRule) Desc() string { return "`" + r.Kw.String() + "`" }

func (r KeywordRule) Detect(p *Parser) bool { return p.AtKeyword(r.Kw) }

func (r KeywordRule) Parse(p *Parser) (Tok, Exit) {
	t, _ := p.Next()
	return Tok{Loc: t.Span}, Complete
}

// PunctRule matches one punct; Gt also matches the first `>` of a compound punct.
type PunctRule struct{ P token.Punct }

func Punct(pu token.Punct) PunctRule { return PunctRule{P: pu} }

func (r PunctRule) Desc() string { return "`" + r.P.String() + "`" }

func (r PunctRule) Detect(p *Parser) bool {
	if r.P == token.Gt {
		return p.AtGt()
	}
	return p.AtPunct(r.P)
}

func (r PunctRule) Parse(p *Parser) (Tok, Exit) {
	if r.P == token.Gt {
		sp, _ := p.EatGt()
		return Tok{Loc: sp}, Complete
	}
	t, _ := p.Next()
	return Tok{Loc: t.Span}, Complete
}

// IdentRule matches an identifier.
type IdentRule struct{}

func (IdentRule) Desc() string { return "an ident" }

func (IdentRule) Detect(p *Parser) bool { return p.AtIdent() }

func (IdentRule) Parse(p *Parser) (Ident, Exit) {
	t, _ := p.Next()
	return Ident{Name: t.Ident, Loc: t.Span}, Complete
}

// LiteralRule matches any literal.
type LiteralRule struct{}

func (LiteralRule) Desc() string { return "a literal" }

func (LiteralRule) Detect(p *Parser) bool { return p.AtLiteral() }

func (LiteralRule) Parse(p *Parser) (Lit, Exit) {
	t, _ := p.Next()
	return Lit{Literal: t.Lit, Loc: t.Span}, Complete
}

// GroupRule matches a raw group without descending into it.
type GroupRule struct{ Delim token.Delimiter }

func (r GroupRule) Desc() string { return "`" + r.Delim.Open() + "`" }

func (r GroupRule) Detect(p *Parser) bool { return p.AtGroup(r.Delim) }

func (r GroupRule) Parse(p *Parser) (*token.Group, Exit) {
	t, _ := p.Next()
	return t.Group, Complete
}
