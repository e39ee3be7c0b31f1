package ast

import (
	"oath/internal/highlight"
	"oath/internal/parser"
	"oath/internal/token"
)

// Generics is `<T, U: Bound>`.
type Generics = parser.AngleGroup[parser.Punctuated[*GenericParam]]

func parseGenerics(p *parser.Parser) (*Generics, parser.Exit) {
	g, ok, exit := parser.OptionParse[Generics](p,
		parser.Angles[parser.Punctuated[*GenericParam]]{Inner: parser.Trl[*GenericParam]{Item: GenericParamRule{}, Sep: token.Comma}})
	if !ok {
		return nil, parser.Complete
	}
	highlight.Each(p.Highlighter(), g.Value.Value().Items, highlight.Green)
	return &g, exit
}

type GenericParam struct {
	Node
	Name   parser.Ident
	Bounds *Bounds
}

func (gp *GenericParam) Highlight(h highlight.Highlighter, c highlight.Color) {
	gp.Name.Highlight(h, c)
}

type GenericParamRule struct{}

func (GenericParamRule) Desc() string { return "a generic parameter" }

func (GenericParamRule) Detect(p *parser.Parser) bool { return p.AtIdent() }

func (GenericParamRule) Parse(p *parser.Parser) (*GenericParam, parser.Exit) {
	m := p.Mark()
	name, _ := parser.IdentRule{}.Parse(p)
	gp := &GenericParam{Name: name}
	bounds, exit := parser.Opt[*Bounds]{Inner: BoundsRule{}}.Parse(p)
	if bounds != nil {
		gp.Bounds = *bounds
	}
	gp.Node = at(p, m)
	return gp, exit
}

// Bounds is `: Expr`. The older `= Expr` spelling parses into the same shape.
type Bounds struct {
	Node
	Colon parser.Tok
	Expr  parser.Try[Expr]
}

type BoundsRule struct{}

func (BoundsRule) Desc() string { return "`:`" }

func (BoundsRule) Detect(p *parser.Parser) bool {
	return p.AtPunct(token.Colon) || p.AtPunct(token.Assign)
}

func (BoundsRule) Parse(p *parser.Parser) (*Bounds, parser.Exit) {
	m := p.Mark()
	t, _ := p.Next()
	b := &Bounds{Colon: parser.Tok{Loc: t.Span}}
	var exit parser.Exit
	b.Expr, exit = parser.Require[Expr](p, ExprRule{})
	b.Node = at(p, m)
	return b, exit
}

type ContractKind uint8

const (
	Promise ContractKind = iota
	Requirement
)

func (k ContractKind) String() string {
	if k == Requirement {
		return "require"
	}
	return "promise"
}

// ContractSegment is `promise cond` or `require cond`.
type ContractSegment struct {
	Node
	Kind ContractKind
	Kw   parser.Tok
	Cond parser.Try[Expr]
}

// Contract is a run of contract segments, possibly empty.
type Contract []*ContractSegment

type ContractSegmentRule struct{}

func (ContractSegmentRule) Desc() string { return "a contract" }

func (ContractSegmentRule) Detect(p *parser.Parser) bool {
	return p.AtKeyword(token.KwPromise) || p.AtKeyword(token.KwRequire)
}

func (ContractSegmentRule) Parse(p *parser.Parser) (*ContractSegment, parser.Exit) {
	m := p.Mark()
	seg := &ContractSegment{Kind: Promise}
	if p.AtKeyword(token.KwRequire) {
		seg.Kind = Requirement
	}
	t, _ := p.Next()
	seg.Kw = parser.Tok{Loc: t.Span}
	seg.Kw.Highlight(p.Highlighter(), highlight.Yellow)
	var exit parser.Exit
	seg.Cond, exit = parser.Require[Expr](p, ExprRule{})
	seg.Node = at(p, m)
	return seg, exit
}

func parseContract(p *parser.Parser) (Contract, parser.Exit) {
	segs, exit := parser.Many[*ContractSegment](p, ContractSegmentRule{})
	return Contract(segs), exit
}
