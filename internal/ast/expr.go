package ast

import (
	"oath/internal/highlight"
	"oath/internal/parser"
	"oath/internal/source"
	"oath/internal/token"
)

// Expr is any expression node.
type Expr interface {
	source.Spanned
	exprNode()
}

type Literal struct {
	Node
	Lit parser.Lit
}

type Bool struct {
	Node
	Value bool
}

type PathExpr struct {
	Node
	Path *Path
}

// Paren is `(e)`; anything else in parentheses is a Tuple.
type Paren struct {
	Node
	Inner Expr
}

type Tuple struct {
	Node
	Elems parser.Delimited[parser.Punctuated[Expr]]
}

type Unary struct {
	Node
	Op      token.Punct
	OpLoc   source.Span
	Operand parser.Try[Expr]
}

type Binary struct {
	Node
	Op    token.Punct
	OpLoc source.Span
	Lhs   Expr
	Rhs   parser.Try[Expr]
}

// Cast is `e as T`.
type Cast struct {
	Node
	Expr Expr
	As   parser.Tok
	Type parser.Try[Type]
}

type Call struct {
	Node
	Callee Expr
	Args   parser.Delimited[parser.Punctuated[Expr]]
}

// Member is `recv.name`.
type Member struct {
	Node
	Recv Expr
	Dot  parser.Tok
	Name parser.Try[parser.Ident]
}

type Index struct {
	Node
	Recv  Expr
	Index parser.Delimited[Expr]
}

// If is `if cond { } else ...`; Else is nil without an else branch.
type If struct {
	Node
	Kw   parser.Tok
	Cond parser.Try[Expr]
	Then parser.Try[*Block]
	Else *Else
}

// Else holds either *If or *Block.
type Else struct {
	Node
	Kw   parser.Tok
	Body parser.Try[Expr]
}

type While struct {
	Node
	Kw   parser.Tok
	Cond parser.Try[Expr]
	Body parser.Try[*Block]
}

// Return is `return` with an optional value.
type Return struct {
	Node
	Kw    parser.Tok
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Bool) exprNode()     {}
func (*PathExpr) exprNode() {}
func (*Paren) exprNode()    {}
func (*Tuple) exprNode()    {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Cast) exprNode()     {}
func (*Call) exprNode()     {}
func (*Member) exprNode()   {}
func (*Index) exprNode()    {}
func (*Block) exprNode()    {}
func (*If) exprNode()       {}
func (*While) exprNode()    {}
func (*Return) exprNode()   {}

// Приоритеты бинарных операторов, от слабого к сильному.
const (
	precAssign = iota + 1
	precOr
	precAnd
	precCompare
	precBitOr
	precBitXor
	precBitAnd
	precShift
	precAdd
	precMul
	precCast
)

var binops = map[token.Punct]int{
	token.Assign:      precAssign,
	token.PlusAssign:  precAssign,
	token.MinusAssign: precAssign,
	token.StarAssign:  precAssign,
	token.SlashAssign: precAssign,
	token.ShlAssign:   precAssign,
	token.ShrAssign:   precAssign,
	token.OrOr:        precOr,
	token.AndAnd:      precAnd,
	token.EqEq:        precCompare,
	token.BangEq:      precCompare,
	token.Lt:          precCompare,
	token.Gt:          precCompare,
	token.LtEq:        precCompare,
	token.GtEq:        precCompare,
	token.Pipe:        precBitOr,
	token.Caret:       precBitXor,
	token.Amp:         precBitAnd,
	token.Shl:         precShift,
	token.Shr:         precShift,
	token.Plus:        precAdd,
	token.Minus:       precAdd,
	token.Star:        precMul,
	token.Slash:       precMul,
	token.Percent:     precMul,
}

// Precedence returns the binding power of a binary operator, 0 if op is not one.
func Precedence(op token.Punct) int { return binops[op] }

// binopAt returns the operator in front of p. Inside `<...>` the `>`-class
// operators close the group instead.
func binopAt(p *parser.Parser) (token.Punct, int, bool) {
	t, ok := p.Peek()
	if !ok || t.Kind != token.TreePunct {
		return 0, 0, false
	}
	prec, ok := binops[t.Punct]
	if !ok || (p.InAngles() && t.Punct.IsGtClass()) {
		return 0, 0, false
	}
	return t.Punct, prec, true
}

var unops = []token.Punct{token.Minus, token.Bang, token.Amp, token.Star}

func unopAt(p *parser.Parser) (token.Punct, bool) {
	for _, op := range unops {
		if p.AtPunct(op) {
			return op, true
		}
	}
	return 0, false
}

// ExprRule parses a full expression.
type ExprRule struct{}

func (ExprRule) Desc() string { return "an expression" }

func (ExprRule) Detect(p *parser.Parser) bool {
	_, ok := unopAt(p)
	return ok || primaries.Detect(p)
}

func (ExprRule) Parse(p *parser.Parser) (Expr, parser.Exit) { return parseBinary(p, precAssign) }

// operand parses an expression whose operators bind at least as tight as minPrec.
type operand struct{ minPrec int }

func (operand) Desc() string { return "an expression" }

func (operand) Detect(p *parser.Parser) bool { return ExprRule{}.Detect(p) }

func (o operand) Parse(p *parser.Parser) (Expr, parser.Exit) { return parseBinary(p, o.minPrec) }

func parseBinary(p *parser.Parser, minPrec int) (Expr, parser.Exit) {
	m := p.Mark()
	lhs, exit := parseUnary(p)
	for {
		if p.AtKeyword(token.KwAs) && precCast >= minPrec {
			as, _ := parser.Keyword(token.KwAs).Parse(p)
			ty, ex := parser.Require[Type](p, TypeRule{})
			exit = exit.Join(ex)
			lhs = &Cast{Node: at(p, m), Expr: lhs, As: as, Type: ty}
			continue
		}
		op, prec, ok := binopAt(p)
		if !ok || prec < minPrec {
			return lhs, exit
		}
		t, _ := p.Next()
		next := prec + 1
		if prec == precAssign {
			next = prec
		}
		rhs, ex := parser.Require[Expr](p, operand{minPrec: next})
		exit = exit.Join(ex)
		lhs = &Binary{Node: at(p, m), Op: op, OpLoc: t.Span, Lhs: lhs, Rhs: rhs}
		if !rhs.OK() {
			return lhs, exit
		}
	}
}

func parseUnary(p *parser.Parser) (Expr, parser.Exit) {
	op, ok := unopAt(p)
	if !ok {
		return parsePostfix(p)
	}
	m := p.Mark()
	t, _ := p.Next()
	inner, exit := parser.Require[Expr](p, unaryRule{})
	return &Unary{Node: at(p, m), Op: op, OpLoc: t.Span, Operand: inner}, exit
}

type unaryRule struct{}

func (unaryRule) Desc() string { return "an expression" }

func (unaryRule) Detect(p *parser.Parser) bool { return ExprRule{}.Detect(p) }

func (unaryRule) Parse(p *parser.Parser) (Expr, parser.Exit) { return parseUnary(p) }

func parsePostfix(p *parser.Parser) (Expr, parser.Exit) {
	m := p.Mark()
	e, exit := primaries.Parse(p)
	for {
		switch {
		case p.AtGroup(token.Parens):
			args, _ := parser.Parens[parser.Punctuated[Expr]](
				parser.TrlEndless[Expr]{Item: ExprRule{}, Sep: token.Comma}).Parse(p)
			e = &Call{Node: at(p, m), Callee: e, Args: args}
		case p.AtPunct(token.Dot):
			dot, _ := parser.Punct(token.Dot).Parse(p)
			name, ex := parser.Require[parser.Ident](p, parser.IdentRule{})
			name.Highlight(p.Highlighter(), highlight.Cyan)
			exit = exit.Join(ex)
			e = &Member{Node: at(p, m), Recv: e, Dot: dot, Name: name}
			if !name.OK() {
				return e, exit
			}
		case p.AtGroup(token.Brackets):
			idx, _ := parser.Brackets[Expr](ExprRule{}).Parse(p)
			e = &Index{Node: at(p, m), Recv: e, Index: idx}
		default:
			return e, exit
		}
	}
}

type boolRule struct{}

func (boolRule) Desc() string { return "a boolean" }

func (boolRule) Detect(p *parser.Parser) bool {
	return p.AtKeyword(token.KwTrue) || p.AtKeyword(token.KwFalse)
}

func (boolRule) Parse(p *parser.Parser) (*Bool, parser.Exit) {
	t, _ := p.Next()
	return &Bool{Node: Node{Loc: t.Span}, Value: t.IsKeyword(token.KwTrue)}, parser.Complete
}

type parenRule struct{}

func (parenRule) Desc() string { return "`(`" }

func (parenRule) Detect(p *parser.Parser) bool { return p.AtGroup(token.Parens) }

func (parenRule) Parse(p *parser.Parser) (Expr, parser.Exit) {
	d, exit := parser.Parens[parser.Punctuated[Expr]](
		parser.TrlEndless[Expr]{Item: ExprRule{}, Sep: token.Comma}).Parse(p)
	list := d.Value.Value()
	if len(list.Items) == 1 && !list.Trailing {
		return &Paren{Node: Node{Loc: d.Span()}, Inner: list.Items[0]}, exit
	}
	return &Tuple{Node: Node{Loc: d.Span()}, Elems: d}, exit
}

type ifRule struct{}

func (ifRule) Desc() string { return "`if`" }

func (ifRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwIf) }

func (ifRule) Parse(p *parser.Parser) (*If, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwIf).Parse(p)
	n := &If{Kw: kw}
	var exit, ex parser.Exit
	n.Cond, exit = parser.Require[Expr](p, ExprRule{})
	n.Then, ex = parser.Require[*Block](p, BlockRule{})
	exit = exit.Join(ex)
	if p.AtKeyword(token.KwElse) {
		em := p.Mark()
		ekw, _ := parser.Keyword(token.KwElse).Parse(p)
		el := &Else{Kw: ekw}
		el.Body, ex = parser.Require[Expr](p, elseBodyRule{})
		exit = exit.Join(ex)
		el.Node = at(p, em)
		n.Else = el
	}
	n.Node = at(p, m)
	return n, exit
}

type elseBodyRule struct{}

func (elseBodyRule) Desc() string { return "`if` or `{`" }

func (elseBodyRule) Detect(p *parser.Parser) bool {
	return p.AtKeyword(token.KwIf) || p.AtGroup(token.Braces)
}

func (elseBodyRule) Parse(p *parser.Parser) (Expr, parser.Exit) {
	if p.AtKeyword(token.KwIf) {
		return ifRule{}.Parse(p)
	}
	return BlockRule{}.Parse(p)
}

type whileRule struct{}

func (whileRule) Desc() string { return "`while`" }

func (whileRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwWhile) }

func (whileRule) Parse(p *parser.Parser) (*While, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwWhile).Parse(p)
	n := &While{Kw: kw}
	var exit, ex parser.Exit
	n.Cond, exit = parser.Require[Expr](p, ExprRule{})
	n.Body, ex = parser.Require[*Block](p, BlockRule{})
	n.Node = at(p, m)
	return n, exit.Join(ex)
}

type returnRule struct{}

func (returnRule) Desc() string { return "`return`" }

func (returnRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwReturn) }

func (returnRule) Parse(p *parser.Parser) (*Return, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwReturn).Parse(p)
	n := &Return{Kw: kw}
	v, ok, exit := parser.OptionParse[Expr](p, ExprRule{})
	if ok {
		n.Value = v
	}
	n.Node = at(p, m)
	return n, exit
}

var primaries *parser.Enum[Expr]

func init() {
	primaries = &parser.Enum[Expr]{
		Name: "an expression",
		Variants: []parser.Variant[Expr]{
			parser.Case("literal", parser.LiteralRule{}, func(l parser.Lit) Expr {
				return &Literal{Node: Node{Loc: l.Loc}, Lit: l}
			}),
			parser.Case("bool", boolRule{}, func(v *Bool) Expr { return v }),
			parser.Case("path", PathRule{}, func(v *Path) Expr {
				return &PathExpr{Node: v.Node, Path: v}
			}),
			parser.Case("paren", parenRule{}, func(v Expr) Expr { return v }),
			parser.Case("block", BlockRule{}, func(v *Block) Expr { return v }),
			parser.Case("if", ifRule{}, func(v *If) Expr { return v }),
			parser.Case("while", whileRule{}, func(v *While) Expr { return v }),
			parser.Case("return", returnRule{}, func(v *Return) Expr { return v }),
		},
	}
}
