package ast

import (
	"oath/internal/highlight"
	"oath/internal/parser"
	"oath/internal/source"
	"oath/internal/token"
)

// Block is `{ stmts }`. A block is also an expression.
type Block struct {
	Node
	Body parser.Delimited[[]Stmt]
}

// Stmts returns the parsed statements, nil if the body failed.
func (b *Block) Stmts() []Stmt { return b.Body.Value.Value() }

type BlockRule struct{}

func (BlockRule) Desc() string { return "a block" }

func (BlockRule) Detect(p *parser.Parser) bool { return p.AtGroup(token.Braces) }

func (BlockRule) Parse(p *parser.Parser) (*Block, parser.Exit) {
	body, exit := parser.Braces[[]Stmt](parser.Repeated[Stmt]{Item: StmtRule{}}).Parse(p)
	return &Block{Node: Node{Loc: body.Span()}, Body: body}, exit
}

// Stmt is *Let, *ItemStmt, *ExprStmt, *EmptyStmt or *GarbageStmt.
type Stmt interface {
	source.Spanned
	stmtNode()
}

// Let is `let mut name: Type = value;`.
type Let struct {
	Node
	Kw    parser.Tok
	Mut   *parser.Tok
	Name  parser.Try[parser.Ident]
	Type  *parser.Try[Type]
	Value *parser.Try[Expr]
	Semi  parser.Try[parser.Tok]
}

// ItemStmt is an item declared inside a block.
type ItemStmt struct {
	Node
	Item *Item
}

// ExprStmt is an expression with an optional `;`.
type ExprStmt struct {
	Node
	Expr Expr
	Semi *parser.Tok
}

// EmptyStmt is a lone `;`.
type EmptyStmt struct {
	Node
}

// GarbageStmt covers tokens that start no statement.
type GarbageStmt struct {
	Node
	Skipped parser.Skipped
}

func (*Let) stmtNode()         {}
func (*ItemStmt) stmtNode()    {}
func (*ExprStmt) stmtNode()    {}
func (*EmptyStmt) stmtNode()   {}
func (*GarbageStmt) stmtNode() {}

type letRule struct{}

func (letRule) Desc() string { return "`let`" }

func (letRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwLet) }

func (letRule) Parse(p *parser.Parser) (*Let, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwLet).Parse(p)
	let := &Let{Kw: kw}
	if p.AtKeyword(token.KwMut) {
		mut, _ := parser.Keyword(token.KwMut).Parse(p)
		let.Mut = &mut
	}
	var exit, ex parser.Exit
	let.Name, exit = parser.Require[parser.Ident](p, parser.IdentRule{})
	let.Name.Highlight(p.Highlighter(), highlight.Cyan)
	if p.AtPunct(token.Colon) {
		p.Next()
		ty, ex := parser.Require[Type](p, TypeRule{})
		let.Type = &ty
		exit = exit.Join(ex)
	}
	if p.AtPunct(token.Assign) {
		p.Next()
		val, ex := parser.Require[Expr](p, ExprRule{})
		let.Value = &val
		exit = exit.Join(ex)
	}
	let.Semi, ex = requireSemi(p)
	exit = exit.Join(ex)
	let.Node = at(p, m)
	return let, exit
}

// requireSemi reports a missing `;` with a fix inserting it after the last token.
func requireSemi(p *parser.Parser) (parser.Try[parser.Tok], parser.Exit) {
	if p.AtPunct(token.Semicolon) {
		semi, _ := parser.Punct(token.Semicolon).Parse(p)
		return parser.Success(semi), parser.Complete
	}
	p.ExpectedWithInsert(p.NextSpan(), "`;`", p.Last(), ";")
	return parser.Failure[parser.Tok](p.Here()), parser.Cut
}

type itemStmtRule struct{}

func (itemStmtRule) Desc() string { return "an item" }

func (itemStmtRule) Detect(p *parser.Parser) bool { return ItemRule{}.DetectStrict(p) }

func (itemStmtRule) Parse(p *parser.Parser) (*ItemStmt, parser.Exit) {
	item, exit := ItemRule{}.Parse(p)
	return &ItemStmt{Node: item.Node, Item: item}, exit
}

type exprStmtRule struct{}

func (exprStmtRule) Desc() string { return "an expression" }

func (exprStmtRule) Detect(p *parser.Parser) bool { return ExprRule{}.Detect(p) }

func (exprStmtRule) Parse(p *parser.Parser) (*ExprStmt, parser.Exit) {
	m := p.Mark()
	var (
		e    Expr
		exit parser.Exit
	)
	if blockLikeAt(p) {
		// `if c {} *p = 1;` is two statements, not a multiplication
		e, exit = primaries.Parse(p)
	} else {
		e, exit = ExprRule{}.Parse(p)
	}
	st := &ExprStmt{Expr: e}
	switch {
	case p.AtPunct(token.Semicolon):
		semi, _ := parser.Punct(token.Semicolon).Parse(p)
		st.Semi = &semi
	case p.IsEmpty(), blockLike(e):
	default:
		p.ExpectedWithInsert(p.NextSpan(), "`;`", p.Last(), ";")
	}
	st.Node = at(p, m)
	return st, exit
}

// blockLikeAt reports whether a block-like expression starts here. In statement
// position such an expression is never an operand of a binary or postfix operator.
func blockLikeAt(p *parser.Parser) bool {
	return p.AtKeyword(token.KwIf) || p.AtKeyword(token.KwWhile) || p.AtGroup(token.Braces)
}

// blockLike expressions end a statement without `;`.
func blockLike(e Expr) bool {
	switch e.(type) {
	case *Block, *If, *While:
		return true
	}
	return false
}

var stmts *parser.Enum[Stmt]

func init() {
	stmts = &parser.Enum[Stmt]{
		Name: "a statement",
		Variants: []parser.Variant[Stmt]{
			parser.Case("let", letRule{}, func(v *Let) Stmt { return v }),
			parser.Case("item", itemStmtRule{}, func(v *ItemStmt) Stmt { return v }),
			parser.Case("expr", exprStmtRule{}, func(v *ExprStmt) Stmt { return v }),
			parser.Case("empty", parser.Punct(token.Semicolon), func(t parser.Tok) Stmt {
				return &EmptyStmt{Node: Node{Loc: t.Loc}}
			}),
		},
		Fallback: func(p *parser.Parser) (Stmt, parser.Exit) {
			skipped := parser.SkipGarbage[Stmt](p, StmtRule{})
			return &GarbageStmt{Node: Node{Loc: skipped.Loc}, Skipped: skipped}, parser.Complete
		},
	}
}

// StmtRule defers to the statement enum.
type StmtRule struct{}

func (StmtRule) Desc() string { return "a statement" }

func (StmtRule) Detect(p *parser.Parser) bool { return stmts.Detect(p) }

func (StmtRule) DetectStrict(p *parser.Parser) bool { return stmts.DetectStrict(p) }

func (StmtRule) Parse(p *parser.Parser) (Stmt, parser.Exit) { return stmts.Parse(p) }
