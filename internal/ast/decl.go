package ast

import (
	"oath/internal/highlight"
	"oath/internal/parser"
	"oath/internal/token"
)

// Struct is `struct Name<T> contract { fields }`.
type Struct struct {
	Node
	Kw       parser.Tok
	Name     parser.Try[parser.Ident]
	Generics *Generics
	Contract Contract
	Fields   parser.Try[parser.Delimited[parser.Punctuated[*Field]]]
}

func (*Struct) target() Target { return TargetStruct }

type StructRule struct{}

func (StructRule) Desc() string { return "a struct" }

func (StructRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwStruct) }

func (StructRule) Parse(p *parser.Parser) (*Struct, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwStruct).Parse(p)
	st := &Struct{Kw: kw}
	var exit, ex parser.Exit
	st.Name, exit = parser.Require[parser.Ident](p, parser.IdentRule{})
	st.Name.Highlight(p.Highlighter(), highlight.Green)
	st.Generics, ex = parseGenerics(p)
	exit = exit.Join(ex)
	st.Contract, ex = parseContract(p)
	exit = exit.Join(ex)
	st.Fields, ex = parser.Require[parser.Delimited[parser.Punctuated[*Field]]](p,
		parser.Braces[parser.Punctuated[*Field]](parser.TrlEndless[*Field]{Item: FieldRule{}, Sep: token.Comma}))
	exit = exit.Join(ex)
	st.Node = at(p, m)
	return st, exit
}

// Field is `pub name: Type` inside a struct.
type Field struct {
	Node
	Mods  Modifiers
	Name  parser.Try[parser.Ident]
	Colon parser.Try[parser.Tok]
	Type  parser.Try[Type]
}

type FieldRule struct{}

func (FieldRule) Desc() string { return "a field" }

func (FieldRule) Detect(p *parser.Parser) bool {
	return p.AtIdent() || ModifierRule{}.Detect(p)
}

func (FieldRule) Parse(p *parser.Parser) (*Field, parser.Exit) {
	m := p.Mark()
	mods, _ := parser.Many[Modifier](p, ModifierRule{})
	validateModifiers(p, mods, TargetField)
	f := &Field{Mods: mods}
	var exit, ex parser.Exit
	f.Name, exit = parser.Require[parser.Ident](p, parser.IdentRule{})
	f.Name.Highlight(p.Highlighter(), highlight.Cyan)
	if f.Name.OK() {
		f.Colon, ex = parser.Require[parser.Tok](p, parser.Punct(token.Colon))
		exit = exit.Join(ex)
		if f.Colon.OK() {
			f.Type, ex = parser.Require[Type](p, TypeRule{})
			exit = exit.Join(ex)
		}
	}
	f.Node = at(p, m)
	return f, exit
}

// Trait is `trait Name<T>: Bound { items }`.
type Trait struct {
	Node
	Kw       parser.Tok
	Name     parser.Try[parser.Ident]
	Generics *Generics
	Bounds   *Bounds
	Body     parser.Try[parser.Delimited[[]*Item]]
}

func (*Trait) target() Target { return TargetTrait }

type TraitRule struct{}

func (TraitRule) Desc() string { return "a trait" }

func (TraitRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwTrait) }

func (TraitRule) Parse(p *parser.Parser) (*Trait, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwTrait).Parse(p)
	tr := &Trait{Kw: kw}
	var exit, ex parser.Exit
	tr.Name, exit = parser.Require[parser.Ident](p, parser.IdentRule{})
	tr.Name.Highlight(p.Highlighter(), highlight.Green)
	tr.Generics, ex = parseGenerics(p)
	exit = exit.Join(ex)
	if b, ok, ex := parser.OptionParse[*Bounds](p, BoundsRule{}); ok {
		tr.Bounds = b
		exit = exit.Join(ex)
	}
	tr.Body, ex = parser.Require[parser.Delimited[[]*Item]](p,
		parser.Braces[[]*Item](parser.Repeated[*Item]{Item: ItemRule{}}))
	exit = exit.Join(ex)
	tr.Node = at(p, m)
	return tr, exit
}

// Fn is `fn name<T>(params) -> Ret contract { body }`.
type Fn struct {
	Node
	Kw       parser.Tok
	Name     parser.Try[parser.Ident]
	Generics *Generics
	Params   parser.Try[parser.Delimited[parser.Punctuated[*Param]]]
	Arrow    *parser.Tok
	Ret      parser.Try[Type]
	Contract Contract
	Body     parser.Try[*Block]
}

func (*Fn) target() Target { return TargetFn }

type FnRule struct{}

func (FnRule) Desc() string { return "a function" }

func (FnRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwFn) }

func (FnRule) Parse(p *parser.Parser) (*Fn, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwFn).Parse(p)
	fn := &Fn{Kw: kw}
	var exit, ex parser.Exit
	fn.Name, exit = parser.Require[parser.Ident](p, parser.IdentRule{})
	fn.Name.Highlight(p.Highlighter(), highlight.Blue)
	fn.Generics, ex = parseGenerics(p)
	exit = exit.Join(ex)
	fn.Params, ex = parser.Require[parser.Delimited[parser.Punctuated[*Param]]](p,
		parser.Parens[parser.Punctuated[*Param]](parser.TrlEndless[*Param]{Item: ParamRule{}, Sep: token.Comma}))
	exit = exit.Join(ex)
	if p.AtPunct(token.Arrow) {
		arrow, _ := parser.Punct(token.Arrow).Parse(p)
		fn.Arrow = &arrow
		fn.Ret, ex = parser.Require[Type](p, TypeRule{})
		exit = exit.Join(ex)
	}
	fn.Contract, ex = parseContract(p)
	exit = exit.Join(ex)
	fn.Body, ex = parser.Require[*Block](p, BlockRule{})
	exit = exit.Join(ex)
	fn.Node = at(p, m)
	return fn, exit
}

// Param is `mut name: Type`.
type Param struct {
	Node
	Mut   *parser.Tok
	Name  parser.Try[parser.Ident]
	Colon parser.Try[parser.Tok]
	Type  parser.Try[Type]
}

type ParamRule struct{}

func (ParamRule) Desc() string { return "a parameter" }

func (ParamRule) Detect(p *parser.Parser) bool {
	return p.AtIdent() || p.AtKeyword(token.KwMut)
}

func (ParamRule) Parse(p *parser.Parser) (*Param, parser.Exit) {
	m := p.Mark()
	prm := &Param{}
	if p.AtKeyword(token.KwMut) {
		mut, _ := parser.Keyword(token.KwMut).Parse(p)
		prm.Mut = &mut
	}
	var exit, ex parser.Exit
	prm.Name, exit = parser.Require[parser.Ident](p, parser.IdentRule{})
	prm.Name.Highlight(p.Highlighter(), highlight.Cyan)
	if prm.Name.OK() {
		prm.Colon, ex = parser.Require[parser.Tok](p, parser.Punct(token.Colon))
		exit = exit.Join(ex)
		if prm.Colon.OK() {
			prm.Type, ex = parser.Require[Type](p, TypeRule{})
			exit = exit.Join(ex)
		}
	}
	prm.Node = at(p, m)
	return prm, exit
}
