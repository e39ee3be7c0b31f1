package ast

import (
	"oath/internal/parser"
	"oath/internal/source"
	"oath/internal/token"
)

// Type is *RefType, *TupleType, *SliceType or *PathType.
type Type interface {
	source.Spanned
	typeNode()
}

// RefType is `&T` or `&mut T`.
type RefType struct {
	Node
	Amp  parser.Tok
	Mut  *parser.Tok
	Elem parser.Try[Type]
}

// TupleType is `(A, B)`; `()` is the unit type.
type TupleType struct {
	Node
	Elems parser.Delimited[parser.Punctuated[Type]]
}

// SliceType is `[T]`.
type SliceType struct {
	Node
	Elem parser.Delimited[Type]
}

// PathType is `a::B<C, D>`.
type PathType struct {
	Node
	Path *Path
	Args *parser.AngleGroup[parser.Punctuated[Type]]
}

func (*RefType) typeNode()   {}
func (*TupleType) typeNode() {}
func (*SliceType) typeNode() {}
func (*PathType) typeNode()  {}

type refTypeRule struct{}

func (refTypeRule) Desc() string { return "`&`" }

func (refTypeRule) Detect(p *parser.Parser) bool { return p.AtPunct(token.Amp) }

func (refTypeRule) Parse(p *parser.Parser) (*RefType, parser.Exit) {
	m := p.Mark()
	amp, _ := parser.Punct(token.Amp).Parse(p)
	ref := &RefType{Amp: amp}
	if p.AtKeyword(token.KwMut) {
		mut, _ := parser.Keyword(token.KwMut).Parse(p)
		ref.Mut = &mut
	}
	var exit parser.Exit
	ref.Elem, exit = parser.Require[Type](p, TypeRule{})
	ref.Node = at(p, m)
	return ref, exit
}

type pathTypeRule struct{}

func (pathTypeRule) Desc() string { return "a type path" }

func (pathTypeRule) Detect(p *parser.Parser) bool { return PathRule{}.Detect(p) }

func (pathTypeRule) Parse(p *parser.Parser) (*PathType, parser.Exit) {
	m := p.Mark()
	path, exit := PathRule{}.Parse(p)
	pt := &PathType{Path: path}
	args, ok, ex := parser.OptionParse[parser.AngleGroup[parser.Punctuated[Type]]](p,
		parser.Angles[parser.Punctuated[Type]]{Inner: parser.Trl[Type]{Item: TypeRule{}, Sep: token.Comma}})
	if ok {
		pt.Args = &args
		exit = exit.Join(ex)
	}
	pt.Node = at(p, m)
	return pt, exit
}

var types *parser.Enum[Type]

func init() {
	types = &parser.Enum[Type]{
		Name: "a type",
		Variants: []parser.Variant[Type]{
			parser.Case("ref", refTypeRule{}, func(v *RefType) Type { return v }),
			parser.Case("tuple",
				parser.Parens[parser.Punctuated[Type]](parser.Trl[Type]{Item: TypeRule{}, Sep: token.Comma}),
				func(d parser.Delimited[parser.Punctuated[Type]]) Type {
					return &TupleType{Node: Node{Loc: d.Span()}, Elems: d}
				}),
			parser.Case("slice", parser.Brackets[Type](TypeRule{}),
				func(d parser.Delimited[Type]) Type {
					return &SliceType{Node: Node{Loc: d.Span()}, Elem: d}
				}),
			parser.Case("path", pathTypeRule{}, func(v *PathType) Type { return v }),
		},
	}
}

// TypeRule defers to types, so it is safe to use while types is built.
type TypeRule struct{}

func (TypeRule) Desc() string { return "a type" }

func (TypeRule) Detect(p *parser.Parser) bool { return types.Detect(p) }

func (TypeRule) Parse(p *parser.Parser) (Type, parser.Exit) { return types.Parse(p) }
