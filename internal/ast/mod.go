package ast

import (
	"oath/internal/highlight"
	"oath/internal/parser"
	"oath/internal/token"
)

// Mod is `mod name;` or `mod name { items }`.
type Mod struct {
	Node
	Kw   parser.Tok
	Name parser.Try[parser.Ident]
	Semi *parser.Tok
	Body *parser.Delimited[[]*Item]
}

func (*Mod) target() Target { return TargetMod }

type ModRule struct{}

func (ModRule) Desc() string { return "a module" }

func (ModRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwMod) }

func (ModRule) Parse(p *parser.Parser) (*Mod, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwMod).Parse(p)
	mod := &Mod{Kw: kw}
	var exit parser.Exit
	mod.Name, exit = parser.Require[parser.Ident](p, parser.IdentRule{})
	mod.Name.Highlight(p.Highlighter(), highlight.Green)

	switch {
	case p.AtPunct(token.Semicolon):
		semi, _ := parser.Punct(token.Semicolon).Parse(p)
		mod.Semi = &semi
	case p.AtGroup(token.Braces):
		body, _ := parser.Braces[[]*Item](parser.Repeated[*Item]{Item: ItemRule{}}).Parse(p)
		mod.Body = &body
	default:
		p.Expected(p.NextSpan(), "`;` or `{`")
		exit = parser.Cut
	}
	mod.Node = at(p, m)
	return mod, exit
}

// Use is `use tree, tree;`.
type Use struct {
	Node
	Kw    parser.Tok
	Trees parser.Try[parser.Terminated[*UseTree]]
}

func (*Use) target() Target { return TargetUse }

type UseRule struct{}

func (UseRule) Desc() string { return "a use" }

func (UseRule) Detect(p *parser.Parser) bool { return p.AtKeyword(token.KwUse) }

func (UseRule) Parse(p *parser.Parser) (*Use, parser.Exit) {
	m := p.Mark()
	kw, _ := parser.Keyword(token.KwUse).Parse(p)
	use := &Use{Kw: kw}
	var exit parser.Exit
	use.Trees, exit = parser.Require[parser.Terminated[*UseTree]](p,
		parser.SepEnd[*UseTree]{Item: UseTreeRule{}, Sep: token.Comma, End: token.Semicolon})
	use.Node = at(p, m)
	return use, exit
}

// UseTree is `path`, `path::{trees}`, `path::*` or `path as name`.
type UseTree struct {
	Node
	Path  *Path
	Sep   *parser.Tok
	Group *parser.Delimited[parser.Punctuated[*UseTree]]
	Glob  *parser.Tok
	As    *parser.Tok
	Alias parser.Try[parser.Ident]
}

type UseTreeRule struct{}

func (UseTreeRule) Desc() string { return "a use path" }

func (UseTreeRule) Detect(p *parser.Parser) bool { return PathRule{}.Detect(p) }

func (UseTreeRule) Parse(p *parser.Parser) (*UseTree, parser.Exit) {
	m := p.Mark()
	path, exit := PathRule{}.Parse(p)
	tree := &UseTree{Path: path}

	switch {
	case p.AtPunct(token.ColonColon):
		sep, _ := parser.Punct(token.ColonColon).Parse(p)
		tree.Sep = &sep
		switch {
		case p.AtGroup(token.Braces):
			group, _ := parser.Braces[parser.Punctuated[*UseTree]](
				parser.TrlEndless[*UseTree]{Item: UseTreeRule{}, Sep: token.Comma}).Parse(p)
			tree.Group = &group
		case p.AtPunct(token.Star):
			glob, _ := parser.Punct(token.Star).Parse(p)
			tree.Glob = &glob
		default:
			p.Expected(p.NextSpan(), "`{` or `*`")
			exit = parser.Cut
		}
	case p.AtKeyword(token.KwAs):
		as, _ := parser.Keyword(token.KwAs).Parse(p)
		tree.As = &as
		var ex parser.Exit
		tree.Alias, ex = parser.Require[parser.Ident](p, parser.IdentRule{})
		tree.Alias.Highlight(p.Highlighter(), highlight.Green)
		exit = exit.Join(ex)
	}
	tree.Node = at(p, m)
	return tree, exit
}

// Path is seg::seg::seg.
type Path struct {
	Node
	Segments parser.Punctuated[*ModSegment]
}

func (pa Path) Highlight(h highlight.Highlighter, c highlight.Color) {
	highlight.Each(h, pa.Segments.Items, c)
}

// Last returns the final segment.
func (pa *Path) Last() *ModSegment {
	if pa == nil || len(pa.Segments.Items) == 0 {
		return nil
	}
	return pa.Segments.Items[len(pa.Segments.Items)-1]
}

type PathRule struct{}

func (PathRule) Desc() string { return "a path" }

func (PathRule) Detect(p *parser.Parser) bool { return segments.Detect(p) }

func (PathRule) Parse(p *parser.Parser) (*Path, parser.Exit) {
	m := p.Mark()
	list, exit := parser.Sep[*ModSegment]{Item: segments, Sep: token.ColonColon, FollowedBy: isSegmentTree}.Parse(p)
	return &Path{Node: at(p, m), Segments: list}, exit
}

func isSegmentTree(t token.Tree) bool {
	return t.IsIdent() || t.IsKeyword(token.KwSuper) || t.IsKeyword(token.KwPackage) || t.IsKeyword(token.KwSelf)
}

type SegmentKind uint8

const (
	SegIdent SegmentKind = iota
	SegSuper
	SegPackage
	SegSelf
)

func (k SegmentKind) String() string {
	switch k {
	case SegSuper:
		return "super"
	case SegPackage:
		return "package"
	case SegSelf:
		return "self"
	}
	return "ident"
}

// ModSegment is one path segment; Ident is set for SegIdent only.
type ModSegment struct {
	Node
	Kind  SegmentKind
	Ident parser.Ident
}

func (s *ModSegment) Highlight(h highlight.Highlighter, c highlight.Color) {
	highlight.Spanned(h, s, c)
}

var segments *parser.Enum[*ModSegment]

func init() {
	kw := func(name string, k token.Keyword, kind SegmentKind) parser.Variant[*ModSegment] {
		return parser.Case(name, parser.Keyword(k), func(t parser.Tok) *ModSegment {
			return &ModSegment{Node: Node{Loc: t.Loc}, Kind: kind}
		})
	}
	segments = &parser.Enum[*ModSegment]{
		Name: "a path segment",
		Variants: []parser.Variant[*ModSegment]{
			parser.Case("ident", parser.IdentRule{}, func(id parser.Ident) *ModSegment {
				return &ModSegment{Node: Node{Loc: id.Loc}, Kind: SegIdent, Ident: id}
			}),
			kw("super", token.KwSuper, SegSuper),
			kw("package", token.KwPackage, SegPackage),
			kw("self", token.KwSelf, SegSelf),
		},
	}
}
