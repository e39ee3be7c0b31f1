package ast

import (
	"oath/internal/diag"
	"oath/internal/highlight"
	"oath/internal/parser"
	"oath/internal/source"
	"oath/internal/token"
)

// ModifierKind is one of the item modifiers.
type ModifierKind uint8

const (
	ModPub ModifierKind = iota
	ModRaw
	ModCon
)

func (k ModifierKind) String() string {
	switch k {
	case ModPub:
		return "pub"
	case ModRaw:
		return "raw"
	case ModCon:
		return "con"
	}
	return "?"
}

func (k ModifierKind) keyword() token.Keyword {
	switch k {
	case ModRaw:
		return token.KwRaw
	case ModCon:
		return token.KwCon
	}
	return token.KwPub
}

type Modifier struct {
	Node
	Kind ModifierKind
}

type ModifierRule struct{}

func (ModifierRule) Desc() string { return "a modifier" }

func (ModifierRule) Detect(p *parser.Parser) bool {
	_, ok := modifierAt(p)
	return ok
}

func (ModifierRule) Parse(p *parser.Parser) (Modifier, parser.Exit) {
	kind, _ := modifierAt(p)
	t, _ := p.Next()
	return Modifier{Node: Node{Loc: t.Span}, Kind: kind}, parser.Complete
}

func modifierAt(p *parser.Parser) (ModifierKind, bool) {
	for _, k := range []ModifierKind{ModPub, ModRaw, ModCon} {
		if p.AtKeyword(k.keyword()) {
			return k, true
		}
	}
	return 0, false
}

// Target is what a modifier or attribute is attached to.
type Target uint8

const (
	TargetMod Target = iota
	TargetUse
	TargetStruct
	TargetFn
	TargetTrait
	TargetField
)

func (t Target) String() string {
	switch t {
	case TargetMod:
		return "a module"
	case TargetUse:
		return "a use"
	case TargetStruct:
		return "a struct"
	case TargetFn:
		return "a function"
	case TargetTrait:
		return "a trait"
	case TargetField:
		return "a field"
	}
	return "an item"
}

// allowed[modifier]: на что модификатор можно вешать
var allowed = map[ModifierKind][]Target{
	ModPub: {TargetMod, TargetUse, TargetStruct, TargetFn, TargetTrait, TargetField},
	ModRaw: {TargetStruct, TargetFn},
	ModCon: {TargetFn},
}

// Modifiers is a validated modifier list.
type Modifiers []Modifier

func (ms Modifiers) Has(k ModifierKind) bool {
	for _, m := range ms {
		if m.Kind == k {
			return true
		}
	}
	return false
}

// validateModifiers reports misplaced and repeated modifiers.
func validateModifiers(p *parser.Parser, mods []Modifier, target Target) {
	var seen [3]bool
	for _, m := range mods {
		if seen[m.Kind] {
			p.Error(diag.SynDouble, m.Loc, diag.Str("`"+m.Kind.String()+"`"))
			continue
		}
		seen[m.Kind] = true
		ok := false
		for _, t := range allowed[m.Kind] {
			if t == target {
				ok = true
				break
			}
		}
		if !ok {
			p.Error(diag.SynCannotBePutOn, m.Loc, diag.Str("`"+m.Kind.String()+"`"), diag.Str(target.String()))
		}
	}
}

// ItemKind is the declaration part of an item: *Mod, *Use, *Struct, *Fn or *Trait.
type ItemKind interface {
	source.Spanned
	target() Target
}

// Item is Attr* Modifier* ItemKind. A garbage item has only Garbage set.
type Item struct {
	Node
	Attrs   []*Attr
	Mods    Modifiers
	Kind    parser.Try[ItemKind]
	Garbage *parser.Skipped
}

type ItemRule struct{}

func (ItemRule) Desc() string { return "an item" }

func (r ItemRule) DetectStrict(p *parser.Parser) bool {
	return p.AtPunct(token.Hash) || ModifierRule{}.Detect(p) || itemKinds.DetectStrict(p)
}

func (r ItemRule) Detect(p *parser.Parser) bool {
	return !p.IsEmpty()
}

func (r ItemRule) Parse(p *parser.Parser) (*Item, parser.Exit) {
	m := p.Mark()
	if !r.DetectStrict(p) {
		skipped := parser.SkipGarbage[*Item](p, r)
		return &Item{Node: at(p, m), Garbage: &skipped}, parser.Complete
	}
	item := &Item{}
	attrs, exit := parser.Many[*Attr](p, AttrRule{})
	mods, ex := parser.Many[Modifier](p, ModifierRule{})
	exit = exit.Join(ex)
	item.Attrs, item.Mods = attrs, mods
	item.Kind, ex = parser.Require[ItemKind](p, itemKinds)
	exit = exit.Join(ex)
	if kind, ok := item.Kind.Get(); ok {
		validateModifiers(p, mods, kind.target())
	}
	item.Node = at(p, m)
	return item, exit
}

var itemKinds *parser.Enum[ItemKind]

func init() {
	itemKinds = &parser.Enum[ItemKind]{
		Name: "an item",
		Variants: []parser.Variant[ItemKind]{
			parser.Case("mod", ModRule{}, func(v *Mod) ItemKind { return v }),
			parser.Case("use", UseRule{}, func(v *Use) ItemKind { return v }),
			parser.Case("struct", StructRule{}, func(v *Struct) ItemKind { return v }),
			parser.Case("fn", FnRule{}, func(v *Fn) ItemKind { return v }),
			parser.Case("trait", TraitRule{}, func(v *Trait) ItemKind { return v }),
		},
	}
}

// Attr is `#[path(args...)]`.
type Attr struct {
	Node
	Hash parser.Tok
	Body parser.Delimited[*AttrBody]
}

// AttrBody is the inside of an attribute's brackets.
type AttrBody struct {
	Node
	Path *Path
	Args *parser.Delimited[parser.Punctuated[Expr]]
}

type AttrRule struct{}

func (AttrRule) Desc() string { return "an attribute" }

func (AttrRule) Detect(p *parser.Parser) bool { return p.AtPunct(token.Hash) }

func (AttrRule) Parse(p *parser.Parser) (*Attr, parser.Exit) {
	m := p.Mark()
	hash, _ := parser.Punct(token.Hash).Parse(p)
	attr := &Attr{Hash: hash}
	body, exit := parser.Require[parser.Delimited[*AttrBody]](p, parser.Brackets[*AttrBody](attrBodyRule{}))
	attr.Body = body.Value()
	attr.Node = at(p, m)
	return attr, exit
}

type attrBodyRule struct{}

func (attrBodyRule) Desc() string { return "an attribute path" }

func (attrBodyRule) Detect(p *parser.Parser) bool { return PathRule{}.Detect(p) }

func (attrBodyRule) Parse(p *parser.Parser) (*AttrBody, parser.Exit) {
	m := p.Mark()
	path, exit := PathRule{}.Parse(p)
	highlight.Opt(p.Highlighter(), path, highlight.Yellow)
	body := &AttrBody{Path: path}
	args, ok, _ := parser.OptionParse[parser.Delimited[parser.Punctuated[Expr]]](p,
		parser.Parens[parser.Punctuated[Expr]](parser.TrlEndless[Expr]{Item: ExprRule{}, Sep: token.Comma}))
	if ok {
		body.Args = &args
	}
	body.Node = at(p, m)
	return body, exit
}
