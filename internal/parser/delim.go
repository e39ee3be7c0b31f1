package parser

import (
	"oath/internal/diag"
	"oath/internal/source"
	"oath/internal/token"
)

// Delimited is the result of a frame: the group's delimiters, the inner value
// and whatever was left unparsed inside.
type Delimited[T any] struct {
	Open, Close source.Span
	Value       Try[T]
	Leftovers   *Skipped
}

func (d Delimited[T]) Span() source.Span { return d.Open.Join(d.Close) }

// InDelimiters parses Inner from the children of a group with the given
// delimiter. The frame always completes: problems inside stay inside.
type InDelimiters[T any] struct {
	Delim token.Delimiter
	Inner Rule[T]
}

// Frame is a shorthand constructor for InDelimiters.
func Frame[T any](d token.Delimiter, inner Rule[T]) InDelimiters[T] {
	return InDelimiters[T]{Delim: d, Inner: inner}
}

func Parens[T any](inner Rule[T]) InDelimiters[T]   { return Frame(token.Parens, inner) }
func Braces[T any](inner Rule[T]) InDelimiters[T]   { return Frame(token.Braces, inner) }
func Brackets[T any](inner Rule[T]) InDelimiters[T] { return Frame(token.Brackets, inner) }

func (r InDelimiters[T]) Desc() string { return "`" + r.Delim.Open() + "`" }

func (r InDelimiters[T]) Detect(p *Parser) bool { return p.AtGroup(r.Delim) }

func (r InDelimiters[T]) Parse(p *Parser) (Delimited[T], Exit) {
	t, _ := p.Next()
	g := t.Group
	sub := p.Sub(g)
	v, _ := Require(sub, r.Inner)
	return Delimited[T]{
		Open:      g.Open,
		Close:     g.Close,
		Value:     v,
		Leftovers: TakeLeftovers(sub),
	}, Complete
}

// AngleGroup is the result of Angles. Close fails when no `>` was found.
type AngleGroup[T any] struct {
	Open  source.Span
	Value Try[T]
	Close Try[Tok]
}

// Span runs from `<` to `>`, or to the end of the value when `>` is missing.
func (a AngleGroup[T]) Span() source.Span {
	sp, _ := source.JoinOptional(a.Open, a.Value, a.Close)
	return sp
}

// Angles parses `<` Inner `>` in the current scope. Compound closers are split.
// When Inner stops early, tokens up to a `>` are skipped as unexpected; the
// search stops at `;`, a braces group or the end of the scope, and then the
// close is a failure with an "unclosed `<`" diagnostic.
type Angles[T any] struct{ Inner Rule[T] }

func (r Angles[T]) Desc() string { return "`<`" }

func (r Angles[T]) Detect(p *Parser) bool { return p.AtPunct(token.Lt) }

func (r Angles[T]) Parse(p *Parser) (AngleGroup[T], Exit) {
	open, _ := p.Next()
	out := AngleGroup[T]{Open: open.Span}

	p.angles++
	out.Value, _ = Require(p, r.Inner)
	p.angles--

	if !p.AtGt() {
		n, found := findGt(p)
		if !found {
			p.Error(diag.TokUnclosed, open.Span, diag.Str("`<`"))
			out.Close = Failure[Tok](p.Here())
			return out, Cut
		}
		m := p.Mark()
		p.Skip(n)
		p.Error(diag.SynUnexpectedTokens, p.SpanSince(m))
	}
	gt, _ := p.EatGt()
	out.Close = Success(Tok{Loc: gt})
	return out, Complete
}

// findGt looks ahead for a `>`-class punct without consuming.
func findGt(p *Parser) (int, bool) {
	for n := 0; ; n++ {
		t, ok := p.PeekAt(n)
		if !ok {
			return 0, false
		}
		switch {
		case t.Kind == token.TreePunct && t.Punct.IsGtClass():
			return n, true
		case t.IsPunct(token.Semicolon), t.IsGroup(token.Braces):
			return 0, false
		}
	}
}
