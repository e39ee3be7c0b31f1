package parser

import (
	"oath/internal/diag"
	"oath/internal/source"
)

// Skipped is a run of tokens dropped by recovery.
type Skipped struct {
	Loc source.Span
}

func (s Skipped) Span() source.Span { return s.Loc }

// Garbage is the fallback variant for Of: it skips at least one tree, then
// keeps skipping until Of strictly detects again or the scope ends, with one
// "expected {desc}" diagnostic over everything skipped.
type Garbage[T any] struct{ Of Rule[T] }

func (g Garbage[T]) Desc() string { return g.Of.Desc() }

func (g Garbage[T]) Detect(p *Parser) bool { return !p.IsEmpty() }

func (g Garbage[T]) Parse(p *Parser) (Skipped, Exit) {
	return SkipGarbage(p, g.Of), Complete
}

// SkipGarbage is Garbage as a plain function.
func SkipGarbage[T any](p *Parser, resume Rule[T]) Skipped {
	m := p.Mark()
	p.Next()
	for !p.IsEmpty() && !DetectStrict(p, resume) {
		p.Next()
	}
	sp := p.SpanSince(m)
	p.ctx.expectedSkipped(sp, resume.Desc(), nil)
	return Skipped{Loc: sp}
}

// Unmatched skips exactly one tree with an "expected {desc}" diagnostic.
type Unmatched[T any] struct{ Of Rule[T] }

func (u Unmatched[T]) Desc() string { return u.Of.Desc() }

func (u Unmatched[T]) Detect(p *Parser) bool { return !p.IsEmpty() }

func (u Unmatched[T]) Parse(p *Parser) (Skipped, Exit) {
	return SkipUnmatched(p, u.Of.Desc()), Complete
}

// SkipUnmatched is Unmatched as a plain function.
func SkipUnmatched(p *Parser, desc string) Skipped {
	m := p.Mark()
	p.Next()
	sp := p.SpanSince(m)
	p.ctx.expectedSkipped(sp, desc, nil)
	return Skipped{Loc: sp}
}

// Leftovers swallows the rest of a scope with one "unexpected tokens" diagnostic.
type Leftovers struct{}

func (Leftovers) Desc() string { return "nothing" }

func (Leftovers) Detect(p *Parser) bool { return !p.IsEmpty() }

func (Leftovers) Parse(p *Parser) (Skipped, Exit) {
	m := p.Mark()
	for !p.IsEmpty() {
		p.Next()
	}
	sp := p.SpanSince(m)
	p.Error(diag.SynUnexpectedTokens, sp)
	return Skipped{Loc: sp}, Complete
}

// TakeLeftovers runs Leftovers when anything remains.
func TakeLeftovers(p *Parser) *Skipped {
	s, ok, _ := OptionParse[Skipped](p, Leftovers{})
	if !ok {
		return nil
	}
	return &s
}
