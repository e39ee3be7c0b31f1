package parser

import (
	"oath/internal/token"
)

// Punctuated is a list of items with the separators between them.
type Punctuated[T any] struct {
	Items []T
	Seps  []Tok
	// Trailing is set when the last separator has no item after it.
	Trailing bool
}

func (l Punctuated[T]) Len() int { return len(l.Items) }

// Sep is item (sep item)*. FollowedBy, when set, must accept the token after a
// separator for the separator to be taken; otherwise the list ends before it.
type Sep[T any] struct {
	Item       Rule[T]
	Sep        token.Punct
	FollowedBy func(token.Tree) bool
}

func (r Sep[T]) Desc() string { return r.Item.Desc() }

func (r Sep[T]) Detect(p *Parser) bool { return r.Item.Detect(p) }

func (r Sep[T]) Parse(p *Parser) (Punctuated[T], Exit) {
	var out Punctuated[T]
	v, exit := r.Item.Parse(p)
	out.Items = append(out.Items, v)
	for p.AtPunct(r.Sep) {
		if r.FollowedBy != nil {
			next, ok := p.PeekAt(1)
			if !ok || !r.FollowedBy(next) {
				break
			}
		}
		t, _ := p.Next()
		out.Seps = append(out.Seps, Tok{Loc: t.Span})
		item, ex := Require(p, r.Item)
		exit = exit.Join(ex)
		if !item.OK() {
			break
		}
		out.Items = append(out.Items, item.Value())
	}
	return out, exit
}

// Trl is a separated list that allows a trailing separator. It ends when
// neither an item nor a separator follows, and always detects.
type Trl[T any] struct {
	Item Rule[T]
	Sep  token.Punct
}

func (r Trl[T]) Desc() string { return r.Item.Desc() }

func (r Trl[T]) Detect(*Parser) bool { return true }

func (r Trl[T]) Parse(p *Parser) (Punctuated[T], Exit) {
	var out Punctuated[T]
	exit := Complete
	for r.Item.Detect(p) {
		m := p.Mark()
		v, ex := r.Item.Parse(p)
		out.Items = append(out.Items, v)
		exit = exit.Join(ex)
		out.Trailing = false
		if !p.ConsumedSince(m) || !p.AtPunct(r.Sep) {
			break
		}
		t, _ := p.Next()
		out.Seps = append(out.Seps, Tok{Loc: t.Span})
		out.Trailing = true
	}
	return out, exit
}

// TrlEndless is a separated list that runs until the scope is exhausted.
// A missing separator between two items is reported with an insertion fix;
// tokens that start neither an item nor a separator are skipped one tree at a time.
type TrlEndless[T any] struct {
	Item Rule[T]
	Sep  token.Punct
}

func (r TrlEndless[T]) Desc() string { return r.Item.Desc() }

func (r TrlEndless[T]) Detect(*Parser) bool { return true }

func (r TrlEndless[T]) Parse(p *Parser) (Punctuated[T], Exit) {
	var out Punctuated[T]
	sepDesc := "`" + r.Sep.String() + "`"
	for !p.IsEmpty() {
		if !r.Item.Detect(p) {
			SkipUnmatched(p, r.Item.Desc())
			r.eatSep(p, &out)
			continue
		}
		m := p.Mark()
		v, _ := r.Item.Parse(p)
		out.Items = append(out.Items, v)
		out.Trailing = false
		if !p.ConsumedSince(m) {
			SkipUnmatched(p, r.Item.Desc())
			continue
		}
		switch {
		case p.IsEmpty():
		case p.AtPunct(r.Sep):
			t, _ := p.Next()
			out.Seps = append(out.Seps, Tok{Loc: t.Span})
			out.Trailing = true
		case r.Item.Detect(p):
			p.ExpectedWithInsert(p.NextSpan(), sepDesc, p.Last(), r.Sep.String())
		default:
			SkipUnmatched(p, sepDesc)
			r.eatSep(p, &out)
		}
	}
	return out, Complete
}

// eatSep съедает разделитель, оставшийся после пропущенного мусора.
func (r TrlEndless[T]) eatSep(p *Parser, out *Punctuated[T]) {
	if p.AtPunct(r.Sep) {
		t, _ := p.Next()
		out.Seps = append(out.Seps, Tok{Loc: t.Span})
		out.Trailing = true
	}
}

// SepEnd is item (sep item)* closed by a required End punct.
type SepEnd[T any] struct {
	Item Rule[T]
	Sep  token.Punct
	End  token.Punct
}

// Terminated is a SepEnd result; End fails when the terminator is missing.
type Terminated[T any] struct {
	Punctuated[T]
	End Try[Tok]
}

func (r SepEnd[T]) Desc() string { return r.Item.Desc() }

func (r SepEnd[T]) Detect(p *Parser) bool { return r.Item.Detect(p) }

func (r SepEnd[T]) Parse(p *Parser) (Terminated[T], Exit) {
	list, exit := Sep[T]{Item: r.Item, Sep: r.Sep}.Parse(p)
	end, ex := Require[Tok](p, Punct(r.End))
	return Terminated[T]{Punctuated: list, End: end}, exit.Join(ex)
}
