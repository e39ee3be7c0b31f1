package parser

import (
	"oath/internal/diag"
	"oath/internal/highlight"
	"oath/internal/source"
	"oath/internal/token"
)

// Parser: одна область разбора поверх Stream (файл или содержимое группы)
type Parser struct {
	ctx      *Context
	stream   Stream
	look     []token.Tree // буфер просмотра вперёд; look[0] может быть остатком разбитого `>>`
	last     source.Span  // span последнего съеденного токена
	consumed int
	end      source.Span // sentinel: конец файла или закрывающий разделитель группы
	angles   int         // глубина незакрытых `<` в этой области
}

// New opens the top-level scope over s.
func New(ctx *Context, s Stream) *Parser {
	if ctx == nil {
		ctx = NewContext(nil, nil, nil)
	}
	end := s.EndOfFileSpan()
	return &Parser{
		ctx:    ctx,
		stream: s,
		end:    end,
		last:   end.StartSpan(),
	}
}

// Sub opens a scope over the children of g. The sub-scope ends at g's close delimiter.
func (p *Parser) Sub(g *token.Group) *Parser {
	sub := New(p.ctx, newGroupStream(g))
	sub.last = g.Open
	return sub
}

func (p *Parser) Ctx() *Context { return p.ctx }

func (p *Parser) fill(n int) bool {
	for len(p.look) <= n {
		t, ok := p.stream.Next()
		if !ok {
			return false
		}
		p.look = append(p.look, t)
	}
	return true
}

// Peek returns the next tree without consuming it.
func (p *Parser) Peek() (token.Tree, bool) {
	return p.PeekAt(0)
}

// PeekAt looks n trees ahead.
func (p *Parser) PeekAt(n int) (token.Tree, bool) {
	if !p.fill(n) {
		return token.Tree{}, false
	}
	return p.look[n], true
}

// IsEmpty reports whether the scope is exhausted.
func (p *Parser) IsEmpty() bool {
	if len(p.look) > 0 {
		return false
	}
	return p.stream.PeekIsEmpty()
}

// Next consumes one tree.
func (p *Parser) Next() (token.Tree, bool) {
	t, ok := p.Peek()
	if !ok {
		return token.Tree{}, false
	}
	p.look = p.look[1:]
	p.last = t.Span
	p.consumed++
	return t, true
}

// Skip consumes up to n trees.
func (p *Parser) Skip(n int) {
	for ; n > 0; n-- {
		if _, ok := p.Next(); !ok {
			return
		}
	}
}

// Here is a zero-width span at the start of the next tree, or at the scope's end.
func (p *Parser) Here() source.Span {
	if t, ok := p.Peek(); ok {
		return t.Span.StartSpan()
	}
	return p.end.StartSpan()
}

// NextSpan is the span of the next tree, or the zero-width end sentinel.
func (p *Parser) NextSpan() source.Span {
	if t, ok := p.Peek(); ok {
		return t.Span
	}
	return p.end.StartSpan()
}

// Last is the span of the most recently consumed tree.
func (p *Parser) Last() source.Span { return p.last }

// End is the scope's end sentinel span.
func (p *Parser) End() source.Span { return p.end }

// Consumed counts trees consumed in this scope.
func (p *Parser) Consumed() int { return p.consumed }

// Mark запоминает точку начала узла
type Mark struct {
	consumed int
	here     source.Span
}

func (p *Parser) Mark() Mark {
	return Mark{consumed: p.consumed, here: p.Here()}
}

// SpanSince joins every tree consumed after m; zero-width at m when nothing was consumed.
func (p *Parser) SpanSince(m Mark) source.Span {
	if p.consumed == m.consumed {
		return m.here
	}
	return source.FromStartEnd(m.here.File, m.here.Start, p.last.End)
}

// ConsumedSince reports whether anything was consumed after m.
func (p *Parser) ConsumedSince(m Mark) bool {
	return p.consumed != m.consumed
}

// ===== Предикаты на следующий токен =====

func (p *Parser) AtKeyword(kw token.Keyword) bool {
	t, ok := p.Peek()
	return ok && t.IsKeyword(kw)
}

func (p *Parser) AtPunct(pu token.Punct) bool {
	t, ok := p.Peek()
	return ok && t.IsPunct(pu)
}

// AtGt matches any punct that starts with `>`.
func (p *Parser) AtGt() bool {
	t, ok := p.Peek()
	return ok && t.Kind == token.TreePunct && t.Punct.IsGtClass()
}

func (p *Parser) AtIdent() bool {
	t, ok := p.Peek()
	return ok && t.IsIdent()
}

func (p *Parser) AtGroup(d token.Delimiter) bool {
	t, ok := p.Peek()
	return ok && t.IsGroup(d)
}

func (p *Parser) AtLiteral() bool {
	t, ok := p.Peek()
	return ok && t.IsLiteral()
}

// EatGt consumes a single `>`, splitting `>>`, `>=` and `>>=` so the rest stays in front.
func (p *Parser) EatGt() (source.Span, bool) {
	t, ok := p.Peek()
	if !ok || t.Kind != token.TreePunct || !t.Punct.IsGtClass() {
		return source.Span{}, false
	}
	rest, split := t.Punct.SplitGt()
	if !split {
		p.Next()
		return t.Span, true
	}
	gt := source.FromStartLen(t.Span.File, t.Span.Start, 1)
	p.look[0] = token.NewPunct(rest, source.FromStartEnd(t.Span.File, gt.End, t.Span.End))
	p.last = gt
	p.consumed++
	return gt, true
}

// InAngles reports whether an unclosed `<` of this scope is being parsed;
// expression rules must not take `>` as an operator there.
func (p *Parser) InAngles() bool { return p.angles > 0 }

// ===== Диагностика и подсветка =====

// Error reports an error built from a code template.
func (p *Parser) Error(code diag.Code, sp source.Span, args ...diag.Arg) {
	p.ctx.report(diag.SevError, code, sp, args, nil)
}

// Warn reports a warning built from a code template.
func (p *Parser) Warn(code diag.Code, sp source.Span, args ...diag.Arg) {
	p.ctx.report(diag.SevWarning, code, sp, args, nil)
}

// Expected reports "expected {desc}" at sp.
func (p *Parser) Expected(sp source.Span, desc string) {
	p.ctx.expected(sp, desc, nil)
}

// ExpectedWithInsert reports "expected {desc}" with a fix inserting text at the given point.
func (p *Parser) ExpectedWithInsert(sp source.Span, desc string, at source.Span, text string) {
	fix := diag.Fix{
		Title: "insert `" + text + "`",
		Edits: []diag.FixEdit{{Span: at.EndSpan(), NewText: text}},
	}
	p.ctx.expected(sp, desc, []diag.Fix{fix})
}

// Highlight records a highlight for sp.
func (p *Parser) Highlight(sp source.Span, c highlight.Color) {
	p.ctx.Highlight(sp, c)
}

// Highlighter exposes the context's highlight sink to Highlightable values.
func (p *Parser) Highlighter() highlight.Highlighter {
	return p.ctx
}

// Intern interns s through the context's interner.
func (p *Parser) Intern(s string) source.StrID {
	return p.ctx.Interner.Intern(s)
}
