package lexer

import (
	"oath/internal/diag"
	"oath/internal/token"
)

// scanDelimiter распознаёт ( ) { } [ ]; угловые скобки идут как Punct.
func (lx *Lexer) scanDelimiter() (lexeme, bool) {
	var (
		kind  lexKind
		delim token.Delimiter
	)
	switch lx.cursor.Peek() {
	case '(':
		kind, delim = lexOpen, token.Parens
	case ')':
		kind, delim = lexClose, token.Parens
	case '{':
		kind, delim = lexOpen, token.Braces
	case '}':
		kind, delim = lexClose, token.Braces
	case '[':
		kind, delim = lexOpen, token.Brackets
	case ']':
		kind, delim = lexClose, token.Brackets
	default:
		return lexeme{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	return lexeme{kind: kind, delim: delim, span: lx.cursor.SpanFrom(start)}, true
}

// scanPunct: жадный матч по таблице token.Puncts (самые длинные первыми).
func (lx *Lexer) scanPunct() (token.Tree, bool) {
	p, n, ok := token.MatchPunct(lx.cursor.Rest())
	if !ok {
		return token.Tree{}, false
	}
	start := lx.cursor.Mark()
	lx.cursor.BumpN(n)
	return token.NewPunct(p, lx.cursor.SpanFrom(start)), true
}

// skipUnknown съедает подряд идущие неизвестные руны и выдаёт один unknown token.
func (lx *Lexer) skipUnknown() {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && lx.isUnknownHere() {
		lx.bumpRune()
	}
	if lx.cursor.Off == start.off {
		// страховка от зацикливания
		lx.bumpRune()
	}
	lx.errLex(diag.TokUnknownToken, lx.cursor.SpanFrom(start))
}

func (lx *Lexer) isUnknownHere() bool {
	ch := lx.cursor.Peek()
	switch {
	case ch == ' ', ch == '\t', ch == '\n', ch == '\r', ch == '\f', ch == '\v':
		return false
	case isIdentStartByte(ch), isDec(ch), ch == '"', ch == '\'':
		return false
	case ch >= utf8RuneSelf:
		return !lx.isIdentStartHere()
	}
	switch ch {
	case '(', ')', '{', '}', '[', ']':
		return false
	}
	_, _, ok := token.MatchPunct(lx.cursor.Rest())
	return !ok
}
