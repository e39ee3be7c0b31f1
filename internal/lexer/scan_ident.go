package lexer

import (
	"golang.org/x/text/unicode/norm"

	"oath/internal/token"
)

// scanIdentOrKeyword сканирует [Ident] и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только lowercase); не-ASCII имена приводятся к NFC.
func (lx *Lexer) scanIdentOrKeyword() token.Tree {
	start := lx.cursor.Mark()
	ascii := lx.scanIdentRunes()

	sp := lx.cursor.SpanFrom(start)
	lex := lx.cursor.TextFrom(start)

	if k, ok := token.LookupKeyword(string(lex)); ok {
		return token.NewKeyword(k, sp)
	}
	if !ascii {
		lex = norm.NFC.Bytes(lex)
	}
	return token.NewIdent(lx.opts.Interner.InternBytes(lex), sp)
}

// scanIdentRunes съедает руны идентификатора и сообщает, были ли они все ASCII.
func (lx *Lexer) scanIdentRunes() (ascii bool) {
	ascii = true
	first := true
	for {
		r, sz := lx.peekRune()
		if sz == 0 {
			return ascii
		}
		if r < utf8RuneSelf {
			b := byte(r)
			if first && !isIdentStartByte(b) || !first && !isIdentContinueByte(b) {
				return ascii
			}
			lx.cursor.Bump()
		} else {
			if first && !isIdentStartRune(r) || !first && !isIdentContinueRune(r) {
				return ascii
			}
			ascii = false
			lx.bumpRune()
		}
		first = false
	}
}
