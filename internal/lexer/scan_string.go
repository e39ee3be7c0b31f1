package lexer

import (
	"oath/internal/diag"
	"oath/internal/token"
)

// "..." с escape-последовательностями; перевод строки или EOF до закрывающей кавычки: ошибка.
// Raw хранит текст между кавычками как есть, escape не раскрываем.
func (lx *Lexer) scanString() token.Tree {
	return lx.scanQuoted('"', token.LitStr, diag.TokUnterminatedString)
}

// '.' одна руна или escape.
func (lx *Lexer) scanChar() token.Tree {
	return lx.scanQuoted('\'', token.LitChar, diag.TokUnterminatedChar)
}

func (lx *Lexer) scanQuoted(quote byte, kind token.LitKind, unterminated diag.Code) token.Tree {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	body := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == quote {
			raw := string(lx.cursor.TextFrom(body))
			lx.cursor.Bump()
			suffix := lx.scanSuffix()
			return token.NewLiteral(token.Literal{Kind: kind, Raw: raw, Suffix: suffix}, lx.cursor.SpanFrom(start))
		}
		if b == '\n' {
			break
		}
		if b == '\\' {
			// грубая обработка escape: съесть '\' и следующую руну, не валидируем глубоко здесь
			lx.cursor.Bump()
			if lx.cursor.EOF() || lx.cursor.Peek() == '\n' {
				break
			}
		}
		lx.bumpRune()
	}
	raw := string(lx.cursor.TextFrom(body))
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(unterminated, sp)
	return token.NewLiteral(token.Literal{Kind: kind, Raw: raw}, sp)
}
