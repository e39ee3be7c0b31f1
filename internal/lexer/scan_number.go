package lexer

import (
	"oath/internal/diag"
	"oath/internal/source"
	"oath/internal/token"
)

// Поддержка: 0, 123, 0b..., 0o..., 0x..., 1.0, .5, 1e-3, 1.0e+10 и суффиксы (1u8, 2.0f32).
// Неверные формы: репорт malformed number, литерал всё равно выдаём.
func (lx *Lexer) scanNumber() token.Tree {
	start := lx.cursor.Mark()
	kind := token.LitInt
	malformed := false

	digits := func(accept func(byte) bool) int {
		n := 0
		for {
			b := lx.cursor.Peek()
			if b == '_' {
				lx.cursor.Bump()
				continue
			}
			if !accept(b) {
				return n
			}
			lx.cursor.Bump()
			n++
		}
	}

	// ведущая точка: значит формат ".digits"
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.LitFloat
		digits(isDec)
		malformed = !lx.scanExponent() || malformed
		return lx.finishNumber(start, kind, malformed)
	}

	// ведущий 0 и база?
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		var accept func(byte) bool
		switch b1 {
		case 'b', 'B':
			accept = isBin
		case 'o', 'O':
			accept = isOct
		case 'x', 'X':
			accept = isHex
		}
		if accept != nil {
			lx.cursor.BumpN(2)
			if digits(accept) == 0 {
				malformed = true
			}
			// цифры вне базы (0b102): тоже ошибка
			if isDec(lx.cursor.Peek()) {
				digits(isDec)
				malformed = true
			}
			return lx.finishNumber(start, kind, malformed)
		}
	}

	// десятичная целая часть
	digits(isDec)

	// дробная часть: только если за точкой цифра, иначе это '.' поля/метода
	if lx.isNumberAfterDot() {
		lx.cursor.Bump()
		kind = token.LitFloat
		digits(isDec)
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		kind = token.LitFloat
		malformed = !lx.scanExponent() || malformed
	}

	return lx.finishNumber(start, kind, malformed)
}

// scanExponent съедает [eE][+-]?digits, если он есть; false, если цифр нет.
func (lx *Lexer) scanExponent() bool {
	if b := lx.cursor.Peek(); b != 'e' && b != 'E' {
		return true
	}
	lx.cursor.Bump()
	if b := lx.cursor.Peek(); b == '+' || b == '-' {
		lx.cursor.Bump()
	}
	n := 0
	for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
		if lx.cursor.Peek() != '_' {
			n++
		}
		lx.cursor.Bump()
	}
	return n > 0
}

func (lx *Lexer) finishNumber(start Mark, kind token.LitKind, malformed bool) token.Tree {
	raw := string(lx.cursor.TextFrom(start))
	suffix := lx.scanSuffix()
	sp := lx.cursor.SpanFrom(start)
	if malformed {
		lx.errLex(diag.TokMalformedNumber, sp)
	}
	return token.NewLiteral(token.Literal{Kind: kind, Raw: raw, Suffix: suffix}, sp)
}

// scanSuffix читает идентификатор, приклеенный к литералу.
func (lx *Lexer) scanSuffix() source.StrID {
	if !lx.isIdentStartHere() {
		return source.NoStrID
	}
	start := lx.cursor.Mark()
	lx.scanIdentRunes()
	return lx.opts.Interner.InternBytes(lx.cursor.TextFrom(start))
}
