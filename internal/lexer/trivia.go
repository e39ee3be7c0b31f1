package lexer

import (
	"oath/internal/diag"
)

// skipTrivia пропускает пробелы, переводы строк и комментарии перед значимым токеном.
// - //... до \n
// - /* ... */ с вложенностью; незакрытый комментарий репортится и обрезается на EOF
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			lx.cursor.Bump()
			continue
		case '/':
			if lx.skipComment() {
				continue
			}
		}
		return
	}
}

// //... , /*...*/
func (lx *Lexer) skipComment() bool {
	start := lx.cursor.Mark()
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' {
		return false
	}
	switch b1 {
	case '/':
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		return true

	case '*':
		lx.cursor.BumpN(2)
		depth := 1
		for !lx.cursor.EOF() && depth > 0 {
			if c0, c1, ok := lx.cursor.Peek2(); ok {
				if c0 == '/' && c1 == '*' {
					lx.cursor.BumpN(2)
					depth++
					continue
				}
				if c0 == '*' && c1 == '/' {
					lx.cursor.BumpN(2)
					depth--
					continue
				}
			}
			lx.cursor.Bump()
		}
		if depth > 0 {
			lx.errLex(diag.TokUnterminatedComment, lx.cursor.SpanFrom(start))
		}
		return true
	}
	// это не комментарий: вернёмся, пусть сканируется как оператор '/'
	return false
}
