package lexer

import (
	"oath/internal/diag"
	"oath/internal/source"
)

type Options struct {
	Reporter diag.Reporter // может быть nil: тогда ошибки игнорируем (но продолжаем лексить)
	Interner *source.Interner
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, args ...diag.Arg) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, args, nil, nil)
	}
}
