package lexer

import (
	"oath/internal/diag"
	"oath/internal/source"
	"oath/internal/token"
)

type openFrame struct {
	delim token.Delimiter
	open  source.Span
	trees []token.Tree
}

// Tokenize scans the whole file and nests parens, braces and brackets into groups.
//
// A closer that matches a frame deeper in the stack closes every frame above it
// as unclosed. A closer with no matching frame is reported as unopened and dropped.
// Frames still open at EOF are reported as unclosed and closed with a zero-width
// span at the end of the file.
func Tokenize(file *source.File, opts Options) *Output {
	lx := New(file, opts)
	stack := []openFrame{{}}

	closeTop := func(closeSpan source.Span) {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		g := &token.Group{Delim: top.delim, Open: top.open, Close: closeSpan, Trees: top.trees}
		parent := &stack[len(stack)-1]
		parent.trees = append(parent.trees, token.NewGroup(g))
	}
	unclosed := func(f openFrame, at source.Span, why string) {
		diag.ReportError(lx.opts.Reporter, diag.TokUnclosed, f.open, diag.Str("`"+f.delim.Open()+"`")).
			WithNote(at, why).
			Emit()
	}

	for {
		lex := lx.next()
		switch lex.kind {
		case lexTree:
			top := &stack[len(stack)-1]
			top.trees = append(top.trees, lex.tree)

		case lexOpen:
			stack = append(stack, openFrame{delim: lex.delim, open: lex.span})

		case lexClose:
			match := -1
			for i := len(stack) - 1; i > 0; i-- {
				if stack[i].delim == lex.delim {
					match = i
					break
				}
			}
			if match < 0 {
				lx.errLex(diag.TokUnopened, lex.span, diag.Str("`"+lex.delim.Close()+"`"))
				continue
			}
			for len(stack)-1 > match {
				unclosed(stack[len(stack)-1], lex.span, "closed here by `"+lex.delim.Close()+"`")
				closeTop(lex.span.StartSpan())
			}
			closeTop(lex.span)

		case lexEOF:
			eof := lx.EndOfFileSpan()
			for len(stack) > 1 {
				unclosed(stack[len(stack)-1], eof, "file ends here")
				closeTop(eof)
			}
			return &Output{Trees: stack[0].trees, eof: eof}
		}
	}
}

// Output is a tokenized file. It implements the parser's token stream.
type Output struct {
	Trees []token.Tree
	pos   int
	eof   source.Span
}

// NewOutput wraps already built trees, for tests and synthetic input.
func NewOutput(trees []token.Tree, eof source.Span) *Output {
	return &Output{Trees: trees, eof: eof}
}

// Next returns the next top-level tree.
func (o *Output) Next() (token.Tree, bool) {
	if o.pos >= len(o.Trees) {
		return token.Tree{}, false
	}
	t := o.Trees[o.pos]
	o.pos++
	return t, true
}

// PeekIsEmpty reports whether the stream is exhausted.
func (o *Output) PeekIsEmpty() bool {
	return o.pos >= len(o.Trees)
}

// EndOfFileSpan is the zero-width span after the last byte of the file.
func (o *Output) EndOfFileSpan() source.Span {
	return o.eof
}

// Count returns the number of leaf tokens, delimiters included.
func (o *Output) Count() int {
	n := 0
	for _, t := range o.Trees {
		n += t.Count()
	}
	return n
}
