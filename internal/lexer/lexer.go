package lexer

import (
	"oath/internal/source"
	"oath/internal/token"
)

type lexKind uint8

const (
	lexEOF lexKind = iota
	lexTree
	lexOpen
	lexClose
)

// lexeme is one flat scan result; delimiters are folded into groups by Tokenize.
type lexeme struct {
	kind  lexKind
	tree  token.Tree
	delim token.Delimiter
	span  source.Span
}

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

func New(file *source.File, opts Options) *Lexer {
	if opts.Interner == nil {
		opts.Interner = source.NewInterner()
	}
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// next возвращает следующую значимую лексему. После EOF всегда возвращает lexEOF.
func (lx *Lexer) next() lexeme {
	for {
		lx.skipTrivia()

		if lx.cursor.EOF() {
			return lexeme{kind: lexEOF, span: lx.cursor.Here()}
		}

		ch := lx.cursor.Peek()
		switch {
		case isIdentStartByte(ch) || ch >= utf8RuneSelf && lx.isIdentStartHere():
			return lx.tree(lx.scanIdentOrKeyword())

		case isDec(ch), ch == '.' && lx.isNumberAfterDot():
			return lx.tree(lx.scanNumber())

		case ch == '"':
			return lx.tree(lx.scanString())

		case ch == '\'':
			return lx.tree(lx.scanChar())
		}

		if lex, ok := lx.scanDelimiter(); ok {
			return lex
		}
		if tok, ok := lx.scanPunct(); ok {
			return lx.tree(tok)
		}
		// неизвестный символ: репорт и продолжаем
		lx.skipUnknown()
	}
}

func (lx *Lexer) tree(t token.Tree) lexeme {
	return lexeme{kind: lexTree, tree: t, span: t.Span}
}

// EndOfFileSpan is the zero-width span after the last byte.
func (lx *Lexer) EndOfFileSpan() source.Span {
	end := lx.file.PositionAt(lx.cursor.Limit)
	return source.ZeroAt(lx.file.ID, end)
}

const utf8RuneSelf = 0x80
