// Package lexer turns oath source text into nested token trees.
//
// Parens, braces and brackets are folded into token.Group values here, so the
// parser only ever sees balanced groups. Delimiter mismatches, unknown
// characters and unterminated literals are reported through diag.Reporter and
// scanning continues.
package lexer
