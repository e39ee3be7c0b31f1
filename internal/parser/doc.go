// Package parser is the combinator core the oath grammar is built from.
//
// A grammar production is a Rule: it describes itself for diagnostics,
// detects whether it can start at the next token, and parses. Detection looks
// at one token only and has no side effects; Parse is only called after Detect
// returned true. Together these give backtrack-free recursive descent.
//
// Failures are recovered locally. Require yields a Try in the failed state and
// an "expected ..." diagnostic instead of unwinding; Garbage, Unmatched and
// Leftovers skip tokens with exactly one diagnostic each. Exit.Cut tells an
// enclosing list that the last element was committed but malformed, so the
// list stops instead of mistaking the remains for a new element.
//
// Delimited groups arrive pre-nested from the lexer. InDelimiters parses a
// group's children in a fresh sub-scope; nothing inside a group can make the
// outer scope lose its place.
package parser
