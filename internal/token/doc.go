// Package token defines the token trees the oath parser consumes.
// Invariants:
//   - Parens, braces and brackets are always pre-grouped by the lexer into
//     TreeGroup values whose children are balanced.
//   - Angle brackets are never grouped: '<' and '>' reach the parser as Punct.
//   - Every tree carries the Span of its full extent; a group spans from its
//     open delimiter through its close delimiter.
//   - Keyword and Punct tables live in tokens.go; every lookup and String()
//     derives from that one definition.
package token
