// Package diag defines the diagnostic model shared by the lexer, the parser
// and any consumer of the syntax tree.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error.
//   - Code: compact numeric identifier with a stable string ID (TOK1001, SYN2001...).
//     Each code owns a message template with "{}" placeholders.
//   - Args: template arguments, either static strings or interned identifiers.
//     Identifiers are resolved only at render time, so a Diagnostic never holds
//     a string copy of a name.
//   - Primary span, optional Notes and Fixes.
//
// # Emitting
//
// Producers push into a Bag directly (PushError/PushWarning) or go through a
// Reporter. Bag keeps insertion order, caps its size, and can be drained by
// severity with CollectErrors / CollectWarnings.
//
// Formatting lives in internal/diagfmt; this package only provides the
// one-line golden/short forms used by tests and by the CLI "short" format.
package diag
