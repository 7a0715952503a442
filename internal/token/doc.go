// Package token defines lexical token kinds and trivia for the obfuscator's
// JavaScript frontend.
// Invariants:
//   - Token.Text is a slice of the original source (no copies), except for
//     identifiers that required NFC normalization.
//   - Token.Span matches Text exactly (Begin..End).
//   - Comments are represented as leading Trivia and never appear in the main
//     token stream.
//   - `undefined` is an identifier, not a keyword; it is recognized by the
//     transformation layer, not the lexer.
package token
