// Package token defines the lexical token kinds produced by the lexer.
// Invariants:
//   - Token.Symbol interns exactly the source bytes that make up the
//     token; Token.Span covers that same range.
//   - Keywords are lowercase and fixed; there are no contextual keywords.
//   - Comments (// ...) are never emitted as tokens — the lexer consumes
//     and discards them.
package token
