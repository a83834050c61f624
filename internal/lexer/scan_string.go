package lexer

import (
	"stelaro/internal/diag"
	"stelaro/internal/symbol"
	"stelaro/internal/token"
)

// isValidEscape reports whether b is one of the characters permitted after
// a backslash inside a string literal: \n \r \t \0 \' \" \\.
func isValidEscape(b byte) bool {
	switch b {
	case 'n', 'r', 't', '0', '\'', '"', '\\':
		return true
	default:
		return false
	}
}

// scanString lexes a double-quoted string literal starting at mark, where
// the cursor is positioned on the opening quote. An unescaped newline or
// running off the end of the file before a closing quote halts lexing for
// the rest of the file, mirroring a parser that cannot safely resynchronize
// after losing track of string boundaries.
func (lx *Lexer) scanString(mark Mark) token.Token {
	lx.cursor.Bump() // opening '"'

	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(mark)
			lx.terminated = true
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp}
		}

		switch lx.cursor.Peek() {
		case '\\':
			lx.cursor.Bump()
			if !isValidEscape(lx.cursor.Peek()) {
				lx.cursor.Bump()
				sp := lx.cursor.SpanFrom(mark)
				lx.terminated = true
				lx.errLex(diag.LexInvalidEscape, sp, "invalid escape sequence")
				return token.Token{Kind: token.Invalid, Span: sp}
			}
			lx.cursor.Bump()

		case '"':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(mark)
			lexeme := string(lx.file.Content[sp.Start:sp.End])
			return token.Token{Kind: token.StringLit, Span: sp, Symbol: symbol.Intern(lexeme)}

		case '\n':
			lx.cursor.Bump()
			sp := lx.cursor.SpanFrom(mark)
			lx.terminated = true
			lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
			return token.Token{Kind: token.Invalid, Span: sp}

		default:
			lx.cursor.Bump()
		}
	}
}
