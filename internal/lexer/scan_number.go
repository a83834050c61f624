package lexer

import (
	"stelaro/internal/diag"
	"stelaro/internal/symbol"
	"stelaro/internal/token"
)

// scanNumber lexes an integer or float literal starting at mark, where the
// cursor is positioned on the first digit. A second '.' is rejected as an
// invalid float format; a trailing '.' with no following digit is rejected
// as a missing fractional part (e.g. "123.").
func (lx *Lexer) scanNumber(mark Mark) token.Token {
	lx.cursor.Bump()
	isFloat := false

loop:
	for {
		switch b := lx.cursor.Peek(); {
		case isDec(b):
			lx.cursor.Bump()
		case b == '.':
			if isFloat {
				sp := lx.cursor.SpanFrom(mark)
				lx.errLex(diag.LexInvalidFloatFormat, sp, "numeric literal has a second '.'")
				return token.Token{Kind: token.Invalid, Span: sp}
			}
			isFloat = true
			lx.cursor.Bump()
		default:
			break loop
		}
	}

	sp := lx.cursor.SpanFrom(mark)
	if lx.file.Content[lx.cursor.Off-1] == '.' {
		lx.errLex(diag.LexMissingFractional, sp, "missing fractional digits after '.'")
		return token.Token{Kind: token.Invalid, Span: sp}
	}

	kind := token.IntLit
	if isFloat {
		kind = token.FloatLit
	}
	lexeme := string(lx.file.Content[sp.Start:sp.End])
	return token.Token{Kind: kind, Span: sp, Symbol: symbol.Intern(lexeme)}
}
