package lexer

import (
	"stelaro/internal/symbol"
	"stelaro/internal/token"
)

// scanIdent lexes an identifier, keyword, or true/false literal starting at
// mark. The cursor is positioned on the first identifier byte, which the
// caller has already classified as an identifier start.
func (lx *Lexer) scanIdent(mark Mark) token.Token {
	for {
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isIdentContinueByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if sz == 0 || !isIdentContinueRune(r) {
			break
		}
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(mark)
	lexeme := string(lx.file.Content[sp.Start:sp.End])

	if kw, ok := token.LookupKeyword(lexeme); ok {
		return token.Token{Kind: kw, Span: sp, Symbol: symbol.Intern(lexeme)}
	}
	if lexeme == "true" || lexeme == "false" {
		return token.Token{Kind: token.BoolLit, Span: sp, Symbol: symbol.Intern(lexeme)}
	}
	return token.Token{Kind: token.Ident, Span: sp, Symbol: symbol.Intern(lexeme)}
}
