package lexer

import (
	"fmt"

	"stelaro/internal/diag"
	"stelaro/internal/source"
	"stelaro/internal/symbol"
	"stelaro/internal/token"

	"fortio.org/safecast"
)

// maxTokenLength bounds a single token's length. A token past this is almost
// certainly a runaway literal (an unterminated string running to EOF, say),
// so the lexer reports it rather than interning an enormous Symbol.
const maxTokenLength = 64 * 1024

// Lexer turns a source file's bytes into a stream of tokens, one at a time.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter

	look       *token.Token
	terminated bool
}

// New creates a Lexer over file, reporting lexical errors through r.
func New(file *source.File, r diag.Reporter) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: r,
	}
}

// Next consumes and returns the next token. Past EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	if lx.terminated {
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	lx.skipWhitespaceAndComments()

	if lx.cursor.EOF() {
		lx.terminated = true
		return token.Token{Kind: token.EOF, Span: lx.EmptySpan()}
	}

	mark := lx.cursor.Mark()
	tok := lx.scanOne(mark)
	lx.enforceTokenLength(&tok)
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Push injects a token back into the one-token lookahead buffer.
func (lx *Lexer) Push(tok token.Token) {
	lx.look = &tok
}

// EmptySpan returns a zero-length span at the cursor's current offset,
// useful for diagnostics raised before any token has been scanned.
func (lx *Lexer) EmptySpan() source.Span {
	off := lx.cursor.Off
	return source.Span{File: lx.file.ID, Start: off, End: off}
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.reporter != nil {
		lx.reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}

// scanOne dispatches on the first byte of the token starting at mark.
func (lx *Lexer) scanOne(mark Mark) token.Token {
	b := lx.cursor.Peek()
	switch {
	case b == '(':
		lx.cursor.Bump()
		return lx.punct(token.LParen, mark)
	case b == ')':
		lx.cursor.Bump()
		return lx.punct(token.RParen, mark)
	case b == '{':
		lx.cursor.Bump()
		return lx.punct(token.LBrace, mark)
	case b == '}':
		lx.cursor.Bump()
		return lx.punct(token.RBrace, mark)
	case b == ',':
		lx.cursor.Bump()
		return lx.punct(token.Comma, mark)
	case b == '.':
		lx.cursor.Bump()
		return lx.punct(token.Dot, mark)
	case b == '+':
		lx.cursor.Bump()
		return lx.punct(token.Plus, mark)
	case b == '-':
		lx.cursor.Bump()
		if lx.cursor.Eat('>') {
			return lx.punct(token.Arrow, mark)
		}
		return lx.punct(token.Minus, mark)
	case b == '*':
		lx.cursor.Bump()
		return lx.punct(token.Star, mark)
	case b == '/':
		lx.cursor.Bump()
		return lx.punct(token.Slash, mark)
	case b == ';':
		lx.cursor.Bump()
		return lx.punct(token.Semicolon, mark)
	case b == '%':
		lx.cursor.Bump()
		return lx.punct(token.Percent, mark)
	case b == ':':
		lx.cursor.Bump()
		if lx.cursor.Eat(':') {
			return lx.punct(token.ColonColon, mark)
		}
		return lx.punct(token.Colon, mark)
	case b == '!':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return lx.punct(token.BangEq, mark)
		}
		return lx.punct(token.Bang, mark)
	case b == '=':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return lx.punct(token.EqEq, mark)
		}
		if lx.cursor.Eat('>') {
			return lx.punct(token.Arrow, mark)
		}
		return lx.punct(token.Eq, mark)
	case b == '>':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return lx.punct(token.GtEq, mark)
		}
		return lx.punct(token.Gt, mark)
	case b == '<':
		lx.cursor.Bump()
		if lx.cursor.Eat('=') {
			return lx.punct(token.LtEq, mark)
		}
		return lx.punct(token.Lt, mark)
	case isDec(b):
		return lx.scanNumber(mark)
	case b == '"':
		return lx.scanString(mark)
	case isIdentStartByte(b):
		return lx.scanIdent(mark)
	case b >= utf8RuneSelf:
		if r, _ := lx.peekRune(); isIdentStartRune(r) {
			return lx.scanIdent(mark)
		}
		return lx.scanUnknown(mark)
	default:
		return lx.scanUnknown(mark)
	}
}

// punct builds a punctuation/operator token, interning the exact bytes
// consumed (so Arrow keeps "->" vs "=>" distinct in the source record even
// though both lex to the same Kind).
func (lx *Lexer) punct(kind token.Kind, mark Mark) token.Token {
	sp := lx.cursor.SpanFrom(mark)
	return token.Token{Kind: kind, Span: sp, Symbol: symbol.Intern(string(lx.file.Content[sp.Start:sp.End]))}
}

// scanUnknown handles a byte that starts none of the known token forms.
// Like an unterminated string or an invalid escape, this halts lexing for
// the rest of the file: an unrecognized character close to what it meant
// to be can shift every following column, so producing a cascade of
// downstream errors is worse than stopping at the first one.
func (lx *Lexer) scanUnknown(mark Mark) token.Token {
	r, _ := lx.peekRune()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(mark)
	lx.terminated = true
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unexpected character %q", r))
	return token.Token{Kind: token.Invalid, Span: sp}
}

func (lx *Lexer) skipWhitespaceAndComments() {
	for {
		switch lx.cursor.Peek() {
		case ' ', '\t', '\r', '\n':
			lx.cursor.Bump()
		case '/':
			b0, b1, ok := lx.cursor.Peek2()
			if !ok || b0 != '/' || b1 != '/' {
				return
			}
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) enforceTokenLength(tok *token.Token) {
	length := tok.Span.Len()
	if length <= maxTokenLength {
		return
	}
	msg := fmt.Sprintf("token length %d exceeds limit %d", length, maxTokenLength)
	lx.errLex(diag.LexTokenTooLong, tok.Span, msg)
	tok.Kind = token.Invalid
	if off, err := safecast.Conv[uint32](len(lx.file.Content)); err == nil {
		lx.cursor.Off = off
	}
}
