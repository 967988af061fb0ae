package lexer

import (
	"defargs/internal/diag"
	"defargs/internal/source"
	"defargs/internal/token"
)

// Lexer scans declaration files into tokens. Whitespace and comments are
// consumed silently; the parser never sees trivia.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token // one-token lookahead buffer
}

func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: reporter,
	}
}

// Next returns the next significant token. After EOF it always returns EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	case ch == '\'':
		return lx.scanLifetimeOrChar()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Tokenize drains the lexer, returning every token up to and including EOF.
func Tokenize(file *source.File, reporter diag.Reporter) []token.Token {
	lx := New(file, reporter)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) spanFrom(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.cursor.Off}
}

func (lx *Lexer) make(kind token.Kind, start uint32) token.Token {
	sp := lx.spanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.cursor.Text(sp.Start, sp.End)}
}

func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch ch := lx.cursor.Peek(); {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			lx.cursor.Bump()
			lx.cursor.Bump()
			for !lx.cursor.EOF() {
				if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					break
				}
				lx.cursor.Bump()
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	tok := lx.make(token.Ident, start)
	tok.Kind = token.LookupKeyword(tok.Text)
	return tok
}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Off
	kind := token.IntLit
	for !lx.cursor.EOF() && (isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
		lx.cursor.Bump()
	}
	// fraction, but not a `..` range
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		kind = token.FloatLit
		lx.cursor.Bump()
		for !lx.cursor.EOF() && (isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_') {
			lx.cursor.Bump()
		}
	}
	// numeric suffix: 1u8, 2.5f64
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.make(kind, start)
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Off
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		if ch == '\\' {
			lx.cursor.Bump()
			lx.cursor.Bump()
			continue
		}
		if ch == '"' {
			lx.cursor.Bump()
			return lx.make(token.StringLit, start)
		}
		if ch == '\n' {
			break
		}
		lx.cursor.Bump()
	}
	tok := lx.make(token.Invalid, start)
	diag.ReportError(lx.reporter, diag.LexUnterminatedString, tok.Span, "unterminated string literal").Emit()
	return tok
}

// scanLifetimeOrChar disambiguates 'a (lifetime) from 'a' (char literal):
// a closing quote right after the body means a char.
func (lx *Lexer) scanLifetimeOrChar() token.Token {
	start := lx.cursor.Off
	lx.cursor.Bump() // opening quote

	if lx.cursor.Peek() == '\\' {
		// escaped char literal: '\n'
		lx.cursor.Bump()
		lx.cursor.Bump()
		if lx.cursor.Peek() == '\'' {
			lx.cursor.Bump()
			return lx.make(token.CharLit, start)
		}
		tok := lx.make(token.Invalid, start)
		diag.ReportError(lx.reporter, diag.LexBadLifetime, tok.Span, "malformed character literal").Emit()
		return tok
	}

	if !isIdentStart(lx.cursor.Peek()) {
		// 'x' where x is any single non-ident byte
		lx.cursor.Bump()
		if lx.cursor.Peek() == '\'' {
			lx.cursor.Bump()
			return lx.make(token.CharLit, start)
		}
		tok := lx.make(token.Invalid, start)
		diag.ReportError(lx.reporter, diag.LexBadLifetime, tok.Span, "expected lifetime or character literal after '").Emit()
		return tok
	}

	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '\'' {
		lx.cursor.Bump()
		return lx.make(token.CharLit, start)
	}
	return lx.make(token.Lifetime, start)
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Off
	ch := lx.cursor.Peek()
	next := lx.cursor.PeekAt(1)
	lx.cursor.Bump()

	kind := token.Invalid
	switch ch {
	case ':':
		if next == ':' {
			lx.cursor.Bump()
			kind = token.PathSep
		} else {
			kind = token.Colon
		}
	case ',':
		kind = token.Comma
	case ';':
		kind = token.Semicolon
	case '#':
		kind = token.Hash
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '&':
		kind = token.Amp
	case '|':
		kind = token.Pipe
	case '^':
		kind = token.Caret
	case '+':
		kind = token.Plus
	case '-':
		if next == '>' {
			lx.cursor.Bump()
			kind = token.Arrow
		} else {
			kind = token.Minus
		}
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '=':
		switch next {
		case '=':
			lx.cursor.Bump()
			kind = token.EqEq
		case '>':
			lx.cursor.Bump()
			kind = token.FatArrow
		default:
			kind = token.Assign
		}
	case '!':
		kind = token.Bang
	case '?':
		kind = token.Question
	case '.':
		if next == '.' {
			lx.cursor.Bump()
			kind = token.DotDot
		} else {
			kind = token.Dot
		}
	case '@':
		kind = token.At
	case '$':
		kind = token.Dollar
	}

	tok := lx.make(kind, start)
	if kind == token.Invalid {
		diag.ReportError(lx.reporter, diag.LexUnknownChar, tok.Span, "unknown character "+tok.Text).Emit()
	}
	return tok
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDec(ch)
}

func isDec(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
