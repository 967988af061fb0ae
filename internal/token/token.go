package token

import (
	"defargs/internal/source"
)

// Token is a single lexed token with its location and original text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric, string, or char literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, CharLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a declaration keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwFn, KwSelf, KwMut:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// OpensDelim reports whether the token opens a bracket pair. Raw type and
// expression captures track these to find a top-level stop token.
func (t Token) OpensDelim() bool {
	switch t.Kind {
	case LParen, LBracket, LBrace, Lt:
		return true
	default:
		return false
	}
}

// ClosesDelim reports whether the token closes a bracket pair.
func (t Token) ClosesDelim() bool {
	switch t.Kind {
	case RParen, RBracket, RBrace, Gt:
		return true
	default:
		return false
	}
}
