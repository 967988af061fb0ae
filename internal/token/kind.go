package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a lifetime token such as 'a.
	Lifetime
	// KwFn represents the 'fn' keyword.
	KwFn // fn
	// KwSelf represents the 'self' keyword.
	KwSelf // self
	// KwMut represents the 'mut' keyword.
	KwMut // mut

	// IntLit represents an integer literal.
	IntLit
	// FloatLit represents a floating-point literal.
	FloatLit
	// StringLit represents a string literal.
	StringLit
	// CharLit represents a character literal.
	CharLit

	Colon     // :
	PathSep   // ::
	Comma     // ,
	Semicolon // ;
	Hash      // #
	LBracket  // [
	RBracket  // ]
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }
	Lt        // <
	Gt        // >
	Amp       // &
	Pipe      // |
	Caret     // ^
	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Assign    // =
	EqEq      // ==
	Bang      // !
	Question  // ?
	Dot       // .
	DotDot    // ..
	Arrow     // ->
	FatArrow  // =>
	At        // @
	Dollar    // $
)

var kindNames = map[Kind]string{
	Invalid:   "Invalid",
	EOF:       "EOF",
	Ident:     "Ident",
	Lifetime:  "Lifetime",
	KwFn:      "fn",
	KwSelf:    "self",
	KwMut:     "mut",
	IntLit:    "IntLit",
	FloatLit:  "FloatLit",
	StringLit: "StringLit",
	CharLit:   "CharLit",
	Colon:     ":",
	PathSep:   "::",
	Comma:     ",",
	Semicolon: ";",
	Hash:      "#",
	LBracket:  "[",
	RBracket:  "]",
	LParen:    "(",
	RParen:    ")",
	LBrace:    "{",
	RBrace:    "}",
	Lt:        "<",
	Gt:        ">",
	Amp:       "&",
	Pipe:      "|",
	Caret:     "^",
	Plus:      "+",
	Minus:     "-",
	Star:      "*",
	Slash:     "/",
	Percent:   "%",
	Assign:    "=",
	EqEq:      "==",
	Bang:      "!",
	Question:  "?",
	Dot:       ".",
	DotDot:    "..",
	Arrow:     "->",
	FatArrow:  "=>",
	At:        "@",
	Dollar:    "$",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Unknown"
}
