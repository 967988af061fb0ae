package token

var keywords = map[string]Kind{
	"fn":   KwFn,
	"self": KwSelf,
	"mut":  KwMut,
}

// LookupKeyword maps identifier text to its keyword kind, or Ident.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}
