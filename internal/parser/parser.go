// Package parser turns lexed declaration files into decl values. It is the
// adapter in front of the parameter model: all attribute interpretation is
// deferred to internal/params, the parser only records syntactic shape.
package parser

import (
	"defargs/internal/decl"
	"defargs/internal/diag"
	"defargs/internal/lexer"
	"defargs/internal/source"
	"defargs/internal/token"
)

type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	interner *source.Interner
	reporter diag.Reporter
}

// New creates a parser over the lexed contents of file.
func New(file *source.File, interner *source.Interner, reporter diag.Reporter) *Parser {
	return &Parser{
		file:     file,
		toks:     lexer.Tokenize(file, reporter),
		interner: interner,
		reporter: reporter,
	}
}

// ParseFile parses every declaration in the file. Declarations that fail to
// parse are skipped after error recovery; the survivors are returned.
func (p *Parser) ParseFile() decl.File {
	out := decl.File{FileID: p.file.ID}
	for p.peek().Kind != token.EOF {
		if p.peek().Kind != token.KwFn {
			diag.ReportError(p.reporter, diag.SynExpectFn, p.peek().Span,
				"expected 'fn', found "+p.describe(p.peek())).Emit()
			p.syncToFn()
			continue
		}
		fn, ok := p.parseFn()
		if !ok {
			p.syncToFn()
			continue
		}
		out.Fns = append(out.Fns, fn)
	}
	return out
}

func (p *Parser) peek() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *Parser) bump() token.Token {
	tok := p.toks[p.pos]
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) expect(kind token.Kind, code diag.Code, what string) (token.Token, bool) {
	tok := p.peek()
	if tok.Kind != kind {
		diag.ReportError(p.reporter, code, tok.Span,
			"expected "+what+", found "+p.describe(tok)).Emit()
		return tok, false
	}
	return p.bump(), true
}

func (p *Parser) describe(tok token.Token) string {
	if tok.Kind == token.EOF {
		return "end of file"
	}
	return "'" + tok.Text + "'"
}

// syncToFn skips tokens until the next 'fn' or EOF, so one broken
// declaration does not poison the rest of the file.
func (p *Parser) syncToFn() {
	for {
		switch p.peek().Kind {
		case token.EOF, token.KwFn:
			return
		case token.Semicolon:
			p.bump()
			return
		}
		p.bump()
	}
}

func (p *Parser) parseFn() (decl.FnDecl, bool) {
	fnTok := p.bump() // 'fn'

	nameTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "function name")
	if !ok {
		return decl.FnDecl{}, false
	}

	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken, "'('"); !ok {
		return decl.FnDecl{}, false
	}

	args, ok := p.parseArgs()
	if !ok {
		return decl.FnDecl{}, false
	}

	var ret decl.Raw
	if p.peek().Kind == token.Arrow {
		p.bump()
		ret = p.captureRaw(token.Semicolon)
		if ret.Empty() {
			diag.ReportError(p.reporter, diag.SynExpectType, p.peek().Span,
				"expected return type after '->'").Emit()
			return decl.FnDecl{}, false
		}
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "';'")
	if !ok {
		return decl.FnDecl{}, false
	}

	return decl.FnDecl{
		Name: p.ident(nameTok),
		Args: args,
		Ret:  ret,
		Span: fnTok.Span.Cover(semi.Span),
	}, true
}

// parseArgs consumes arguments up to and including the closing paren.
func (p *Parser) parseArgs() ([]decl.Arg, bool) {
	var args []decl.Arg
	for {
		if p.peek().Kind == token.RParen {
			p.bump()
			return args, true
		}
		if p.peek().Kind == token.EOF {
			diag.ReportError(p.reporter, diag.SynExpectRParen, p.peek().Span,
				"unclosed argument list").Emit()
			return nil, false
		}

		arg, ok := p.parseArg()
		if !ok {
			return nil, false
		}
		args = append(args, arg)

		switch p.peek().Kind {
		case token.Comma:
			p.bump()
		case token.RParen:
			// closing paren handled on the next iteration
		default:
			diag.ReportError(p.reporter, diag.SynExpectCommaOrRParen, p.peek().Span,
				"expected ',' or ')', found "+p.describe(p.peek())).Emit()
			return nil, false
		}
	}
}

func (p *Parser) parseArg() (decl.Arg, bool) {
	switch p.peek().Kind {
	case token.Amp, token.KwSelf:
		recv, ok := p.parseReceiver()
		if !ok {
			return decl.Arg{}, false
		}
		return decl.Arg{Recv: &recv}, true
	case token.KwMut:
		if p.peekAt(1).Kind == token.KwSelf {
			recv, ok := p.parseReceiver()
			if !ok {
				return decl.Arg{}, false
			}
			return decl.Arg{Recv: &recv}, true
		}
	}
	param, ok := p.parseParam()
	if !ok {
		return decl.Arg{}, false
	}
	return decl.Arg{Param: &param}, true
}

// parseReceiver handles self, mut self, &self, &mut self, &'a self,
// &'a mut self.
func (p *Parser) parseReceiver() (decl.Receiver, bool) {
	start := p.peek().Span
	recv := decl.Receiver{}

	if p.peek().Kind == token.Amp {
		recv.Reference = true
		p.bump()
		if p.peek().Kind == token.Lifetime {
			recv.Lifetime = p.bump().Text
		}
	}
	if p.peek().Kind == token.KwMut {
		recv.Mutable = true
		p.bump()
	}

	selfTok, ok := p.expect(token.KwSelf, diag.SynBadReceiver, "'self'")
	if !ok {
		return decl.Receiver{}, false
	}

	recv.Span = start.Cover(selfTok.Span)
	recv.Raw = p.sourceText(recv.Span)
	return recv, true
}

func (p *Parser) parseParam() (decl.Param, bool) {
	start := p.peek().Span

	var attrs []decl.Attr
	for p.peek().Kind == token.Hash {
		attr, ok := p.parseAttr()
		if !ok {
			return decl.Param{}, false
		}
		attrs = append(attrs, attr)
	}

	patTok, ok := p.expect(token.Ident, diag.SynExpectIdentifier, "parameter name")
	if !ok {
		return decl.Param{}, false
	}
	if _, ok := p.expect(token.Colon, diag.SynExpectColon, "':'"); !ok {
		return decl.Param{}, false
	}

	ty := p.captureRaw(token.Comma, token.RParen)
	if ty.Empty() {
		diag.ReportError(p.reporter, diag.SynExpectType, p.peek().Span,
			"expected type after ':'").Emit()
		return decl.Param{}, false
	}

	return decl.Param{
		Attrs: attrs,
		Pat:   p.ident(patTok),
		Ty:    ty,
		Span:  start.Cover(ty.Span),
	}, true
}

// parseAttr handles `#[name]`, `#[name(tokens)]` and `#[name = tokens]`.
// The tokens inside a list or name-value form are captured raw; deciding
// whether they are meaningful is the parameter model's job.
func (p *Parser) parseAttr() (decl.Attr, bool) {
	hash := p.bump() // '#'
	if _, ok := p.expect(token.LBracket, diag.SynUnexpectedToken, "'['"); !ok {
		return decl.Attr{}, false
	}
	nameTok, ok := p.expect(token.Ident, diag.SynExpectAttrName, "attribute name")
	if !ok {
		return decl.Attr{}, false
	}

	attr := decl.Attr{Name: p.ident(nameTok), Form: decl.AttrBare}

	switch p.peek().Kind {
	case token.LParen:
		open := p.bump()
		attr.Form = decl.AttrList
		value, ok := p.captureGroup(open)
		if !ok {
			return decl.Attr{}, false
		}
		attr.Value = value
	case token.Assign:
		p.bump()
		attr.Form = decl.AttrNameValue
		attr.Value = p.captureRaw(token.RBracket)
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedAttr, "']'")
	if !ok {
		return decl.Attr{}, false
	}
	attr.Span = hash.Span.Cover(closeTok.Span)
	return attr, true
}

// captureRaw collects tokens verbatim until one of the stop kinds appears at
// bracket depth zero. The stop token is not consumed. Angle brackets nest,
// so `Map<K, V>` survives a comma stop.
func (p *Parser) captureRaw(stops ...token.Kind) decl.Raw {
	depth := 0
	first := -1
	last := -1

	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			break
		}
		if depth == 0 && containsKind(stops, tok.Kind) {
			break
		}
		if tok.OpensDelim() {
			depth++
		} else if tok.ClosesDelim() {
			if depth == 0 {
				break
			}
			depth--
		}
		if first < 0 {
			first = p.pos
		}
		last = p.pos
		p.bump()
	}

	if first < 0 {
		return decl.Raw{}
	}
	span := p.toks[first].Span.Cover(p.toks[last].Span)
	return decl.Raw{Text: p.sourceText(span), Span: span}
}

// captureGroup collects tokens up to the paren matching open, consuming the
// closer. An empty group yields an empty Raw positioned at the group.
func (p *Parser) captureGroup(open token.Token) (decl.Raw, bool) {
	depth := 0
	first := -1
	last := -1

	for {
		tok := p.peek()
		if tok.Kind == token.EOF {
			diag.ReportError(p.reporter, diag.SynUnclosedDelimiter, open.Span,
				"unclosed '('").Emit()
			return decl.Raw{}, false
		}
		if tok.Kind == token.RParen && depth == 0 {
			closer := p.bump()
			if first < 0 {
				return decl.Raw{Span: open.Span.Cover(closer.Span)}, true
			}
			span := p.toks[first].Span.Cover(p.toks[last].Span)
			return decl.Raw{Text: p.sourceText(span), Span: span}, true
		}
		if tok.Kind == token.LParen {
			depth++
		} else if tok.Kind == token.RParen {
			depth--
		}
		if first < 0 {
			first = p.pos
		}
		last = p.pos
		p.bump()
	}
}

func (p *Parser) ident(tok token.Token) decl.Ident {
	return decl.Ident{
		ID:   p.interner.Intern(tok.Text),
		Text: tok.Text,
		Span: tok.Span,
	}
}

func (p *Parser) sourceText(span source.Span) string {
	return string(p.file.Content[span.Start:span.End])
}

func containsKind(kinds []token.Kind, kind token.Kind) bool {
	for _, k := range kinds {
		if k == kind {
			return true
		}
	}
	return false
}
