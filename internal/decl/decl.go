// Package decl models parsed declaration files. It is the boundary between
// the parser and the parameter model: everything below here treats pattern
// and type text as opaque.
package decl

import (
	"defargs/internal/source"
)

// Ident is an identifier with its interned text and location.
type Ident struct {
	ID   source.StringID
	Text string
	Span source.Span
}

// Raw is an uninterpreted token run (a type, or a default expression).
// The engine never inspects Raw beyond carrying its text verbatim.
type Raw struct {
	Text string
	Span source.Span
}

// Empty reports whether the raw run captured no tokens.
func (r Raw) Empty() bool { return r.Text == "" }

// AttrForm distinguishes the syntactic shapes of a parameter attribute.
type AttrForm uint8

const (
	// AttrBare is `#[name]`.
	AttrBare AttrForm = iota
	// AttrList is `#[name(tokens)]`; Value holds the tokens.
	AttrList
	// AttrNameValue is `#[name = tokens]`; Value holds the tokens.
	AttrNameValue
)

// Attr is one parameter attribute.
type Attr struct {
	Name  Ident
	Form  AttrForm
	Value Raw // set for AttrList and AttrNameValue
	Span  source.Span
}

// Receiver is a self-style first argument, captured verbatim for rebuild.
type Receiver struct {
	Reference bool
	Mutable   bool
	Lifetime  string // without the quote stripped, e.g. "'a"; empty when absent
	Raw       string // original token text, e.g. "&'a mut self"
	Span      source.Span
}

// Param is one typed, possibly attributed parameter.
type Param struct {
	Attrs []Attr
	Pat   Ident
	Ty    Raw
	Span  source.Span
}

// Arg is a single declaration argument: exactly one of Recv or Param is set.
type Arg struct {
	Recv  *Receiver
	Param *Param
}

// IsReceiver reports whether the argument is a receiver.
func (a Arg) IsReceiver() bool { return a.Recv != nil }

// FnDecl is one parsed function declaration.
type FnDecl struct {
	Name Ident
	Args []Arg
	Ret  Raw // empty when the declaration has no return type
	Span source.Span
}

// File is the parse result for one declaration file.
type File struct {
	FileID source.FileID
	Fns    []FnDecl
}
