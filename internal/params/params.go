// Package params is the parameter model: the normalized form of one
// declaration's argument list that the permutation engine consumes.
//
// Pattern and type tokens stay opaque here. The only inspection the model
// (and everything downstream) performs is textual equality on the pattern,
// which is safe because parameter names are unique within one declaration.
package params

import (
	"strings"

	"defargs/internal/decl"
)

// DefaultAttr is the recognized parameter annotation.
const DefaultAttr = "default"

// DefaultKind classifies a parameter's default descriptor.
type DefaultKind uint8

const (
	// DefaultNone marks a required parameter.
	DefaultNone DefaultKind = iota
	// DefaultZero substitutes the type's zero value at the call site.
	DefaultZero
	// DefaultExpr substitutes a stored expression verbatim.
	DefaultExpr
)

func (k DefaultKind) String() string {
	switch k {
	case DefaultNone:
		return "None"
	case DefaultZero:
		return "Zero"
	case DefaultExpr:
		return "Expr"
	}
	return "Unknown"
}

// Default is a parameter's default descriptor.
type Default struct {
	Kind DefaultKind
	Expr decl.Raw // set when Kind == DefaultExpr
}

// Param is one normalized parameter.
type Param struct {
	Pat     decl.Ident
	Ty      decl.Raw
	Default Default
}

// Required reports whether the parameter must be supplied by the caller.
func (p Param) Required() bool {
	return p.Default.Kind == DefaultNone
}

// Equal compares parameters on pattern text alone. Types and defaults do
// not participate in identity.
func (p Param) Equal(other Param) bool {
	return p.Pat.Text == other.Pat.Text
}

// List is a receiver plus the ordered parameters of one declaration.
type List struct {
	Receiver *decl.Receiver
	Params   []Param
}

// Valid reports whether every required parameter precedes every defaulted
// one.
func (l *List) Valid() bool {
	seenDefault := false
	for i := range l.Params {
		if l.Params[i].Required() {
			if seenDefault {
				return false
			}
		} else {
			seenDefault = true
		}
	}
	return true
}

// FirstInvalid returns the first required parameter that follows a
// defaulted one, for diagnostics. ok is false when the list is valid.
func (l *List) FirstInvalid() (offending Param, prevDefault Param, ok bool) {
	seenDefault := false
	var lastDefault Param
	for _, p := range l.Params {
		if p.Required() {
			if seenDefault {
				return p, lastDefault, true
			}
		} else {
			seenDefault = true
			lastDefault = p
		}
	}
	return Param{}, Param{}, false
}

// Split partitions the parameters into the required prefix and the default
// tail. Callers must check Valid first.
func (l *List) Split() (required, defaults []Param) {
	k := 0
	for k < len(l.Params) && l.Params[k].Required() {
		k++
	}
	return l.Params[:k], l.Params[k:]
}

// ToDeclaration rebuilds the declaration's argument list with every
// attribute stripped: receiver first, then each parameter as `pat: ty`.
// This is the signature of the underlying function the generated dispatcher
// forwards to.
func (l *List) ToDeclaration() string {
	var parts []string
	if l.Receiver != nil {
		parts = append(parts, l.Receiver.Raw)
	}
	for _, p := range l.Params {
		parts = append(parts, p.Pat.Text+": "+p.Ty.Text)
	}
	return strings.Join(parts, ", ")
}
