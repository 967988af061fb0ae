// Package emit assembles generated dispatchers around rendered shapes. One
// declaration becomes one macro_rules! block with one arm per shape; a call
// site that matches an arm expands to a direct call of the underlying
// function.
package emit

import (
	"strings"

	"defargs/internal/decl"
	"defargs/internal/diag"
	"defargs/internal/params"
	"defargs/internal/permute"
	"defargs/internal/render"
)

// Header starts every generated file.
const Header = "// @generated by defargs. DO NOT EDIT.\n"

// Dispatcher renders every shape of one declaration and assembles the
// dispatcher block. Shapes whose pattern is empty are not emitted as arms;
// they exist only in the engine's count.
func Dispatcher(fn decl.FnDecl, list *params.List, shapes []permute.Shape, reporter diag.Reporter) (string, bool) {
	var b strings.Builder

	b.WriteString("// fn ")
	b.WriteString(fn.Name.Text)
	b.WriteString("(")
	b.WriteString(list.ToDeclaration())
	b.WriteString(")")
	if !fn.Ret.Empty() {
		b.WriteString(" -> ")
		b.WriteString(fn.Ret.Text)
	}
	b.WriteString(";\n")

	b.WriteString("macro_rules! ")
	b.WriteString(fn.Name.Text)
	b.WriteString(" {\n")

	for _, shape := range shapes {
		if !shape.HasPattern() {
			continue
		}
		r, ok := render.Render(list, shape, reporter)
		if !ok {
			return "", false
		}
		b.WriteString("    (")
		b.WriteString(r.Pattern)
		b.WriteString(") => {\n        ")
		b.WriteString(fn.Name.Text)
		b.WriteString("(")
		b.WriteString(r.Call)
		b.WriteString(")\n    };\n")
	}

	b.WriteString("}\n")
	return b.String(), true
}

// File concatenates dispatcher blocks into one generated file.
func File(blocks []string) string {
	var b strings.Builder
	b.WriteString(Header)
	for _, block := range blocks {
		b.WriteString("\n")
		b.WriteString(block)
	}
	return b.String()
}
