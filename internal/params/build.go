package params

import (
	"defargs/internal/decl"
	"defargs/internal/diag"
)

// FromDecl normalizes a parsed argument list into a List. Fatal input
// errors (second receiver, unsupported annotation shape, empty annotation
// list) are reported and fail the build; the default-ordering invariant is
// checked separately by Validate so the caller can point at the whole
// declaration.
func FromDecl(args []decl.Arg, reporter diag.Reporter) (List, bool) {
	var list List
	ok := true

	for _, arg := range args {
		if arg.IsReceiver() {
			if list.Receiver != nil {
				diag.ReportError(reporter, diag.ParamMultipleReceivers, arg.Recv.Span,
					"declaration cannot have a second receiver '"+arg.Recv.Raw+"'").
					WithNote(list.Receiver.Span, "first receiver declared here").
					Emit()
				ok = false
				continue
			}
			recv := *arg.Recv
			list.Receiver = &recv
			continue
		}

		param, paramOK := fromDeclParam(*arg.Param, reporter)
		if !paramOK {
			ok = false
			continue
		}
		list.Params = append(list.Params, param)
	}

	if !ok {
		return List{}, false
	}
	return list, true
}

// fromDeclParam interprets the recognized annotation on one parameter.
// Only the first `default` attribute is consulted; other attributes are
// ignored.
func fromDeclParam(p decl.Param, reporter diag.Reporter) (Param, bool) {
	out := Param{Pat: p.Pat, Ty: p.Ty}

	for _, attr := range p.Attrs {
		if attr.Name.Text != DefaultAttr {
			continue
		}

		switch attr.Form {
		case decl.AttrBare:
			out.Default = Default{Kind: DefaultZero}
		case decl.AttrList:
			if attr.Value.Empty() {
				diag.ReportError(reporter, diag.ParamAttrEmptyList, attr.Span,
					"expected at least one item in #["+DefaultAttr+"(...)]").Emit()
				return Param{}, false
			}
			out.Default = Default{Kind: DefaultExpr, Expr: attr.Value}
		case decl.AttrNameValue:
			diag.ReportError(reporter, diag.ParamAttrNameValue, attr.Span,
				"name-values are not supported. Use #["+DefaultAttr+"] or #["+
					DefaultAttr+"(CONST_VALUE)] instead").Emit()
			return Param{}, false
		}
		break
	}

	return out, true
}

// Validate checks the default-ordering invariant and reports a diagnostic
// at the first offending parameter.
func (l *List) Validate(reporter diag.Reporter) bool {
	offending, prevDefault, bad := l.FirstInvalid()
	if !bad {
		return true
	}
	diag.ReportError(reporter, diag.ParamDefaultOrder, offending.Pat.Span,
		"required parameter '"+offending.Pat.Text+"' follows a defaulted parameter").
		WithNote(prevDefault.Pat.Span, "parameter '"+prevDefault.Pat.Text+"' defaulted here").
		Emit()
	return false
}
