// Package render turns shapes into syntactic fragments: the match pattern a
// call site must take for the shape to fire, and the argument list of the
// direct call the dispatcher forwards to.
package render

import (
	"strings"

	"defargs/internal/diag"
	"defargs/internal/params"
	"defargs/internal/permute"
)

// captureSuffix derives the capture variable from the parameter pattern:
// parameter `a` binds `$a_val`.
const captureSuffix = "_val"

// Rendered is the output for one shape.
type Rendered struct {
	// Pattern is the comma-separated match pattern in slot order. Empty for
	// the all-omitted shape.
	Pattern string
	// Call is the comma-separated argument list of the direct call, always
	// in declaration order, receiver first when present.
	Call string
}

// Render produces the (pattern, call) pair for one shape of list. The only
// failure is the internal invariant of an omitted slot without a default
// descriptor; it aborts generation with a diagnostic distinguishable from
// user errors.
func Render(list *params.List, shape permute.Shape, reporter diag.Reporter) (Rendered, bool) {
	var pattern []string
	for _, slot := range shape {
		if frag, ok := patternFragment(slot); ok {
			pattern = append(pattern, frag)
		}
	}

	// The pattern follows slot order, but the underlying function is called
	// with its arguments in declaration order: captures are named, so the
	// call can reorder them freely.
	bySlot := make(map[string]permute.Slot, len(shape))
	for _, slot := range shape {
		bySlot[slot.Param.Pat.Text] = slot
	}

	var call []string
	if list.Receiver != nil {
		call = append(call, list.Receiver.Raw)
	}
	for _, p := range list.Params {
		slot, ok := bySlot[p.Pat.Text]
		if !ok {
			panic("render: shape does not cover parameter " + p.Pat.Text)
		}
		frag, ok := callFragment(slot, reporter)
		if !ok {
			return Rendered{}, false
		}
		call = append(call, frag)
	}

	return Rendered{
		Pattern: strings.Join(pattern, ", "),
		Call:    strings.Join(call, ", "),
	}, true
}

func capture(p params.Param) string {
	return "$" + p.Pat.Text + captureSuffix
}

// patternFragment renders one slot's contribution to the match pattern.
// Omitted defaults contribute nothing.
func patternFragment(slot permute.Slot) (string, bool) {
	switch slot.Tag {
	case permute.Positional:
		return capture(slot.Param) + ":expr", true
	case permute.Named, permute.DefaultUsed:
		return slot.Param.Pat.Text + " = " + capture(slot.Param) + ":expr", true
	case permute.DefaultUnused:
		return "", false
	}
	panic("render: unknown slot tag")
}

// callFragment renders one slot's contribution to the call expression.
// Every slot contributes: supplied parameters reference their capture,
// omitted ones inline their default.
func callFragment(slot permute.Slot, reporter diag.Reporter) (string, bool) {
	switch slot.Tag {
	case permute.Positional, permute.Named, permute.DefaultUsed:
		return capture(slot.Param), true

	case permute.DefaultUnused:
		switch slot.Param.Default.Kind {
		case params.DefaultZero:
			return "Default::default()", true
		case params.DefaultExpr:
			return slot.Param.Default.Expr.Text, true
		case params.DefaultNone:
			diag.ReportError(reporter, diag.RenderMissingDefault, slot.Param.Pat.Span,
				"internal: omitted parameter '"+slot.Param.Pat.Text+"' has no default descriptor").Emit()
			return "", false
		}
	}
	panic("render: unknown slot tag")
}
