// Package permute enumerates every calling shape a dispatcher can
// distinguish for one parameter list.
//
// The rules:
//
//   - positional arguments keep declaration order, because the dispatcher
//     cannot otherwise tell them apart;
//   - named arguments may appear in any order, each is identified by its
//     literal parameter name;
//   - defaulted parameters are either supplied by name (any order among
//     themselves) or omitted, in which case their default fills the call.
//
// For k required and m defaulted parameters the engine yields
// Σ_{j=0..k} j! required-tail shapes and Σ_{j=0..m} m!/(m−j)! default-tail
// shapes (the all-omitted tail counts once), multiplied when both sides are
// non-empty. The totals are contractual: k=4 gives 34, m=2 gives 5,
// together 170.
package permute

import (
	"defargs/internal/diag"
	"defargs/internal/params"
)

// Permute computes the shape list for a validated parameter list. An
// invalid default ordering fails fast with a diagnostic at the offending
// parameter.
func Permute(list *params.List, reporter diag.Reporter) ([]Shape, bool) {
	if !list.Validate(reporter) {
		return nil, false
	}

	required, defaults := list.Split()
	requiredShapes := RequiredShapes(required)
	defaultShapes := DefaultShapes(defaults)

	switch {
	case len(requiredShapes) == 0 && len(defaultShapes) == 0:
		return nil, true
	case len(requiredShapes) == 0:
		return defaultShapes, true
	case len(defaultShapes) == 0:
		return requiredShapes, true
	}

	out := make([]Shape, 0, len(requiredShapes)*len(defaultShapes))
	for _, rs := range requiredShapes {
		for _, ds := range defaultShapes {
			out = append(out, concat(rs, ds))
		}
	}
	return out, true
}

// RequiredShapes enumerates the required-tail shapes: for every split
// point i, the first i parameters positional in declaration order and the
// remaining k−i named in every permutation. Every input parameter must be
// required.
func RequiredShapes(required []params.Param) []Shape {
	for _, p := range required {
		if !p.Required() {
			panic("permute: required tail contains a defaulted parameter")
		}
	}

	var out []Shape
	for i := 0; i <= len(required); i++ {
		positional := make(Shape, 0, i)
		for _, p := range required[:i] {
			positional = append(positional, Slot{Tag: Positional, Param: p})
		}

		for _, perm := range permutations(required[i:]) {
			named := make(Shape, 0, len(perm))
			for _, p := range perm {
				named = append(named, Slot{Tag: Named, Param: p})
			}
			out = append(out, concat(positional, named))
		}
	}
	return out
}

// DefaultShapes enumerates the default-tail shapes: every subset of the
// defaulted parameters supplied by name in every order, with the omitted
// parameters appended in declaration order. The all-omitted subset
// contributes its single shape; with no defaulted parameters at all the
// result is empty. Every input parameter must carry a default.
func DefaultShapes(defaults []params.Param) []Shape {
	for _, p := range defaults {
		if p.Required() {
			panic("permute: default tail contains a required parameter")
		}
	}

	m := len(defaults)
	var out []Shape
	for mask := 0; mask < 1<<m; mask++ {
		used := make([]params.Param, 0, m)
		unused := make(Shape, 0, m)
		for pos, p := range defaults {
			if mask>>pos&1 != 0 {
				used = append(used, p)
			} else {
				unused = append(unused, Slot{Tag: DefaultUnused, Param: p})
			}
		}

		for _, perm := range permutations(used) {
			shape := make(Shape, 0, m)
			for _, p := range perm {
				shape = append(shape, Slot{Tag: DefaultUsed, Param: p})
			}
			shape = append(shape, unused...)
			if len(shape) != 0 {
				out = append(out, shape)
			}
		}
	}
	return out
}

// permutations returns every ordering of items, deterministically: the
// identity first, then orderings by recursively rotating the head choice.
// The empty slice has exactly one permutation.
func permutations(items []params.Param) [][]params.Param {
	if len(items) == 0 {
		return [][]params.Param{{}}
	}

	var out [][]params.Param
	for i := range items {
		rest := make([]params.Param, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		for _, tail := range permutations(rest) {
			perm := make([]params.Param, 0, len(items))
			perm = append(perm, items[i])
			perm = append(perm, tail...)
			out = append(out, perm)
		}
	}
	return out
}
