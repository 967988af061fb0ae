package render

import (
	"strings"
	"testing"

	"defargs/internal/diag"
	"defargs/internal/params"
	"defargs/internal/parser"
	"defargs/internal/permute"
	"defargs/internal/source"
)

func buildList(t *testing.T, args string) params.List {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("render_test.dfn", []byte("fn __t("+args+");"))
	bag := diag.NewBag(16)
	p := parser.New(fs.Get(id), source.NewInterner(), diag.BagReporter{Bag: bag})
	file := p.ParseFile()
	if bag.HasErrors() || len(file.Fns) != 1 {
		t.Fatalf("parse of %q failed: %v", args, bag.Items())
	}
	list, ok := params.FromDecl(file.Fns[0].Args, diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("build of %q failed: %v", args, bag.Items())
	}
	return list
}

func findShape(t *testing.T, list *params.List, repr string) permute.Shape {
	t.Helper()
	bag := diag.NewBag(4)
	shapes, ok := permute.Permute(list, diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("permute failed: %v", bag.Items())
	}
	for _, s := range shapes {
		if s.String() == repr {
			return s
		}
	}
	t.Fatalf("no shape %s among %d shapes", repr, len(shapes))
	return nil
}

func render(t *testing.T, list *params.List, shape permute.Shape) Rendered {
	t.Helper()
	bag := diag.NewBag(4)
	r, ok := Render(list, shape, diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("render failed: %v", bag.Items())
	}
	return r
}

func TestRender_PositionalAndNamed(t *testing.T) {
	list := buildList(t, "a: i32, b: u8, c: usize")
	shape := findShape(t, &list, "[Positional a, Named c, Named b]")

	r := render(t, &list, shape)
	if r.Pattern != "$a_val:expr, c = $c_val:expr, b = $b_val:expr" {
		t.Errorf("pattern = %q", r.Pattern)
	}
	// call order follows the declaration, not the pattern
	if r.Call != "$a_val, $b_val, $c_val" {
		t.Errorf("call = %q", r.Call)
	}
}

func TestRender_DefaultsUsedAndUnused(t *testing.T) {
	list := buildList(t, "#[default] a: i32, #[default(1)] c: u8")

	tests := []struct {
		shape   string
		pattern string
		call    string
	}{
		{
			shape:   "[DefaultUsed a, DefaultUsed c]",
			pattern: "a = $a_val:expr, c = $c_val:expr",
			call:    "$a_val, $c_val",
		},
		{
			shape:   "[DefaultUsed c, DefaultUnused a]",
			pattern: "c = $c_val:expr",
			call:    "Default::default(), $c_val",
		},
		{
			shape:   "[DefaultUnused a, DefaultUnused c]",
			pattern: "",
			call:    "Default::default(), 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			shape := findShape(t, &list, tt.shape)
			r := render(t, &list, shape)
			if r.Pattern != tt.pattern {
				t.Errorf("pattern = %q, want %q", r.Pattern, tt.pattern)
			}
			if r.Call != tt.call {
				t.Errorf("call = %q, want %q", r.Call, tt.call)
			}
		})
	}
}

func TestRender_ReceiverPrependedToCallOnly(t *testing.T) {
	list := buildList(t, "&mut self, x: i32")
	bag := diag.NewBag(4)
	shapes, ok := permute.Permute(&list, diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("permute failed: %v", bag.Items())
	}

	for _, shape := range shapes {
		r := render(t, &list, shape)
		if strings.Contains(r.Pattern, "self") {
			t.Errorf("receiver leaked into pattern %q", r.Pattern)
		}
		if !strings.HasPrefix(r.Call, "&mut self") {
			t.Errorf("call %q does not start with the receiver", r.Call)
		}
	}
}

func TestRender_Totality(t *testing.T) {
	list := buildList(t, "a: i32, b: u8, #[default] c: usize, #[default(7)] d: i64")
	bag := diag.NewBag(4)
	shapes, ok := permute.Permute(&list, diag.BagReporter{Bag: bag})
	if !ok {
		t.Fatalf("permute failed: %v", bag.Items())
	}

	for _, shape := range shapes {
		r := render(t, &list, shape)

		// the call references every declared parameter exactly once
		if got := strings.Count(r.Call, ",") + 1; got != 4 {
			t.Errorf("call %q has %d fragments, want 4", r.Call, got)
		}

		// the pattern mentions exactly the non-omitted slots
		want := 0
		for _, slot := range shape {
			if slot.Tag != permute.DefaultUnused {
				want++
			}
		}
		got := 0
		if r.Pattern != "" {
			got = strings.Count(r.Pattern, ",") + 1
		}
		if got != want {
			t.Errorf("pattern %q has %d fragments, want %d", r.Pattern, got, want)
		}
	}
}

func TestRender_MissingDefaultIsInternalError(t *testing.T) {
	list := buildList(t, "a: i32")
	// an omitted slot for a parameter without a default cannot come out of
	// the engine; construct it by hand
	shape := permute.Shape{{Tag: permute.DefaultUnused, Param: list.Params[0]}}

	bag := diag.NewBag(4)
	_, ok := Render(&list, shape, diag.BagReporter{Bag: bag})
	if ok {
		t.Fatal("render should fail")
	}
	if bag.Len() != 1 {
		t.Fatalf("diagnostics = %v", bag.Items())
	}
	d := bag.Items()[0]
	if d.Code != diag.RenderMissingDefault {
		t.Errorf("code = %v, want RenderMissingDefault", d.Code)
	}
	if !d.Code.Internal() {
		t.Error("missing-default must be distinguishable as an internal error")
	}
}
