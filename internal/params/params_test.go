package params

import (
	"testing"

	"defargs/internal/decl"
	"defargs/internal/diag"
	"defargs/internal/parser"
	"defargs/internal/source"
)

// declArgs parses `fn __t(<src>);` and returns the argument list.
func declArgs(t *testing.T, src string) []decl.Arg {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("params_test.dfn", []byte("fn __t("+src+");"))
	bag := diag.NewBag(16)
	p := parser.New(fs.Get(id), source.NewInterner(), diag.BagReporter{Bag: bag})
	file := p.ParseFile()
	if bag.HasErrors() {
		t.Fatalf("parse of %q failed: %v", src, bag.Items())
	}
	if len(file.Fns) != 1 {
		t.Fatalf("parse of %q produced %d declarations", src, len(file.Fns))
	}
	return file.Fns[0].Args
}

func build(t *testing.T, src string) (List, *diag.Bag, bool) {
	t.Helper()
	bag := diag.NewBag(16)
	list, ok := FromDecl(declArgs(t, src), diag.BagReporter{Bag: bag})
	return list, bag, ok
}

func TestFromDecl_DefaultForms(t *testing.T) {
	list, bag, ok := build(t, "a: i32, #[default] b: u8, #[default(1 + 2)] c: usize")
	if !ok || bag.Len() != 0 {
		t.Fatalf("build failed: %v", bag.Items())
	}

	if len(list.Params) != 3 {
		t.Fatalf("params = %d, want 3", len(list.Params))
	}
	if list.Params[0].Default.Kind != DefaultNone {
		t.Errorf("a kind = %v, want None", list.Params[0].Default.Kind)
	}
	if list.Params[1].Default.Kind != DefaultZero {
		t.Errorf("b kind = %v, want Zero", list.Params[1].Default.Kind)
	}
	if list.Params[2].Default.Kind != DefaultExpr {
		t.Errorf("c kind = %v, want Expr", list.Params[2].Default.Kind)
	}
	if list.Params[2].Default.Expr.Text != "1 + 2" {
		t.Errorf("c expr = %q, want \"1 + 2\"", list.Params[2].Default.Expr.Text)
	}
}

func TestFromDecl_NameValueRejected(t *testing.T) {
	_, bag, ok := build(t, "#[default = 1] a: i32")
	if ok {
		t.Fatal("name-value form should fail the build")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ParamAttrNameValue {
		t.Fatalf("diagnostics = %v, want one ParamAttrNameValue", bag.Items())
	}
	msg := bag.Items()[0].Message
	if msg != "name-values are not supported. Use #[default] or #[default(CONST_VALUE)] instead" {
		t.Errorf("advisory message = %q", msg)
	}
}

func TestFromDecl_EmptyListRejected(t *testing.T) {
	_, bag, ok := build(t, "#[default()] a: i32")
	if ok {
		t.Fatal("empty annotation list should fail the build")
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.ParamAttrEmptyList {
		t.Fatalf("diagnostics = %v, want one ParamAttrEmptyList", bag.Items())
	}
}

func TestFromDecl_SecondReceiverRejected(t *testing.T) {
	_, bag, ok := build(t, "&self, mut self, a: i32")
	if ok {
		t.Fatal("second receiver should fail the build")
	}
	d := bag.Items()[0]
	if d.Code != diag.ParamMultipleReceivers {
		t.Fatalf("code = %v, want ParamMultipleReceivers", d.Code)
	}
	if len(d.Notes) != 1 {
		t.Error("expected a note pointing at the first receiver")
	}
}

func TestFromDecl_OnlyFirstDefaultAttrConsulted(t *testing.T) {
	list, bag, ok := build(t, "#[default(1)] #[default(2)] a: i32")
	if !ok || bag.Len() != 0 {
		t.Fatalf("build failed: %v", bag.Items())
	}
	if list.Params[0].Default.Expr.Text != "1" {
		t.Errorf("expr = %q, want \"1\"", list.Params[0].Default.Expr.Text)
	}
}

func TestFromDecl_UnrecognizedAttrIgnored(t *testing.T) {
	list, bag, ok := build(t, "#[doc(hidden)] a: i32")
	if !ok || bag.Len() != 0 {
		t.Fatalf("build failed: %v", bag.Items())
	}
	if list.Params[0].Default.Kind != DefaultNone {
		t.Errorf("kind = %v, want None", list.Params[0].Default.Kind)
	}
}

func TestList_Valid(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		valid bool
	}{
		{"all required", "a: i32, b: u8", true},
		{"required then defaults", "a: i32, #[default] b: u8, #[default(1)] c: u8", true},
		{"all defaults", "#[default] a: i32", true},
		{"required after default", "a: i32, #[default] b: u8, c: usize", false},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, _, ok := build(t, tt.src)
			if !ok {
				t.Fatal("build failed")
			}
			if list.Valid() != tt.valid {
				t.Errorf("Valid() = %v, want %v", list.Valid(), tt.valid)
			}

			bag := diag.NewBag(4)
			got := list.Validate(diag.BagReporter{Bag: bag})
			if got != tt.valid {
				t.Errorf("Validate() = %v, want %v", got, tt.valid)
			}
			if !tt.valid {
				if bag.Len() != 1 || bag.Items()[0].Code != diag.ParamDefaultOrder {
					t.Errorf("diagnostics = %v, want one ParamDefaultOrder", bag.Items())
				}
			}
		})
	}
}

func TestList_Split(t *testing.T) {
	list, _, ok := build(t, "a: i32, b: u8, #[default] c: usize, #[default(9)] d: i64")
	if !ok {
		t.Fatal("build failed")
	}
	required, defaults := list.Split()
	if len(required) != 2 || len(defaults) != 2 {
		t.Fatalf("split = %d/%d, want 2/2", len(required), len(defaults))
	}
	if required[0].Pat.Text != "a" || defaults[0].Pat.Text != "c" {
		t.Errorf("split order wrong: %v %v", required[0].Pat.Text, defaults[0].Pat.Text)
	}
}

func TestList_ToDeclaration(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		expected string
	}{
		{
			"attrs stripped",
			"a: i32, #[default] b: u8, #[default(1)] c: usize",
			"a: i32, b: u8, c: usize",
		},
		{
			"receiver first",
			"&'a mut self, #[default] x: i32",
			"&'a mut self, x: i32",
		},
		{
			"empty list",
			"",
			"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			list, _, ok := build(t, tt.src)
			if !ok {
				t.Fatal("build failed")
			}
			if got := list.ToDeclaration(); got != tt.expected {
				t.Errorf("ToDeclaration() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestParam_EqualOnPatOnly(t *testing.T) {
	list, _, ok := build(t, "a: i32, #[default] b: u8")
	if !ok {
		t.Fatal("build failed")
	}
	other, _, ok := build(t, "a: u64")
	if !ok {
		t.Fatal("build failed")
	}

	if !list.Params[0].Equal(other.Params[0]) {
		t.Error("same pattern text must compare equal regardless of type")
	}
	if list.Params[0].Equal(list.Params[1]) {
		t.Error("different pattern text must not compare equal")
	}
}
