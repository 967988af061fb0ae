package source

import (
	"testing"
)

func TestFileSet_AddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("decl.dfn", []byte("fn foo(a: i32);\nfn bar(b: u8);\n"))

	f := fs.Get(id)
	if f.Path != "decl.dfn" {
		t.Errorf("Path = %q, want decl.dfn", f.Path)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual flag not set")
	}

	// "bar" starts at offset 19 on line 2
	start, end := fs.Resolve(Span{File: id, Start: 19, End: 22})
	if start.Line != 2 || start.Col != 4 {
		t.Errorf("start = %d:%d, want 2:4", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 7 {
		t.Errorf("end = %d:%d, want 2:7", end.Line, end.Col)
	}
}

func TestFileSet_LookupTracksLatest(t *testing.T) {
	fs := NewFileSet()
	fs.AddVirtual("a.dfn", []byte("one"))
	second := fs.AddVirtual("./a.dfn", []byte("two"))

	f, ok := fs.Lookup("a.dfn")
	if !ok {
		t.Fatal("Lookup failed for registered path")
	}
	if f.ID != second {
		t.Errorf("Lookup returned ID %d, want latest %d", f.ID, second)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestFile_Line(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.dfn", []byte("first\nsecond\nthird"))
	f := fs.Get(id)

	tests := []struct {
		line     uint32
		expected string
	}{
		{0, ""},
		{1, "first"},
		{2, "second"},
		{3, "third"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.Line(tt.line); got != tt.expected {
			t.Errorf("Line(%d) = %q, want %q", tt.line, got, tt.expected)
		}
	}
}

func TestNormalizeCRLF(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\r\nb\rc"))
	if !changed {
		t.Error("expected change")
	}
	if string(out) != "a\nb\rc" {
		t.Errorf("normalizeCRLF = %q", out)
	}

	out, changed = normalizeCRLF([]byte("plain"))
	if changed {
		t.Error("unexpected change")
	}
	if string(out) != "plain" {
		t.Errorf("normalizeCRLF = %q", out)
	}
}
