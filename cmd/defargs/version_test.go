package main

import (
	"strings"
	"testing"
)

func TestRenderVersionPretty(t *testing.T) {
	info := versionInfo{Version: "1.2.3", GitCommit: "abc123", BuildDate: "2026-01-01"}

	var b strings.Builder
	renderVersionPretty(&b, info, versionOptions{showHash: true, showDate: true})
	out := b.String()

	if !strings.Contains(out, "defargs 1.2.3") {
		t.Errorf("missing version line:\n%s", out)
	}
	if !strings.Contains(out, "commit: abc123") {
		t.Errorf("missing commit line:\n%s", out)
	}
	if strings.Contains(out, "message:") {
		t.Errorf("message shown without the flag:\n%s", out)
	}
}

func TestRenderVersionJSON(t *testing.T) {
	info := versionInfo{Version: "1.2.3"}

	var b strings.Builder
	if err := renderVersionJSON(&b, info, versionOptions{showHash: true}); err != nil {
		t.Fatal(err)
	}
	out := b.String()

	if !strings.Contains(out, `"version": "1.2.3"`) {
		t.Errorf("missing version field:\n%s", out)
	}
	if !strings.Contains(out, `"git_commit": "unknown"`) {
		t.Errorf("empty commit should render as unknown:\n%s", out)
	}
	if strings.Contains(out, "build_date") {
		t.Errorf("build_date emitted without the flag:\n%s", out)
	}
}

func TestProjectNameRe(t *testing.T) {
	for name, want := range map[string]bool{
		"geom":        true,
		"my-project":  true,
		"snake_case":  true,
		"1numbers":    false,
		"with space":  false,
		"":            false,
		"dot.project": false,
	} {
		if got := projectNameRe.MatchString(name); got != want {
			t.Errorf("projectNameRe(%q) = %v, want %v", name, got, want)
		}
	}
}
