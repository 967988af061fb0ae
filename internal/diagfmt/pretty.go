package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"defargs/internal/diag"
	"defargs/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.FgBlue)
	caretColor   = color.New(color.FgGreen, color.Bold)
)

// Pretty formats diagnostics for a terminal. Call bag.Sort() first for
// deterministic order. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed, when opts.Context is set, by the source line with a caret
// underline, and by any notes in the same layout.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		printHeader(w, fs, d, opts)
		if opts.Context {
			printContext(w, fs, d.Primary, opts)
		}
		if opts.ShowNotes {
			for _, n := range d.Notes {
				printNote(w, fs, n, opts)
			}
		}
	}
}

func sevSprint(sev diag.Severity, useColor bool) string {
	if !useColor {
		return sev.String()
	}
	switch sev {
	case diag.SevError:
		return errorColor.Sprint(sev.String())
	case diag.SevWarning:
		return warningColor.Sprint(sev.String())
	default:
		return infoColor.Sprint(sev.String())
	}
}

func printHeader(w io.Writer, fs *source.FileSet, d diag.Diagnostic, opts PrettyOpts) {
	pos, _ := fs.Resolve(d.Primary)
	path := fs.Get(d.Primary.File).Path
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, pos.Line, pos.Col, sevSprint(d.Severity, opts.Color), d.Code, d.Message)
}

func printNote(w io.Writer, fs *source.FileSet, n diag.Note, opts PrettyOpts) {
	pos, _ := fs.Resolve(n.Span)
	path := fs.Get(n.Span.File).Path
	label := "note"
	if opts.Color {
		label = noteColor.Sprint(label)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, pos.Line, pos.Col, label, n.Msg)
	if opts.Context {
		printContext(w, fs, n.Span, opts)
	}
}

// printContext shows the source line and underlines the span with ^~~~.
func printContext(w io.Writer, fs *source.FileSet, span source.Span, opts PrettyOpts) {
	start, end := fs.Resolve(span)
	line := fs.Get(span.File).Line(start.Line)
	if line == "" {
		return
	}

	fmt.Fprintf(w, "  %s\n", line)

	width := 1
	if end.Line == start.Line && end.Col > start.Col {
		width = int(end.Col - start.Col)
	}
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	if opts.Color {
		underline = caretColor.Sprint(underline)
	}
	fmt.Fprintf(w, "  %s%s\n", strings.Repeat(" ", int(start.Col-1)), underline)
}
