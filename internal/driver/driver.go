package driver

import (
	"fmt"
	"path/filepath"
	"strings"

	"defargs/internal/decl"
	"defargs/internal/diag"
	"defargs/internal/diagfmt"
	"defargs/internal/emit"
	"defargs/internal/params"
	"defargs/internal/parser"
	"defargs/internal/permute"
	"defargs/internal/project"
	"defargs/internal/render"
	"defargs/internal/source"
)

// FileResult holds the outcome of running the pipeline over one input file.
type FileResult struct {
	Path   string        // path as given to the file set
	FileID source.FileID // ID in the shared FileSet
	Output string        // generated source, empty when any error occurred
	Bag    *diag.Bag     // diagnostics for this file
}

// GenerateFile runs the full pipeline over one already-loaded file:
// parse, build parameter lists, permute, and emit the dispatcher block
// for every declaration. Output is produced only when the bag stays
// error-free.
func GenerateFile(fs *source.FileSet, id source.FileID, cfg project.Config, maxDiagnostics int) FileResult {
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	p := parser.New(file, source.NewInterner(), reporter)
	parsed := p.ParseFile()

	blocks := make([]string, 0, len(parsed.Fns))
	for _, fn := range parsed.Fns {
		if block, ok := generateFn(fn, cfg, reporter); ok {
			blocks = append(blocks, block)
		}
	}

	res := FileResult{Path: file.Path, FileID: id, Bag: bag}
	if !bag.HasErrors() {
		res.Output = emit.File(blocks)
	}
	return res
}

// generateFn turns one declaration into its dispatcher block.
func generateFn(fn decl.FnDecl, cfg project.Config, reporter diag.Reporter) (string, bool) {
	list, ok := params.FromDecl(fn.Args, reporter)
	if !ok {
		return "", false
	}
	if !checkCaps(fn, &list, cfg, reporter) {
		return "", false
	}
	shapes, ok := permute.Permute(&list, reporter)
	if !ok {
		return "", false
	}
	return emit.Dispatcher(fn, &list, shapes, reporter)
}

// checkCaps enforces the per-declaration parameter caps from the manifest.
// Shape counts grow factorially, so the caps guard against runaway output.
func checkCaps(fn decl.FnDecl, list *params.List, cfg project.Config, reporter diag.Reporter) bool {
	required, defaults := list.Split()
	if len(required) > cfg.Generate.MaxRequired {
		diag.ReportError(reporter, diag.GenCapExceeded, fn.Name.Span,
			fmt.Sprintf("declaration has %d required parameters, the cap is %d",
				len(required), cfg.Generate.MaxRequired)).
			WithNote(fn.Name.Span, "raise max_required in the manifest to allow this").
			Emit()
		return false
	}
	if len(defaults) > cfg.Generate.MaxDefaults {
		diag.ReportError(reporter, diag.GenCapExceeded, fn.Name.Span,
			fmt.Sprintf("declaration has %d defaulted parameters, the cap is %d",
				len(defaults), cfg.Generate.MaxDefaults)).
			WithNote(fn.Name.Span, "raise max_defaults in the manifest to allow this").
			Emit()
		return false
	}
	return true
}

// ShapeFile computes the shape reports for every declaration in a file.
// Used by the debug surface of the CLI; rendering failures land in the bag.
func ShapeFile(fs *source.FileSet, id source.FileID, maxDiagnostics int) ([]diagfmt.ShapeReport, *diag.Bag) {
	file := fs.Get(id)
	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	p := parser.New(file, source.NewInterner(), reporter)
	parsed := p.ParseFile()

	reports := make([]diagfmt.ShapeReport, 0, len(parsed.Fns))
	for _, fn := range parsed.Fns {
		list, ok := params.FromDecl(fn.Args, reporter)
		if !ok {
			continue
		}
		shapes, ok := permute.Permute(&list, reporter)
		if !ok {
			continue
		}
		rep := diagfmt.ShapeReport{Fn: fn.Name.Text, Shapes: shapes}
		for _, shape := range shapes {
			r, ok := render.Render(&list, shape, reporter)
			if !ok {
				break
			}
			rep.Rendered = append(rep.Rendered, r)
		}
		if len(rep.Rendered) == len(rep.Shapes) {
			reports = append(reports, rep)
		}
	}
	return reports, bag
}

// OutputPath maps an input path to its generated file. With an out
// directory the file keeps its base name; otherwise it lands next to
// the input. "geom.dfn" becomes "geom.macros.rs".
func OutputPath(inputPath, outDir string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base)) + ".macros.rs"
	if outDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base)
	}
	return filepath.Join(outDir, base)
}
