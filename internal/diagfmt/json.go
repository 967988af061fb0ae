package diagfmt

import (
	"encoding/json"
	"io"

	"defargs/internal/diag"
	"defargs/internal/source"
)

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	File     string     `json:"file"`
	Start    uint32     `json:"start"`
	End      uint32     `json:"end"`
	Line     uint32     `json:"line,omitempty"`
	Col      uint32     `json:"col,omitempty"`
	Internal bool       `json:"internal,omitempty"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

type jsonNote struct {
	File    string `json:"file"`
	Start   uint32 `json:"start"`
	End     uint32 `json:"end"`
	Message string `json:"message"`
}

// JSON writes the bag as a JSON array, one object per diagnostic.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			File:     fs.Get(d.Primary.File).Path,
			Start:    d.Primary.Start,
			End:      d.Primary.End,
			Internal: d.Code.Internal(),
		}
		if opts.IncludePositions {
			pos, _ := fs.Resolve(d.Primary)
			jd.Line = pos.Line
			jd.Col = pos.Col
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jd.Notes = append(jd.Notes, jsonNote{
					File:    fs.Get(n.Span.File).Path,
					Start:   n.Span.Start,
					End:     n.Span.End,
					Message: n.Msg,
				})
			}
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
