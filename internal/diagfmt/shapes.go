package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"defargs/internal/permute"
	"defargs/internal/render"
)

// ShapeReport pairs a declaration with its computed shapes for the debug
// surface of the CLI.
type ShapeReport struct {
	Fn       string
	Shapes   []permute.Shape
	Rendered []render.Rendered // parallel to Shapes
}

// ShapesPretty lists every shape of each declaration with its fragments.
// The engine's shape count is printed as-is; shapes without a pattern are
// marked, since they are counted but never emitted.
func ShapesPretty(w io.Writer, reports []ShapeReport) {
	for _, rep := range reports {
		fmt.Fprintf(w, "fn %s: %d shapes\n", rep.Fn, len(rep.Shapes))
		for i, s := range rep.Shapes {
			fmt.Fprintf(w, "  %3d %s\n", i, s)
			r := rep.Rendered[i]
			if r.Pattern == "" {
				fmt.Fprintf(w, "      pattern: (empty, not emitted)\n")
			} else {
				fmt.Fprintf(w, "      pattern: %s\n", r.Pattern)
			}
			fmt.Fprintf(w, "      call:    %s\n", r.Call)
		}
	}
}

type jsonShape struct {
	Slots   []jsonSlot `json:"slots"`
	Pattern string     `json:"pattern"`
	Call    string     `json:"call"`
}

type jsonSlot struct {
	Tag string `json:"tag"`
	Pat string `json:"pat"`
}

type jsonReport struct {
	Fn     string      `json:"fn"`
	Count  int         `json:"count"`
	Shapes []jsonShape `json:"shapes"`
}

// ShapesJSON writes the reports as a JSON array.
func ShapesJSON(w io.Writer, reports []ShapeReport) error {
	out := make([]jsonReport, 0, len(reports))
	for _, rep := range reports {
		jr := jsonReport{Fn: rep.Fn, Count: len(rep.Shapes)}
		for i, s := range rep.Shapes {
			js := jsonShape{
				Pattern: rep.Rendered[i].Pattern,
				Call:    rep.Rendered[i].Call,
			}
			for _, slot := range s {
				js.Slots = append(js.Slots, jsonSlot{
					Tag: slot.Tag.String(),
					Pat: slot.Param.Pat.Text,
				})
			}
			jr.Shapes = append(jr.Shapes, js)
		}
		out = append(out, jr)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
