package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"defargs/internal/diagfmt"
	"defargs/internal/driver"
	"defargs/internal/source"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes [flags] file.dfn",
	Short: "Show the call shapes computed for each declaration",
	Long: `Shapes parses a declaration file and prints every call shape the
engine produces per declaration, with the pattern and call fragment each
shape renders to. Useful for inspecting what a declaration expands into
before generating.`,
	Args: cobra.ExactArgs(1),
	RunE: runShapes,
}

func init() {
	shapesCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runShapes(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	fileSet := source.NewFileSet()
	id, err := fileSet.Load(args[0])
	if err != nil {
		return err
	}

	reports, bag := driver.ShapeFile(fileSet, id, maxDiagnostics(cmd))

	if bag.Len() > 0 {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{
			Color:     useColor(cmd, os.Stderr),
			Context:   true,
			ShowNotes: true,
		})
	}
	if bag.HasErrors() {
		return fmt.Errorf("cannot compute shapes: %s has errors", args[0])
	}

	switch format {
	case "pretty":
		diagfmt.ShapesPretty(cmd.OutOrStdout(), reports)
		return nil
	case "json":
		return diagfmt.ShapesJSON(cmd.OutOrStdout(), reports)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
