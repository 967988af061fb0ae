package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"defargs/internal/diagfmt"
	"defargs/internal/driver"
	"defargs/internal/observ"
	"defargs/internal/project"
	"defargs/internal/source"
)

var generateCmd = &cobra.Command{
	Use:   "generate [flags] [path]",
	Short: "Generate dispatchers for declaration files",
	Long: `Generate walks the given file or directory (default: the current
directory), runs every *.dfn file through the pipeline, and writes one
<name>.macros.rs next to each input or into --out. Settings come from
defargs.toml when one is found by walking up from the target.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().String("out", "", "directory for generated files (overrides the manifest)")
	generateCmd.Flags().Int("jobs", 0, "parallel workers, 0 means GOMAXPROCS")
	generateCmd.Flags().Bool("no-cache", false, "bypass the disk cache")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	target := "."
	if len(args) == 1 {
		target = args[0]
	}
	st, err := os.Stat(target)
	if err != nil {
		return err
	}

	startDir := target
	if !st.IsDir() {
		startDir = filepath.Dir(target)
	}
	cfg, err := loadConfig(startDir)
	if err != nil {
		return err
	}

	outDir, _ := cmd.Flags().GetString("out")
	if outDir == "" {
		outDir = cfg.Generate.OutDir
	}
	jobs, _ := cmd.Flags().GetInt("jobs")
	noCache, _ := cmd.Flags().GetBool("no-cache")
	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	timings, _ := cmd.Root().PersistentFlags().GetBool("timings")

	var cache *driver.DiskCache
	if !noCache {
		// Cache failures downgrade to uncached operation.
		cache, _ = driver.OpenDiskCache("defargs")
	}

	timer := observ.NewTimer()

	genPhase := timer.Begin("generate")
	var fileSet *source.FileSet
	var results []driver.FileResult
	if st.IsDir() {
		fileSet, results, err = driver.GenerateDir(cmd.Context(), target, cfg, cache, maxDiagnostics(cmd), jobs)
		if err != nil {
			return err
		}
	} else {
		fileSet = source.NewFileSet()
		id, err := fileSet.Load(target)
		if err != nil {
			return err
		}
		results = []driver.FileResult{driver.GenerateFile(fileSet, id, cfg, maxDiagnostics(cmd))}
	}
	timer.End(genPhase, fmt.Sprintf("%d files", len(results)))

	errCount := printDiagnostics(cmd, fileSet, results)
	if errCount > 0 {
		return fmt.Errorf("generation failed: %d file(s) with errors", errCount)
	}

	writePhase := timer.Begin("write")
	written := 0
	for _, res := range results {
		if res.Output == "" {
			continue
		}
		outPath := driver.OutputPath(res.Path, outDir)
		if err := writeOutput(outPath, res.Output); err != nil {
			return err
		}
		written++
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
		}
	}
	timer.End(writePhase, fmt.Sprintf("%d files", written))

	if timings {
		fmt.Fprint(cmd.ErrOrStderr(), timer.Summary())
	}
	return nil
}

// loadConfig finds the nearest manifest; without one, defaults apply.
func loadConfig(startDir string) (project.Config, error) {
	manifest, found, err := project.Load(startDir)
	if err != nil {
		return project.Config{}, err
	}
	if !found {
		return project.DefaultConfig(), nil
	}
	return manifest.Config, nil
}

// printDiagnostics renders every non-empty bag to stderr and returns the
// number of files that had errors.
func printDiagnostics(cmd *cobra.Command, fs *source.FileSet, results []driver.FileResult) int {
	opts := diagfmt.PrettyOpts{
		Color:     useColor(cmd, os.Stderr),
		Context:   true,
		ShowNotes: true,
	}
	errCount := 0
	for _, res := range results {
		if res.Bag == nil || res.Bag.Len() == 0 {
			continue
		}
		res.Bag.Sort()
		diagfmt.Pretty(os.Stderr, res.Bag, fs, opts)
		if res.Bag.HasErrors() {
			errCount++
		}
	}
	return errCount
}

func writeOutput(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(content), 0o644)
}
