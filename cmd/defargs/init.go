package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/spf13/cobra"

	"defargs/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new defargs project",
	Long: `Initialize a new defargs project by creating a project manifest
(defargs.toml) and an example declaration file (example.dfn). If
[path|name] is omitted, initializes the current directory. If a
non-existing name is provided, a directory will be created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

var projectNameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

const starterDecl = `// Example declarations. Run "defargs generate" to produce
// example.macros.rs with a dispatcher per declaration.

fn greet(name: String, #[default] excited: bool) -> String;

fn scale(factor: f32, #[default(1.0)] offset: f32) -> f32;
`

func runInit(cmd *cobra.Command, args []string) error {
	target, err := resolveInitTarget(args)
	if err != nil {
		return err
	}

	if st, err := os.Stat(target); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err = os.MkdirAll(target, 0o755); err != nil {
				return fmt.Errorf("failed to create directory %q: %w", target, err)
			}
		} else {
			return err
		}
	} else if !st.IsDir() {
		return fmt.Errorf("%q is not a directory", target)
	}

	name := filepath.Base(target)
	if !projectNameRe.MatchString(name) {
		name = "defargs-project"
	}

	manifestPath := filepath.Join(target, project.ManifestName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("%s already exists in %q", project.ManifestName, target)
	}

	if err := os.WriteFile(manifestPath, []byte(project.Starter(name)), 0o644); err != nil {
		return err
	}
	declPath := filepath.Join(target, "example.dfn")
	if err := os.WriteFile(declPath, []byte(starterDecl), 0o644); err != nil {
		return err
	}

	quiet, _ := cmd.Root().PersistentFlags().GetBool("quiet")
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "created %s\ncreated %s\n", manifestPath, declPath)
	}
	return nil
}

func resolveInitTarget(args []string) (string, error) {
	if len(args) == 0 || args[0] == "." {
		return os.Getwd()
	}
	arg := args[0]
	if filepath.IsAbs(arg) {
		return arg, nil
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, arg), nil
}
