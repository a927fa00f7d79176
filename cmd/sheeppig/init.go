package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"sheeppig/internal/project"
)

var initCmd = &cobra.Command{
	Use:   "init [path|name]",
	Short: "Initialize a new sheeppig project",
	Long: `Initialize a new sheeppig project by creating a project manifest (sheeppig.toml)
and a hello-world entry point (src/main.sp). If [path|name] is omitted, initializes
the current directory. If a non-existing name is provided, a directory will be
created.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	var target string
	if len(args) == 0 || args[0] == "." {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		target = wd
	} else {
		arg := args[0]
		if !filepath.IsAbs(arg) {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			target = filepath.Join(wd, arg)
		} else {
			target = arg
		}
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

	name := strings.TrimSpace(filepath.Base(target))
	if name == "" || name == "." || name == string(filepath.Separator) {
		name = "sheeppig-project"
	}

	manifestPath := filepath.Join(target, project.ManifestFileName)
	if _, err := os.Stat(manifestPath); err == nil {
		return fmt.Errorf("project already initialized: %s exists", manifestPath)
	}

	manifest := project.Manifest{
		Package: project.PackageConfig{
			Name:    name,
			Version: "0.1.0",
		},
		Source: project.SourceConfig{
			Dir:  "src",
			Main: "main.sp",
		},
	}
	if err := project.SaveManifest(manifestPath, manifest); err != nil {
		return fmt.Errorf("failed to write manifest: %w", err)
	}

	srcDir := filepath.Join(target, "src")
	if err := os.MkdirAll(srcDir, 0o755); err != nil {
		return fmt.Errorf("failed to create src directory: %w", err)
	}

	mainPath := filepath.Join(srcDir, "main.sp")
	createdMain := false
	if _, err := os.Stat(mainPath); errors.Is(err, os.ErrNotExist) {
		if err := os.WriteFile(mainPath, []byte(defaultMainSP(name)), 0o600); err != nil {
			return fmt.Errorf("failed to write main.sp: %w", err)
		}
		createdMain = true
	}

	rel := target
	if wd, err := os.Getwd(); err == nil {
		if r, err2 := filepath.Rel(wd, target); err2 == nil {
			rel = r
		}
	}
	fmt.Fprintf(os.Stdout, "Initialized sheeppig project in %s\n", rel)
	fmt.Fprintf(os.Stdout, "  - %s\n", project.ManifestFileName)
	if createdMain {
		fmt.Fprintf(os.Stdout, "  - src/main.sp\n")
	} else {
		fmt.Fprintf(os.Stdout, "  - src/main.sp (existing)\n")
	}
	return nil
}

// defaultMainSP returns the placeholder program written into new projects.
func defaultMainSP(name string) string {
	return fmt.Sprintf(`# %s entry point.

fun greeting(who: string): string {
    return "Hello, " + who + "!"
}

fun main() {
    print(greeting("sheeppig"))
}

main()
`, name)
}
