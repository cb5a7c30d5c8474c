package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"

	"github.com/declwin/declwin/internal/uigen"
)

// runtimeModule is the module the generated companions import.
const runtimeModule = "github.com/declwin/declwin"

// runCheck implements the check subcommand. It runs the whole
// pipeline over every annotated struct but writes nothing.
func runCheck(args []string) error {
	var (
		verbose bool
		paths   []string
	)
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		default:
			paths = append(paths, arg)
		}
	}
	slog.SetDefault(newLogger(verbose))

	if len(paths) == 0 {
		paths = []string{"."}
	}

	warnMissingRequire(paths[0])

	files, err := collectGoFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Go files found")
	}

	var failed int
	for _, inputPath := range files {
		slog.Debug("checking", "path", inputPath)
		if _, err := uigen.GenerateFile(inputPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			failed++
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d file(s) had errors", failed)
	}
	slog.Debug("all files passed", "files", len(files))
	return nil
}

// warnMissingRequire reports when the module enclosing the checked
// path does not depend on the runtime the generated companions
// import. The check never fails on this; a missing go.mod is fine for
// scratch files.
func warnMissingRequire(path string) {
	start := strings.TrimSuffix(path, "/...")
	if start == "" {
		start = "."
	}
	if info, err := os.Stat(start); err != nil || !info.IsDir() {
		start = filepath.Dir(start)
	}

	modPath, ok := findGoMod(start)
	if !ok {
		return
	}
	data, err := os.ReadFile(modPath)
	if err != nil {
		return
	}
	f, err := modfile.Parse(modPath, data, nil)
	if err != nil {
		slog.Warn("cannot parse module file", "path", modPath, "err", err)
		return
	}

	if f.Module != nil && f.Module.Mod.Path == runtimeModule {
		return
	}
	for _, r := range f.Require {
		if r.Mod.Path == runtimeModule {
			return
		}
	}

	name := "unknown"
	if f.Module != nil {
		name = f.Module.Mod.Path
	}
	slog.Warn("module does not require the declwin runtime; generated files will not build",
		"module", name, "want", runtimeModule)
}

// findGoMod walks up from dir looking for a go.mod.
func findGoMod(dir string) (string, bool) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}
	for {
		candidate := filepath.Join(dir, "go.mod")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
