package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/declwin/declwin/internal/uigen"
)

// runGenerate implements the generate subcommand. It scans Go files
// for annotated structs and writes a _ui.go companion next to each
// file that declares any.
func runGenerate(args []string) error {
	var (
		verbose bool
		dryRun  bool
		paths   []string
	)
	for _, arg := range args {
		switch arg {
		case "-v", "--verbose":
			verbose = true
		case "-dry-run", "--dry-run":
			dryRun = true
		default:
			paths = append(paths, arg)
		}
	}
	slog.SetDefault(newLogger(verbose))

	if len(paths) == 0 {
		paths = []string{"."}
	}

	files, err := collectGoFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no Go files found")
	}
	slog.Debug("collected sources", "files", len(files))

	// Files are independent compilation units, so they can run in
	// parallel. Failures are counted rather than returned; one bad
	// file must not stop the rest.
	var failed, written atomic.Int64
	g := new(errgroup.Group)
	g.SetLimit(runtime.NumCPU())
	for _, inputPath := range files {
		inputPath := inputPath
		g.Go(func() error {
			out, err := uigen.GenerateFile(inputPath)
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				failed.Add(1)
				return nil
			}
			if out == nil {
				// No annotated structs in this file.
				return nil
			}

			outputPath := uigen.OutputPath(inputPath)
			if dryRun {
				fmt.Printf("would write %s (%d bytes)\n", outputPath, len(out))
				written.Add(1)
				return nil
			}
			if err := os.WriteFile(outputPath, out, 0o644); err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", inputPath, err)
				failed.Add(1)
				return nil
			}
			slog.Debug("generated", "input", inputPath, "output", outputPath)
			written.Add(1)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("%d file(s) had errors", n)
	}
	slog.Debug("generation complete", "written", written.Load())
	return nil
}

// collectGoFiles finds candidate Go source files from the given
// paths. Supports:
//   - Direct file paths: "form.go"
//   - Directory paths: "./ui" (non-recursive)
//   - Recursive pattern: "./..."
//
// Generated companions, tests, hidden directories, vendor and
// testdata are skipped.
func collectGoFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() {
					if p != root && skipDir(d.Name()) {
						return filepath.SkipDir
					}
					return nil
				}
				if wantFile(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && wantFile(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else if wantFile(path) {
			files = append(files, path)
		}
	}

	return files, nil
}

func skipDir(name string) bool {
	return name == "vendor" || name == "testdata" ||
		strings.HasPrefix(name, ".") || strings.HasPrefix(name, "_")
}

func wantFile(path string) bool {
	name := filepath.Base(path)
	return strings.HasSuffix(name, ".go") &&
		!strings.HasSuffix(name, "_test.go") &&
		!uigen.IsGenerated(name)
}
