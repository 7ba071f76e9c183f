package main

import (
	"context"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-gridview/internal/config"
	"github.com/grindlemire/go-gridview/internal/debug"
	"github.com/grindlemire/go-gridview/internal/dimension"
	"github.com/grindlemire/go-gridview/internal/markup"
)

func newCheckCmd(a *app) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "check [path...]",
		Short: "Validate grid markup (.xml) and scene (.yaml) files",
		Long: `Validate grid markup (.xml) and scene (.yaml, .yml) files.

Paths may be files, directories (non-recursive) or a recursive pattern
such as ./... . With no path the current directory is checked.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := args
			if len(paths) == 0 {
				paths = []string{"."}
			}

			files, err := collectFiles(paths)
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no markup or scene files found")
			}

			out := cmd.OutOrStdout()
			if verbose {
				fmt.Fprintf(out, "Checking %d file(s)\n", len(files))
			}

			errs, err := checkFiles(cmd.Context(), files, a.cfg.Metrics)
			if err != nil {
				return err
			}

			var errorCount int
			for i, path := range files {
				if errs[i] != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", errs[i])
					errorCount++
					continue
				}
				if verbose {
					fmt.Fprintf(out, "ok %s\n", path)
				}
			}
			a.logger.Debug("check finished",
				zap.Int("files", len(files)),
				zap.Int("failed", errorCount))

			if errorCount > 0 {
				return fmt.Errorf("%d file(s) had errors", errorCount)
			}
			if verbose {
				fmt.Fprintf(out, "All %d file(s) passed checks\n", len(files))
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	return cmd
}

// checkFiles validates files concurrently. The returned slice holds the
// error for each file, in order.
func checkFiles(ctx context.Context, files []string, m dimension.Metrics) ([]error, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	errs := make([]error, len(files))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			errs[i] = checkFile(path, m)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return errs, nil
}

// checkFile validates a single markup or scene file.
func checkFile(path string, m dimension.Metrics) error {
	debug.Logf("checking %s", path)
	if isMarkup(path) {
		_, err := markup.ParseFile(path, m)
		return err
	}

	scene, err := config.LoadScene(path)
	if err != nil {
		return err
	}
	if _, _, err := scene.Definitions(m); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if _, _, err := scene.Constraints(); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for _, child := range scene.Children {
		if _, err := child.Params(m); err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
	}
	return nil
}

func isMarkup(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".xml")
}

func isChecked(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml", ".yaml", ".yml":
		return true
	}
	return false
}

// collectFiles expands paths into the files to check. A path names a
// file, a directory whose own markup and scene files are checked, or a
// "dir/..." pattern covering the whole tree. The result is sorted and
// holds each file once.
func collectFiles(paths []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, path := range paths {
		root, recursive := strings.CutSuffix(path, "/...")
		if root == "" {
			root = "."
		}
		found, err := walkChecked(root, recursive)
		if err != nil {
			return nil, err
		}
		for _, f := range found {
			seen[filepath.Clean(f)] = true
		}
	}
	return slices.Sorted(maps.Keys(seen)), nil
}

// walkChecked lists the checked files below root, descending into
// subdirectories only when recursive is set. A root that is a file is
// returned whatever its extension.
func walkChecked(root string, recursive bool) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", root, err)
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	var found []string
	err = filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		switch {
		case err != nil:
			return err
		case d.IsDir():
			if p != root && !recursive {
				return fs.SkipDir
			}
		case isChecked(p):
			found = append(found, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", root, err)
	}
	return found, nil
}
