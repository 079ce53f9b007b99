// Package genfs holds generated files in memory until they are written to
// disk, or compared against what is already there.
//
// The usual flow writes fixtures once and commits them. In CI the same recipe
// is built again and Verify reports any fixture that is missing or stale.
package genfs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"golang.org/x/sync/errgroup"
)

// File permission constants.
const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// concurrency bounds the number of files read or written at once.
const concurrency = 12

// File is a single generated file.
type File struct {
	// RelativePath is where the file is written, relative to the prefix
	// given to Write or Verify.
	RelativePath string

	// Data is the file content.
	Data []byte
}

type entry struct {
	data  []byte
	owner string
}

// FS is an in-memory tree of generated files. Files cannot be removed once
// added; adding a path twice is an error. FS is safe for concurrent use.
type FS struct {
	mu    sync.Mutex
	files map[string]entry
}

// New creates an empty FS.
func New() *FS {
	return &FS{files: make(map[string]entry)}
}

// Add adds files on behalf of owner. Nothing is added when any of the files
// has an absolute path, a path that climbs out of the tree, or a path already
// in the tree; every such problem is reported.
func (fs *FS) Add(owner string, files ...File) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	var result *multierror.Error

	seen := make(map[string]bool, len(files))
	for _, f := range files {
		path := filepath.Clean(f.RelativePath)

		switch {
		case f.RelativePath == "":
			result = multierror.Append(result, fmt.Errorf("empty path from %q", owner))
		case filepath.IsAbs(f.RelativePath):
			result = multierror.Append(result, fmt.Errorf("files must have relative paths, got %s from %q", f.RelativePath, owner))
		case !filepath.IsLocal(path):
			result = multierror.Append(result, fmt.Errorf("path %s from %q leaves the output directory", f.RelativePath, owner))
		case seen[path]:
			result = multierror.Append(result, fmt.Errorf("cannot create %s for %q twice", path, owner))
		default:
			if prev, ok := fs.files[path]; ok {
				result = multierror.Append(result, fmt.Errorf("cannot create %s for %q, already created for %q", path, owner, prev.owner))
			}
		}

		seen[path] = true
	}

	if err := result.ErrorOrNil(); err != nil {
		return err
	}

	for _, f := range files {
		fs.files[filepath.Clean(f.RelativePath)] = entry{data: f.Data, owner: owner}
	}

	return nil
}

// Len returns the number of files in the tree.
func (fs *FS) Len() int {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return len(fs.files)
}

// Paths returns the sorted relative paths of all files.
func (fs *FS) Paths() []string {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	return fs.sortedPaths()
}

// Files returns a copy of every file, sorted by path.
func (fs *FS) Files() []File {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	res := make([]File, 0, len(fs.files))
	for _, path := range fs.sortedPaths() {
		res = append(res, File{RelativePath: path, Data: slices.Clone(fs.files[path].data)})
	}

	return res
}

func (fs *FS) sortedPaths() []string {
	paths := make([]string, 0, len(fs.files))
	for path := range fs.files {
		paths = append(paths, path)
	}

	slices.Sort(paths)

	return paths
}

// Write writes every file below prefix, creating parent directories as
// needed. An empty prefix means the working directory.
func (fs *FS) Write(ctx context.Context, prefix string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for path, e := range fs.files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			full := filepath.Join(prefix, path)
			if err := os.MkdirAll(filepath.Dir(full), dirPerm); err != nil {
				return fmt.Errorf("%s: creating parent directory: %w", full, err)
			}

			if err := os.WriteFile(full, e.data, filePerm); err != nil {
				return fmt.Errorf("%s: writing file: %w", full, err)
			}

			return nil
		})
	}

	return g.Wait()
}

// Verify compares every file with its counterpart below prefix. Missing and
// differing files are all reported in one error; an I/O failure other than a
// missing file aborts the comparison.
func (fs *FS) Verify(ctx context.Context, prefix string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var (
		resultMu sync.Mutex
		result   *multierror.Error
	)

	report := func(err error) {
		resultMu.Lock()
		result = multierror.Append(result, err)
		resultMu.Unlock()
	}

	for _, path := range fs.sortedPaths() {
		want := fs.files[path].data

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			full := filepath.Join(prefix, path)

			got, err := os.ReadFile(full) //nolint:gosec
			if errors.Is(err, os.ErrNotExist) {
				report(fmt.Errorf("%s: generated file should exist, but does not", full))
				return nil
			}

			if err != nil {
				return fmt.Errorf("%s: reading file: %w", full, err)
			}

			if diff := cmp.Diff(string(got), string(want)); diff != "" {
				report(fmt.Errorf("%s would have changed:\n\n%s", full, diff))
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("verifying tree: %w", err)
	}

	if result != nil {
		slices.SortFunc(result.Errors, func(a, b error) int {
			return strings.Compare(a.Error(), b.Error())
		})
	}

	return result.ErrorOrNil()
}
