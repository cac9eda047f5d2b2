package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"
)

// SourceExt is the file extension of source files picked up by
// TokenizeDir.
const SourceExt = ".colt"

// ListSourceFiles returns the sorted list of source files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, SourceExt) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}

// TokenizeAll scans every path in parallel, at most jobs files at a
// time (jobs <= 0 means GOMAXPROCS). Results keep the order of paths.
// Each file gets its own buffer and bag; slots are disjoint, so no
// mutex is needed. Load failures are returned through the per-file
// Err field rather than aborting the run.
func TokenizeAll(ctx context.Context, paths []string, opts Options, jobs int) ([]FileResult, error) {
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	results := make([]FileResult, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, max(len(paths), 1)))

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := Tokenize(path, opts)
			results[i] = FileResult{Path: path, Result: res, Err: err}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}

// FileResult is one entry of a TokenizeAll run. Err is set when the
// file could not be loaded; Result is nil in that case.
type FileResult struct {
	Path   string
	Result *TokenizeResult
	Err    error
}

// TokenizeDir scans every source file under dir in parallel.
func TokenizeDir(ctx context.Context, dir string, opts Options, jobs int) ([]FileResult, error) {
	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	return TokenizeAll(ctx, files, opts, jobs)
}
