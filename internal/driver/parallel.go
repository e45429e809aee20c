package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"arkoi/internal/diag"
	"arkoi/internal/source"
)

// CompileDirResult is the outcome for one file of a directory build.
type CompileDirResult struct {
	Path     string
	Result   *Result
	CacheHit bool
}

// listSourceFiles returns every *.ark file under dir, sorted for a
// deterministic build order.
func listSourceFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".ark") {
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

// CompileDir compiles every *.ark file under dir in parallel. Each
// file gets its own FileSet and interner, so workers never share
// mutable state. When cache is non-nil, files whose content hash is
// already cached are restored instead of recompiled.
func CompileDir(ctx context.Context, dir string, opts Options, jobs int, cache *DiskCache) ([]CompileDirResult, error) {
	files, err := listSourceFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// indices are unique per goroutine, no mutex needed
	results := make([]CompileDirResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))

	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}

			fileSet := source.NewFileSet()
			fileID, err := fileSet.Load(path)
			if err != nil {
				return err
			}
			file := fileSet.Get(fileID)

			if cache != nil {
				var payload DiskPayload
				if hit, err := cache.Get(file.Hash, &payload); err == nil && hit {
					bag := diag.NewBag(opts.MaxDiagnostics)
					failed := payload.Restore(file, bag)
					results[i] = CompileDirResult{
						Path: path,
						Result: &Result{
							FileSet: fileSet,
							File:    file,
							Bag:     bag,
							Failed:  failed,
						},
						CacheHit: true,
					}
					return nil
				}
			}

			res := compileFile(fileSet, file, opts)
			if cache != nil {
				// best effort: a failed write never fails the build
				_ = cache.Put(file.Hash, PayloadFromResult(res))
			}
			results[i] = CompileDirResult{Path: path, Result: res}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
