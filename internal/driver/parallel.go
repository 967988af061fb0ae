package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"defargs/internal/diag"
	"defargs/internal/project"
	"defargs/internal/source"
)

// listDfnFiles returns the sorted list of *.dfn files under dir.
func listDfnFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".dfn") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Deterministic order
	sort.Strings(files)
	return files, nil
}

// GenerateDir runs the pipeline over every *.dfn file under dir, at most
// jobs files at a time. Files are loaded up front on one goroutine; the
// workers only touch their own result slot, so no locking is needed. A
// non-nil cache is consulted by content digest and filled on success.
func GenerateDir(ctx context.Context, dir string, cfg project.Config, cache *DiskCache, maxDiagnostics, jobs int) (*source.FileSet, []FileResult, error) {
	files, err := listDfnFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSet()
	if len(files) == 0 {
		return fileSet, nil, nil
	}

	ids := make([]source.FileID, len(files))
	for i, path := range files {
		id, err := fileSet.Load(path)
		if err != nil {
			return nil, nil, err
		}
		ids[i] = id
	}

	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	results := make([]FileResult, len(files))

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

			id := ids[i]
			file := fileSet.Get(id)
			key := HashContent(file.Content, cfg.Generate.MaxRequired, cfg.Generate.MaxDefaults)

			var payload DiskPayload
			if hit, err := cache.Get(key, &payload); err == nil && hit {
				results[i] = FileResult{Path: path, FileID: id, Output: payload.Output, Bag: diag.NewBag(maxDiagnostics)}
				return nil
			}

			res := GenerateFile(fileSet, id, cfg, maxDiagnostics)
			results[i] = res

			// Only clean results are worth remembering.
			if res.Output != "" && !res.Bag.HasErrors() {
				if err := cache.Put(key, &DiskPayload{InputPath: path, Output: res.Output}); err != nil {
					return err
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fileSet, results, nil
}
