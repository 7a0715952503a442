// Package driver runs the obfuscation pipeline over files and directories,
// with parallel execution and an optional disk cache for repeated runs.
package driver

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"

	"veil/internal/config"
	"veil/internal/pipeline"
	"veil/internal/rng"
	"veil/internal/transform"
)

// Options tunes a driver run.
type Options struct {
	// Jobs caps parallel file workers; <=0 means GOMAXPROCS.
	Jobs int
	// Cache, when non-nil, is consulted before running and updated after.
	// Cached results are only valid for pinned seeds, so the cache is
	// bypassed entirely when the configuration seed is empty.
	Cache *DiskCache
	// Logger receives per-run informational events.
	Logger *log.Logger
	// Progress receives stage events for every file.
	Progress pipeline.ProgressSink
	// ReadFile overrides file reading, for tests.
	ReadFile func(string) ([]byte, error)
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Path   string
	Result pipeline.Result
	Cached bool
}

func (o *Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

func (o *Options) readFile(path string) ([]byte, error) {
	if o.ReadFile != nil {
		return o.ReadFile(path)
	}
	return os.ReadFile(path)
}

// ObfuscateFile runs the pipeline over one file.
func ObfuscateFile(ctx context.Context, path string, cfg config.Options, opts Options) (FileResult, error) {
	if err := ctx.Err(); err != nil {
		return FileResult{}, err
	}
	content, err := opts.readFile(path)
	if err != nil {
		return FileResult{}, err
	}

	useCache := opts.Cache != nil && cfg.Seed != ""
	var key Digest
	if useCache {
		key, err = CacheKey(content, &cfg)
		if err != nil {
			return FileResult{}, err
		}
		var payload Payload
		hit, err := opts.Cache.Get(key, &payload)
		if err != nil {
			opts.logger().Warn("cache read failed", "file", path, "err", err)
		} else if hit {
			opts.logger().Info("cache hit", "file", path)
			emitFileDone(opts.Progress, path)
			return FileResult{
				Path: path,
				Result: pipeline.Result{
					Code:      payload.Code,
					SourceMap: payload.SourceMap,
					Seed:      payload.Seed,
				},
				Cached: true,
			}, nil
		}
	}

	gen := rng.New(cfg.Seed)
	registry, err := transform.NewRegistry(cfg, gen)
	if err != nil {
		return FileResult{}, err
	}
	ob := pipeline.New(cfg, registry, gen,
		pipeline.WithLogger(opts.Logger),
		pipeline.WithProgress(opts.Progress),
		pipeline.WithFileName(path),
	)
	res, err := ob.Run(string(content))
	if err != nil {
		emitFileError(opts.Progress, path, err)
		return FileResult{}, err
	}
	emitFileDone(opts.Progress, path)

	if useCache {
		payload := &Payload{
			Schema:    diskCacheSchemaVersion,
			Code:      res.Code,
			SourceMap: res.SourceMap,
			Seed:      res.Seed,
		}
		if err := opts.Cache.Put(key, payload); err != nil {
			opts.logger().Warn("cache write failed", "file", path, "err", err)
		}
	}
	return FileResult{Path: path, Result: res}, nil
}

// ObfuscateDir runs the pipeline over every .js file under dir, in
// parallel. Results come back sorted by path regardless of completion
// order. The first failing file cancels the rest.
func ObfuscateDir(ctx context.Context, dir string, cfg config.Options, opts Options) ([]FileResult, error) {
	files, err := ListJSFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// Indexes are unique per goroutine, so no mutex is needed.
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			res, err := ObfuscateFile(gctx, path, cfg, opts)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// ListJSFiles returns the sorted list of .js files under dir.
func ListJSFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".js") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	// Sorted for deterministic ordering.
	sort.Strings(files)
	return files, nil
}

// File-level completion events let a progress consumer mark a file finished
// even when the per-stage stream was short-circuited (cache hits, empty
// programs).
func emitFileDone(sink pipeline.ProgressSink, path string) {
	if sink == nil {
		return
	}
	sink.OnEvent(pipeline.Event{File: path, Stage: pipeline.StageFinalizing, Status: pipeline.StatusDone})
}

func emitFileError(sink pipeline.ProgressSink, path string, err error) {
	if sink == nil {
		return
	}
	sink.OnEvent(pipeline.Event{File: path, Status: pipeline.StatusError, Err: err})
}
