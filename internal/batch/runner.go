package batch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"avghash/internal/fingerprint"
	"avghash/internal/inputs"
	"avghash/internal/logging"
)

// Hasher is the pipeline contract the runner needs.
type Hasher interface {
	HashFile(path string) (fingerprint.Hash, error)
}

// Result is the outcome for one input path.
type Result struct {
	Path string
	Hash fingerprint.Hash
	Err  error
}

// OK reports whether the input hashed successfully.
func (r Result) OK() bool { return r.Err == nil }

// Sink receives results. The runner never calls it concurrently.
type Sink func(Result) error

// Stats summarizes a run.
type Stats struct {
	Total   int
	Hashed  int
	Failed  int
	Elapsed time.Duration
}

// Runner hashes inputs with a bounded number of workers.
type Runner struct {
	hasher  Hasher
	workers int
	logger  *slog.Logger
}

// NewRunner returns a runner. workers <= 0 selects runtime.NumCPU().
func NewRunner(hasher Hasher, workers int, logger *slog.Logger) (*Runner, error) {
	if hasher == nil {
		return nil, errors.New("batch runner requires a hasher")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Runner{
		hasher:  hasher,
		workers: workers,
		logger:  logging.NewComponentLogger(logger, "batch"),
	}, nil
}

// Workers returns the effective worker count.
func (r *Runner) Workers() int { return r.workers }

// Run hashes every path yielded by src and hands each Result to sink. It
// returns when all started work has finished. The error is the first source,
// sink, or context error; per-file failures only show up in results and stats.
func (r *Runner) Run(ctx context.Context, src inputs.Source, sink Sink) (Stats, error) {
	start := time.Now()
	logger := logging.WithContext(ctx, r.logger)

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(r.workers)

	var (
		mu    sync.Mutex
		stats Stats
	)
	deliver := func(res Result) error {
		mu.Lock()
		defer mu.Unlock()
		stats.Total++
		if res.Err != nil {
			stats.Failed++
		} else {
			stats.Hashed++
		}
		if sink == nil {
			return nil
		}
		if err := sink(res); err != nil {
			return fmt.Errorf("write result for %s: %w", res.Path, err)
		}
		return nil
	}

	srcErr := src.Each(gctx, func(path string) error {
		if err := gctx.Err(); err != nil {
			return err
		}
		group.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			res := r.hashOne(logger, path)
			return deliver(res)
		})
		return nil
	})
	groupErr := group.Wait()

	mu.Lock()
	stats.Elapsed = time.Since(start)
	out := stats
	mu.Unlock()

	switch {
	case groupErr != nil:
		return out, groupErr
	case srcErr != nil && ctx.Err() != nil:
		return out, ctx.Err()
	case srcErr != nil:
		return out, srcErr
	default:
		return out, ctx.Err()
	}
}

func (r *Runner) hashOne(logger *slog.Logger, path string) Result {
	hash, err := r.hasher.HashFile(path)
	if err != nil {
		logger.Debug("hash failed", logging.String("path", path), logging.Error(err))
		return Result{Path: path, Err: err}
	}
	logger.Debug("hashed image", logging.String("path", path), logging.String("hash", hash.String()))
	return Result{Path: path, Hash: hash}
}
