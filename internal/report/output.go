package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
)

const lockRetryDelay = 50 * time.Millisecond

// Output is the destination for rendered results.
type Output struct {
	io.Writer
	path string
	file *os.File
	lock *flock.Flock
}

// OpenOutput resolves the results destination. An empty path or "-" writes to
// stdout. Files are opened for append while holding an exclusive lock on
// "<path>.lock", so concurrent runs sharing one results file never interleave.
func OpenOutput(ctx context.Context, path string, stdout io.Writer) (*Output, error) {
	if path == "" || path == "-" {
		return &Output{Writer: stdout}, nil
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create output directory %q: %w", dir, err)
		}
	}

	lock := flock.New(path + ".lock")
	ok, err := lock.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return nil, fmt.Errorf("lock output %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock output %s: not acquired", path)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open output %s: %w", path, err)
	}
	return &Output{Writer: file, path: path, file: file, lock: lock}, nil
}

// Path returns the results file, or "" for stdout.
func (o *Output) Path() string { return o.path }

// Close flushes the file and releases the lock. Stdout is left open.
func (o *Output) Close() error {
	if o.file == nil {
		return nil
	}
	var errs []error
	if err := o.file.Close(); err != nil {
		errs = append(errs, fmt.Errorf("close output: %w", err))
	}
	if err := o.lock.Unlock(); err != nil {
		errs = append(errs, fmt.Errorf("unlock output: %w", err))
	}
	o.file = nil
	return errors.Join(errs...)
}
