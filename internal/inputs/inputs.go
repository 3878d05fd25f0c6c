// Package inputs turns command line arguments and list files into a lazy
// stream of image paths.
package inputs

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"avghash/internal/fileutil"
)

// Source yields paths one at a time. Each stops at the first error returned
// by fn or encountered while reading.
type Source interface {
	Each(ctx context.Context, fn func(path string) error) error
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc func(ctx context.Context, fn func(path string) error) error

// Each calls f.
func (f SourceFunc) Each(ctx context.Context, fn func(path string) error) error { return f(ctx, fn) }

// Args yields paths verbatim, in order.
func Args(paths ...string) Source {
	return SourceFunc(func(ctx context.Context, fn func(string) error) error {
		for _, p := range paths {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fn(p); err != nil {
				return err
			}
		}
		return nil
	})
}

// BatchFile yields one path per line of the named list. "-" reads standard
// input. Blank lines are skipped and line endings are trimmed; other
// whitespace is kept since it may be part of a file name. Each returns as soon
// as ctx is done, even while a read on the list is still blocked.
func BatchFile(name string) Source {
	return SourceFunc(func(ctx context.Context, fn func(string) error) error {
		rc, err := fileutil.OpenList(name)
		if err != nil {
			return fmt.Errorf("open batch file %s: %w", displayName(name), err)
		}
		defer rc.Close()

		lines, readErr, done := scanLines(rc)
		defer close(done)

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case line, ok := <-lines:
				if !ok {
					if err := <-readErr; err != nil {
						return fmt.Errorf("read batch file %s: %w", displayName(name), err)
					}
					return nil
				}
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := fn(line); err != nil {
					return err
				}
			}
		}
	})
}

// scanLines reads non-blank lines from r on its own goroutine. lines is closed
// after the final scanner error has been sent on readErr. Closing done stops
// the reader at its next line.
func scanLines(r io.Reader) (lines <-chan string, readErr <-chan error, done chan struct{}) {
	out := make(chan string)
	errc := make(chan error, 1)
	done = make(chan struct{})

	go func() {
		defer close(out)
		scanner := bufio.NewScanner(r)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := strings.TrimRight(scanner.Text(), "\r")
			if line == "" {
				continue
			}
			select {
			case out <- line:
			case <-done:
				return
			}
		}
		errc <- scanner.Err()
	}()
	return out, errc, done
}

// Chain yields every source in turn.
func Chain(sources ...Source) Source {
	return SourceFunc(func(ctx context.Context, fn func(string) error) error {
		for _, src := range sources {
			if src == nil {
				continue
			}
			if err := src.Each(ctx, fn); err != nil {
				return err
			}
		}
		return nil
	})
}

// FromCommandLine builds the canonical source: direct arguments first, then
// every batch list in order.
func FromCommandLine(args, batchFiles []string) Source {
	sources := make([]Source, 0, len(batchFiles)+1)
	sources = append(sources, Args(args...))
	for _, name := range batchFiles {
		sources = append(sources, BatchFile(name))
	}
	return Chain(sources...)
}

// Collect drains src into a slice.
func Collect(ctx context.Context, src Source) ([]string, error) {
	var out []string
	err := src.Each(ctx, func(p string) error {
		out = append(out, p)
		return nil
	})
	return out, err
}

func displayName(name string) string {
	if name == fileutil.Stdin {
		return "<stdin>"
	}
	return name
}
