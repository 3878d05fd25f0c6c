package inputs_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"avghash/internal/inputs"
	"avghash/internal/testsupport"
)

func TestFromCommandLineOrdersArgsBeforeBatches(t *testing.T) {
	dir := t.TempDir()
	first := testsupport.WriteLines(t, filepath.Join(dir, "one.txt"), "b1.png", "", "b2.png")
	second := testsupport.WriteLines(t, filepath.Join(dir, "two.txt"), "c1.png\r", "with space .png")

	src := inputs.FromCommandLine([]string{"a1.png", "a2.png"}, []string{first, second})
	got, err := inputs.Collect(context.Background(), src)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	want := []string{"a1.png", "a2.png", "b1.png", "b2.png", "c1.png", "with space .png"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("paths = %q, want %q", got, want)
	}
}

func TestBatchFileFromStdin(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	oldStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = oldStdin
		_ = r.Close()
	})

	go func() {
		_, _ = w.WriteString("x.png\ny.png\n")
		_ = w.Close()
	}()

	got, err := inputs.Collect(context.Background(), inputs.BatchFile("-"))
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"x.png", "y.png"}) {
		t.Fatalf("unexpected stdin paths: %q", got)
	}
}

func TestBatchFileMissingStopsChain(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	src := inputs.FromCommandLine([]string{"a.png"}, []string{missing})

	got, err := inputs.Collect(context.Background(), src)
	if err == nil {
		t.Fatal("expected error for missing batch file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if !strings.Contains(err.Error(), "open batch file") {
		t.Fatalf("unexpected error text: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"a.png"}) {
		t.Fatalf("expected direct args before failure, got %q", got)
	}
}

func TestEachStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	var seen []string
	err := inputs.Args("a", "b", "c").Each(context.Background(), func(p string) error {
		seen = append(seen, p)
		if p == "b" {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) {
		t.Fatalf("expected stop error, got %v", err)
	}
	if len(seen) != 2 {
		t.Fatalf("expected iteration to stop after b, saw %q", seen)
	}
}

func TestEachHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := inputs.Collect(ctx, inputs.Args("a"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestBatchFileStdinStopsOnCancelWhileBlocked(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	oldStdin := os.Stdin
	os.Stdin = r
	t.Cleanup(func() {
		os.Stdin = oldStdin
		_ = w.Close()
		_ = r.Close()
	})

	if _, err := w.WriteString("first.png\n"); err != nil {
		t.Fatalf("write stdin: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	seen := make(chan string, 1)
	result := make(chan error, 1)
	go func() {
		result <- inputs.BatchFile("-").Each(ctx, func(p string) error {
			seen <- p
			return nil
		})
	}()

	select {
	case p := <-seen:
		if p != "first.png" {
			t.Fatalf("unexpected first path %q", p)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("first line was not delivered")
	}

	// The writer stays open, so the reader is now blocked waiting for input.
	cancel()
	select {
	case err := <-result:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Each did not return after cancellation while stdin was open")
	}
}
