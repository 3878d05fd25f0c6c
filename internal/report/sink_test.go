package report_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"avghash/internal/avghash"
	"avghash/internal/batch"
	"avghash/internal/fingerprint"
	"avghash/internal/report"
)

func mustHash(t *testing.T, pix ...uint8) fingerprint.Hash {
	t.Helper()
	grid, err := avghash.NewGrid(len(pix), 1, pix)
	if err != nil {
		t.Fatalf("NewGrid: %v", err)
	}
	h, err := avghash.HashGrid(grid)
	if err != nil {
		t.Fatalf("HashGrid: %v", err)
	}
	return h
}

func writeAll(t *testing.T, sink report.Sink, results ...batch.Result) {
	t.Helper()
	for _, res := range results {
		if err := sink.Write(res); err != nil {
			t.Fatalf("Write(%s): %v", res.Path, err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestTextSink(t *testing.T) {
	var buf bytes.Buffer
	sink, err := report.NewSink(report.FormatText, &buf)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	writeAll(t, sink,
		batch.Result{Path: "a.png", Hash: mustHash(t, 10, 200, 10, 200)},
		batch.Result{Path: "b.png", Err: errors.New("decode b.png: unexpected EOF")},
	)

	want := "a.png\t->\t5\nb.png\t->\tdecode b.png: unexpected EOF\n"
	if buf.String() != want {
		t.Fatalf("unexpected text output:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestJSONSink(t *testing.T) {
	var buf bytes.Buffer
	sink, err := report.NewSink(report.FormatJSON, &buf)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	writeAll(t, sink,
		batch.Result{Path: "a.png", Hash: mustHash(t, 0, 255, 0, 255, 0, 255, 0, 255)},
		batch.Result{Path: "missing.png", Err: errors.New("no such file")},
	)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 json lines, got %d: %q", len(lines), buf.String())
	}

	var ok map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &ok); err != nil {
		t.Fatalf("decode first line: %v", err)
	}
	if ok["path"] != "a.png" || ok["hash"] != "55" || ok["bits"] != float64(8) {
		t.Fatalf("unexpected success record: %v", ok)
	}
	if _, present := ok["error"]; present {
		t.Fatalf("success record should omit error: %v", ok)
	}

	var failed map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &failed); err != nil {
		t.Fatalf("decode second line: %v", err)
	}
	if failed["error"] != "no such file" {
		t.Fatalf("unexpected failure record: %v", failed)
	}
	if _, present := failed["hash"]; present {
		t.Fatalf("failure record should omit hash: %v", failed)
	}
}

func TestTableSinkSortsOnClose(t *testing.T) {
	var buf bytes.Buffer
	sink, err := report.NewSink(report.FormatTable, &buf)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	if err := sink.Write(batch.Result{Path: "zeta.png", Hash: mustHash(t, 1, 2, 3, 4)}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := sink.Write(batch.Result{Path: "alpha.png", Err: errors.New("broken")}); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("table should render only on Close, got %q", buf.String())
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"PATH", "BITS", "HASH / ERROR", "zeta.png", "alpha.png", "broken", "7"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "alpha.png") > strings.Index(out, "zeta.png") {
		t.Fatalf("expected rows sorted by path:\n%s", out)
	}
}

func TestTableSinkEmpty(t *testing.T) {
	var buf bytes.Buffer
	sink, err := report.NewSink(report.FormatTable, &buf)
	if err != nil {
		t.Fatalf("NewSink: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output for empty table, got %q", buf.String())
	}
}

func TestNewSinkRejectsUnknownFormat(t *testing.T) {
	if _, err := report.NewSink("xml", &bytes.Buffer{}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}
