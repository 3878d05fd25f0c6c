package report

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Progress shows a spinner with a running count of processed inputs. The
// total is unknown because inputs are streamed. A disabled Progress is a
// no-op.
type Progress struct {
	bar *progressbar.ProgressBar
}

// NewProgress returns a spinner on w when enabled and w is a terminal.
func NewProgress(w io.Writer, enabled bool) *Progress {
	if !enabled || !IsTerminal(w) {
		return &Progress{}
	}
	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription("hashing"),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowCount(),
		progressbar.OptionShowIts(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
	return &Progress{bar: bar}
}

// Enabled reports whether the spinner is drawn.
func (p *Progress) Enabled() bool { return p.bar != nil }

// Increment records one processed input.
func (p *Progress) Increment() {
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

// Finish clears the spinner.
func (p *Progress) Finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
