package testsupport

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"avghash/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a default config with results and logs routed into a
// per-test temp directory. Progress is disabled.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Output.Progress = false
	cfgVal.Workers.Count = 2

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithGrid overrides the hash grid dimensions.
func WithGrid(width, height int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Hash.Width = width
		b.cfg.Hash.Height = height
	}
}

// WithOutputFile routes results to a file named name under the temp directory.
func WithOutputFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Output.Path = filepath.Join(b.baseDir, name)
	}
}

// WithLogFile mirrors log records to a file under the temp directory.
func WithLogFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.baseDir, name)
	}
}

// WriteConfig encodes cfg as TOML at path and returns the path.
func WriteConfig(t testing.TB, path string, cfg *config.Config) string {
	t.Helper()
	mkdirFor(t, path)
	data, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("marshal config: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write config %s: %v", path, err)
	}
	return path
}
