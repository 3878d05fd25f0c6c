package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"avghash/internal/avghash"
)

// OutputFormats lists the accepted output.format values.
var OutputFormats = []string{"text", "json", "table"}

var (
	logFormats = []string{"console", "json"}
	logLevels  = []string{"debug", "info", "warn", "error"}
)

// maxGridCells bounds width*height so a typo cannot request a gigapixel grid.
const maxGridCells = 1 << 20

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateHash(); err != nil {
		return err
	}
	if c.Workers.Count < 0 {
		return errors.New("workers.count must be zero or positive")
	}
	if err := ensureOneOf("output.format", c.Output.Format, OutputFormats); err != nil {
		return err
	}
	if err := ensureOneOf("logging.format", c.Logging.Format, logFormats); err != nil {
		return err
	}
	if err := ensureOneOf("logging.level", c.Logging.Level, logLevels); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateHash() error {
	if c.Hash.Width <= 0 {
		return errors.New("hash.width must be positive")
	}
	if c.Hash.Height <= 0 {
		return errors.New("hash.height must be positive")
	}
	if c.Hash.Width > maxGridCells || c.Hash.Height > maxGridCells || c.Hash.Width*c.Hash.Height > maxGridCells {
		return fmt.Errorf("hash.width * hash.height must not exceed %d", maxGridCells)
	}
	if strings.TrimSpace(c.Hash.Filter) == "" {
		return errors.New("hash.filter must be set")
	}
	if _, err := avghash.ParseFilter(c.Hash.Filter); err != nil {
		return fmt.Errorf("hash.filter: %w", err)
	}
	return nil
}

func ensureOneOf(key, value string, allowed []string) error {
	if slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%s: unsupported value %q (valid: %s)", key, value, strings.Join(allowed, ", "))
}
