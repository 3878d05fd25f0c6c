package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"avghash/internal/avghash"
)

const (
	envLogLevel = "AVGHASH_LOG_LEVEL"
	envWorkers  = "AVGHASH_WORKERS"
)

func (c *Config) normalize() error {
	if err := c.normalizeHash(); err != nil {
		return err
	}
	if err := c.normalizeWorkers(); err != nil {
		return err
	}
	if err := c.normalizeOutput(); err != nil {
		return err
	}
	return c.normalizeLogging()
}

func (c *Config) normalizeHash() error {
	filter, err := avghash.ParseFilter(c.Hash.Filter)
	if err != nil {
		return fmt.Errorf("hash.filter: %w", err)
	}
	c.Hash.Filter = string(filter)
	return nil
}

func (c *Config) normalizeWorkers() error {
	if value, ok := os.LookupEnv(envWorkers); ok && strings.TrimSpace(value) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("%s: %w", envWorkers, err)
		}
		c.Workers.Count = n
	}
	return nil
}

func (c *Config) normalizeOutput() error {
	c.Output.Format = strings.ToLower(strings.TrimSpace(c.Output.Format))
	if c.Output.Format == "" {
		c.Output.Format = defaultOutputFormat
	}
	path := strings.TrimSpace(c.Output.Path)
	if path == "" || path == "-" {
		c.Output.Path = path
		return nil
	}
	expanded, err := expandPath(path)
	if err != nil {
		return fmt.Errorf("output.path: %w", err)
	}
	c.Output.Path = expanded
	return nil
}

func (c *Config) normalizeLogging() error {
	if value, ok := os.LookupEnv(envLogLevel); ok && strings.TrimSpace(value) != "" {
		c.Logging.Level = value
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	file := strings.TrimSpace(c.Logging.File)
	if file == "" {
		c.Logging.File = ""
		return nil
	}
	expanded, err := expandPath(file)
	if err != nil {
		return fmt.Errorf("logging.file: %w", err)
	}
	c.Logging.File = expanded
	return nil
}
