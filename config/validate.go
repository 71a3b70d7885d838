package config

import (
	"fmt"
	"os"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	return c.validateTools()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch c.Logging.Format {
	case "", "auto", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	return nil
}

func (c *Config) validateTools() error {
	for key, path := range map[string]string{
		"tools.ffprobe": c.Tools.FFprobe,
		"tools.ffmpeg":  c.Tools.FFmpeg,
	} {
		if path == "" {
			continue
		}
		// Overrides may point at not-yet-installed binaries; only a path
		// that exists and is a directory is definitely wrong.
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return fmt.Errorf("%s: %q is a directory", key, path)
		}
	}
	return nil
}
