// Package config holds host-supplied overrides for tool locations and
// logging, loaded from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/Ves02/ffmpeg-sidecar/ffmpeg"
	"github.com/Ves02/ffmpeg-sidecar/ffprobe"
)

// Tools contains explicit binary path overrides. An empty value means the
// sidecar-first lookup decides at call time.
type Tools struct {
	FFprobe string `toml:"ffprobe"`
	FFmpeg  string `toml:"ffmpeg"`
}

// Logging contains logger construction settings.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config is the root configuration document.
type Config struct {
	Tools   Tools   `toml:"tools"`
	Logging Logging `toml:"logging"`
}

// Load parses a TOML configuration file and applies defaults and validation.
// A missing file is not an error; defaults apply. An empty path yields the
// defaults directly.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		file, err := os.Open(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			// fall through to defaults
		case err != nil:
			return nil, fmt.Errorf("open config: %w", err)
		default:
			defer file.Close()
			if err := toml.NewDecoder(file).Decode(&cfg); err != nil {
				return nil, fmt.Errorf("parse config: %w", err)
			}
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// EffectiveFFprobe returns the ffprobe binary the host should launch: the
// explicit override when configured, otherwise sidecar-first resolution.
func (c *Config) EffectiveFFprobe() string {
	if c.Tools.FFprobe != "" {
		return c.Tools.FFprobe
	}
	return ffprobe.Path()
}

// EffectiveFFmpeg returns the ffmpeg binary the host should launch.
func (c *Config) EffectiveFFmpeg() string {
	if c.Tools.FFmpeg != "" {
		return c.Tools.FFmpeg
	}
	return ffmpeg.Path()
}

func (c *Config) normalize() error {
	var err error
	if c.Tools.FFprobe, err = normalizePath(c.Tools.FFprobe); err != nil {
		return fmt.Errorf("tools.ffprobe: %w", err)
	}
	if c.Tools.FFmpeg, err = normalizePath(c.Tools.FFmpeg); err != nil {
		return fmt.Errorf("tools.ffmpeg: %w", err)
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	return nil
}

func normalizePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", nil
	}
	if path == "~" || strings.HasPrefix(path, "~"+string(filepath.Separator)) || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home directory: %w", err)
		}
		path = filepath.Join(home, strings.TrimPrefix(strings.TrimPrefix(path, "~"), "/"))
	}
	return filepath.Clean(path), nil
}
