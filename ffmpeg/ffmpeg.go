// Package ffmpeg locates and invokes the ffmpeg binary, preferring a sidecar
// that ships next to the current executable and falling back to PATH lookup.
package ffmpeg

import (
	"context"
	"fmt"

	"github.com/Ves02/ffmpeg-sidecar/internal/execx"
	"github.com/Ves02/ffmpeg-sidecar/sidecar"
)

const binaryName = "ffmpeg"

// SidecarPath returns the expected path of an ffmpeg binary adjacent to the
// current executable. The returned path is not guaranteed to exist.
func SidecarPath() (string, error) {
	return sidecar.SidecarPath(binaryName)
}

// Resolve reports the effective ffmpeg binary together with its provenance.
// It never fails.
func Resolve() sidecar.Resolution {
	return sidecar.Resolve(binaryName)
}

// Path returns the effective ffmpeg binary path. Shorthand for Resolve().Path.
func Path() string {
	return Resolve().Path
}

// IsInstalled reports whether ffmpeg can be launched, either from the sidecar
// location or from PATH. It never errors.
func IsInstalled(ctx context.Context) bool {
	return installedAt(ctx, Path())
}

func installedAt(ctx context.Context, path string) bool {
	return execx.New(path, "-version").Succeeds(ctx)
}

// Version runs `ffmpeg -version` against the effective binary and returns the
// raw banner text.
func Version(ctx context.Context) (string, error) {
	return VersionWithPath(ctx, Path())
}

// VersionWithPath is the lower-level variant of Version that takes an
// explicit path to the ffmpeg binary.
func VersionWithPath(ctx context.Context, path string) (string, error) {
	out, err := execx.New(path, "-version").Output(ctx)
	if err != nil {
		return "", fmt.Errorf("ffmpeg version: %w", err)
	}
	text, err := execx.DecodeText(out)
	if err != nil {
		return "", fmt.Errorf("ffmpeg version: decode output: %w", err)
	}
	return text, nil
}
