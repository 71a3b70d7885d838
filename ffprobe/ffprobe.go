package ffprobe

import (
	"context"
	"fmt"

	"github.com/Ves02/ffmpeg-sidecar/internal/execx"
	"github.com/Ves02/ffmpeg-sidecar/sidecar"
)

const binaryName = "ffprobe"

// SidecarPath returns the expected path of an ffprobe binary adjacent to the
// current executable: `ffprobe.exe` on Windows, extensionless elsewhere. The
// returned path is not guaranteed to exist.
func SidecarPath() (string, error) {
	return sidecar.SidecarPath(binaryName)
}

// Resolve reports the effective ffprobe binary together with its provenance.
// It never fails; when no sidecar exists the bare name is returned and PATH
// lookup happens at launch time.
func Resolve() sidecar.Resolution {
	return sidecar.Resolve(binaryName)
}

// Path returns the effective ffprobe binary path. Shorthand for
// Resolve().Path.
func Path() string {
	return Resolve().Path
}

// IsInstalled reports whether ffprobe can be launched, either from the
// sidecar location or from PATH. Output is discarded; a binary that is
// missing, not executable, or exits non-zero all read as "not installed".
func IsInstalled(ctx context.Context) bool {
	return installedAt(ctx, Path())
}

func installedAt(ctx context.Context, path string) bool {
	return execx.New(path, "-version").Succeeds(ctx)
}

// Version runs `ffprobe -version` against the effective binary and returns
// the raw banner text the tool printed.
func Version(ctx context.Context) (string, error) {
	return VersionWithPath(ctx, Path())
}

// VersionWithPath is the lower-level variant of Version that takes an
// explicit path to the ffprobe binary. The banner is returned unparsed;
// ffprobe gives no format contract for it, so no structured version is
// extracted. Launch failures and invalid UTF-8 output surface as distinct
// wrapped errors.
func VersionWithPath(ctx context.Context, path string) (string, error) {
	out, err := execx.New(path, "-version").Output(ctx)
	if err != nil {
		return "", fmt.Errorf("ffprobe version: %w", err)
	}
	text, err := execx.DecodeText(out)
	if err != nil {
		return "", fmt.Errorf("ffprobe version: decode output: %w", err)
	}
	return text, nil
}
