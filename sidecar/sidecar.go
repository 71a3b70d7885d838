// Package sidecar locates external tool binaries that ship next to the host
// application's own executable, falling back to system PATH lookup when no
// sidecar is present.
package sidecar

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Source identifies how a tool path was resolved.
type Source int

const (
	// SourceSidecar means the binary sits in the same directory as the
	// current executable.
	SourceSidecar Source = iota
	// SourceSystemSearch means the bare tool name is returned and PATH
	// lookup happens at launch time.
	SourceSystemSearch
)

// String returns a human-readable name for the source.
func (s Source) String() string {
	switch s {
	case SourceSidecar:
		return "sidecar"
	case SourceSystemSearch:
		return "system-search"
	default:
		return fmt.Sprintf("source(%d)", int(s))
	}
}

// Resolution pairs a resolved tool path with its provenance.
type Resolution struct {
	Source Source
	Path   string
}

// SidecarPath returns the expected path of tool adjacent to the current
// executable. The extension differs between platforms, with Windows using
// `.exe` while Mac and Linux have none. The returned path is not guaranteed
// to exist.
func SidecarPath(tool string) (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate current executable: %w", err)
	}
	return sidecarPathFrom(exe, tool)
}

// Resolve reports the effective path for tool: the sidecar when a filesystem
// entry exists at the expected location, otherwise the bare name left to PATH
// lookup at launch time. Resolve never fails; internal errors degrade to the
// system-search fallback.
func Resolve(tool string) Resolution {
	return resolveFrom(tool, os.Executable, os.Stat)
}

func resolveFrom(tool string, executable func() (string, error), stat func(string) (os.FileInfo, error)) Resolution {
	fallback := Resolution{Source: SourceSystemSearch, Path: tool}
	exe, err := executable()
	if err != nil {
		return fallback
	}
	candidate, err := sidecarPathFrom(exe, tool)
	if err != nil {
		return fallback
	}
	if _, err := stat(candidate); err != nil {
		return fallback
	}
	return Resolution{Source: SourceSidecar, Path: candidate}
}

func sidecarPathFrom(exe, tool string) (string, error) {
	dir := filepath.Dir(exe)
	if dir == "" || dir == exe {
		return "", fmt.Errorf("executable path %q has no parent directory", exe)
	}
	return filepath.Join(dir, sidecarName(tool, runtime.GOOS)), nil
}

func sidecarName(tool, goos string) string {
	if goos == "windows" {
		return tool + ".exe"
	}
	return tool
}
