package deps

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/Ves02/ffmpeg-sidecar/sidecar"
)

func executableName(base string) string {
	if runtime.GOOS == "windows" {
		return base + ".exe"
	}
	return base
}

func TestCheckResolvesFromPath(t *testing.T) {
	binDir := t.TempDir()
	present := filepath.Join(binDir, executableName("present-tool"))
	if err := os.WriteFile(present, []byte("#!/bin/sh\nexit 0\n"), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	t.Setenv("PATH", binDir)

	reqs := []Requirement{
		{Name: "Present", Tool: "present-tool"},
		{Name: "Missing", Tool: "clearly-not-present-binary"},
	}
	results := Check(reqs)
	if len(results) != len(reqs) {
		t.Fatalf("expected %d results, got %d", len(reqs), len(results))
	}

	if !results[0].Available {
		t.Fatalf("expected first requirement to be available, got %#v", results[0])
	}
	if results[0].Source != sidecar.SourceSystemSearch {
		t.Fatalf("expected PATH resolution, got %v", results[0].Source)
	}
	if results[0].Path != present {
		t.Fatalf("expected resolved path %q, got %q", present, results[0].Path)
	}

	if results[1].Available {
		t.Fatal("expected missing binary to be unavailable")
	}
	if results[1].Detail == "" {
		t.Fatal("expected detail message for missing binary")
	}
}

func TestCheckRejectsEmptyTool(t *testing.T) {
	results := Check([]Requirement{{Name: "Blank"}})
	if results[0].Available {
		t.Fatal("expected blank requirement to be unavailable")
	}
	if results[0].Detail != "tool not configured" {
		t.Fatalf("unexpected detail: %q", results[0].Detail)
	}
}

func TestCannedRequirements(t *testing.T) {
	if FFprobeRequirement().Tool != "ffprobe" {
		t.Fatalf("unexpected ffprobe tool name: %q", FFprobeRequirement().Tool)
	}
	if FFmpegRequirement().Tool != "ffmpeg" {
		t.Fatalf("unexpected ffmpeg tool name: %q", FFmpegRequirement().Tool)
	}
	if !FFmpegRequirement().Optional {
		t.Fatal("expected ffmpeg requirement to be optional")
	}
}
