package execx

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func writeStub(t *testing.T, script string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell script stubs require a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "stub")
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func TestOutputCapturesStdout(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho banner text\n")
	out, err := New(stub).Output(context.Background())
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if string(out) != "banner text\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOutputToleratesNonZeroExit(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho partial\nexit 3\n")
	out, err := New(stub).Output(context.Background())
	if err != nil {
		t.Fatalf("expected captured output despite exit status, got %v", err)
	}
	if string(out) != "partial\n" {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestOutputLaunchFailure(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing")
	if _, err := New(missing).Output(context.Background()); err == nil {
		t.Fatal("expected launch error for missing binary")
	}
}

func TestOutputAppendsArgsInOrder(t *testing.T) {
	stub := writeStub(t, "#!/bin/sh\necho \"$@\"\n")
	out, err := New(stub, "x").Append("a", "b").Output(context.Background())
	if err != nil {
		t.Fatalf("Output: %v", err)
	}
	if string(out) != "x a b\n" {
		t.Fatalf("unexpected argument ordering: %q", out)
	}
}

func TestSucceeds(t *testing.T) {
	ok := writeStub(t, "#!/bin/sh\nexit 0\n")
	if !New(ok).Succeeds(context.Background()) {
		t.Fatal("expected success for zero exit status")
	}

	failing := writeStub(t, "#!/bin/sh\nexit 1\n")
	if New(failing).Succeeds(context.Background()) {
		t.Fatal("expected failure for non-zero exit status")
	}

	missing := filepath.Join(t.TempDir(), "missing")
	if New(missing).Succeeds(context.Background()) {
		t.Fatal("expected failure for missing binary")
	}
}
