// Package deps reports the availability of the external binaries a host
// application relies on, resolving each one sidecar-first before consulting
// PATH.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Ves02/ffmpeg-sidecar/sidecar"
)

// Requirement describes an external binary dependency.
type Requirement struct {
	Name        string
	Tool        string
	Description string
	Optional    bool
}

// Status reports the availability of a requirement.
type Status struct {
	Name        string
	Tool        string
	Path        string
	Source      sidecar.Source
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// FFprobeRequirement returns the canned requirement for ffprobe.
func FFprobeRequirement() Requirement {
	return Requirement{
		Name:        "FFprobe",
		Tool:        "ffprobe",
		Description: "Media stream and container inspection",
	}
}

// FFmpegRequirement returns the canned requirement for ffmpeg.
func FFmpegRequirement() Requirement {
	return Requirement{
		Name:        "FFmpeg",
		Tool:        "ffmpeg",
		Description: "Media transcoding",
		Optional:    true,
	}
}

// Check evaluates the provided requirements and reports availability. A
// sidecar next to the current executable satisfies a requirement outright;
// otherwise the bare name must resolve via PATH.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		results = append(results, checkOne(req))
	}
	return results
}

func checkOne(req Requirement) Status {
	tool := strings.TrimSpace(req.Tool)
	status := Status{
		Name:        req.Name,
		Tool:        tool,
		Description: strings.TrimSpace(req.Description),
		Optional:    req.Optional,
	}
	if tool == "" {
		status.Detail = "tool not configured"
		return status
	}

	res := sidecar.Resolve(tool)
	status.Source = res.Source
	if res.Source == sidecar.SourceSidecar {
		status.Path = res.Path
		status.Available = true
		return status
	}

	resolved, err := exec.LookPath(res.Path)
	if err != nil {
		status.Detail = fmt.Sprintf("binary %q not found", tool)
		return status
	}
	status.Path = resolved
	status.Available = true
	return status
}
