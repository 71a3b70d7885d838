// Package ffprobe locates and invokes the ffprobe binary.
//
// Lookup prefers an ffprobe binary that sits next to the current executable
// and falls back to resolving "ffprobe" from PATH at launch time. Note that
// not all FFmpeg distributions include ffprobe.
//
// Primary entry points:
//   - Path / Resolve: effective binary resolution (sidecar vs system search)
//   - IsInstalled: yes/no availability probe, never errors
//   - Version / VersionWithPath: raw `-version` banner text
//   - Command: argument builder with aliases for common ffprobe flags
//
// The package does not parse ffprobe output; it only locates the binary,
// builds argument vectors, and captures what the tool prints.
package ffprobe
