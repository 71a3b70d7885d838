package ffprobe

import (
	"context"
	"log/slog"

	"github.com/Ves02/ffmpeg-sidecar/internal/execx"
)

// Command accumulates command-line arguments for an ffprobe invocation.
//
// The named methods alias ffprobe's documented generic options; refer to
// https://ffmpeg.org/ffprobe.html for the exhaustive list. Arg and Args pass
// anything else through verbatim. Every method appends in call order, accepts
// any string without validation, and returns the receiver for chaining.
type Command struct {
	path   string
	args   []string
	logger *slog.Logger
}

// NewCommand returns a builder targeting the effective ffprobe binary.
func NewCommand() *Command {
	return NewCommandWithPath(Path())
}

// NewCommandWithPath returns a builder targeting an explicit binary path.
func NewCommandWithPath(path string) *Command {
	return &Command{path: path}
}

// WithLogger attaches a logger used to debug-trace launches.
func (c *Command) WithLogger(logger *slog.Logger) *Command {
	c.logger = logger
	return c
}

// HideBanner appends `-hide_banner`.
//
// All FFmpeg tools normally print a copyright notice, build options and
// library versions; this option suppresses that output.
func (c *Command) HideBanner() *Command {
	return c.Arg("-hide_banner")
}

// PrintFormat appends `-print_format` followed by the writer name.
func (c *Command) PrintFormat(format string) *Command {
	return c.Arg("-print_format").Arg(format)
}

// Arg appends a single argument verbatim.
func (c *Command) Arg(arg string) *Command {
	c.args = append(c.args, arg)
	return c
}

// Args appends each of the given arguments in order.
func (c *Command) Args(args ...string) *Command {
	c.args = append(c.args, args...)
	return c
}

// Binary returns the executable path the command will launch.
func (c *Command) Binary() string {
	return c.path
}

// Argv returns a copy of the accumulated arguments in append order.
func (c *Command) Argv() []string {
	return append([]string(nil), c.args...)
}

// Output launches the built invocation and captures stdout. A non-zero exit
// still yields the captured bytes; only a failure to launch is an error.
func (c *Command) Output(ctx context.Context) ([]byte, error) {
	return c.exec().Output(ctx)
}

// Run launches the built invocation with output discarded and returns the
// launch or exit error.
func (c *Command) Run(ctx context.Context) error {
	return c.exec().Run(ctx)
}

func (c *Command) exec() *execx.Cmd {
	return execx.New(c.path, c.args...).WithLogger(c.logger)
}
