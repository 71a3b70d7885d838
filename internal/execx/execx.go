// Package execx is the subprocess seam used by the public tool packages. It
// builds exec.Cmd values with console-window suppression applied and exposes
// the two launch shapes the module needs: captured output and a bare
// success check.
package execx

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/google/uuid"
)

// Cmd describes a single external tool invocation. Calls block until the
// child exits; no timeout is imposed beyond what the caller's context
// carries.
type Cmd struct {
	path   string
	args   []string
	logger *slog.Logger
}

// New returns an invocation of path with the given arguments.
func New(path string, args ...string) *Cmd {
	return &Cmd{path: path, args: args}
}

// WithLogger attaches a logger used to debug-trace launches.
func (c *Cmd) WithLogger(logger *slog.Logger) *Cmd {
	c.logger = logger
	return c
}

// Append adds arguments in call order.
func (c *Cmd) Append(args ...string) *Cmd {
	c.args = append(c.args, args...)
	return c
}

// Output launches the command and captures stdout. A non-zero exit status
// still yields the captured bytes; only a failure to launch is an error.
func (c *Cmd) Output(ctx context.Context) ([]byte, error) {
	cmd := c.build(ctx)
	c.logLaunch("capture")
	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("launch %s: %w", c.path, err)
		}
	}
	return out, nil
}

// Run launches the command with stdout and stderr discarded and returns the
// launch or exit error.
func (c *Cmd) Run(ctx context.Context) error {
	cmd := c.build(ctx)
	c.logLaunch("run")
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run %s: %w", c.path, err)
	}
	return nil
}

// Succeeds reports whether the command launched and exited with a success
// status. Launch failures count as "no"; they are never propagated.
func (c *Cmd) Succeeds(ctx context.Context) bool {
	return c.Run(ctx) == nil
}

func (c *Cmd) build(ctx context.Context) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.path, c.args...)
	hideWindow(cmd)
	return cmd
}

func (c *Cmd) logLaunch(mode string) {
	if c.logger == nil {
		return
	}
	c.logger.Debug("launching external tool",
		slog.String("invocation_id", uuid.NewString()),
		slog.String("binary", c.path),
		slog.String("args", strings.Join(c.args, " ")),
		slog.String("mode", mode))
}
