//go:build !windows

package execx

import "os/exec"

// hideWindow is a no-op outside Windows; nothing flashes a console there.
func hideWindow(*exec.Cmd) {}
