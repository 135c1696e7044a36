// Package runner executes external binaries with bounded timeouts and
// captured output. It is the single choke point for every subprocess
// this tool spawns: the issue tracker CLI and the optional security
// scanners.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single subprocess invocation when the caller
// does not configure one. No call may hang indefinitely.
const DefaultTimeout = 30 * time.Second

// CommandRunner is the seam test code uses to substitute a fake for
// real subprocess execution.
type CommandRunner interface {
	Run(ctx context.Context, binary string, args ...string) (string, error)
}

// Runner executes commands on the host via os/exec.
type Runner struct {
	timeout time.Duration
}

// New returns a Runner enforcing the given per-invocation timeout.
// A non-positive timeout falls back to DefaultTimeout.
func New(timeout time.Duration) *Runner {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Runner{timeout: timeout}
}

// Run executes binary with args and returns its stdout. A non-zero
// exit yields an error carrying the trimmed stderr, which callers
// inspect for tracker messages like "no updates requested".
func (r *Runner) Run(ctx context.Context, binary string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, binary, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return "", fmt.Errorf("%s timed out after %s", binary, r.timeout)
		}
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = fmt.Sprintf("command failed: %s %s", binary, strings.Join(args, " "))
		}
		return "", fmt.Errorf("%s", msg)
	}
	return stdout.String(), nil
}
