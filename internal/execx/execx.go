// Package execx runs external release tools (osc, msgfmt) in a given
// directory without touching the process working directory.
package execx

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Output holds what a command wrote.
type Output struct {
	Stdout []byte
	Stderr []byte
}

// Runner runs name with args inside dir.
type Runner interface {
	Run(ctx context.Context, dir, name string, args ...string) (Output, error)
}

// OSRunner runs real processes.
type OSRunner struct {
	Logger *slog.Logger
}

// Run executes the command with cmd.Dir set to dir. The captured output is
// returned even when the command fails.
func (r OSRunner) Run(ctx context.Context, dir, name string, args ...string) (Output, error) {
	logger := r.Logger
	if logger == nil {
		logger = slog.Default()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Debug("running command", "dir", dir, "cmd", name, "args", args)
	err := cmd.Run()
	out := Output{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		return out, fmt.Errorf("running %s %s in %s: %w", name, strings.Join(args, " "), dir, err)
	}
	return out, nil
}
