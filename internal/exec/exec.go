// Package exec runs the small helper programs folio shells out to: desktop
// appearance queries and URL openers.
package exec

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

// Result holds the result of a command execution
type Result struct {
	Command  string
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
	Err      error
}

// Options configures command execution
type Options struct {
	Timeout time.Duration
	Logger  *log.Logger
}

// DefaultOptions returns options suited to short probes.
func DefaultOptions() Options {
	return Options{
		Timeout: 200 * time.Millisecond,
	}
}

// Run executes a command and returns the result
func Run(ctx context.Context, name string, args []string, opts Options) *Result {
	start := time.Now()

	result := &Result{
		Command: name,
		Args:    args,
	}

	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if opts.Logger != nil {
		opts.Logger.Debug("executing command", "cmd", FormatCommand(name, args))
	}

	err := cmd.Run()
	result.Duration = time.Since(start)
	result.Stdout = stdout.String()
	result.Stderr = stderr.String()

	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		} else {
			result.ExitCode = -1
		}
		if ctx.Err() != nil {
			err = fmt.Errorf("%s: %w", name, ctx.Err())
		}
		result.Err = err
	}

	if opts.Logger != nil {
		if err != nil {
			opts.Logger.Debug("command failed",
				"cmd", name,
				"exit_code", result.ExitCode,
				"duration", result.Duration,
			)
		} else {
			opts.Logger.Debug("command succeeded",
				"cmd", name,
				"duration", result.Duration,
			)
		}
	}

	return result
}

// Output runs a command and returns its trimmed stdout, or the failure.
func Output(ctx context.Context, opts Options, name string, args ...string) (string, error) {
	res := Run(ctx, name, args, opts)
	if res.Err != nil {
		return "", res.Err
	}
	return strings.TrimSpace(res.Stdout), nil
}

// CheckCommand checks if a command is available
func CheckCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}

// RequireCommands checks if all required commands are available
func RequireCommands(commands ...string) error {
	missing := []string{}
	for _, cmd := range commands {
		if !CheckCommand(cmd) {
			missing = append(missing, cmd)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required commands: %s", strings.Join(missing, ", "))
	}
	return nil
}

// FormatCommand formats a command for display
func FormatCommand(name string, args []string) string {
	parts := append([]string{name}, args...)
	return strings.Join(parts, " ")
}
