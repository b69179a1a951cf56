package xrandr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
)

// ErrToolMissing is returned when the xrandr binary cannot be started.
var ErrToolMissing = errors.New("xrandr: tool not found")

// ToolError is returned when xrandr ran but exited unsuccessfully.
type ToolError struct {
	Args   []string
	Stderr string
	Err    error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("xrandr %s: %v", strings.Join(e.Args, " "), e.Err)
	if e.Stderr != "" {
		msg += ": " + e.Stderr
	}
	return msg
}

func (e *ToolError) Unwrap() error { return e.Err }

// Runner executes one xrandr invocation and returns its stdout.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs the real tool.
type ExecRunner struct {
	Path string
	Log  *log.Logger
}

func NewExecRunner(path string, logger *log.Logger) *ExecRunner {
	if path == "" {
		path = "xrandr"
	}
	return &ExecRunner{Path: path, Log: logger}
}

func (r *ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	if r.Log != nil {
		r.Log.Debug("running tool", "path", r.Path, "args", args)
	}

	cmd := exec.CommandContext(ctx, r.Path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrToolMissing, r.Path)
		}
		return "", &ToolError{Args: args, Stderr: strings.TrimSpace(stderr.String()), Err: err}
	}

	return stdout.String(), nil
}

// DryRunner forwards queries to Next and only logs commands that would
// change the output configuration.
type DryRunner struct {
	Next Runner
	Log  *log.Logger
}

func (r *DryRunner) Run(ctx context.Context, args ...string) (string, error) {
	if IsQuery(args) {
		return r.Next.Run(ctx, args...)
	}
	if r.Log != nil {
		r.Log.Info("dry run", "cmd", "xrandr "+strings.Join(args, " "))
	}
	return "", nil
}

// IsQuery reports whether args only read state.
func IsQuery(args []string) bool {
	switch len(args) {
	case 0:
		return true
	case 1:
		return args[0] == "--verbose" || args[0] == "--query" || args[0] == "-q"
	}
	return false
}
