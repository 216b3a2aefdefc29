package adapters

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"overlaypack/internal/ports"
	"overlaypack/internal/shared"
)

// ExecToolInvoker runs external tools with os/exec, blocking until the
// subprocess exits and capturing stderr line by line.
type ExecToolInvoker struct{}

func NewExecToolInvoker() ExecToolInvoker {
	return ExecToolInvoker{}
}

func (a ExecToolInvoker) Run(ctx context.Context, executable string, args ...string) (ports.ToolResult, error) {
	cmd := exec.CommandContext(ctx, executable, args...)
	var stderr bytes.Buffer
	cmd.Stdout = io.Discard
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ports.ToolResult{StderrLines: splitLines(stderr.String())}
	if err == nil {
		return result, nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		// Tool ran and exited non-zero; callers judge via output
		// files and stderr content.
		result.ExitCode = exitErr.ExitCode()
		return result, nil
	}
	return result, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg("failed to run " + filepath.Base(executable)).
		WithCause(shared.CommandError(stderr.Bytes(), err))
}

func splitLines(text string) []string {
	trimmed := strings.TrimRight(text, "\n")
	if trimmed == "" {
		return nil
	}
	return strings.Split(strings.ReplaceAll(trimmed, "\r\n", "\n"), "\n")
}

var _ ports.ToolInvoker = ExecToolInvoker{}
