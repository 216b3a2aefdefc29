package ports

import "context"

// ToolResult is the captured outcome of one external tool run.  The
// pipeline judges tools by the files they leave behind and by specific
// stderr substrings, so stderr is kept line by line.
type ToolResult struct {
	ExitCode    int
	StderrLines []string
}

// ToolInvoker runs an external executable synchronously and captures
// its standard error.  A non-nil error means the tool could not be
// spawned at all; a tool that ran and exited non-zero is reported
// through ToolResult.
type ToolInvoker interface {
	Run(ctx context.Context, executable string, args ...string) (ToolResult, error)
}
