// Package executor abstracts running system commands so that code
// spawning children (the taskset probers) can be tested without real
// processes.
package executor

import (
	"context"
	"os/exec"
)

// Executor defines the interface for running system commands and
// capturing their standard output.
type Executor interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// DefaultExecutor is the standard implementation using os/exec.
type DefaultExecutor struct{}

func (e *DefaultExecutor) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}
