package adapters

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"ifcfg-agent/internal/domain/errors"
	"ifcfg-agent/internal/domain/interfaces"
)

// RealCommandExecutor is a CommandExecutor running actual system
// commands.
type RealCommandExecutor struct{}

// NewRealCommandExecutor creates a new RealCommandExecutor.
func NewRealCommandExecutor() interfaces.CommandExecutor {
	return &RealCommandExecutor{}
}

// Execute runs a command and returns its stdout.
func (e *RealCommandExecutor) Execute(ctx context.Context, command string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, command, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, errors.NewSystemError(
			fmt.Sprintf("command execution failed: %s %v", command, args),
			fmt.Errorf("%w, stderr: %s", err, stderr.String()),
		)
	}

	return stdout.Bytes(), nil
}

// ExecuteWithTimeout runs a command under a deadline.
func (e *RealCommandExecutor) ExecuteWithTimeout(ctx context.Context, timeout time.Duration, command string, args ...string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	output, err := e.Execute(ctx, command, args...)
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return nil, errors.NewTimeoutError(
				fmt.Sprintf("command execution timeout: %s %v (timeout: %v)", command, args, timeout),
			)
		}
		return nil, err
	}

	return output, nil
}
