package shell

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// Result is the outcome of one execution
type Result struct {
	Stdout     string
	Stderr     string
	ReturnCode int
}

// Success reports a zero return code
func (r Result) Success() bool {
	return r.ReturnCode == 0
}

// Executor spawns a program and waits for it. A non-zero exit is not an
// error at this layer; only failing to spawn (or to collect output) is.
type Executor interface {
	Execute(program string, args []string) (Result, error)
}

// RealExecutor runs programs with os/exec, without a shell
type RealExecutor struct{}

// NewRealExecutor creates a new RealExecutor
func NewRealExecutor() *RealExecutor {
	return &RealExecutor{}
}

// Execute runs program in the current directory with the inherited
// environment and captures stdout and stderr separately.
func (e *RealExecutor) Execute(program string, args []string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(program, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return Result{}, &CommandNotFoundError{Program: program, Err: err}
	}

	err := cmd.Wait()
	result := Result{
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		ReturnCode: cmd.ProcessState.ExitCode(),
	}

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return result, fmt.Errorf("failed to collect output of %s: %w", program, err)
	}

	return result, nil
}
