package shell

import (
	"errors"
	"fmt"

	shellquote "github.com/kballard/go-shellquote"
)

var (
	// ErrCommandNotFound matches every *CommandNotFoundError
	ErrCommandNotFound = errors.New("command not found")
	// ErrCommandFailed matches every *CommandFailedError
	ErrCommandFailed = errors.New("command failed")
)

// CommandNotFoundError reports a program that could not be located or
// spawned. There is no exit code or output attached.
type CommandNotFoundError struct {
	Program string
	Err     error
}

func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command %q could not be started: %v", e.Program, e.Err)
}

func (e *CommandNotFoundError) Unwrap() error { return e.Err }

func (e *CommandNotFoundError) Is(target error) bool { return target == ErrCommandNotFound }

// CommandFailedError reports a non-zero exit when the return code was checked
type CommandFailedError struct {
	Program    string
	Args       []string
	ReturnCode int
	Stdout     string
	Stderr     string
}

func (e *CommandFailedError) Error() string {
	cmdline := shellquote.Join(append([]string{e.Program}, e.Args...)...)
	return fmt.Sprintf("command '%s' exited with code %d", cmdline, e.ReturnCode)
}

func (e *CommandFailedError) Is(target error) bool { return target == ErrCommandFailed }
