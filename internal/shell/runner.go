package shell

import (
	"errors"
	"fmt"
	"strings"

	shellquote "github.com/kballard/go-shellquote"

	"github.com/mbourmaud/nob/internal/logger"
)

// Invocation is a reusable description of a program and its arguments.
// Run may be called any number of times; each call yields a new Result.
type Invocation struct {
	program  string
	flags    []string
	logger   *logger.Logger
	executor Executor
}

// New creates an invocation of program with no flags and no logger
func New(program string) *Invocation {
	return &Invocation{
		program:  program,
		flags:    []string{},
		executor: NewRealExecutor(),
	}
}

// FromCommandLine splits line into words (shell quoting rules, no shell
// expansion) and builds an invocation from them
func FromCommandLine(line string) (*Invocation, error) {
	words, err := shellquote.Split(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command line %q: %w", line, err)
	}
	if len(words) == 0 {
		return nil, errors.New("empty command line")
	}
	return New(words[0]).AddFlags(words[1:]...), nil
}

// WithLogger attaches a logger that reports progress. The logger is
// shared, not owned: the invocation never closes it.
func (inv *Invocation) WithLogger(l *logger.Logger) *Invocation {
	inv.logger = l
	return inv
}

// WithExecutor replaces the executor used to spawn the program
func (inv *Invocation) WithExecutor(e Executor) *Invocation {
	inv.executor = e
	return inv
}

// AddFlags appends one or more flags in order
func (inv *Invocation) AddFlags(flags ...string) *Invocation {
	inv.flags = append(inv.flags, flags...)
	return inv
}

// Program returns the program name
func (inv *Invocation) Program() string {
	return inv.program
}

// Args returns a copy of the accumulated flags
func (inv *Invocation) Args() []string {
	args := make([]string, len(inv.flags))
	copy(args, inv.flags)
	return args
}

// String returns the command line quoted for display
func (inv *Invocation) String() string {
	return shellquote.Join(append([]string{inv.program}, inv.flags...)...)
}

// Run executes the program and blocks until it exits. With check set, a
// non-zero return code yields a *CommandFailedError alongside the result.
// A program that cannot be spawned yields a *CommandNotFoundError.
// There is no timeout: a command that never exits blocks forever.
func (inv *Invocation) Run(check bool) (Result, error) {
	args := inv.Args()
	inv.log(logger.LevelInfo, "Running command: '%s'...", inv)

	result, err := inv.executor.Execute(inv.program, args)
	if err != nil {
		if errors.Is(err, ErrCommandNotFound) {
			inv.log(logger.LevelError, "Command '%s' not found. Please ensure it is in your PATH.", inv.program)
		} else {
			inv.log(logger.LevelError, "An unexpected error occurred while running command '%s': %v", inv.program, err)
		}
		return result, err
	}

	if result.ReturnCode == 0 {
		inv.log(logger.LevelSuccess, "Command '%s' completed successfully.", inv.program)
	} else if !check {
		inv.log(logger.LevelWarning, "Command '%s' exited with code %d.", inv.program, result.ReturnCode)
	}
	if out := strings.TrimSpace(result.Stdout); out != "" {
		inv.log(logger.LevelInfo, "--- STDOUT ---\n%s", out)
	}
	if errOut := strings.TrimSpace(result.Stderr); errOut != "" {
		inv.log(logger.LevelError, "--- STDERR ---\n%s", errOut)
	}

	if check && result.ReturnCode != 0 {
		failed := &CommandFailedError{
			Program:    inv.program,
			Args:       args,
			ReturnCode: result.ReturnCode,
			Stdout:     result.Stdout,
			Stderr:     result.Stderr,
		}
		inv.log(logger.LevelError, "Command '%s' failed with error: %v", inv.program, failed)
		return result, failed
	}

	return result, nil
}

// log reports progress; write failures stay on the logger (see Logger.Err)
// and never change the outcome of Run
func (inv *Invocation) log(level logger.Level, format string, args ...interface{}) {
	if inv.logger == nil {
		return
	}
	_ = inv.logger.Logf(level, format, args...)
}
