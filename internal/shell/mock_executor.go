package shell

import (
	"fmt"
	"strings"
	"sync"
)

// MockExecutor implements Executor for testing
type MockExecutor struct {
	mu sync.Mutex
	// Commands records all executed command lines for verification
	Commands []string
	// Calls records program and args of every execution
	Calls [][]string
	// Responses maps command patterns to scripted results
	Responses map[string]MockResponse
	// DefaultError is returned when no matching response is found
	DefaultError error
}

// MockResponse holds the mocked response for a command
type MockResponse struct {
	Result Result
	Err    error
}

// NewMockExecutor creates a new MockExecutor
func NewMockExecutor() *MockExecutor {
	return &MockExecutor{
		Commands:  []string{},
		Responses: make(map[string]MockResponse),
	}
}

// Execute records the call and returns the first response whose pattern
// is contained in the command line
func (m *MockExecutor) Execute(program string, args []string) (Result, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cmdStr := m.formatCommand(program, args...)
	m.Commands = append(m.Commands, cmdStr)
	m.Calls = append(m.Calls, append([]string{program}, args...))

	// Longest pattern wins so "cc -o" beats "cc"
	best := ""
	found := false
	for pattern := range m.Responses {
		if strings.Contains(cmdStr, pattern) && (!found || len(pattern) > len(best)) {
			best = pattern
			found = true
		}
	}
	if found {
		response := m.Responses[best]
		return response.Result, response.Err
	}

	if m.DefaultError != nil {
		return Result{}, m.DefaultError
	}

	return Result{}, nil
}

// SetResponse sets a response for commands matching the pattern
func (m *MockExecutor) SetResponse(pattern string, result Result, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Responses[pattern] = MockResponse{Result: result, Err: err}
}

// SetOutput sets a successful response with only stdout
func (m *MockExecutor) SetOutput(pattern string, stdout string) {
	m.SetResponse(pattern, Result{Stdout: stdout}, nil)
}

// SetExitCode sets a response exiting with code and stderr
func (m *MockExecutor) SetExitCode(pattern string, code int, stderr string) {
	m.SetResponse(pattern, Result{Stderr: stderr, ReturnCode: code}, nil)
}

// SetNotFound makes commands matching the pattern fail to spawn
func (m *MockExecutor) SetNotFound(pattern string) {
	program := pattern
	if fields := strings.Fields(pattern); len(fields) > 0 {
		program = fields[0]
	}
	m.SetResponse(pattern, Result{}, &CommandNotFoundError{Program: program, Err: fmt.Errorf("executable file not found in $PATH")})
}

// HasCommand checks if a command matching the pattern was executed
func (m *MockExecutor) HasCommand(pattern string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, cmd := range m.Commands {
		if strings.Contains(cmd, pattern) {
			return true
		}
	}
	return false
}

// CommandCount returns the number of times a command matching the pattern was executed
func (m *MockExecutor) CommandCount(pattern string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	count := 0
	for _, cmd := range m.Commands {
		if strings.Contains(cmd, pattern) {
			count++
		}
	}
	return count
}

// formatCommand formats a command for recording
func (m *MockExecutor) formatCommand(name string, args ...string) string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", name, strings.Join(args, " ")))
}
