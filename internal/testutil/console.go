//go:build !windows
// +build !windows

package testutil

import (
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	expect "github.com/Netflix/go-expect"
	pseudotty "github.com/creack/pty"
	"github.com/hinshun/vt10x"
)

// promptTimeout bounds every expectation and the wait for the driver
const promptTimeout = 5 * time.Second

// ExpectConsole drives the user side of a virtual terminal
type ExpectConsole interface {
	ExpectString(string)
	ExpectEOF()
	SendLine(string)
	Send(string)
}

type console struct {
	c *expect.Console
	t *testing.T
}

func (w *console) ExpectString(s string) {
	w.t.Helper()
	if _, err := w.c.ExpectString(s); err != nil {
		w.t.Logf("ExpectString(%q) error: %v", s, err)
	}
}

func (w *console) ExpectEOF() {
	w.t.Helper()
	if _, err := w.c.ExpectEOF(); err != nil {
		w.t.Logf("ExpectEOF error: %v", err)
	}
}

func (w *console) SendLine(s string) {
	w.t.Helper()
	if _, err := w.c.SendLine(s); err != nil {
		w.t.Fatalf("SendLine(%q) error: %v", s, err)
	}
}

func (w *console) Send(s string) {
	w.t.Helper()
	if _, err := w.c.Send(s); err != nil {
		w.t.Fatalf("Send(%q) error: %v", s, err)
	}
}

// RunPromptTest runs test with its stdio attached to a pseudo terminal
// while procedure plays the user. It returns the final screen contents.
func RunPromptTest(t *testing.T, procedure func(ExpectConsole), test func(terminal.Stdio) error) string {
	t.Helper()

	ptm, pts, err := pseudotty.Open()
	if err != nil {
		t.Fatalf("failed to open pseudotty: %v", err)
	}

	screen := vt10x.New(vt10x.WithWriter(pts))

	c, err := expect.NewConsole(
		expect.WithStdin(ptm),
		expect.WithStdout(screen),
		expect.WithCloser(ptm, pts),
		expect.WithDefaultTimeout(promptTimeout),
	)
	if err != nil {
		t.Fatalf("failed to create console: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		procedure(&console{c: c, t: t})
	}()

	err = test(terminal.Stdio{In: c.Tty(), Out: c.Tty(), Err: c.Tty()})

	// EOF for the driver
	c.Tty().Close()

	select {
	case <-done:
	case <-time.After(2 * promptTimeout):
		t.Fatal("test timed out waiting for procedure")
	}

	if err != nil {
		t.Logf("prompt returned error: %v", err)
	}

	return screen.String()
}
