//go:build !windows
// +build !windows

package ui

import (
	"strings"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/mbourmaud/nob/internal/testutil"
)

// TestPromptConfirmWithStdio tests confirm prompt answers
func TestPromptConfirmWithStdio(t *testing.T) {
	tests := []struct {
		name       string
		answer     string
		defaultYes bool
		want       bool
	}{
		{"yes", "y", false, true},
		{"no", "n", true, false},
		{"default yes", "", true, true},
		{"default no", "", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := testutil.RunPromptTest(t,
				func(c testutil.ExpectConsole) {
					c.ExpectString("Run build?")
					c.SendLine(tt.answer)
					c.ExpectEOF()
				},
				func(stdio terminal.Stdio) error {
					result, err := PromptConfirmWithStdio("Run build?", tt.defaultYes, stdio)
					if err != nil {
						return err
					}
					if result != tt.want {
						t.Errorf("PromptConfirmWithStdio() = %v, want %v", result, tt.want)
					}
					return nil
				},
			)
			if !strings.Contains(screen, "Run build?") {
				t.Errorf("screen = %q, missing prompt", screen)
			}
		})
	}
}
