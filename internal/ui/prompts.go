package ui

import (
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// defaultStdio returns the default terminal stdio (os.Stdin, os.Stdout, os.Stderr)
func defaultStdio() terminal.Stdio {
	return terminal.Stdio{In: os.Stdin, Out: os.Stdout, Err: os.Stderr}
}

// PromptConfirm prompts for yes/no confirmation
func PromptConfirm(label string, defaultYes bool) (bool, error) {
	return PromptConfirmWithStdio(label, defaultYes, defaultStdio())
}

// PromptConfirmWithStdio is like PromptConfirm but with custom stdio for testing
func PromptConfirmWithStdio(label string, defaultYes bool, stdio terminal.Stdio) (bool, error) {
	var value bool
	prompt := &survey.Confirm{
		Message: label,
		Default: defaultYes,
	}

	err := survey.AskOne(prompt, &value, survey.WithStdio(stdio.In, stdio.Out, stdio.Err))
	return value, err
}
