package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Header renders a header with emoji and title
func Header(emoji, title string) string {
	return StyleHeader.Render(emoji+" "+title) + "\n"
}

// Success renders a success message
func Success(message string) string {
	return StyleSuccess.Render("✓ " + message)
}

// Warning renders a warning message
func Warning(message string) string {
	return StyleWarning.Render("! " + message)
}

// ErrorBox renders content in an error box with optional title.
// Long lines are truncated to fit an 80 column terminal.
func ErrorBox(title, content string) string {
	if title == "" {
		title = "Error"
	}

	lines := strings.Split(strings.TrimSpace(content), "\n")
	wrapped := make([]string, 0, len(lines))

	maxWidth := 76
	for _, line := range lines {
		wrapped = append(wrapped, ansi.Truncate(line, maxWidth, "..."))
	}

	full := StyleError.Render("✗ " + title)
	if text := strings.Join(wrapped, "\n"); text != "" {
		full += "\n\n" + text
	}

	return "\n" + ErrorBoxStyle.Render(full) + "\n"
}

// SuccessBox renders content in a success box
func SuccessBox(title, content string) string {
	if title == "" {
		title = "Success"
	}

	full := StyleSuccess.Render("✓ " + title)
	if content != "" {
		full += "\n\n" + content
	}

	return "\n" + SuccessBoxStyle.Render(full) + "\n"
}

// StepLine renders a build step like "[1/3] compile... ✓"
func StepLine(index, total int, label string, code int) string {
	counter := StyleDim.Render(fmt.Sprintf("[%d/%d]", index, total))

	var status string
	switch {
	case code == 0:
		status = StyleGreen.Render("✓")
	case code < 0:
		status = StyleRed.Render("✗")
	default:
		status = StyleYellow.Render(fmt.Sprintf("exit %d", code))
	}

	return fmt.Sprintf("%s %s... %s\n", counter, label, status)
}

// Table renders a simple table
func Table(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	var b strings.Builder

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if n := lipgloss.Width(cell); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	for i, h := range headers {
		b.WriteString(TableHeaderStyle.Render(h + strings.Repeat(" ", widths[i]-lipgloss.Width(h))))
	}
	b.WriteString("\n")

	for _, w := range widths {
		b.WriteString(strings.Repeat("─", w+2))
	}
	b.WriteString("\n")

	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				b.WriteString(cell)
				b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)))
				b.WriteString("  ")
			}
		}
		b.WriteString("\n")
	}

	return b.String()
}
