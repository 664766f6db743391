package ui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
)

// TestHeader tests header rendering
func TestHeader(t *testing.T) {
	tests := []struct {
		name     string
		emoji    string
		title    string
		contains []string
	}{
		{
			name:     "basic header",
			emoji:    "🔨",
			title:    "Building default",
			contains: []string{"🔨", "Building default"},
		},
		{
			name:     "empty emoji",
			emoji:    "",
			title:    "Test",
			contains: []string{"Test"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Header(tt.emoji, tt.title)
			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("Header(%q, %q) = %q, missing %q", tt.emoji, tt.title, result, s)
				}
			}
		})
	}
}

// TestSuccess tests success message rendering
func TestSuccess(t *testing.T) {
	result := Success("Build finished")
	if !strings.Contains(result, "Build finished") {
		t.Errorf("Success() missing message")
	}
	if !strings.Contains(result, "✓") {
		t.Errorf("Success() missing check mark")
	}
}

// TestWarning tests warning message rendering
func TestWarning(t *testing.T) {
	result := Warning("Be careful")
	if !strings.Contains(result, "Be careful") {
		t.Errorf("Warning() missing message")
	}
}

// TestErrorBox tests error box rendering
func TestErrorBox(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		content  string
		contains []string
	}{
		{
			name:     "title and content",
			title:    "Command failed",
			content:  "main.c:3: error: expected ';'",
			contains: []string{"Command failed", "expected ';'"},
		},
		{
			name:     "default title",
			title:    "",
			content:  "something broke",
			contains: []string{"Error", "something broke"},
		},
		{
			name:     "no content",
			title:    "Oops",
			content:  "",
			contains: []string{"Oops"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ErrorBox(tt.title, tt.content)
			for _, s := range tt.contains {
				if !strings.Contains(result, s) {
					t.Errorf("ErrorBox() = %q, missing %q", result, s)
				}
			}
		})
	}
}

// TestErrorBox_LongContent tests truncation of long lines
func TestErrorBox_LongContent(t *testing.T) {
	long := strings.Repeat("x", 200)
	result := ErrorBox("Long", long)
	if strings.Contains(result, long) {
		t.Error("ErrorBox() should truncate long lines")
	}
	if !strings.Contains(result, "...") {
		t.Error("ErrorBox() should mark truncated lines")
	}
}

// TestErrorBox_LongMultibyteContent tests truncation never splits a rune
func TestErrorBox_LongMultibyteContent(t *testing.T) {
	result := ErrorBox("x", strings.Repeat("a", 72)+"ééééééé")
	if !utf8.ValidString(result) {
		t.Errorf("ErrorBox() produced invalid UTF-8: %q", result)
	}
	if !strings.Contains(result, "...") {
		t.Error("ErrorBox() should mark truncated lines")
	}
	if strings.Contains(result, "ééééééé") {
		t.Error("ErrorBox() should truncate long lines")
	}
}

// TestSuccessBox tests success box rendering
func TestSuccessBox(t *testing.T) {
	result := SuccessBox("", "3 steps")
	if !strings.Contains(result, "Success") || !strings.Contains(result, "3 steps") {
		t.Errorf("SuccessBox() = %q", result)
	}
}

// TestStepLine tests build step rendering
func TestStepLine(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		contains string
	}{
		{"success", 0, "✓"},
		{"non-zero exit", 2, "exit 2"},
		{"not started", -1, "✗"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := StepLine(1, 3, "compile", tt.code)
			for _, s := range []string{"[1/3]", "compile...", tt.contains} {
				if !strings.Contains(result, s) {
					t.Errorf("StepLine() = %q, missing %q", result, s)
				}
			}
		})
	}
}

// TestTable tests table rendering
func TestTable(t *testing.T) {
	headers := []string{"RECIPE", "STEPS"}
	rows := [][]string{
		{"default", "2"},
		{StyleGreen.Render("clean"), "1"},
	}

	result := Table(headers, rows)
	for _, s := range []string{"RECIPE", "STEPS", "default", "clean", "─"} {
		if !strings.Contains(result, s) {
			t.Errorf("Table() missing %q", s)
		}
	}
	if lines := strings.Count(result, "\n"); lines != 4 {
		t.Errorf("Table() has %d lines, want 4", lines)
	}
}

// TestTable_EmptyHeaders tests table without headers
func TestTable_EmptyHeaders(t *testing.T) {
	if result := Table(nil, [][]string{{"a"}}); result != "" {
		t.Errorf("Table() with no headers = %q, want empty", result)
	}
}

// TestTable_NonASCIIAlignment tests columns line up by display width
func TestTable_NonASCIIAlignment(t *testing.T) {
	headers := []string{"NAME", "N"}
	rows := [][]string{
		{"héllo", "1"},
		{"日本", "22"},
		{StyleGreen.Render("ab"), "3"},
	}

	lines := strings.Split(strings.TrimSuffix(Table(headers, rows), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("Table() has %d lines, want 5", len(lines))
	}

	want := lipgloss.Width(lines[1])
	for _, line := range lines[2:] {
		if got := lipgloss.Width(line); got != want {
			t.Errorf("row %q has width %d, want %d", line, got, want)
		}
	}
}
