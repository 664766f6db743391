package ui

import "github.com/charmbracelet/lipgloss"

// Base text styles
var (
	StyleBold = lipgloss.NewStyle().Bold(true)
	StyleDim  = lipgloss.NewStyle().Foreground(ColorDim)
)

// Colored text styles
var (
	StyleCyan   = lipgloss.NewStyle().Foreground(ColorCyan)
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
)

// Semantic styles
var (
	StyleHeader  = StyleBold.Copy().Foreground(ColorCyan)
	StyleSuccess = StyleBold.Copy().Foreground(ColorGreen)
	StyleWarning = StyleBold.Copy().Foreground(ColorYellow)
	StyleError   = StyleBold.Copy().Foreground(ColorRed)
)

// Box styles
var (
	ErrorBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorRed).
			Padding(0, 1).
			MaxWidth(80)

	SuccessBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorGreen).
			Padding(0, 1).
			Bold(true).
			MaxWidth(80)
)

// Table styles
var (
	TableHeaderStyle = StyleBold.Copy().
				Foreground(ColorCyan).
				PaddingRight(2)
)
