package main

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Styles contains the visual styles for CLI output.
type Styles struct {
	Header    lipgloss.Style
	ShapeName lipgloss.Style
	Hit       lipgloss.Style
	Miss      lipgloss.Style
	Skip      lipgloss.Style
	Detail    lipgloss.Style
}

// DefaultStyles returns the default color styles.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true),
		ShapeName: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),             // Bright cyan
		Hit:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
		Miss:      lipgloss.NewStyle().Foreground(lipgloss.Color("46")),             // Lime green
		Skip:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),            // Dim gray
		Detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),            // Medium gray
	}
}

// PlainStyles returns no-op styles for non-terminal output.
func PlainStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle(),
		ShapeName: lipgloss.NewStyle(),
		Hit:       lipgloss.NewStyle(),
		Miss:      lipgloss.NewStyle(),
		Skip:      lipgloss.NewStyle(),
		Detail:    lipgloss.NewStyle(),
	}
}

// outputStyles picks the styles for this invocation: colors only when
// stdout is a terminal and --no-color is not set.
func outputStyles() Styles {
	if flagNoColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		return PlainStyles()
	}
	return DefaultStyles()
}
