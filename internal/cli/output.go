package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// errOut receives error messages.
var errOut io.Writer = os.Stderr

// Terminal styles
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// render applies style unless colors are disabled.
func render(style lipgloss.Style, text string) string {
	if globalNoColor {
		return text
	}
	return style.Render(text)
}

func formatSuccess(msg string) string {
	return render(successStyle, "✓") + " " + msg
}

func formatWarning(msg string) string {
	return render(warningStyle, "⚠") + " " + msg
}

func formatError(msg string) string {
	return render(errorStyle, "✗") + " " + msg
}

func formatHeader(title string) string {
	return render(headerStyle, fmt.Sprintf("=== %s ===", title))
}

func formatMuted(text string) string {
	return render(mutedStyle, text)
}

// printErrorMsg prints an error message to stderr
func printErrorMsg(msg string) {
	fmt.Fprintln(errOut, formatError(msg))
}
