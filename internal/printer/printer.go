// Package printer renders styled console output.
package printer

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ANSI palette indices, so the user's terminal theme decides the exact shade.
const (
	colorRed    = lipgloss.Color("1")
	colorGreen  = lipgloss.Color("2")
	colorYellow = lipgloss.Color("3")
	colorCyan   = lipgloss.Color("6")
)

var (
	faintStyle   = lipgloss.NewStyle().Faint(true)
	boldStyle    = lipgloss.NewStyle().Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(colorGreen)
	errorStyle   = lipgloss.NewStyle().Foreground(colorRed)
	warningStyle = lipgloss.NewStyle().Foreground(colorYellow)
	infoStyle    = lipgloss.NewStyle().Foreground(colorCyan)
)

// Faint renders secondary text such as labels and details.
func Faint(text string) string { return faintStyle.Render(text) }

// Bold renders emphasized text.
func Bold(text string) string { return boldStyle.Render(text) }

// Success renders text in green.
func Success(text string) string { return successStyle.Render(text) }

// Error renders text in red.
func Error(text string) string { return errorStyle.Render(text) }

// Warning renders text in yellow.
func Warning(text string) string { return warningStyle.Render(text) }

// Info renders text in cyan.
func Info(text string) string { return infoStyle.Render(text) }

// SuccessBadge renders a bold green marker such as "✓".
func SuccessBadge(text string) string { return successStyle.Bold(true).Render(text) }

// WarningBadge renders a bold yellow marker such as "!".
func WarningBadge(text string) string { return warningStyle.Bold(true).Render(text) }

// PrintSuccess prints a green line to stdout.
func PrintSuccess(text string) { fmt.Println(Success(text)) }

// PrintError prints a red line to stdout.
func PrintError(text string) { fmt.Println(Error(text)) }

// PrintWarning prints a yellow line to stdout.
func PrintWarning(text string) { fmt.Println(Warning(text)) }

// SetNoColor switches every style to plain text when noColor is true.
// It never re-enables colors.
func SetNoColor(noColor bool) {
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
