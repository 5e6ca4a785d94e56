// Package style holds the colors and styles of denotag's terminal output.
package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/pterm/pterm"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(HeadingColor).
			Bold(true)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor).
			Bold(true)

	PathStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Italic(true)
)

// ActionStyle returns the table style for a directive action name.
func ActionStyle(action string) *pterm.Style {
	switch action {
	case "run":
		return pterm.NewStyle(pterm.FgGreen, pterm.Bold)
	case "bundle":
		return pterm.NewStyle(pterm.FgMagenta, pterm.Bold)
	default:
		return pterm.NewStyle(pterm.FgGray)
	}
}

// FormatError renders err as a single "Error: ..." line.
func FormatError(err error) string {
	return fmt.Sprintf("%s %s", ErrorStyle.Render("Error:"), err.Error())
}
