package cmd

import (
	"charm.land/lipgloss/v2"
)

// Transcript styling for terminal output.
var (
	styleSystem = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94A3B8")).
			Italic(true)

	styleAgent = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#14B8A6"))

	styleTeacher = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#8B5CF6"))

	stylePass = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#22C55E")).
			Bold(true)

	styleFail = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F43F5E")).
			Bold(true)

	styleHeading = lipgloss.NewStyle().
			Bold(true)
)

func roleStyle(role string) lipgloss.Style {
	switch role {
	case "agent":
		return styleAgent
	case "teacher":
		return styleTeacher
	default:
		return styleSystem
	}
}

func verdictLabel(correct bool) string {
	if correct {
		return stylePass.Render("PASS")
	}
	return styleFail.Render("FAIL")
}
